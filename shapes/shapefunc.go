package shapes

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/solver3/solver3/core/dimen"
)

// Shape is a parsed CSS shape function (shape-inside/shape-outside),
// reduced to exactly what spec.md §4.3.5 needs: a horizontal chord at a
// given vertical offset from the reference box's top edge.
type Shape interface {
	// ChordAt returns the shape's horizontal chord at y, given the
	// reference box's width and height (needed by box-relative shapes
	// like inset(); circle()'s coordinates are already absolute within
	// the box and ignore these).
	ChordAt(y, boxWidth, boxHeight dimen.DU) (Segment, bool)
}

var circlePattern = regexp.MustCompile(`circle\(\s*([\d.]+)px\s+at\s+([\d.]+)px\s+([\d.]+)px\s*\)`)
var insetPattern = regexp.MustCompile(`inset\(\s*([\d.]+)px\s+([\d.]+)px\s+([\d.]+)px\s+([\d.]+)px\s*\)`)

// Parse parses a CSS shape function string (as stored verbatim on
// ComputedStyle.ShapeInside/ShapeOutside) into a Shape. Only
// circle(R at X Y) and four-value inset(), with px lengths, are
// recognized; any other input, including ellipse() and polygon(), returns
// an error.
func Parse(s string) (Shape, error) {
	s = strings.TrimSpace(s)
	if m := circlePattern.FindStringSubmatch(s); m != nil {
		r := mustPx(m[1])
		cx := mustPx(m[2])
		cy := mustPx(m[3])
		return circleShape{r: r, cx: cx, cy: cy}, nil
	}
	if m := insetPattern.FindStringSubmatch(s); m != nil {
		return insetShape{
			top: mustPx(m[1]), right: mustPx(m[2]),
			bottom: mustPx(m[3]), left: mustPx(m[4]),
		}, nil
	}
	return nil, fmt.Errorf("shapes: unsupported shape function %q", s)
}

func mustPx(s string) dimen.DU {
	f, _ := strconv.ParseFloat(s, 64)
	return dimen.DU(f * float64(dimen.PX))
}

type circleShape struct {
	r, cx, cy dimen.DU
}

// ChordAt returns the circle's horizontal chord at y, per the standard
// chord formula half_width = sqrt(r² - (y-cy)²).
func (c circleShape) ChordAt(y, _, _ dimen.DU) (Segment, bool) {
	dy := float64(y - c.cy)
	r := float64(c.r)
	if dy < -r || dy > r {
		return Segment{}, false
	}
	half := dimen.DU(math.Sqrt(r*r - dy*dy))
	return Segment{Start: c.cx - half, End: c.cx + half}, true
}

type insetShape struct {
	top, right, bottom, left dimen.DU
}

// ChordAt returns the inset rectangle's chord, constant for every y
// within [top, boxHeight-bottom).
func (ins insetShape) ChordAt(y, boxWidth, boxHeight dimen.DU) (Segment, bool) {
	if y < ins.top || y >= boxHeight-ins.bottom {
		return Segment{}, false
	}
	return Segment{Start: ins.left, End: boxWidth - ins.right}, true
}
