package htmlfixture

import (
	"strconv"
	"strings"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/cssval"
	"github.com/solver3/solver3/styleddom"
)

// applyUserAgentDefaults sets the user-agent rules spec.md §4.3.6 and
// §4.3.4 name explicitly, keyed by tag name: default display types for
// block, inline, list and table elements, list padding, the list-item
// counter-reset/increment, default list-style-type/position, and
// table-layout. Font defaults are not set here.
func applyUserAgentDefaults(tag string, s *styleddom.ComputedStyle) {
	switch tag {
	case "div", "p", "body", "html", "section", "h1", "h2", "h3", "h4", "h5", "h6":
		s.Display = styleddom.DisplayBlock
	case "table":
		s.Display = styleddom.DisplayTable
	case "thead":
		s.Display = styleddom.DisplayTableHeaderGroup
	case "tbody":
		s.Display = styleddom.DisplayTableRowGroup
	case "tfoot":
		s.Display = styleddom.DisplayTableFooterGroup
	case "tr":
		s.Display = styleddom.DisplayTableRow
	case "td", "th":
		s.Display = styleddom.DisplayTableCell
	case "caption":
		s.Display = styleddom.DisplayTableCaption
	case "span", "a", "b", "i", "em", "strong":
		s.Display = styleddom.DisplayInline
	case "br":
		s.Display = styleddom.DisplayInline
	case "ul":
		s.Display = styleddom.DisplayBlock
		// UA rule `padding-inline-start: 40px`; LTR horizontal-tb maps inline-start
		// to physical left (spec.md §4.3.6 logical-property-mapping note).
		s.Padding.Left = cssval.Just(40 * dimen.PX)
		s.CounterReset = append(s.CounterReset, styleddom.CounterOp{Name: "list-item", Value: 0})
		s.ListStyleType = styleddom.ListDisc
	case "ol":
		s.Display = styleddom.DisplayBlock
		s.Padding.Left = cssval.Just(40 * dimen.PX)
		s.CounterReset = append(s.CounterReset, styleddom.CounterOp{Name: "list-item", Value: 0})
		s.ListStyleType = styleddom.ListDecimal
	case "li":
		s.Display = styleddom.DisplayListItem
		s.CounterIncrement = append(s.CounterIncrement, styleddom.CounterOp{Name: "list-item", Value: 1})
		if s.ListStyleType == "" {
			s.ListStyleType = styleddom.ListDisc
		}
		s.ListStylePosition = styleddom.ListPositionOutside
	}
	if tag == "table" {
		s.TableLayout = styleddom.TableLayoutAuto
	}
}

func applyDeclaration(property, value string, s *styleddom.ComputedStyle) {
	value = strings.TrimSpace(value)
	switch property {
	case "display":
		s.Display = styleddom.Display(value)
	case "width":
		s.Width, _ = cssval.Parse(value)
	case "height":
		s.Height, _ = cssval.Parse(value)
	case "min-width":
		s.MinWidth, _ = cssval.Parse(value)
	case "min-height":
		s.MinHeight, _ = cssval.Parse(value)
	case "max-width":
		s.MaxWidth, _ = cssval.Parse(value)
	case "max-height":
		s.MaxHeight, _ = cssval.Parse(value)
	case "box-sizing":
		s.BoxSizing = styleddom.BoxSizing(value)
	case "margin":
		applyShorthand(value, &s.Margin)
	case "margin-top":
		s.Margin.Top, _ = cssval.Parse(value)
	case "margin-right":
		s.Margin.Right, _ = cssval.Parse(value)
	case "margin-bottom":
		s.Margin.Bottom, _ = cssval.Parse(value)
	case "margin-left":
		s.Margin.Left, _ = cssval.Parse(value)
	case "padding":
		applyShorthand(value, &s.Padding)
	case "padding-top":
		s.Padding.Top, _ = cssval.Parse(value)
	case "padding-right":
		s.Padding.Right, _ = cssval.Parse(value)
	case "padding-bottom":
		s.Padding.Bottom, _ = cssval.Parse(value)
	case "padding-left":
		s.Padding.Left, _ = cssval.Parse(value)
	case "border":
		applyBorderShorthand(value, &s.Border.Top)
		s.Border.Right = s.Border.Top
		s.Border.Bottom = s.Border.Top
		s.Border.Left = s.Border.Top
	case "border-collapse":
		s.BorderCollapse = styleddom.BorderCollapse(value)
	case "border-spacing":
		fields := strings.Fields(value)
		if len(fields) >= 1 {
			s.BorderSpacingH, _ = cssval.Parse(fields[0])
			s.BorderSpacingV = s.BorderSpacingH
		}
		if len(fields) >= 2 {
			s.BorderSpacingV, _ = cssval.Parse(fields[1])
		}
	case "table-layout":
		s.TableLayout = styleddom.TableLayout(value)
	case "caption-side":
		s.CaptionSide = value
	case "empty-cells":
		s.EmptyCellsHide = value == "hide"
	case "position":
		s.Position = styleddom.Position(value)
	case "float":
		s.Float = styleddom.Float(value)
	case "clear":
		s.Clear = styleddom.Clear(value)
	case "z-index":
		if v, err := strconv.Atoi(value); err == nil {
			s.ZIndex = v
		}
	case "direction":
		s.Direction = styleddom.Direction(value)
	case "color":
		s.Color = value
	case "background-color":
		s.BackgroundColor = value
	case "font-family":
		var fams []string
		for _, f := range strings.Split(value, ",") {
			fams = append(fams, strings.Trim(strings.TrimSpace(f), `"'`))
		}
		s.FontFamilies = fams
	case "font-weight":
		if v, err := strconv.Atoi(value); err == nil {
			s.FontWeight = v
		} else if value == "bold" {
			s.FontWeight = 700
		}
	case "font-style":
		s.FontItalic = value == "italic"
		s.FontOblique = value == "oblique"
	case "font-size":
		if v, ok := pixelValue(value); ok {
			s.FontSizePx = v
		}
	case "line-height":
		s.LineHeight, _ = cssval.Parse(value)
	case "text-align":
		s.TextAlign = styleddom.TextAlign(value)
	case "text-align-last":
		s.TextAlignLast = styleddom.TextAlign(value)
	case "white-space":
		s.WhiteSpacePre = value == "pre" || value == "pre-wrap"
	case "hyphens":
		s.Hyphens = styleddom.Hyphens(value)
	case "list-style-type":
		s.ListStyleType = styleddom.ListStyleType(value)
	case "list-style-position":
		s.ListStylePosition = styleddom.ListStylePosition(value)
	case "flex-grow":
		s.FlexGrow = parseFloat(value)
	case "flex-shrink":
		s.FlexShrink = parseFloat(value)
	case "flex-basis":
		s.FlexBasis, _ = cssval.Parse(value)
	case "flex-direction":
		s.FlexDirection = styleddom.FlexDirection(value)
	case "align-items":
		s.AlignItems = styleddom.AlignItems(value)
	case "align-self":
		s.AlignSelf = styleddom.AlignItems(value)
	case "shape-inside":
		s.ShapeInside = value
	case "shape-outside":
		s.ShapeOutside = value
	case "overflow":
		s.Overflow = value
	case "content":
		s.ContentText = strings.Trim(value, `"'`)
	case "lang":
		s.Lang = value
	case "writing-mode":
		s.WritingModeVertical = strings.HasPrefix(value, "vertical")
	case "text-orientation":
		s.TextOrientationUpright = value == "upright"
	}
}

func applyShorthand(value string, sides *styleddom.Sides) {
	fields := strings.Fields(value)
	vals := make([]cssval.Value, len(fields))
	for i, f := range fields {
		vals[i], _ = cssval.Parse(f)
	}
	switch len(vals) {
	case 1:
		sides.Top, sides.Right, sides.Bottom, sides.Left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		sides.Top, sides.Bottom = vals[0], vals[0]
		sides.Right, sides.Left = vals[1], vals[1]
	case 3:
		sides.Top, sides.Bottom = vals[0], vals[2]
		sides.Right, sides.Left = vals[1], vals[1]
	case 4:
		sides.Top, sides.Right, sides.Bottom, sides.Left = vals[0], vals[1], vals[2], vals[3]
	}
}

func applyBorderShorthand(value string, edge *styleddom.BorderEdge) {
	fields := strings.Fields(value)
	for _, f := range fields {
		if v, err := cssval.Parse(f); err == nil && !v.IsNone() {
			edge.Width = v
			continue
		}
		if st, ok := borderStyleByName[f]; ok {
			edge.Style = st
			continue
		}
		edge.Color = f
	}
}

var borderStyleByName = map[string]styleddom.BorderStyle{
	"none":   styleddom.BorderNone,
	"hidden": styleddom.BorderHidden,
	"dotted": styleddom.BorderDotted,
	"dashed": styleddom.BorderDashed,
	"solid":  styleddom.BorderSolid,
	"double": styleddom.BorderDouble,
	"groove": styleddom.BorderGroove,
	"ridge":  styleddom.BorderRidge,
	"inset":  styleddom.BorderInset,
	"outset": styleddom.BorderOutset,
}

func pixelValue(s string) (float64, bool) {
	v, err := cssval.Parse(s)
	if err != nil || !v.IsAbsolute() {
		return 0, false
	}
	return v.Dimen().Points(), true
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
