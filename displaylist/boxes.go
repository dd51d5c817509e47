package displaylist

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/layouttree"
)

// boxRects returns the four nested boxes spec.md §6's spatial index names —
// margin, border, padding, content — given the node's already-resolved
// edges and origin the border box's top-left corner sits at (absolute
// physical-pixel coordinates).
func boxRects(origin dimen.Point, n layouttree.Node) (margin, border, padding, content dimen.Rect) {
	border = dimen.Rect{
		TopL: origin,
		BotR: dimen.Point{X: origin.X + n.UsedSize.X, Y: origin.Y + n.UsedSize.Y},
	}
	margin = dimen.Rect{
		TopL: dimen.Point{X: border.TopL.X - n.Margin.Left, Y: border.TopL.Y - n.Margin.Top},
		BotR: dimen.Point{X: border.BotR.X + n.Margin.Right, Y: border.BotR.Y + n.Margin.Bottom},
	}
	padding = dimen.Rect{
		TopL: dimen.Point{X: border.TopL.X + n.Border.Left, Y: border.TopL.Y + n.Border.Top},
		BotR: dimen.Point{X: border.BotR.X - n.Border.Right, Y: border.BotR.Y - n.Border.Bottom},
	}
	content = dimen.Rect{
		TopL: dimen.Point{X: padding.TopL.X + n.Padding.Left, Y: padding.TopL.Y + n.Padding.Top},
		BotR: dimen.Point{X: padding.BotR.X - n.Padding.Right, Y: padding.BotR.Y - n.Padding.Bottom},
	}
	return
}

// SpatialIndex is the node-to-box mapping spec.md §6's "output to the
// interaction layer" names, built by cumulating relative_position down the
// tree (the same walk Generate performs for paint commands).
type SpatialIndex map[int]NodeBoxes

// NodeBoxes holds one node's four absolute boxes.
type NodeBoxes struct {
	Margin, Border, Padding, Content dimen.Rect
}
