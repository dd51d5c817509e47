package ifc

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
)

// CollectContent walks dom's children starting from domChildren (an IFC
// root's layouttree.Node.InlineDomChildren) and flattens them into an
// ordered list of text.InlineContent, per spec.md §4.3.2: a styled inline
// element (display: inline) is transparent and recurses into its own
// children under its own style; a text node becomes one ContentText run
// carrying its parent's style; anything else in-flow and inline-level
// (inline-block, inline-flex, an image) is an atomic inline and stops the
// recursion; display: none content is skipped entirely; floated and
// absolutely/fixed-positioned descendants are excluded (they never
// participate in line building, per spec.md §4.3.1 and §4.3.3).
func CollectContent(dom styleddom.StyledDom, domChildren []styleddom.NodeID) []text.InlineContent {
	var out []text.InlineContent
	for _, child := range domChildren {
		collectOne(dom, child, &out)
	}
	return out
}

func collectOne(dom styleddom.StyledDom, n styleddom.NodeID, out *[]text.InlineContent) {
	style := dom.Style(n)
	if style.Display == styleddom.DisplayNone {
		return
	}
	if style.Float != styleddom.FloatNone || isOutOfFlow(style) {
		return
	}

	switch dom.Kind(n) {
	case styleddom.KindText:
		s := dom.Text(n)
		if s == "" {
			return
		}
		*out = append(*out, textContentItem(n, s, style))
		return
	case styleddom.KindImage:
		img := dom.Image(n)
		*out = append(*out, text.InlineContent{
			Kind:     text.ContentImage,
			Size:     pointOf(img.Width, img.Height),
			Baseline: img.Baseline,
			Origin:   n,
		})
		return
	}

	// Element node.
	if style.Display == styleddom.DisplayInline {
		for _, grandchild := range dom.Children(n) {
			collectOne(dom, grandchild, out)
		}
		return
	}

	// Any other in-flow, non-none display on a descendant of an IFC root
	// is an atomic inline-level box (inline-block, inline-flex, inline
	// table, etc): its own subtree is laid out independently by the
	// orchestrator and this item only carries the placeholder slot.
	*out = append(*out, text.InlineContent{
		Kind:   text.ContentShape,
		Origin: n,
	})
}

func textContentItem(n styleddom.NodeID, s string, style styleddom.ComputedStyle) text.InlineContent {
	return text.InlineContent{
		Kind: text.ContentText,
		Run: text.StyledRun{
			Text:   s,
			Style:  style,
			Origin: n,
		},
		Origin: n,
	}
}

func isOutOfFlow(style styleddom.ComputedStyle) bool {
	return style.Position == styleddom.PositionAbsolute || style.Position == styleddom.PositionFixed
}

func pointOf(w, h dimen.DU) dimen.Point {
	return dimen.Point{X: w, Y: h}
}
