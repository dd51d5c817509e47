/*
Package htmlfixture builds a styleddom.StyledDom from an HTML+CSS fragment
for use in tests only — production code never imports this package; it
builds a StyledDom from whatever real cascade the embedding application
supplies (spec.md §6).

It wires two domain dependencies the layout core itself intentionally never
imports, because the cascade is an external collaborator: douceur parses
`<style>` text into rules, cascadia matches each rule's selector against the
golang.org/x/net/html parse tree to decide which declarations apply to which
node. A tiny user-agent stylesheet (block-level defaults, list padding,
list-item counters) is applied first, then cascadia-matched author rules,
then the `style=""` attribute, matching CSS's cascade-origin ordering at a
level of fidelity adequate for fixtures (no specificity sort beyond
author-rule source order, since fixtures are hand-written and short).
*/
package htmlfixture

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/solver3/solver3/cssval"
	"github.com/solver3/solver3/styleddom"
)

type node struct {
	kind     styleddom.NodeKind
	tag      string
	text     string
	image    styleddom.ImageInfo
	parent   styleddom.NodeID
	children []styleddom.NodeID
	style    styleddom.ComputedStyle
}

// Dom is a test-only styleddom.StyledDom backed by a flat node slice.
type Dom struct {
	nodes []node
	root  styleddom.NodeID
}

var _ styleddom.StyledDom = (*Dom)(nil)

// Build parses an HTML fragment (optionally containing <style> elements and
// a style="" attribute per node), applies a minimal user-agent stylesheet
// plus the author CSS via cascadia-matched douceur rules, and returns a
// ready-to-layout StyledDom.
func Build(htmlFragment string) (*Dom, error) {
	doc, err := html.Parse(strings.NewReader(htmlFragment))
	if err != nil {
		return nil, fmt.Errorf("htmlfixture: parsing html: %w", err)
	}
	d := &Dom{}
	authorRules := collectAuthorRules(doc)

	body := findBody(doc)
	if body == nil {
		body = doc
	}
	rootID := d.addSubtree(body, styleddom.NoNode, authorRules, defaultStyle())
	d.root = rootID
	for i := range d.nodes {
		d.nodes[i].style = resolveHash(d.nodes[i].style)
	}
	return d, nil
}

type authorRule struct {
	sel  cascadia.Selector
	decl []declaration
}

type declaration struct {
	property string
	value    string
}

func collectAuthorRules(doc *html.Node) []authorRule {
	var rules []authorRule
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			var css strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				css.WriteString(c.Data)
			}
			sheet, err := parser.Parse(css.String())
			if err == nil {
				for _, r := range sheet.Rules {
					decls := make([]declaration, 0, len(r.Declarations))
					for _, dc := range r.Declarations {
						decls = append(decls, declaration{property: dc.Property, value: dc.Value})
					}
					for _, selText := range r.Selectors {
						sel, err := cascadia.Compile(selText)
						if err == nil {
							rules = append(rules, authorRule{sel: sel, decl: decls})
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rules
}

func findBody(doc *html.Node) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func (d *Dom) addSubtree(n *html.Node, parent styleddom.NodeID, rules []authorRule, inherited styleddom.ComputedStyle) styleddom.NodeID {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" && parent != styleddom.NoNode {
			// still materialize: table fixup pass 1 needs to see and drop
			// whitespace-only text children itself, not have them vanish here.
		}
		id := d.alloc(node{kind: styleddom.KindText, text: n.Data, parent: parent, style: inherited})
		return id
	case html.ElementNode:
		id := d.alloc(node{kind: styleddom.KindElement, tag: n.Data, parent: parent})
		style := inherited
		applyUserAgentDefaults(n.Data, &style)
		for _, r := range rules {
			if r.sel.Match(n) {
				for _, dc := range r.decl {
					applyDeclaration(dc.property, dc.value, &style)
				}
			}
		}
		for _, a := range n.Attr {
			switch a.Key {
			case "style":
				for _, dc := range parseInlineStyle(a.Val) {
					applyDeclaration(dc.property, dc.value, &style)
				}
			case "dir":
				if a.Val == "rtl" {
					style.Direction = styleddom.DirRTL
				} else {
					style.Direction = styleddom.DirLTR
				}
			case "colspan":
				if v, err := strconv.Atoi(a.Val); err == nil {
					style.ColSpan = v
				}
			case "rowspan":
				if v, err := strconv.Atoi(a.Val); err == nil {
					style.RowSpan = v
				}
			}
		}
		if style.ColSpan == 0 {
			style.ColSpan = 1
		}
		if style.RowSpan == 0 {
			style.RowSpan = 1
		}
		d.nodes[id].style = style
		childInherited := inheritableOnly(style)
		var children []styleddom.NodeID
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Style {
				continue
			}
			children = append(children, d.addSubtree(c, id, rules, childInherited))
		}
		d.nodes[id].children = children
		return id
	default:
		// comment/doctype nodes materialize as empty text for simplicity
		return d.alloc(node{kind: styleddom.KindText, parent: parent, style: inherited})
	}
}

func (d *Dom) alloc(n node) styleddom.NodeID {
	d.nodes = append(d.nodes, n)
	return styleddom.NodeID(len(d.nodes) - 1)
}

func (d *Dom) Root() styleddom.NodeID { return d.root }

func (d *Dom) Parent(n styleddom.NodeID) styleddom.NodeID {
	if int(n) < 0 || int(n) >= len(d.nodes) {
		return styleddom.NoNode
	}
	return d.nodes[n].parent
}

func (d *Dom) Children(n styleddom.NodeID) []styleddom.NodeID { return d.nodes[n].children }
func (d *Dom) Kind(n styleddom.NodeID) styleddom.NodeKind      { return d.nodes[n].kind }
func (d *Dom) Tag(n styleddom.NodeID) string                   { return d.nodes[n].tag }
func (d *Dom) Text(n styleddom.NodeID) string                  { return d.nodes[n].text }
func (d *Dom) Image(n styleddom.NodeID) styleddom.ImageInfo    { return d.nodes[n].image }
func (d *Dom) Style(n styleddom.NodeID) styleddom.ComputedStyle { return d.nodes[n].style }

func (d *Dom) ContentHash(n styleddom.NodeID) uint64 {
	h := fnv.New64a()
	nd := d.nodes[n]
	fmt.Fprintf(h, "%d|%s|%s|%d|%v", nd.kind, nd.tag, nd.text, len(nd.children), nd.style)
	return h.Sum64()
}

func resolveHash(s styleddom.ComputedStyle) styleddom.ComputedStyle { return s }

func parseInlineStyle(s string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		decls = append(decls, declaration{property: strings.TrimSpace(kv[0]), value: strings.TrimSpace(kv[1])})
	}
	return decls
}

func inheritableOnly(s styleddom.ComputedStyle) styleddom.ComputedStyle {
	var out styleddom.ComputedStyle
	out.Direction = s.Direction
	out.WritingModeVertical = s.WritingModeVertical
	out.TextOrientationUpright = s.TextOrientationUpright
	out.FontFamilies = s.FontFamilies
	out.FontWeight = s.FontWeight
	out.FontItalic = s.FontItalic
	out.FontOblique = s.FontOblique
	out.FontSizePx = s.FontSizePx
	out.LineHeight = s.LineHeight
	out.Color = s.Color
	out.Lang = s.Lang
	out.TextAlign = s.TextAlign
	out.WhiteSpacePre = s.WhiteSpacePre
	out.Hyphens = s.Hyphens
	out.ListStyleType = s.ListStyleType
	out.ListStylePosition = s.ListStylePosition
	out.BorderCollapse = s.BorderCollapse
	out.BorderSpacingH = s.BorderSpacingH
	out.BorderSpacingV = s.BorderSpacingV
	return out
}

func defaultStyle() styleddom.ComputedStyle {
	return styleddom.ComputedStyle{
		Display:        styleddom.DisplayBlock,
		Direction:      styleddom.DirLTR,
		FontFamilies:   []string{"serif"},
		FontWeight:     400,
		FontSizePx:     16,
		Color:          "#000000",
		TextAlign:      styleddom.TextAlignStart,
		BorderCollapse: styleddom.BorderSeparate,
		ColSpan:        1,
		RowSpan:        1,
	}
}
