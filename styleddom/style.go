package styleddom

import (
	"github.com/solver3/solver3/cssval"
)

// Display is the CSS `display` keyword, already resolved to one value by
// the cascade (the outer/inner display-type split is flattened here; the
// builder derives a FormattingContext tag from it, see layouttree).
type Display string

const (
	DisplayBlock       Display = "block"
	DisplayInline      Display = "inline"
	DisplayInlineBlock Display = "inline-block"
	DisplayFlex        Display = "flex"
	DisplayInlineFlex  Display = "inline-flex"
	DisplayGrid        Display = "grid"
	DisplayTable       Display = "table"
	DisplayTableRowGroup Display = "table-row-group"
	DisplayTableHeaderGroup Display = "table-header-group"
	DisplayTableFooterGroup Display = "table-footer-group"
	DisplayTableRow    Display = "table-row"
	DisplayTableColumnGroup Display = "table-column-group"
	DisplayTableColumn Display = "table-column"
	DisplayTableCell   Display = "table-cell"
	DisplayTableCaption Display = "table-caption"
	DisplayListItem    Display = "list-item"
	DisplayNone        Display = "none"
)

// Position is the CSS `position` keyword.
type Position string

const (
	PositionStatic   Position = "static"
	PositionRelative Position = "relative"
	PositionAbsolute Position = "absolute"
	PositionFixed    Position = "fixed"
)

// Float is the CSS `float` keyword.
type Float string

const (
	FloatNone  Float = "none"
	FloatLeft  Float = "left"
	FloatRight Float = "right"
)

// Clear is the CSS `clear` keyword.
type Clear string

const (
	ClearNone  Clear = "none"
	ClearLeft  Clear = "left"
	ClearRight Clear = "right"
	ClearBoth  Clear = "both"
)

// Direction is the CSS `direction` keyword (paragraph base direction).
type Direction string

const (
	DirLTR Direction = "ltr"
	DirRTL Direction = "rtl"
)

// BoxSizing is the CSS `box-sizing` keyword.
type BoxSizing string

const (
	BoxSizingContent BoxSizing = "content-box"
	BoxSizingBorder  BoxSizing = "border-box"
)

// BorderStyle is the CSS border-style keyword, ordered as CSS 2.2 §17.6.2.1
// weights them for border-collapse conflict resolution (None lowest,
// Hidden highest/suppressing).
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderInset
	BorderGroove
	BorderOutset
	BorderRidge
	BorderDotted
	BorderDashed
	BorderSolid
	BorderDouble
	BorderHidden
)

// Sides holds a four-side CSS shorthand value (top, right, bottom, left —
// physical, not logical; logical-to-physical mapping happens once, at the
// box-model boundary, per spec.md §9 Design Notes).
type Sides struct {
	Top, Right, Bottom, Left cssval.Value
}

// BorderEdge is one physical edge's resolved border.
type BorderEdge struct {
	Width cssval.Value
	Style BorderStyle
	Color string
}

// BorderEdges holds all four physical border edges.
type BorderEdges struct {
	Top, Right, Bottom, Left BorderEdge
}

// ListStyleType is the CSS `list-style-type` keyword.
type ListStyleType string

const (
	ListDecimal           ListStyleType = "decimal"
	ListDecimalLeadingZero ListStyleType = "decimal-leading-zero"
	ListLowerRoman        ListStyleType = "lower-roman"
	ListUpperRoman        ListStyleType = "upper-roman"
	ListLowerAlpha        ListStyleType = "lower-alpha"
	ListUpperAlpha        ListStyleType = "upper-alpha"
	ListDisc              ListStyleType = "disc"
	ListCircle            ListStyleType = "circle"
	ListSquare            ListStyleType = "square"
	ListNone              ListStyleType = "none"
)

// ListStylePosition is the CSS `list-style-position` keyword.
type ListStylePosition string

const (
	ListPositionOutside ListStylePosition = "outside"
	ListPositionInside  ListStylePosition = "inside"
)

// TableLayout is the CSS `table-layout` keyword.
type TableLayout string

const (
	TableLayoutAuto  TableLayout = "auto"
	TableLayoutFixed TableLayout = "fixed"
)

// BorderCollapse is the CSS `border-collapse` keyword.
type BorderCollapse string

const (
	BorderSeparate BorderCollapse = "separate"
	BorderCollapsed BorderCollapse = "collapse"
)

// TextAlign is the CSS `text-align` keyword.
type TextAlign string

const (
	TextAlignStart   TextAlign = "start"
	TextAlignEnd     TextAlign = "end"
	TextAlignLeft    TextAlign = "left"
	TextAlignRight   TextAlign = "right"
	TextAlignCenter  TextAlign = "center"
	TextAlignJustify TextAlign = "justify"
)

// FlexDirection is the CSS `flex-direction` keyword.
type FlexDirection string

const (
	FlexRow    FlexDirection = "row"
	FlexColumn FlexDirection = "column"
)

// AlignItems is the CSS `align-items`/`align-self` keyword.
type AlignItems string

const (
	AlignStretch    AlignItems = "stretch"
	AlignFlexStart  AlignItems = "flex-start"
	AlignFlexEnd    AlignItems = "flex-end"
	AlignCenter     AlignItems = "center"
	AlignBaseline   AlignItems = "baseline"
)

// Hyphens is the CSS `hyphens` keyword.
type Hyphens string

const (
	HyphensNone   Hyphens = "none"
	HyphensManual Hyphens = "manual"
	HyphensAuto   Hyphens = "auto"
)

// CounterOp is one counter-reset or counter-increment entry.
type CounterOp struct {
	Name  string
	Value int
}

// ComputedStyle is the fully cascaded, inheritance-resolved property set a
// styled-DOM node exposes. Field selection follows what spec.md §4
// components actually read; it is not a general CSSOM.
type ComputedStyle struct {
	Display Display

	Width, Height         cssval.Value
	MinWidth, MinHeight   cssval.Value
	MaxWidth, MaxHeight   cssval.Value
	BoxSizing             BoxSizing

	Margin  Sides
	Padding Sides
	Border  BorderEdges

	Position Position
	Float    Float
	Clear    Clear
	ZIndex   int

	Direction   Direction
	WritingModeVertical bool
	TextOrientationUpright bool

	FontFamilies []string
	FontWeight   int
	FontItalic   bool
	FontOblique  bool
	FontSizePx   float64
	LineHeight   cssval.Value
	Color        string
	Lang         string

	TextAlign     TextAlign
	TextAlignLast TextAlign
	WhiteSpacePre bool
	Hyphens       Hyphens

	ListStyleType     ListStyleType
	ListStylePosition ListStylePosition

	TableLayout     TableLayout
	BorderCollapse  BorderCollapse
	BorderSpacingH  cssval.Value
	BorderSpacingV  cssval.Value
	CaptionSide     string // "top" | "bottom"
	EmptyCellsHide  bool
	RowSpan, ColSpan int

	FlexGrow, FlexShrink float64
	FlexBasis            cssval.Value
	FlexDirection        FlexDirection
	AlignItems           AlignItems
	AlignSelf            AlignItems

	ShapeInside string // CSS shape function text, e.g. "circle(100px at 100px 100px)"
	ShapeOutside string

	CounterReset     []CounterOp
	CounterIncrement []CounterOp
	ContentText      string

	Overflow string // "visible" | "hidden" | "scroll" | "auto"

	BackgroundColor string
}
