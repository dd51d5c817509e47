package displaylist

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/text"
)

// CommandKind discriminates one paint command.
type CommandKind int

const (
	CmdBackground CommandKind = iota
	CmdBorder
	CmdText
	CmdImage
	CmdOutline
	CmdClipPush
	CmdClipPop
)

func (k CommandKind) String() string {
	switch k {
	case CmdBackground:
		return "background"
	case CmdBorder:
		return "border"
	case CmdText:
		return "text"
	case CmdImage:
		return "image"
	case CmdOutline:
		return "outline"
	case CmdClipPush:
		return "clip-push"
	case CmdClipPop:
		return "clip-pop"
	}
	return "unknown"
}

// Command is one paint operation, in absolute physical-pixel coordinates
// (spec.md §4.4/§6).
type Command struct {
	Kind     CommandKind
	NodeIdx  int
	Rect     dimen.Rect // the relevant box for this command (border/padding/content, per Kind)
	Color    string
	FontID   string
	Glyphs   []text.PositionedGlyph // set only for CmdText, positions already absolute
	ImageID  string                 // set only for CmdImage
}

// DisplayList is the ordered sequence of paint commands produced by
// Generate — the output the painter collaborator (spec.md §6) consumes.
type DisplayList struct {
	Commands []Command
}

func (d *DisplayList) emit(c Command) {
	d.Commands = append(d.Commands, c)
}
