package linebox

import (
	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/style"
)

// LayoutMode tells an inline-level box how to treat the available width.
type LayoutMode uint8

const (
	// Nowrap ignores the available width.
	Nowrap LayoutMode = iota
	// Wrap breaks content at the available width, but the box has to place
	// something, even if nothing fits.
	Wrap
	// WrapAny breaks content at the available width and permits the box to
	// refuse placing anything, in which case the content moves to a new line.
	WrapAny
)

func (m LayoutMode) String() string {
	switch m {
	case Nowrap:
		return "nowrap"
	case Wrap:
		return "wrap"
	case WrapAny:
		return "wrap-any"
	}
	return "unknown"
}

// FragmentType classifies fragments.
type FragmentType uint8

const (
	Invalid           FragmentType = iota // no fragment could be placed
	InlineBoxFragment                     // opens an inline box, sized when closed
	TextRun                               // fixed-size run of text
	SizedBox                              // fixed-size atomic box
)

func (t FragmentType) String() string {
	switch t {
	case Invalid:
		return "invalid"
	case InlineBoxFragment:
		return "inline-box"
	case TextRun:
		return "text-run"
	case SizedBox:
		return "sized-box"
	}
	return "unknown"
}

// OverflowHandle identifies the point where a partially placed box continues
// on the next line. It is meaningful to the producing box only; 0 denotes
// "no overflow".
type OverflowHandle int

// FragmentHandle is an opaque token of the producing box, handed back to it
// on submission.
type FragmentHandle int

// FragmentResult is what an inline-level box produces when asked to lay out
// into the available space of a line.
type FragmentResult struct {
	Type        FragmentType
	Principal   bool    // first fragment of its box
	LayoutWidth float64 // negative for inline boxes, which are sized on close
	Ascent      float64 // height contribution above the baseline
	Descent     float64 // depth contribution below the baseline
	Overflow    OverflowHandle
	Handle      FragmentHandle
	Payload     string // laid out text for text runs
}

// FragmentBox is the final placement of a fragment, handed to the producing
// box when its line is closed.
type FragmentBox struct {
	OffsetParent *element.Element
	Handle       FragmentHandle
	Position     geom.Point // baseline origin, relative to the offset parent
	LayoutWidth  float64
	SplitLeft    bool // continued from the previous line
	SplitRight   bool // continues on the next line
	Principal    bool
	Payload      string
}

// Metrics is the vertical extent of a box relative to its baseline.
type Metrics interface {
	HeightAboveBaseline() float64
	DepthBelowBaseline() float64
}

// InlineLevelBox is implemented by all content taking part in inline
// layout: inline boxes, text and atomic boxes.
type InlineLevelBox interface {
	Metrics
	// CreateFragment lays out the box, or what remains of it after overflow, into
	// availableWidth. rightSpacing is the width to reserve at the right side if the
	// box ends its content, firstBox tells whether the box would be the first
	// content on the line.
	CreateFragment(mode LayoutMode, availableWidth, rightSpacing float64, firstBox bool,
		overflow OverflowHandle) FragmentResult
	// Submit is called once per placed fragment after its line is closed.
	Submit(FragmentBox)
	SpacingLeft() float64
	SpacingRight() float64
	// VerticalOffsetFromParent is the offset of the box's baseline from the
	// baseline of its parent. Positive values move the box down.
	VerticalOffsetFromParent() float64
	VerticalAlign() style.VerticalAlign
}

// fragment is one placed (or being placed) piece of inline content.
type fragment struct {
	box            InlineLevelBox
	kind           FragmentType
	handle         FragmentHandle
	payload        string
	principal      bool
	position       geom.Point
	width          float64
	parent         int // index of the enclosing inline box fragment, or -1
	subtreeRoot    int // index of the aligned subtree root, or -1 for the line's root
	valign         style.VerticalAlign
	baselineOffset float64
	maxAscent      float64
	maxDescent     float64
	hasContent     bool
	splitLeft      bool
	splitRight     bool
	childrenEnd    int // exclusive end of the children range; 0 while open
}

func (f *fragment) isOpenWithoutChildren() bool {
	return f.kind == InlineBoxFragment && f.childrenEnd == 0
}
