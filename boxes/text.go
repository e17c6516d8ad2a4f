package boxes

import (
	"math"

	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/linebox"
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/inlineflow/textgen"
)

// LineGenerator produces lines of text. It is implemented by
// textgen.Generator.
type LineGenerator interface {
	GenerateLine(textgen.Request) textgen.Line
}

// TextBox is a run of text, broken into one fragment per line. The overflow
// handle of a text box is the rune offset where the text continues.
type TextBox struct {
	metrics
	Element *element.Element
	style   style.Style
	gen     LineGenerator
}

var _ linebox.InlineLevelBox = (*TextBox)(nil)

// NewTextBox creates a text box for text element e. Text inherits the style of
// its parent and is aligned on the parent's baseline.
func NewTextBox(e *element.Element, st style.Style, gen LineGenerator) *TextBox {
	box := &TextBox{Element: e, style: st, gen: gen}
	box.setFontMetrics(st)
	box.valign = style.AlignBaseline
	return box
}

// CreateFragment generates the next line of text, starting at the overflow
// position. The text box refuses to place anything only in mode WrapAny.
// Blank lines of preserved text are placed as empty runs.
func (box *TextBox) CreateFragment(mode linebox.LayoutMode, availableWidth, rightSpacing float64,
	firstBox bool, overflow linebox.OverflowHandle) linebox.FragmentResult {
	//
	if !box.style.WhiteSpace.Wraps() {
		availableWidth = math.Inf(1)
	}
	begin := int(overflow)
	line := box.gen.GenerateLine(textgen.Request{
		Begin:         begin,
		MaxWidth:      availableWidth,
		RightSpacing:  rightSpacing,
		FirstBox:      firstBox,
		DecodeEscapes: true,
		AllowEmpty:    mode == linebox.WrapAny,
	})
	if line.Overflow && line.Text == "" && !line.Break && mode == linebox.WrapAny {
		tracer().Debugf("text box %s: nothing fits into %.2f", box.Element.Name, availableWidth)
		return linebox.FragmentResult{}
	}
	// an empty line ended by a preserved newline is a zero-width run
	var next linebox.OverflowHandle
	if line.Overflow {
		next = linebox.OverflowHandle(begin + line.Length)
	}
	return linebox.FragmentResult{
		Type:        linebox.TextRun,
		Principal:   begin == 0,
		LayoutWidth: line.Width,
		Overflow:    next,
		Payload:     line.Text,
	}
}

// Submit adds a line of text to the element. The principal fragment anchors
// the element and starts a new set of lines.
func (box *TextBox) Submit(fb linebox.FragmentBox) {
	var offset geom.Point
	if fb.Principal {
		box.Element.SetOffset(fb.Position, fb.OffsetParent)
		box.Element.ClearLines()
	} else {
		offset = fb.Position.Sub(box.Element.Offset)
	}
	box.Element.AddLine(offset, fb.Payload)
	tracer().Debugf("text box %s: line %q at %s", box.Element.Name, fb.Payload, fb.Position)
}

// SpacingLeft is 0, text has no edges.
func (box *TextBox) SpacingLeft() float64 {
	return 0
}

// SpacingRight is 0, text has no edges.
func (box *TextBox) SpacingRight() float64 {
	return 0
}
