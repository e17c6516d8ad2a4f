/*
Package boxes implements the inline-level boxes taking part in inline layout.

▪︎ InlineBox is an inline element which may hold other inline content, like
<span> or <em>. It is opened on a line and sized when it is closed, possibly
after having been split across lines.

▪︎ TextBox is a run of text. Asked for a fragment, it generates as much text
as fits into the available width and resumes on the next line with the rest.

▪︎ AtomicBox is a box of fixed size, like an image or an inline-block.

▪︎ RootBox is the strut of an inline formatting context. It is never placed on
a line but sizes every line at least to its line height.

All boxes report their final geometry to an element.Element.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package boxes

import (
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inlineflow.boxes'
func tracer() tracing.Trace {
	return tracing.Select("inlineflow.boxes")
}

// Parent is the enclosing box of an inline-level box. Vertical alignment is
// relative to the parent's font.
type Parent interface {
	Font() style.FontMetrics
}

// metrics holds the vertical extent and alignment of a box, shared by all
// box variants.
type metrics struct {
	above  float64 // height above baseline
	below  float64 // depth below baseline
	offset float64 // baseline offset from parent's baseline, positive is down
	valign style.VerticalAlign
}

func (m *metrics) HeightAboveBaseline() float64 {
	return m.above
}

func (m *metrics) DepthBelowBaseline() float64 {
	return m.below
}

func (m *metrics) VerticalOffsetFromParent() float64 {
	return m.offset
}

func (m *metrics) VerticalAlign() style.VerticalAlign {
	return m.valign
}

// setFontMetrics sizes a box from its font, distributing the leading of the
// line height evenly above and below.
func (m *metrics) setFontMetrics(st style.Style) {
	halfLeading := (st.ResolvedLineHeight() - st.Font.Height()) / 2
	m.above = st.Font.Ascent + halfLeading
	m.below = st.Font.Descent + halfLeading
}

// align computes the offset of the box's baseline from the baseline of
// parent, according to vertical-align. Extents have to be set beforehand.
func (m *metrics) align(st style.Style, parent Parent) {
	m.valign = st.VerticalAlign
	var pf style.FontMetrics
	if parent != nil {
		pf = parent.Font()
	}
	switch st.VerticalAlign {
	case style.AlignLength:
		m.offset = -st.VerticalAlignLength
	case style.AlignSub:
		m.offset = pf.Size / 5
	case style.AlignSuper:
		m.offset = -pf.Size / 3
	case style.AlignTextTop:
		m.offset = m.above - pf.Ascent
	case style.AlignTextBottom:
		m.offset = pf.Descent - m.below
	case style.AlignMiddle:
		m.offset = (m.above-m.below)/2 - pf.XHeight/2
	default: // baseline, and line-relative alignment
		m.offset = 0
	}
}
