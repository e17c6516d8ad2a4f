package boxes

import (
	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/linebox"
	"github.com/npillmayer/inlineflow/style"
)

// AtomicBox is an inline-level box of fixed size, e.g. a replaced element or
// an inline-block which has been laid out already. Its bottom margin edge sits
// on the baseline.
type AtomicBox struct {
	metrics
	Element *element.Element
	style   style.Style
	size    geom.Size // border box
}

var _ linebox.InlineLevelBox = (*AtomicBox)(nil)

// NewAtomicBox creates a sized box for element e with a given border box size.
func NewAtomicBox(e *element.Element, st style.Style, size geom.Size, parent Parent) *AtomicBox {
	box := &AtomicBox{Element: e, style: st, size: size}
	box.above = st.Margin.Top + size.H + st.Margin.Bottom
	box.below = 0
	box.align(st, parent)
	return box
}

// OuterWidth is the width of the margin box.
func (box *AtomicBox) OuterWidth() float64 {
	return box.style.Margin.Left + box.size.W + box.style.Margin.Right
}

// CreateFragment places the box as a whole. If wrapping to a new line is an
// option, a box wider than the available space is refused.
func (box *AtomicBox) CreateFragment(mode linebox.LayoutMode, availableWidth, rightSpacing float64,
	firstBox bool, overflow linebox.OverflowHandle) linebox.FragmentResult {
	//
	w := box.OuterWidth()
	if mode == linebox.WrapAny && w > availableWidth {
		tracer().Debugf("atomic box %s: width %.2f exceeds %.2f", box.Element.Name, w, availableWidth)
		return linebox.FragmentResult{}
	}
	return linebox.FragmentResult{
		Type:        linebox.SizedBox,
		Principal:   true,
		LayoutWidth: w,
		Ascent:      box.above,
		Descent:     box.below,
	}
}

// Submit anchors the element at the border box of the fragment.
func (box *AtomicBox) Submit(fb linebox.FragmentBox) {
	pos := geom.Point{
		X: fb.Position.X + box.style.Margin.Left,
		Y: fb.Position.Y - box.above + box.style.Margin.Top,
	}
	box.Element.SetOffset(pos, fb.OffsetParent)
	box.Element.ClearBoxes()
	box.Element.AddBox(element.Box{Rect: geom.Rect{Size: box.size}})
	tracer().Debugf("atomic box %s: placed at %s", box.Element.Name, pos)
}

// SpacingLeft is 0, margins are part of the box's outer width.
func (box *AtomicBox) SpacingLeft() float64 {
	return 0
}

// SpacingRight is 0, margins are part of the box's outer width.
func (box *AtomicBox) SpacingRight() float64 {
	return 0
}
