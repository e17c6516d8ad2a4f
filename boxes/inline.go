package boxes

import (
	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/linebox"
	"github.com/npillmayer/inlineflow/style"
)

// InlineBox is an inline element which holds other inline-level content.
// Line boxes open it, place its children and size it when it is closed. An
// inline box split across lines produces one fragment per line.
type InlineBox struct {
	metrics
	Element *element.Element
	style   style.Style
	placed  int // number of fragments submitted
}

var _ linebox.InlineLevelBox = (*InlineBox)(nil)

// NewInlineBox creates an inline box for element e, child of parent.
func NewInlineBox(e *element.Element, st style.Style, parent Parent) *InlineBox {
	box := &InlineBox{Element: e, style: st}
	box.setFontMetrics(st)
	box.align(st, parent)
	return box
}

// Font returns the primary font metrics of the box.
func (box *InlineBox) Font() style.FontMetrics {
	return box.style.Font
}

// Style returns the style of the box.
func (box *InlineBox) Style() style.Style {
	return box.style
}

// CreateFragment opens the box. Inline boxes never overflow by themselves;
// their width is determined by their content.
func (box *InlineBox) CreateFragment(mode linebox.LayoutMode, availableWidth, rightSpacing float64,
	firstBox bool, overflow linebox.OverflowHandle) linebox.FragmentResult {
	//
	return linebox.FragmentResult{
		Type:        linebox.InlineBoxFragment,
		Principal:   true,
		LayoutWidth: -1,
		Ascent:      box.above,
		Descent:     box.below,
	}
}

// Submit positions the border box of a fragment. The principal fragment
// anchors the element; fragments on subsequent lines are added as further
// boxes, relative to the element's offset. Edges on a split side are dropped.
func (box *InlineBox) Submit(fb linebox.FragmentBox) {
	st := box.style
	margin, border, padding := st.Margin, st.Border, st.Padding
	if fb.SplitLeft {
		margin.Left, border.Left, padding.Left = 0, 0, 0
	}
	if fb.SplitRight {
		margin.Right, border.Right, padding.Right = 0, 0, 0
	}
	size := geom.Size{
		W: fb.LayoutWidth + padding.Left + padding.Right + border.Left + border.Right,
		H: st.Font.Height() + padding.Top + padding.Bottom + border.Top + border.Bottom,
	}
	borderPos := geom.Point{
		X: fb.Position.X + margin.Left,
		Y: fb.Position.Y - st.Font.Ascent - padding.Top - border.Top,
	}
	b := element.Box{SplitLeft: fb.SplitLeft, SplitRight: fb.SplitRight}
	if fb.Principal {
		box.Element.SetOffset(borderPos, fb.OffsetParent)
		box.Element.ClearBoxes()
		box.placed = 0
		b.Rect = geom.Rect{Size: size}
	} else {
		b.Rect = geom.Rect{TopLeft: borderPos.Sub(box.Element.Offset), Size: size}
	}
	box.Element.AddBox(b)
	box.placed++
	tracer().Debugf("inline box %s: fragment #%d at %s, width %.2f", box.Element.Name, box.placed,
		borderPos, size.W)
}

// SpacingLeft is the sum of margin, border and padding on the left side.
func (box *InlineBox) SpacingLeft() float64 {
	return box.style.SpacingLeft()
}

// SpacingRight is the sum of margin, border and padding on the right side.
func (box *InlineBox) SpacingRight() float64 {
	return box.style.SpacingRight()
}

// FragmentCount returns the number of fragments submitted since the principal
// fragment.
func (box *InlineBox) FragmentCount() int {
	return box.placed
}
