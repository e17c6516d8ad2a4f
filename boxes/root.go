package boxes

import "github.com/npillmayer/inlineflow/style"

// RootBox is the implicit inline box of an inline formatting context. Its
// metrics are the strut every line starts from.
type RootBox struct {
	metrics
	style style.Style
}

// NewRootBox creates the root box for the style of a block container.
func NewRootBox(st style.Style) *RootBox {
	root := &RootBox{style: st}
	root.setFontMetrics(st)
	root.valign = style.AlignBaseline
	return root
}

// Font returns the primary font metrics of the block container.
func (root *RootBox) Font() style.FontMetrics {
	return root.style.Font
}

// Style returns the style of the block container.
func (root *RootBox) Style() style.Style {
	return root.style
}
