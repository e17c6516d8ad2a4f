package inlineflow

import (
	"errors"
	"fmt"

	"github.com/npillmayer/inlineflow/boxes"
	"github.com/npillmayer/inlineflow/container"
	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/linebox"
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/inlineflow/textgen"
)

// ErrUnbalanced is returned when closing an inline box which has not been
// opened, or laying out a paragraph with inline boxes left open.
var ErrUnbalanced = errors.New("unbalanced inline boxes")

// Paragraph collects the inline content of a block and lays it out. Content
// is added in document order:
//
//	p := inlineflow.NewParagraph(st, measurer)
//	p.Text("Hello ")
//	p.Open("em", emStyle)
//	p.Text("world")
//	p.Close()
//	result, err := p.Layout(300)
//
// A paragraph may be laid out repeatedly, e.g. for different widths.
type Paragraph struct {
	Block    *element.Element
	root     *boxes.RootBox
	measurer textgen.Measurer
	items    []item
	open     []*boxes.InlineBox
	pool     *linebox.Pool
}

type itemKind uint8

const (
	openItem itemKind = iota
	closeItem
	contentItem
	breakItem
)

type item struct {
	kind   itemKind
	box    linebox.InlineLevelBox
	height float64 // of breaks
}

// Result summarizes a layout of a paragraph.
type Result struct {
	LineCount        int
	Height           float64
	ShrinkToFitWidth float64
	Baseline         float64 // of the last line
	Tree             string  // diagnostic dump of the line boxes
}

// NewParagraph creates an empty paragraph. st is the style of the block, m
// measures all text of the paragraph.
func NewParagraph(st style.Style, m textgen.Measurer) *Paragraph {
	return &Paragraph{
		Block:    element.New("p"),
		root:     boxes.NewRootBox(st),
		measurer: m,
		pool:     linebox.NewPool(),
	}
}

// parent is the innermost open inline box, or the root.
func (p *Paragraph) parent() boxes.Parent {
	if n := len(p.open); n > 0 {
		return p.open[n-1]
	}
	return p.root
}

func (p *Paragraph) parentStyle() style.Style {
	if n := len(p.open); n > 0 {
		return p.open[n-1].Style()
	}
	return p.root.Style()
}

// Text adds a run of text in the style of the enclosing inline box. It returns
// the element which will receive the lines of text.
func (p *Paragraph) Text(s string) *element.Element {
	st := p.parentStyle()
	st.Margin, st.Border, st.Padding = style.Edges{}, style.Edges{}, style.Edges{}
	st.VerticalAlign = style.AlignBaseline
	e := element.New("#text")
	box := boxes.NewTextBox(e, st, textgen.New(s, p.measurer, st.WhiteSpace))
	p.items = append(p.items, item{kind: contentItem, box: box})
	return e
}

// Open starts an inline box. It has to be closed with Close.
func (p *Paragraph) Open(name string, st style.Style) *element.Element {
	e := element.New(name)
	box := boxes.NewInlineBox(e, st, p.parent())
	p.open = append(p.open, box)
	p.items = append(p.items, item{kind: openItem, box: box})
	return e
}

// Close ends the inline box opened last.
func (p *Paragraph) Close() error {
	n := len(p.open)
	if n == 0 {
		return fmt.Errorf("paragraph: close without open: %w", ErrUnbalanced)
	}
	p.items = append(p.items, item{kind: closeItem, box: p.open[n-1]})
	p.open = p.open[:n-1]
	return nil
}

// Atomic adds a box of fixed size (border box).
func (p *Paragraph) Atomic(name string, st style.Style, size geom.Size) *element.Element {
	e := element.New(name)
	box := boxes.NewAtomicBox(e, st, size, p.parent())
	p.items = append(p.items, item{kind: contentItem, box: box})
	return e
}

// Break adds a forced line break. An empty line gets the line height of the
// block.
func (p *Paragraph) Break() {
	h := p.root.Style().ResolvedLineHeight()
	p.items = append(p.items, item{kind: breakItem, height: h})
}

// Layout breaks the paragraph into lines of a given width. Options are handed
// to the inline container; text alignment and wrapping default to the
// block's style.
func (p *Paragraph) Layout(width float64, opts ...container.Option) (*Result, error) {
	if len(p.open) > 0 {
		return nil, fmt.Errorf("paragraph: %d inline boxes open: %w", len(p.open), ErrUnbalanced)
	}
	st := p.root.Style()
	defaults := []container.Option{
		container.WithTextAlign(st.TextAlign),
		container.WithWrap(st.WhiteSpace.Wraps()),
		container.WithArena(p.pool),
	}
	c := container.New(p.Block, p.root, width, append(defaults, opts...)...)
	defer c.Release()
	for _, it := range p.items {
		var err error
		switch it.kind {
		case openItem, contentItem:
			err = c.AddInlineElement(it.box)
		case closeItem:
			err = c.CloseInlineElement(it.box)
		case breakItem:
			err = c.AddBreak(it.height)
		}
		if err != nil {
			return nil, err
		}
	}
	if _, err := c.Close(); err != nil {
		return nil, err
	}
	r := &Result{
		LineCount:        c.LineCount(),
		Height:           c.Height(),
		ShrinkToFitWidth: c.ShrinkToFitWidth(),
		Tree:             c.DumpTree(0),
	}
	r.Baseline, _ = c.BaselineOfLastLine()
	tracer().Infof("paragraph: %d lines at width %.2f, height %.2f", r.LineCount, width, r.Height)
	return r, nil
}
