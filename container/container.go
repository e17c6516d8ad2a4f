/*
Package container implements inline formatting contexts.

A Container stacks line boxes vertically. Inline-level boxes are added in
document order; whenever a box does not fit, or has to be continued after a
line break, the current line is closed and a new one is opened below it.
Inline boxes still open at the end of a line are carried over to the new line
by the line box.

	c := container.New(parent, root, 300)
	c.AddInlineElement(span)
	c.AddInlineElement(text)
	c.CloseInlineElement(span)
	c.Close()

Floats are not managed here. Clients which have to flow lines around floats
provide the horizontal space of every line with WithLineSpace.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package container

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/linebox"
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inlineflow.container'
func tracer() tracing.Trace {
	return tracing.Select("inlineflow.container")
}

// ErrClosed is returned when content is added to a closed container.
var ErrClosed = errors.New("inline container is closed")

// LineSpace returns the horizontal offset and the width available to a line
// starting at vertical position y, relative to the container.
type LineSpace func(y float64) (x, width float64)

// Option configures a container.
type Option func(*Container)

// WithPosition places the container relative to its offset parent.
func WithPosition(pos geom.Point) Option {
	return func(c *Container) {
		c.position = pos
	}
}

// WithTextAlign sets the horizontal alignment of lines.
func WithTextAlign(align style.TextAlign) Option {
	return func(c *Container) {
		c.align = align
	}
}

// WithWrap switches wrapping of lines on or off. Without wrapping, lines grow
// to fit their content. Wrapping is on by default.
func WithWrap(wrap bool) Option {
	return func(c *Container) {
		c.wrap = wrap
	}
}

// WithArena makes the container allocate line boxes from pool.
func WithArena(pool *linebox.Pool) Option {
	return func(c *Container) {
		c.pool = pool
	}
}

// WithLineSpace lets space determine the horizontal extent of every line.
func WithLineSpace(space LineSpace) Option {
	return func(c *Container) {
		c.space = space
	}
}

// Container is an inline formatting context: a sequence of line boxes.
type Container struct {
	offsetParent *element.Element
	root         linebox.Metrics
	width        float64
	position     geom.Point
	align        style.TextAlign
	wrap         bool
	pool         *linebox.Pool
	space        LineSpace
	lines        []*linebox.LineBox // closed lines, followed by the open line
	cursor       float64            // top of the open line, relative to the container
	closed       bool
}

// New creates an inline formatting context of a given width. root is the
// strut every line is sized from, usually a boxes.RootBox. offsetParent
// receives positions of all boxes placed in the container.
func New(offsetParent *element.Element, root linebox.Metrics, width float64, opts ...Option) *Container {
	c := &Container{
		offsetParent: offsetParent,
		root:         root,
		width:        width,
		wrap:         true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.pool == nil {
		c.pool = linebox.NewPool()
	}
	c.pushLine(linebox.New(c.pool))
	return c
}

func (c *Container) openLine() *linebox.LineBox {
	return c.lines[len(c.lines)-1]
}

// pushLine positions lb at the vertical cursor and makes it the open line.
func (c *Container) pushLine(lb *linebox.LineBox) {
	c.lines = append(c.lines, lb)
	c.placeOpenLine()
}

func (c *Container) placeOpenLine() {
	x, w := 0.0, c.width
	if c.space != nil {
		x, w = c.space(c.cursor)
	}
	c.openLine().SetLineBox(c.position.Add(geom.Point{X: x, Y: c.cursor}), w)
}

// AddInlineElement places box in the container, starting on the open line.
// Content which does not fit is continued on new lines. Inline boxes stay
// open until CloseInlineElement is called for them.
func (c *Container) AddInlineElement(box linebox.InlineLevelBox) error {
	if c.closed {
		return ErrClosed
	}
	var overflow linebox.OverflowHandle
	for {
		line := c.openLine()
		mode := linebox.Wrap
		if !c.wrap {
			mode = linebox.Nowrap
		} else if line.HasContent() || c.narrowed(line) {
			mode = linebox.WrapAny
		}
		newLine, next := line.AddBox(box, mode, line.LineWidth(), overflow)
		if !newLine {
			return nil
		}
		overflow = next
		if !line.HasContent() {
			// refused by a narrowed line: try again further down
			c.cursor += c.strutHeight()
			c.placeOpenLine()
			tracer().Debugf("container: line narrowed to %.2f, moved to %.2f", line.LineWidth(), c.cursor)
			continue
		}
		if err := c.closeLine(); err != nil {
			return err
		}
	}
}

// narrowed is true if the open line is shorter than the container's width
// and the line below it would be wider.
func (c *Container) narrowed(line *linebox.LineBox) bool {
	if c.space == nil || line.LineWidth() >= c.width {
		return false
	}
	_, w := c.space(c.cursor + c.strutHeight())
	return w > line.LineWidth()
}

func (c *Container) strutHeight() float64 {
	return c.root.HeightAboveBaseline() + c.root.DepthBelowBaseline()
}

// CloseInlineElement closes the inline box opened last.
func (c *Container) CloseInlineElement(box linebox.InlineLevelBox) error {
	if c.closed {
		return ErrClosed
	}
	return c.openLine().CloseInlineBox(box)
}

// AddBreak ends the open line. An empty line is not closed; the next line
// starts lineHeight below it instead.
func (c *Container) AddBreak(lineHeight float64) error {
	if c.closed {
		return ErrClosed
	}
	if c.openLine().IsEmpty() {
		c.cursor += lineHeight
		c.placeOpenLine()
		tracer().Debugf("container: break on empty line, advance %.2f", lineHeight)
		return nil
	}
	return c.closeLine()
}

// closeLine closes the open line and opens the next one, which is either the
// continuation of the closed line or a fresh line.
func (c *Container) closeLine() error {
	line := c.openLine()
	next, height, err := line.Close(c.root, c.offsetParent, line.LinePosition(), c.align)
	c.cursor += height
	if next == nil {
		next = linebox.New(c.pool)
	}
	c.pushLine(next)
	if err != nil {
		return fmt.Errorf("inline container: %w", err)
	}
	tracer().Debugf("container: line #%d closed, height %.2f", len(c.lines)-1, height)
	return nil
}

// Close closes the open line, if it holds any fragment, and closes the
// container. If inline boxes are still open, the innermost of them is
// returned; clients use it to resume inline content after a block-level
// interruption.
func (c *Container) Close() (linebox.InlineLevelBox, error) {
	if c.closed {
		return nil, ErrClosed
	}
	var open linebox.InlineLevelBox
	line := c.openLine()
	c.lines = c.lines[:len(c.lines)-1]
	if !line.IsEmpty() {
		next, height, err := line.Close(c.root, c.offsetParent, line.LinePosition(), c.align)
		if err != nil {
			return nil, fmt.Errorf("inline container: %w", err)
		}
		c.lines = append(c.lines, line)
		c.cursor += height
		if next != nil {
			open = next.OpenInlineBox()
			next.Release()
		}
	} else {
		line.Release()
	}
	c.closed = true
	tracer().Infof("container: closed with %d lines, height %.2f", len(c.lines), c.cursor)
	return open, nil
}

// Lines returns the closed lines.
func (c *Container) Lines() []*linebox.LineBox {
	if c.closed {
		return c.lines
	}
	return c.lines[:len(c.lines)-1]
}

// LineCount returns the number of closed lines.
func (c *Container) LineCount() int {
	return len(c.Lines())
}

// OpenInlineBox returns the innermost inline box open on the open line, or
// nil.
func (c *Container) OpenInlineBox() linebox.InlineLevelBox {
	if c.closed {
		return nil
	}
	return c.openLine().OpenInlineBox()
}

// ShrinkToFitWidth is the width of the widest line's content.
func (c *Container) ShrinkToFitWidth() float64 {
	var w float64
	for _, line := range c.lines {
		w = max(w, line.BoxCursor())
	}
	return w
}

// Height is the height of all closed lines.
func (c *Container) Height() float64 {
	return c.cursor
}

// HeightIncludingOpenLine is the height of the container if the open line
// were closed now. The open line is estimated by the height of the strut.
func (c *Container) HeightIncludingOpenLine() float64 {
	if c.closed || c.openLine().IsEmpty() {
		return c.cursor
	}
	return c.cursor + c.strutHeight()
}

// BaselineOfLastLine returns the baseline of the last closed line, relative
// to the top of the container. It returns false if no line has been closed.
func (c *Container) BaselineOfLastLine() (float64, bool) {
	lines := c.Lines()
	if len(lines) == 0 {
		return 0, false
	}
	last := lines[len(lines)-1]
	return last.LinePosition().Y - c.position.Y + last.Baseline(), true
}

// DumpTree writes a diagnostic listing of the container and its lines.
func (c *Container) DumpTree(depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("InlineContainer\n")
	for _, line := range c.lines {
		sb.WriteString(line.DumpTree(depth + 1))
	}
	return sb.String()
}

// Release returns all line boxes to the arena. The container must not be used
// afterwards.
func (c *Container) Release() {
	for _, line := range c.lines {
		line.Release()
	}
	c.lines = nil
	c.closed = true
}
