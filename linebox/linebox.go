package linebox

import (
	"math"

	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/internal/arena"
)

// Pool allocates line boxes for one layout pass.
type Pool = arena.Arena[LineBox]

// NewPool creates a pool which resets line boxes on release.
func NewPool() *Pool {
	return arena.New(func(lb *LineBox) { lb.Reset() })
}

// LineBox is one line of an inline formatting context.
type LineBox struct {
	fragments []fragment
	open      []int // indices of open inline box fragments, outermost first

	boxCursor       float64 // right edge of placed content, relative to line start
	openSpacingLeft float64 // left spacing of inline boxes opened since last content
	contentCount    int     // fixed-size fragments placed on this line

	linePosition geom.Point
	lineWidth    float64
	hAlignOffset float64
	baseline     float64
	height       float64
	closed       bool

	pool *Pool
}

// New allocates an empty line box from pool. pool may be nil.
func New(pool *Pool) *LineBox {
	lb := pool.Allocate()
	lb.pool = pool
	return lb
}

// Release returns the line box to the pool it has been allocated from.
func (lb *LineBox) Release() {
	if lb == nil {
		return
	}
	lb.pool.Release(lb)
}

// Reset clears the line box for re-use, keeping allocated memory.
func (lb *LineBox) Reset() {
	clear(lb.fragments)
	fragments, open := lb.fragments[:0], lb.open[:0]
	*lb = LineBox{fragments: fragments, open: open}
}

// SetLineBox places the line relative to its inline container.
func (lb *LineBox) SetLineBox(position geom.Point, width float64) {
	lb.linePosition = position
	lb.lineWidth = width
}

// AddBox asks box to produce a fragment for the remaining width of the line.
// overflow is the point where the box resumes, if it has been partially
// placed before. AddBox returns true if the box (or its remainder) has to
// continue on a new line, together with the overflow handle to resume with.
func (lb *LineBox) AddBox(box InlineLevelBox, mode LayoutMode, lineWidth float64,
	overflow OverflowHandle) (bool, OverflowHandle) {
	//
	assert(!lb.closed, "line box: AddBox called on closed line")
	firstBox := !lb.HasContent()
	var openSpacingRight float64
	for _, inx := range lb.open {
		openSpacingRight += lb.fragments[inx].box.SpacingRight()
	}
	placement := lb.boxCursor + lb.openSpacingLeft
	available := math.Inf(1)
	if mode != Nowrap {
		available = math.Ceil(lineWidth - placement)
		if available < 0 {
			if mode == WrapAny {
				tracer().Debugf("line box: no space left at %.2f, new line", placement)
				return true, overflow
			}
			available = 0
		}
	}
	result := box.CreateFragment(mode, available, openSpacingRight, firstBox, overflow)
	if result.Type == Invalid {
		if mode != WrapAny {
			// degrade by dropping the box; retrying on a new line would never end
			report(ErrInvalidFragment, "box refused placement in mode %s", mode)
			return false, 0
		}
		tracer().Debugf("line box: box refused %.2f of width, new line", available)
		return true, overflow
	}
	inx := len(lb.fragments)
	lb.fragments = append(lb.fragments, fragment{
		box:         box,
		kind:        result.Type,
		handle:      result.Handle,
		payload:     result.Payload,
		principal:   result.Principal,
		position:    geom.Point{X: placement},
		width:       result.LayoutWidth,
		parent:      lb.openParent(),
		valign:      box.VerticalAlign(),
		subtreeRoot: -1,
	})
	lb.fragments[inx].subtreeRoot = lb.alignedSubtreeRoot(inx)
	continueOnNewLine := false
	switch result.Type {
	case InlineBoxFragment:
		assert(result.LayoutWidth < 0, "line box: inline box fragment must not be sized when opened")
		lb.open = append(lb.open, inx)
		lb.openSpacingLeft += box.SpacingLeft()
	case TextRun, SizedBox:
		assert(result.LayoutWidth >= 0, "line box: fixed-size fragment must have a width")
		lb.boxCursor = placement + result.LayoutWidth
		lb.openSpacingLeft = 0
		lb.contentCount++
		if result.Overflow != 0 {
			continueOnNewLine = true
		}
		for _, open := range lb.open {
			lb.fragments[open].hasContent = true
		}
	}
	tracer().Debugf("line box: placed %s #%d at %.2f, width %.2f", result.Type, inx, placement, result.LayoutWidth)
	return continueOnNewLine, result.Overflow
}

// CloseInlineBox closes the innermost open inline box, which must have been
// produced by box. A mismatch is reported and the request is ignored.
func (lb *LineBox) CloseInlineBox(box InlineLevelBox) error {
	if lb.closed {
		return report(ErrLineClosed, "cannot close inline box")
	}
	if len(lb.open) == 0 || lb.fragments[lb.open[len(lb.open)-1]].box != box {
		return report(ErrOpenCloseMismatch, "closing box is not the innermost open inline box")
	}
	lb.boxCursor += lb.openSpacingLeft
	lb.openSpacingLeft = 0
	top := lb.open[len(lb.open)-1]
	f := lb.closeFragment(top, lb.boxCursor)
	lb.boxCursor += f.box.SpacingRight()
	lb.open = lb.open[:len(lb.open)-1]
	return nil
}

// closeFragment sizes an open inline box fragment, given the position of its
// right inner edge.
func (lb *LineBox) closeFragment(inx int, rightInnerEdge float64) *fragment {
	f := &lb.fragments[inx]
	assert(f.kind == InlineBoxFragment, "line box: only inline box fragments can be closed")
	f.childrenEnd = len(lb.fragments)
	left := f.box.SpacingLeft()
	if f.splitLeft {
		left = 0
	}
	f.width = max(rightInnerEdge-f.position.X-left, 0)
	return f
}

// openParent is the innermost open fragment, or -1.
func (lb *LineBox) openParent() int {
	if len(lb.open) == 0 {
		return -1
	}
	return lb.open[len(lb.open)-1]
}

// isAlignedSubtreeRoot is true for fragments aligned relative to the line box.
func (lb *LineBox) isAlignedSubtreeRoot(f *fragment) bool {
	return f.valign.IsLineRelative()
}

// alignedSubtreeRoot determines the aligned subtree a fragment belongs to:
// either itself, or the one of its parent.
func (lb *LineBox) alignedSubtreeRoot(inx int) int {
	f := &lb.fragments[inx]
	if lb.isAlignedSubtreeRoot(f) {
		return inx
	}
	if f.parent < 0 {
		return -1
	}
	return lb.fragments[f.parent].subtreeRoot
}

// OpenInlineBox returns the box of the innermost open inline box fragment, or
// nil.
func (lb *LineBox) OpenInlineBox() InlineLevelBox {
	if len(lb.open) == 0 {
		return nil
	}
	return lb.fragments[lb.open[len(lb.open)-1]].box
}

// HasContent is true if a text run or sized box has been placed on the line.
// Inline boxes alone, opened or carried over, do not count as content.
func (lb *LineBox) HasContent() bool {
	return lb.contentCount > 0
}

// IsEmpty is true if the line does not hold any fragment.
func (lb *LineBox) IsEmpty() bool {
	return len(lb.fragments) == 0
}

// IsClosed is true after Close.
func (lb *LineBox) IsClosed() bool {
	return lb.closed
}

// FragmentCount returns the number of fragments on the line.
func (lb *LineBox) FragmentCount() int {
	return len(lb.fragments)
}

// OpenCount returns the number of open inline box fragments.
func (lb *LineBox) OpenCount() int {
	return len(lb.open)
}

// LinePosition is the position of the line relative to its container.
func (lb *LineBox) LinePosition() geom.Point {
	return lb.linePosition
}

// LineWidth is the width available to the line.
func (lb *LineBox) LineWidth() float64 {
	return lb.lineWidth
}

// BoxCursor is the right edge of the content placed so far.
func (lb *LineBox) BoxCursor() float64 {
	return lb.boxCursor
}

// ExtentRight is the right edge of the content after horizontal alignment.
// Valid only for closed lines.
func (lb *LineBox) ExtentRight() float64 {
	assert(lb.closed, "line box: extent of open line requested")
	return lb.boxCursor + lb.hAlignOffset
}

// Baseline is the distance of the baseline from the top of the line. Valid
// only for closed lines.
func (lb *LineBox) Baseline() float64 {
	assert(lb.closed, "line box: baseline of open line requested")
	return lb.baseline
}

// Height is the height of the line. Valid only for closed lines.
func (lb *LineBox) Height() float64 {
	assert(lb.closed, "line box: height of open line requested")
	return lb.height
}
