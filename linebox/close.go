package linebox

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/style"
)

// Close finishes the line. Inline boxes still open are split off into a
// continuation line, which is returned (or nil). Close sizes the line
// vertically, using root as the strut of the inline formatting context, aligns
// the content horizontally and submits every fragment's final box to the
// inline-level box which produced it.
//
// Closing a line twice is an error and leaves the line untouched.
func (lb *LineBox) Close(root Metrics, offsetParent *element.Element, linePosition geom.Point,
	align style.TextAlign) (*LineBox, float64, error) {
	//
	if lb.closed {
		return nil, 0, report(ErrLineClosed, "close")
	}
	next := lb.splitLine()
	assert(len(lb.open) == 0, "line box: open fragments after split")
	lb.linePosition = linePosition
	var err error
	if lb.height, err = lb.alignVertically(root); err != nil {
		tracer().Errorf("line box: %v", err)
	}
	lb.alignHorizontally(align)
	for i := range lb.fragments {
		f := &lb.fragments[i]
		if f.isOpenWithoutChildren() { // moved to the next line
			continue
		}
		assert(f.width >= 0, "line box: submitting fragment without width")
		f.box.Submit(FragmentBox{
			OffsetParent: offsetParent,
			Handle:       f.handle,
			Position:     linePosition.Add(f.position).Add(geom.Point{X: lb.hAlignOffset}),
			LayoutWidth:  f.width,
			SplitLeft:    f.splitLeft,
			SplitRight:   f.splitRight,
			Principal:    f.principal,
			Payload:      f.payload,
		})
	}
	lb.closed = true
	tracer().Infof("line box: closed line with %d fragments, height %.2f, baseline %.2f",
		len(lb.fragments), lb.height, lb.baseline)
	return next, lb.height, err
}

// alignVertically sizes the line and sets the vertical position of every
// fragment to its baseline. It returns the height of the line.
//
// Every aligned subtree, including the one of the line's implicit root, is
// sized independently. The implicit root's subtree establishes the line's
// baseline; line-relative subtrees may then push out the line's descent
// ('top') or its ascent ('bottom').
func (lb *LineBox) alignVertically(root Metrics) (float64, error) {
	var err error
	maxAscent, maxDescent := root.HeightAboveBaseline(), root.DepthBelowBaseline()
	lb.alignSubtree(-1, len(lb.fragments), &maxAscent, &maxDescent)
	for i := range lb.fragments {
		f := &lb.fragments[i]
		if !lb.isAlignedSubtreeRoot(f) {
			continue
		}
		f.maxAscent, f.maxDescent = f.box.HeightAboveBaseline(), f.box.DepthBelowBaseline()
		if f.kind == InlineBoxFragment {
			lb.alignSubtree(i, f.childrenEnd, &f.maxAscent, &f.maxDescent)
		}
		switch f.valign {
		case style.AlignTop:
			maxDescent = max(maxDescent, f.maxAscent+f.maxDescent-maxAscent)
		case style.AlignBottom:
			maxAscent = max(maxAscent, f.maxAscent+f.maxDescent-maxDescent)
		default:
			err = report(ErrUnexpectedAlign, "fragment #%d has vertical-align %s", i, f.valign)
		}
	}
	height := maxAscent + maxDescent
	lb.baseline = maxAscent
	for i := range lb.fragments {
		f := &lb.fragments[i]
		switch f.valign {
		case style.AlignTop:
			f.position.Y = f.maxAscent
		case style.AlignBottom:
			f.position.Y = height - f.maxDescent
		default:
			subtreeBaseline := maxAscent
			if f.subtreeRoot >= 0 {
				subtreeBaseline = lb.fragments[f.subtreeRoot].position.Y
			}
			f.position.Y = subtreeBaseline + f.baselineOffset
		}
	}
	return height, err
}

// alignSubtree positions the fragments belonging to the aligned subtree of
// root relative to the root's baseline, and grows the subtree's ascent and
// descent to enclose them. Descendants of root are found in (root, end).
// Text runs do not contribute, their extent is covered by their parent.
func (lb *LineBox) alignSubtree(root, end int, maxAscent, maxDescent *float64) {
	for i := root + 1; i < end; i++ {
		f := &lb.fragments[i]
		if f.subtreeRoot != root {
			continue
		}
		var parentBaseline float64
		if f.parent >= 0 {
			parentBaseline = lb.fragments[f.parent].baselineOffset
		}
		f.baselineOffset = parentBaseline + f.box.VerticalOffsetFromParent()
		if f.kind != TextRun {
			*maxAscent = max(*maxAscent, f.box.HeightAboveBaseline()-f.baselineOffset)
			*maxDescent = max(*maxDescent, f.box.DepthBelowBaseline()+f.baselineOffset)
		}
	}
}

// alignHorizontally distributes the space left over on the line.
// Justification is done while generating text and leaves nothing to do here.
func (lb *LineBox) alignHorizontally(align style.TextAlign) {
	lb.hAlignOffset = 0
	if lb.boxCursor >= lb.lineWidth {
		return
	}
	switch align {
	case style.TextAlignCenter:
		lb.hAlignOffset = (lb.lineWidth - lb.boxCursor) * 0.5
	case style.TextAlignRight:
		lb.hAlignOffset = lb.lineWidth - lb.boxCursor
	}
}

// DumpTree writes a diagnostic listing of the line.
func (lb *LineBox) DumpTree(depth int) string {
	n := len(lb.fragments)
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return fmt.Sprintf("%sLineBox (%d fragment%s)\n", strings.Repeat("  ", depth), n, plural)
}
