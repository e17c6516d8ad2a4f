package linebox

// splitLine carries inline boxes which are still open over to a new line.
// It returns nil if no inline box is open.
//
// Open fragments which already hold content are split: the fragment on this
// line is closed at the current cursor and marked as split on its right side,
// its clone on the new line is marked as split on its left side. Fragments
// without content are moved to the new line as a whole, keeping their left
// spacing; the originals stay open and will not be submitted.
func (lb *LineBox) splitLine() *LineBox {
	if len(lb.open) == 0 {
		return nil
	}
	next := New(lb.pool)
	for _, inx := range lb.open {
		clone := lb.fragments[inx]
		newInx := len(next.fragments)
		clone.position.X = next.boxCursor
		clone.parent = newInx - 1
		clone.childrenEnd = 0
		if clone.hasContent {
			clone.splitLeft = true
			clone.hasContent = false
			clone.principal = false
		} else if !clone.splitLeft {
			next.openSpacingLeft += clone.box.SpacingLeft()
		}
		next.fragments = append(next.fragments, clone)
		next.fragments[newInx].subtreeRoot = next.alignedSubtreeRoot(newInx)
	}
	for i := len(lb.open) - 1; i >= 0; i-- {
		inx := lb.open[i]
		if lb.fragments[inx].hasContent {
			f := lb.closeFragment(inx, lb.boxCursor)
			f.splitRight = true
		}
	}
	for i := range lb.open {
		next.open = append(next.open, i)
	}
	tracer().Debugf("line box: split off %d open inline boxes", len(lb.open))
	lb.open = lb.open[:0]
	if debugMode {
		next.verifyOpenChain()
	}
	return next
}

// verifyOpenChain checks the integrity of a line consisting of a chain of open
// inline boxes only, as produced by splitLine.
func (lb *LineBox) verifyOpenChain() {
	assert(len(lb.open) == len(lb.fragments), "line box: split line must consist of open fragments")
	for i := range lb.fragments {
		f := &lb.fragments[i]
		assert(f.kind == InlineBoxFragment, "line box: split line must hold inline boxes only")
		assert(f.parent < i, "line box: parent must precede child")
		assert(f.parent == -1 || lb.fragments[f.parent].kind == InlineBoxFragment,
			"line box: parent must be an inline box")
		assert(f.subtreeRoot == -1 || lb.isAlignedSubtreeRoot(&lb.fragments[f.subtreeRoot]),
			"line box: aligned subtree root must be line-relative")
		assert(f.childrenEnd == 0, "line box: split fragments must be open")
	}
}
