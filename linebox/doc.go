/*
Package linebox breaks inline-level content into line boxes.

A line box collects fragments produced by inline-level boxes. Fragments are
kept in a flat slice in the order they are opened; the nesting of inline
boxes is expressed by parent indices into that slice, never by pointers.
This keeps an open chain of inline boxes trivially relocatable when it has to
be carried over to the next line.

The life of a line box is

	open → AddBox / CloseInlineBox … → Close

Close splits off a continuation line for inline boxes which are still open,
aligns all fragments vertically and horizontally, and submits the final
geometry to the boxes which produced the fragments. A closed line box is
immutable.

# Vertical alignment

Fragments with vertical-align 'top' or 'bottom' are aligned relative to the
line box; each of them roots an aligned subtree. All other fragments are
aligned relative to the baseline of their parent and belong to the aligned
subtree of their nearest line-relative ancestor, or to the line's implicit
root. Every aligned subtree is sized by a single linear scan over the range of
its descendants, so nesting depth does not lead to recursion.

# Debugging

Building with tag 'inlinedebug' turns reported invariant violations into
panics.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package linebox

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inlineflow.linebox'
func tracer() tracing.Trace {
	return tracing.Select("inlineflow.linebox")
}

var (
	// ErrLineClosed is reported when a line box is modified or closed after it
	// has already been closed.
	ErrLineClosed = errors.New("line box is closed")
	// ErrOpenCloseMismatch is reported when an inline box is closed which is
	// not the innermost open inline box of the line.
	ErrOpenCloseMismatch = errors.New("inline box open/close mismatch")
	// ErrUnexpectedAlign is reported when an aligned subtree root carries a
	// vertical-align other than 'top' or 'bottom'.
	ErrUnexpectedAlign = errors.New("unexpected vertical-align of aligned subtree root")
	// ErrInvalidFragment is reported when a box refuses to produce a fragment
	// in a layout mode where this is not permitted.
	ErrInvalidFragment = errors.New("invalid fragment outside of wrap-any mode")
)

// errLayout produces errors for violated invariants of inline layout.
func errLayout(err error, format string, args ...any) error {
	return fmt.Errorf("inline layout: %s: %w", fmt.Sprintf(format, args...), err)
}

// report traces a violated invariant and returns it as an error. In debug
// builds it panics instead.
func report(err error, format string, args ...any) error {
	err = errLayout(err, format, args...)
	if debugMode {
		panic(err)
	}
	tracer().Errorf("%v", err)
	return err
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
