/*
Package element implements the receiving end of inline layout: elements which
get told where their boxes and text lines ended up.

An element collects

▪︎ its offset relative to its offset parent (set by the principal fragment),

▪︎ the border-box of every fragment it was split into, and

▪︎ for text, the lines of text together with their offset relative to the
element's own offset.

Painting is out of scope; clients read the recorded geometry.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package element

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlineflow/geom"
)

// Element is a node of a document which takes part in inline layout.
type Element struct {
	Name         string
	Offset       geom.Point // top-left of the principal box, relative to OffsetParent
	OffsetParent *Element
	Boxes        []Box  // one per fragment, relative to Offset
	Lines        []Line // text elements only
}

// Box is the border-box of one fragment of an element.
type Box struct {
	Rect       geom.Rect
	SplitLeft  bool
	SplitRight bool
}

// Line is one line of laid-out text.
type Line struct {
	Offset geom.Point // baseline origin, relative to the element's offset
	Text   string
}

// New creates an element with a given name (used for diagnostics only).
func New(name string) *Element {
	return &Element{Name: name}
}

// SetOffset anchors the element relative to its offset parent.
func (e *Element) SetOffset(offset geom.Point, parent *Element) {
	e.Offset = offset
	e.OffsetParent = parent
}

// AbsoluteOffset returns the element's offset in the coordinate system of the
// root of its offset-parent chain.
func (e *Element) AbsoluteOffset() geom.Point {
	p := e.Offset
	for parent := e.OffsetParent; parent != nil; parent = parent.OffsetParent {
		p = p.Add(parent.Offset)
	}
	return p
}

// ClearBoxes drops all fragment boxes.
func (e *Element) ClearBoxes() {
	e.Boxes = e.Boxes[:0]
}

// AddBox records the border-box of a fragment. The rectangle is relative to
// the element's offset.
func (e *Element) AddBox(b Box) {
	e.Boxes = append(e.Boxes, b)
}

// ClearLines drops all lines of text.
func (e *Element) ClearLines() {
	e.Lines = e.Lines[:0]
}

// AddLine appends a line of text.
func (e *Element) AddLine(offset geom.Point, text string) {
	e.Lines = append(e.Lines, Line{Offset: offset, Text: text})
}

// Text returns all text lines joined by newlines.
func (e *Element) Text() string {
	var sb strings.Builder
	for i, l := range e.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text)
	}
	return sb.String()
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<%s @%s boxes=%d lines=%d>", e.Name, e.Offset, len(e.Boxes), len(e.Lines))
}
