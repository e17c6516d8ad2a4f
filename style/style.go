/*
Package style holds the computed-style values inline layout depends on.

Cascading and computing of styles is out of scope; clients hand in values
which are already resolved to layout units.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import "strings"

// VerticalAlign is the CSS 'vertical-align' keyword of an inline-level box.
type VerticalAlign uint8

const (
	AlignBaseline VerticalAlign = iota
	AlignLength                 // offset given by Style.VerticalAlignLength
	AlignSub
	AlignSuper
	AlignTextTop
	AlignTextBottom
	AlignMiddle
	AlignTop    // line-relative
	AlignBottom // line-relative
)

var verticalAlignNames = []string{
	"baseline", "length", "sub", "super", "text-top", "text-bottom", "middle", "top", "bottom",
}

func (va VerticalAlign) String() string {
	if int(va) < len(verticalAlignNames) {
		return verticalAlignNames[va]
	}
	return "unknown"
}

// IsLineRelative is true for 'top' and 'bottom', which align a box relative to
// the line box instead of to its parent's baseline.
func (va VerticalAlign) IsLineRelative() bool {
	return va == AlignTop || va == AlignBottom
}

// TextAlign is the CSS 'text-align' keyword of an inline formatting context.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

func (ta TextAlign) String() string {
	switch ta {
	case TextAlignLeft:
		return "left"
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	case TextAlignJustify:
		return "justify"
	}
	return "unknown"
}

// ParseTextAlign maps a keyword to a TextAlign value. Unknown keywords yield
// left alignment and false.
func ParseTextAlign(s string) (TextAlign, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return TextAlignLeft, true
	case "right", "end":
		return TextAlignRight, true
	case "center":
		return TextAlignCenter, true
	case "justify":
		return TextAlignJustify, true
	}
	return TextAlignLeft, false
}

// WhiteSpace is the CSS 'white-space' keyword.
type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
	WhiteSpacePre
	WhiteSpacePreWrap
)

func (ws WhiteSpace) String() string {
	switch ws {
	case WhiteSpaceNormal:
		return "normal"
	case WhiteSpaceNowrap:
		return "nowrap"
	case WhiteSpacePre:
		return "pre"
	case WhiteSpacePreWrap:
		return "pre-wrap"
	}
	return "unknown"
}

// Collapses is true if runs of white space collapse to a single space.
func (ws WhiteSpace) Collapses() bool {
	return ws == WhiteSpaceNormal || ws == WhiteSpaceNowrap
}

// Wraps is true if lines may wrap at soft break opportunities.
func (ws WhiteSpace) Wraps() bool {
	return ws == WhiteSpaceNormal || ws == WhiteSpacePreWrap
}

// Edges holds one value per side of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns Edges with all sides set to v.
func Uniform(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// FontMetrics are the metrics of the primary font of an element, scaled to
// layout units. Descent is a positive distance below the baseline.
type FontMetrics struct {
	Size    float64
	Ascent  float64
	Descent float64
	XHeight float64
}

// Height is ascent plus descent.
func (fm FontMetrics) Height() float64 {
	return fm.Ascent + fm.Descent
}

// Style is the set of computed values of an element taking part in inline layout.
type Style struct {
	Font                FontMetrics
	LineHeight          float64 // 0 means 'normal', i.e. the font height
	VerticalAlign       VerticalAlign
	VerticalAlignLength float64 // used with AlignLength, positive values raise the box
	Margin              Edges
	Border              Edges
	Padding             Edges
	TextAlign           TextAlign
	WhiteSpace          WhiteSpace
}

// ResolvedLineHeight returns the line height, substituting the font height
// for 'normal'.
func (s Style) ResolvedLineHeight() float64 {
	if s.LineHeight > 0 {
		return s.LineHeight
	}
	return s.Font.Height()
}

// SpacingLeft is the sum of margin, border and padding on the left side.
func (s Style) SpacingLeft() float64 {
	return s.Margin.Left + s.Border.Left + s.Padding.Left
}

// SpacingRight is the sum of margin, border and padding on the right side.
func (s Style) SpacingRight() float64 {
	return s.Margin.Right + s.Border.Right + s.Padding.Right
}
