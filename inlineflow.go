/*
Package inlineflow is for breaking inline content of a block into lines.

We stick to the terms of the CSS inline formatting model:

▪︎ An "inline-level box" is anything taking part in inline layout: inline
boxes like <span>, runs of text, and atomic boxes like images.

▪︎ A "line box" is one line of an inline formatting context. Inline-level
boxes are placed on it as "fragments"; an inline box broken across lines
contributes one fragment per line.

▪︎ An "inline container" stacks line boxes vertically and decides when a line
is full.

Sub-packages implement these (linebox, boxes, container), with textgen
generating lines of text. Package inlineflow itself offers a Paragraph, which
is a convenient way to assemble inline content and lay it out.

# Status

Bidi reordering, hyphenation and vertical writing modes are not supported.
Floats have to be managed by clients, which may restrict the space of every
line.

# Links

CSS inline formatting contexts:
https://www.w3.org/TR/CSS2/visuren.html#inline-formatting

CSS line height and vertical alignment:
https://www.w3.org/TR/CSS2/visudet.html#line-height

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package inlineflow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inlineflow'
func tracer() tracing.Trace {
	return tracing.Select("inlineflow")
}
