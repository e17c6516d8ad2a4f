/*
Package textgen generates lines of text for inline layout.

A Generator holds the text of one text element. Asked for a line starting at
a given offset, it returns as much text as fits into a given width, breaking
at line break opportunities found by the Unicode line breaking algorithm
(UAX #14). Widths are determined by a Measurer, either from an
x/image font.Face or from HarfBuzz shaping with go-text.

Offsets are rune offsets into the normalized text (NFC, with white space
collapsed unless white space is preserved).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package textgen

import (
	"sort"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'inlineflow.textgen'
func tracer() tracing.Trace {
	return tracing.Select("inlineflow.textgen")
}

// Measurer measures the advance width of a piece of text.
type Measurer interface {
	Measure(s string) float64
}

// Request asks for a line of text.
type Request struct {
	Begin         int     // rune offset to start at
	MaxWidth      float64 // available width
	RightSpacing  float64 // reserved at the right if the text ends on this line
	FirstBox      bool    // first content of the line: leading white space is dropped
	DecodeEscapes bool    // decode character references like '&amp;'
	AllowEmpty    bool    // permit returning nothing if not even one word fits
}

// Line is a generated line of text.
type Line struct {
	Text     string
	Length   int // runes consumed from Begin, including dropped white space
	Width    float64
	Overflow bool // text remains for the next line
	Break    bool // the line ends in a mandatory break
}

// Generator breaks the text of one text element into lines.
type Generator struct {
	runes    []rune
	segments []segment
	measurer Measurer
	collapse bool
}

// segment is text between two line break opportunities, including trailing
// white space.
type segment struct {
	start, end int
	mandatory  bool
}

// New prepares text for line generation. White space is handled according to
// ws: collapsing modes replace every run of white space by a single space.
func New(text string, m Measurer, ws style.WhiteSpace) *Generator {
	text = norm.NFC.String(text)
	if ws.Collapses() {
		text = collapseWhiteSpace(text)
	}
	g := &Generator{
		runes:    []rune(text),
		measurer: m,
		collapse: ws.Collapses(),
	}
	g.findBreaks()
	tracer().Debugf("text generator: %d runes, %d segments", len(g.runes), len(g.segments))
	return g
}

// Len is the length of the normalized text in runes.
func (g *Generator) Len() int {
	return len(g.runes)
}

// String returns the normalized text.
func (g *Generator) String() string {
	return string(g.runes)
}

func (g *Generator) findBreaks() {
	if len(g.runes) == 0 {
		return
	}
	var seg segmenter.Segmenter
	seg.Init(g.runes)
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		g.segments = append(g.segments, segment{
			start:     line.Offset,
			end:       line.Offset + len(line.Text),
			mandatory: line.IsMandatoryBreak,
		})
	}
}

// segmentAt returns the index of the segment containing offset pos.
func (g *Generator) segmentAt(pos int) int {
	return sort.Search(len(g.segments), func(i int) bool {
		return g.segments[i].end > pos
	})
}

// GenerateLine returns the longest run of segments starting at req.Begin
// which fits into req.MaxWidth. If not even the first segment fits, an empty
// line is returned if req.AllowEmpty is set; otherwise the first segment is
// placed anyway. White space at the end of an overflowing line hangs and is
// neither part of the text nor of the width.
func (g *Generator) GenerateLine(req Request) Line {
	n := len(g.runes)
	begin := min(max(req.Begin, 0), n)
	start := begin
	if req.FirstBox && g.collapse {
		for start < n && g.runes[start] == ' ' {
			start++
		}
	}
	end, overflow, brk := start, false, false
	for i := g.segmentAt(start); i < len(g.segments); i++ {
		segEnd := g.segments[i].end
		w := g.measurer.Measure(g.render(start, segEnd, req.DecodeEscapes, segEnd < n))
		if segEnd == n {
			w += req.RightSpacing
		}
		if w > req.MaxWidth {
			if end == start && !req.AllowEmpty {
				end = segEnd // nothing placed yet: force the segment
			}
			overflow = end < n
			break
		}
		end = segEnd
		if g.segments[i].mandatory && end < n {
			overflow, brk = true, true
			break
		}
	}
	text := g.render(start, end, req.DecodeEscapes, overflow)
	line := Line{
		Text:     text,
		Length:   end - begin,
		Width:    g.measurer.Measure(text),
		Overflow: overflow,
		Break:    brk,
	}
	tracer().Debugf("text generator: line [%d,%d) %q, width %.2f of %.2f, overflow=%v",
		begin, end, text, line.Width, req.MaxWidth, overflow)
	return line
}

// render converts runes [from,to) to a string, optionally dropping trailing
// white space and decoding character references.
func (g *Generator) render(from, to int, decode, trimTrailing bool) string {
	if from >= to {
		return ""
	}
	s := string(g.runes[from:to])
	if trimTrailing {
		if g.collapse {
			s = strings.TrimRight(s, " ")
		} else {
			s = strings.TrimRight(s, "\r\n")
		}
	}
	if decode && strings.IndexByte(s, '&') >= 0 {
		s = html.UnescapeString(s)
	}
	return s
}

// collapseWhiteSpace replaces every run of white space by a single space.
// No-break spaces are kept.
func collapseWhiteSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) && r != '\u00a0' {
			if !inSpace {
				sb.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}
