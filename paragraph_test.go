package inlineflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/inlineflow/container"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/inlineflow/textgen"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/basicfont"
)

// --- Test Suite Preparation ------------------------------------------------

type ParagraphTestEnviron struct {
	suite.Suite
	style    style.Style
	measurer textgen.Measurer
}

// listen for 'go test' command --> run test methods
func TestParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlineflow")
	defer teardown()
	suite.Run(t, new(ParagraphTestEnviron))
}

// run once, before test suite methods
func (env *ParagraphTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("inlineflow").SetTraceLevel(tracing.LevelInfo)
	env.style = style.Style{Font: style.FontMetrics{Size: 10, Ascent: 8, Descent: 2, XHeight: 5}}
	env.measurer = textgen.FaceMeasurer{Face: basicfont.Face7x13} // 7 units per glyph
}

// --- Tests -----------------------------------------------------------------

func (env *ParagraphTestEnviron) TestSingleLine() {
	p := NewParagraph(env.style, env.measurer)
	hello := p.Text("Hello ")
	em := p.Open("em", env.style)
	world := p.Text("world")
	env.Require().NoError(p.Close())
	r, err := p.Layout(200)
	env.Require().NoError(err)
	env.Equal(1, r.LineCount)
	env.Equal(10.0, r.Height)
	env.Equal(77.0, r.ShrinkToFitWidth)
	env.Equal(8.0, r.Baseline)
	env.Equal(geom.Pt(0, 8), hello.Offset)
	env.Equal(geom.Pt(42, 0), em.Offset)
	env.Equal(geom.Pt(42, 8), world.Offset)
	env.Equal(p.Block, world.OffsetParent)
}

func (env *ParagraphTestEnviron) TestEmptyInlineBoxMovesToNextLine() {
	p := NewParagraph(env.style, env.measurer)
	p.Text("Hello ")
	em := p.Open("em", env.style)
	world := p.Text("world")
	env.Require().NoError(p.Close())
	r, err := p.Layout(50)
	env.Require().NoError(err)
	env.Equal(2, r.LineCount)
	env.Require().Len(em.Boxes, 1, "expected moved inline box to be submitted once")
	env.False(em.Boxes[0].SplitLeft)
	env.Equal(geom.Pt(0, 10), em.Offset)
	env.Equal(geom.Pt(0, 18), world.Offset)
}

func (env *ParagraphTestEnviron) TestRelayout() {
	p := NewParagraph(env.style, env.measurer)
	text := p.Text("one two three")
	r, err := p.Layout(40)
	env.Require().NoError(err)
	env.Equal(3, r.LineCount)
	env.Equal("one\ntwo\nthree", text.Text())
	r, err = p.Layout(200)
	env.Require().NoError(err)
	env.Equal(1, r.LineCount)
	env.Equal("one two three", text.Text())
	allocated, live := p.pool.Stats()
	env.Equal(0, live, "expected all line boxes to be released")
	env.Equal(3, allocated, "expected line boxes to be re-used")
}

func (env *ParagraphTestEnviron) TestBreakAndAtomic() {
	p := NewParagraph(env.style, env.measurer)
	p.Text("a")
	p.Break()
	img := p.Atomic("img", style.Style{}, geom.Size{W: 20, H: 20})
	r, err := p.Layout(100)
	env.Require().NoError(err)
	env.Equal(2, r.LineCount)
	env.Equal(32.0, r.Height, "expected second line to fit the image")
	env.Equal(30.0, r.Baseline)
	env.Equal(geom.Pt(0, 10), img.Offset)
	env.True(strings.HasPrefix(r.Tree, "InlineContainer\n"))
}

func (env *ParagraphTestEnviron) TestBlankLinesArePreserved() {
	for _, ws := range []style.WhiteSpace{style.WhiteSpacePre, style.WhiteSpacePreWrap} {
		st := env.style
		st.WhiteSpace = ws
		p := NewParagraph(st, env.measurer)
		text := p.Text("a\n\nb")
		r, err := p.Layout(200)
		env.Require().NoError(err)
		env.Equal(3, r.LineCount, "white-space %s", ws)
		env.Equal(30.0, r.Height)
		env.Require().Len(text.Lines, 3)
		env.Equal("a\n\nb", text.Text())
		env.Equal(geom.Pt(0, 8), text.Offset)
		env.Equal(geom.Pt(0, 20), text.Lines[2].Offset)
	}
}

func (env *ParagraphTestEnviron) TestOptionsOverrideBlockStyle() {
	st := env.style
	st.TextAlign = style.TextAlignRight
	p := NewParagraph(st, env.measurer)
	text := p.Text("Hi")
	_, err := p.Layout(100)
	env.Require().NoError(err)
	env.Equal(86.0, text.Offset.X)
	_, err = p.Layout(100, container.WithTextAlign(style.TextAlignLeft))
	env.Require().NoError(err)
	env.Equal(0.0, text.Offset.X)
}

func (env *ParagraphTestEnviron) TestUnbalanced() {
	p := NewParagraph(env.style, env.measurer)
	env.True(errors.Is(p.Close(), ErrUnbalanced))
	p.Open("b", env.style)
	_, err := p.Layout(100)
	env.True(errors.Is(err, ErrUnbalanced))
}
