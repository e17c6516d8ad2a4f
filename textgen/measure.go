package textgen

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	xlanguage "golang.org/x/text/language"
)

// FaceMeasurer measures text with an x/image font face, i.e. by summing up
// glyph advances and kerning.
type FaceMeasurer struct {
	Face font.Face
}

// Measure returns the advance width of s.
func (m FaceMeasurer) Measure(s string) float64 {
	if s == "" {
		return 0
	}
	return fixedToFloat(font.MeasureString(m.Face, s))
}

// ShapingMeasurer measures text by shaping it with go-text's HarfBuzz port,
// which respects ligatures and kerning from GSUB/GPOS.
//
// A ShapingMeasurer is not safe for concurrent use.
type ShapingMeasurer struct {
	face   *gotext.Face
	size   fixed.Int26_6
	lang   language.Language
	shaper shaping.HarfbuzzShaper
}

// NewShapingMeasurer parses a TrueType/OpenType font and prepares it for
// measuring text at a given size (in layout units per em).
func NewShapingMeasurer(fontdata []byte, size float64) (*ShapingMeasurer, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(fontdata))
	if err != nil {
		return nil, fmt.Errorf("shaping measurer: %w", err)
	}
	return &ShapingMeasurer{
		face: face,
		size: floatToFixed(size),
		lang: language.NewLanguage("en"),
	}, nil
}

// SetLanguage sets the language text is shaped for. The default is English.
func (m *ShapingMeasurer) SetLanguage(tag xlanguage.Tag) {
	m.lang = language.NewLanguage(tag.String())
}

// Measure returns the advance width of s.
func (m *ShapingMeasurer) Measure(s string) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      m.size,
		Script:    scriptOf(runes),
		Language:  m.lang,
	})
	return fixedToFloat(out.Advance)
}

// scriptOf returns the script of the first rune which has a definite one.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func floatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f*64 + 0.5)
}
