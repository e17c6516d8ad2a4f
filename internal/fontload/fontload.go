/*
Package fontload loads scalable fonts and derives what inline layout needs
from them: font metrics in layout units and measurers for text.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/inlineflow/textgen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", fontfile, err)
	}
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		f.Fontname = "unnamed"
	}
	return f, nil
}

// Default returns Go Regular, which is always available.
func Default() *ScalableFont {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("fontload: cannot parse Go Regular: %v", err))
	}
	return f
}

// Face creates a face of the font for a given size in layout units.
func (f *ScalableFont) Face(size float64) (font.Face, error) {
	return opentype.NewFace(f.SFNT, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per layout unit
		Hinting: font.HintingNone,
	})
}

// Metrics returns the font metrics at a given size in layout units.
func (f *ScalableFont) Metrics(size float64) (style.FontMetrics, error) {
	var buf sfnt.Buffer
	m, err := f.SFNT.Metrics(&buf, fixed.Int26_6(size*64+0.5), font.HintingNone)
	if err != nil {
		return style.FontMetrics{}, err
	}
	return style.FontMetrics{
		Size:    size,
		Ascent:  float64(m.Ascent) / 64,
		Descent: float64(m.Descent) / 64,
		XHeight: float64(m.XHeight) / 64,
	}, nil
}

// Measurer returns a measurer for text set in this font. If shaping is set,
// text is shaped with HarfBuzz, otherwise glyph advances are summed up.
func (f *ScalableFont) Measurer(size float64, shaping bool) (textgen.Measurer, error) {
	if shaping {
		return textgen.NewShapingMeasurer(f.Binary, size)
	}
	face, err := f.Face(size)
	if err != nil {
		return nil, err
	}
	return textgen.FaceMeasurer{Face: face}, nil
}
