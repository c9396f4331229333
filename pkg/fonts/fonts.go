// Package fonts provides the text face used by the PNG rasterizer and
// the width estimation used by chart layout.
//
// The face is Go Regular, which ships as a Go package (gofont), so no
// font assets need to be embedded or loaded from disk. Parsing happens
// once on first use.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// CharWidth is the layout-time width estimate: mean glyph advance as a
// fraction of the font size. Legend and label-column sizing use
// estimate = CharWidth * fontSize * runeCount rather than exact
// measurement, because the SVG output renders in whatever font the
// viewer resolves for the configured family.
const CharWidth = 0.55

var (
	parseOnce sync.Once
	parsed    *sfnt.Font
	parseErr  error
)

func regular() (*sfnt.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// Face returns a Go Regular face at the given pixel size (72 DPI, so
// points equal pixels). Faces are not safe for concurrent use; callers
// needing concurrency create one face per goroutine.
func Face(size float64) (font.Face, error) {
	f, err := regular()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Width measures s with the real face at the given pixel size.
// Used by the rasterizer; chart layout uses [Estimate] instead.
func Width(s string, size float64) (float64, error) {
	face, err := Face(size)
	if err != nil {
		return 0, err
	}
	defer face.Close()
	adv := font.MeasureString(face, s)
	return float64(adv) / 64, nil
}

// Estimate approximates the rendered width of s at the given pixel size
// using the flat per-character advance. Chart layout always uses this
// estimate, never real measurement; see [CharWidth].
func Estimate(s string, size float64) float64 {
	return CharWidth * size * float64(len([]rune(s)))
}
