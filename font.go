package aiip

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// fontSet holds the three faces used by the renderer.
type fontSet struct {
	large  font.Face
	medium font.Face
	small  font.Face
}

// loadFontSet probes path for an OpenType font or collection and builds faces at
// the three renderer sizes. Any failure falls back to the built-in face for all
// roles; the probe itself never fails.
func loadFontSet(path string) fontSet {
	fallback := fontSet{
		large:  basicfont.Face7x13,
		medium: basicfont.Face7x13,
		small:  basicfont.Face7x13,
	}
	if path == "" {
		return fallback
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return fallback
	}
	f, err := coll.Font(0)
	if err != nil {
		return fallback
	}

	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	large, err := newFace(fontSizeLarge)
	if err != nil {
		return fallback
	}
	medium, err := newFace(fontSizeMedium)
	if err != nil {
		return fallback
	}
	small, err := newFace(fontSizeSmall)
	if err != nil {
		return fallback
	}
	return fontSet{large: large, medium: medium, small: small}
}
