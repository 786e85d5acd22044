package aiip

import "image/color"

// FormatVersion is the AIIP format version written into new envelopes.
const FormatVersion = "3.0"

const (
	chunkType = "aiip"

	// compressionZlib is the method tag for a zlib (deflate) payload stream.
	compressionZlib = 0x01
)

const (
	defaultWidth  = 800
	defaultHeight = 600

	// Preferred font of the original producer; probed, never required.
	defaultFontPath = "/System/Library/Fonts/Helvetica.ttc"

	fontSizeLarge  = 24
	fontSizeMedium = 14
	fontSizeSmall  = 11
)

var (
	colorBackground = color.RGBA{R: 0x1a, G: 0x3a, B: 0x5c, A: 0xff}
	colorLevelLow   = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	colorLevelMed   = color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}
	colorLevelHigh  = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}

	colorText      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorSubtitle  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorCountry   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	colorFooter    = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	colorUnleveled = color.RGBA{R: 0x95, G: 0xa5, B: 0xa6, A: 0xff}
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
