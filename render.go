package aiip

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RenderOptions controls cosmetic aspects of rendering.
type RenderOptions struct {
	// FontPath is probed for the preferred font. An empty path skips the probe
	// and uses the built-in face.
	FontPath string
	// Subtitle replaces the default hint line under the title.
	Subtitle string
	// Footer replaces the default footer line.
	Footer string
}

type anchor int

const (
	anchorMiddle anchor = iota // centered on the point
	anchorLeft                 // left edge at the point, vertically centered
)

// Render draws the document onto a fresh canvas. It always produces an image: a
// missing or unreadable preferred font degrades silently to the built-in face,
// and out-of-canvas bounds are not validated.
func Render(c Canvas, doc Document, optFns ...func(*RenderOptions)) *image.RGBA {
	opts := RenderOptions{
		FontPath: defaultFontPath,
		Subtitle: "Hover regions for details (in AIIP viewer)",
		Footer:   "AIIP v" + FormatVersion + " - Annotated Interactive Image Protocol | github.com/aezizhu",
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	fonts := loadFontSet(opts.FontPath)

	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	fillRect(img, image.Rect(0, 0, c.Width, c.Height), c.Background)

	drawAnchored(img, fonts.large, colorText, c.Width/2, 30, doc.Title, anchorMiddle)
	drawAnchored(img, fonts.small, colorSubtitle, c.Width/2, 55, opts.Subtitle, anchorMiddle)

	for _, region := range doc.Regions {
		drawRegion(img, fonts, c, region)
	}

	drawLegend(img, fonts, c)
	drawAnchored(img, fonts.small, colorFooter, c.Width/2, c.Height-15, opts.Footer, anchorMiddle)
	return img
}

func drawRegion(img *image.RGBA, fonts fontSet, c Canvas, region Region) {
	b := region.Bounds
	col := levelColor(region.Level)

	strokeRect(img, image.Rect(b.X1, b.Y1, b.X2+1, b.Y2+1), col, 2)
	fillRect(img, image.Rect(b.X1+2, b.Y1+2, b.X2-1, b.Y2-1), blend(col, c.Background))

	cx := (b.X1 + b.X2) / 2
	drawAnchored(img, fonts.medium, colorText, cx, b.Y1+15, region.Name, anchorMiddle)
	drawAnchored(img, fonts.medium, col, cx, b.Y1+35, "Avg: "+region.Tariff, anchorMiddle)

	y := b.Y1 + 60
	for _, country := range region.Countries {
		drawAnchored(img, fonts.small, colorCountry, cx, y, country.Name+": "+country.Rate, anchorMiddle)
		y += 18
	}
}

func drawLegend(img *image.RGBA, fonts fontSet, c Canvas) {
	items := []struct {
		label string
		col   color.RGBA
	}{
		{"Low (10-15%)", colorLevelLow},
		{"Medium (20-25%)", colorLevelMed},
		{"High (30-50%)", colorLevelHigh},
	}
	y := c.Height - 50
	x := 100
	for _, item := range items {
		fillRect(img, image.Rect(x, y, x+15, y+15), item.col)
		drawAnchored(img, fonts.small, colorText, x+22, y+7, item.label, anchorLeft)
		x += 150
	}
}

// blend simulates translucency over the background: out = fg*0.3 + bg*0.7 per
// channel, rounded to nearest.
func blend(fg, bg color.RGBA) color.RGBA {
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*0.3 + float64(b)*0.7))
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 0xff}
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, r image.Rectangle, col color.RGBA, width int) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), col)
	fillRect(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func drawAnchored(img *image.RGBA, face font.Face, col color.RGBA, x, y int, s string, a anchor) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	dot := fixed.P(x, y)
	if a == anchorMiddle {
		dot.X -= d.MeasureString(s) / 2
	}
	m := face.Metrics()
	dot.Y += (m.Ascent - m.Descent) / 2
	d.Dot = dot
	d.DrawString(s)
}
