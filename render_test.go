package aiip

import (
	"image/color"
	"testing"
)

func TestRenderFallbackFont(t *testing.T) {
	c := DefaultCanvas()
	img := Render(c, SampleDocument(), func(o *RenderOptions) {
		o.FontPath = "/nonexistent/path/to/font.ttc"
	})
	if img == nil {
		t.Fatal("no image produced")
	}
	b := img.Bounds()
	if b.Dx() != c.Width || b.Dy() != c.Height {
		t.Fatalf("bounds %v, want %dx%d", b, c.Width, c.Height)
	}
	if img.RGBAAt(0, 0) != c.Background {
		t.Fatalf("corner pixel %v, want background %v", img.RGBAAt(0, 0), c.Background)
	}
}

func TestRenderRegionFill(t *testing.T) {
	c := DefaultCanvas()
	img := Render(c, SampleDocument(), func(o *RenderOptions) { o.FontPath = "" })

	// Inside the Europe box (350,80)-(500,220), away from its label lines.
	want := blend(colorLevelLow, c.Background)
	if got := img.RGBAAt(360, 210); got != want {
		t.Fatalf("region interior %v, want %v", got, want)
	}
	// The outline keeps the severity color itself.
	if got := img.RGBAAt(350, 150); got != colorLevelLow {
		t.Fatalf("region outline %v, want %v", got, colorLevelLow)
	}
}

func TestBlendRoundsToNearest(t *testing.T) {
	got := blend(colorLevelLow, colorBackground)
	want := color.RGBA{R: 32, G: 102, B: 98, A: 0xff}
	if got != want {
		t.Fatalf("blend = %v, want %v", got, want)
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	c := Canvas{Width: 120, Height: 90, Background: colorBackground}
	img := Render(c, Document{Title: "empty"}, func(o *RenderOptions) { o.FontPath = "" })
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 90 {
		t.Fatalf("bounds %v", img.Bounds())
	}
}
