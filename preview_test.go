package aiip

import (
	"bytes"
	"image/png"
	"reflect"
	"testing"
)

func TestPreviewKeepsMetadata(t *testing.T) {
	c := Canvas{Width: 200, Height: 150, Background: colorBackground}
	doc := SampleDocument()
	meta := SampleMetadata(c, doc)

	data, err := Generate(c, doc, meta, func(o *RenderOptions) { o.FontPath = "" })
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	thumb, err := Preview(data, 100)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 75 {
		t.Fatalf("preview bounds %v, want 100x75", img.Bounds())
	}

	got, err := Extract(thumb)
	if err != nil {
		t.Fatalf("extract from preview: %v", err)
	}
	if got.Canvas.Width != 100 || got.Canvas.Height != 75 {
		t.Fatalf("preview canvas %+v, want 100x75", got.Canvas)
	}
	if !reflect.DeepEqual(got.Data, meta.Data) {
		t.Fatal("region data changed by preview")
	}
}

func TestPreviewPlainPNG(t *testing.T) {
	thumb, err := Preview(encodePNG(t, 40, 20), 10)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if HasMetadata(thumb) {
		t.Fatal("preview of a plain png grew metadata")
	}
}

func TestPreviewBadWidth(t *testing.T) {
	if _, err := Preview(encodePNG(t, 4, 4), 0); err == nil {
		t.Fatal("expected error for zero width")
	}
}
