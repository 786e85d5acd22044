package aiip

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateEndToEnd(t *testing.T) {
	c := DefaultCanvas()
	doc := SampleDocument()

	data, err := Generate(c, doc, SampleMetadata(c, doc), func(o *RenderOptions) { o.FontPath = "" })
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Fatal("output does not start with the png signature")
	}
	meta, err := Extract(data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if meta.Version != FormatVersion {
		t.Fatalf("version %q, want %q", meta.Version, FormatVersion)
	}
	if len(meta.Data.Regions) != len(doc.Regions) {
		t.Fatalf("got %d regions, want %d", len(meta.Data.Regions), len(doc.Regions))
	}
}

func TestGenerateFile(t *testing.T) {
	c := Canvas{Width: 160, Height: 120, Background: colorBackground}
	doc := Document{Title: "tiny", Regions: []Region{
		{Name: "box", Tariff: "1%", Level: LevelLow, Bounds: Rect{X1: 10, Y1: 20, X2: 80, Y2: 90}},
	}}
	path := filepath.Join(t.TempDir(), "tiny.aiip")

	err := GenerateFile(path, c, doc, SampleMetadata(c, doc), func(o *RenderOptions) { o.FontPath = "" })
	if err != nil {
		t.Fatalf("generate file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !HasMetadata(data) {
		t.Fatal("written file has no aiip chunk")
	}
}
