package aiip

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
)

// Generate renders the document and returns AIIP container bytes: a PNG with the
// envelope embedded in an aiip chunk after IHDR.
func Generate(c Canvas, doc Document, meta *Metadata, optFns ...func(*RenderOptions)) ([]byte, error) {
	img := Render(c, doc, optFns...)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return Embed(buf.Bytes(), meta)
}

// GenerateFile renders, embeds and writes the container to path.
func GenerateFile(path string, c Canvas, doc Document, meta *Metadata, optFns ...func(*RenderOptions)) error {
	data, err := Generate(c, doc, meta, optFns...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
