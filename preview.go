package aiip

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/nfnt/resize"
)

// Preview returns a downscaled copy of the container at the given width,
// preserving the aspect ratio. If the input carries an aiip chunk, the envelope
// is re-embedded with its canvas dimensions updated to the preview size; a plain
// PNG previews without metadata.
func Preview(data []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, fmt.Errorf("preview width must be positive, got %d", width)
	}

	meta, err := Extract(data)
	if err != nil && !errors.Is(err, ErrMetadataNotFound) {
		return nil, err
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	thumb := resize.Resize(uint(width), 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	if meta == nil {
		return buf.Bytes(), nil
	}

	b := thumb.Bounds()
	meta.Canvas = CanvasInfo{Width: b.Dx(), Height: b.Dy()}
	return Embed(buf.Bytes(), meta)
}
