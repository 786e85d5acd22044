package aiip

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

var (
	// ErrMalformedPNG reports input that is not a PNG with a complete header chunk.
	ErrMalformedPNG = errors.New("malformed png container")
	// ErrMetadataNotFound reports a container with no aiip chunk.
	ErrMetadataNotFound = errors.New("aiip metadata not found")
	// ErrUnsupportedCompression reports an aiip chunk with an unknown method tag.
	ErrUnsupportedCompression = errors.New("unsupported aiip compression method")
	// ErrChecksumMismatch reports an aiip chunk whose CRC does not match its content.
	ErrChecksumMismatch = errors.New("aiip chunk checksum mismatch")
)

// Embed returns a copy of the PNG data with one aiip chunk holding meta inserted
// immediately after IHDR. No other byte of the container is touched.
func Embed(data []byte, meta *Metadata) ([]byte, error) {
	insertAt, err := headerChunkEnd(data)
	if err != nil {
		return nil, err
	}
	chunk, err := buildChunk(meta)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:insertAt]...)
	out = append(out, chunk...)
	out = append(out, data[insertAt:]...)
	return out, nil
}

// Extract returns the envelope embedded in the first aiip chunk of the container.
// It returns ErrMetadataNotFound if no such chunk exists.
func Extract(data []byte) (*Metadata, error) {
	payload, err := findChunk(data)
	if err != nil {
		return nil, err
	}
	if len(payload) < 1 {
		return nil, fmt.Errorf("aiip chunk: empty payload")
	}
	if payload[0] != compressionZlib {
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedCompression, payload[0])
	}
	zr, err := zlib.NewReader(bytes.NewReader(payload[1:]))
	if err != nil {
		return nil, fmt.Errorf("aiip chunk: %w", err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("aiip chunk: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &meta, nil
}

// Strip returns a copy of the container with every aiip chunk removed.
func Strip(data []byte) ([]byte, error) {
	if _, err := headerChunkEnd(data); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data))
	out = append(out, data[:len(pngSignature)]...)
	pos := len(pngSignature)
	for pos+8 <= len(data) {
		end, ok := chunkEnd(data, pos)
		if !ok {
			break
		}
		if string(data[pos+4:pos+8]) != chunkType {
			out = append(out, data[pos:end]...)
		}
		pos = end
	}
	out = append(out, data[pos:]...)
	return out, nil
}

// HasMetadata reports whether the container carries an aiip chunk with a valid
// checksum.
func HasMetadata(data []byte) bool {
	_, err := findChunk(data)
	return err == nil
}

// buildChunk serializes, compresses and frames the envelope as a full chunk
// record: length, type, method tag + compressed payload, CRC.
func buildChunk(meta *Metadata) ([]byte, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("serialize metadata: %w", err)
	}

	var comp bytes.Buffer
	zw := zlib.NewWriter(&comp)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("compress metadata: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress metadata: %w", err)
	}

	chunkData := make([]byte, 0, 1+comp.Len())
	chunkData = append(chunkData, compressionZlib)
	chunkData = append(chunkData, comp.Bytes()...)

	var out bytes.Buffer
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(chunkData)))
	out.Write(n[:])
	out.WriteString(chunkType)
	out.Write(chunkData)
	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(chunkData)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	out.Write(n[:])
	return out.Bytes(), nil
}

// headerChunkEnd validates the signature and IHDR record and returns the offset
// just past IHDR's CRC, the insertion point for the aiip chunk.
func headerChunkEnd(data []byte) (int, error) {
	if len(data) < len(pngSignature)+8 || !bytes.HasPrefix(data, pngSignature) {
		return 0, ErrMalformedPNG
	}
	pos := len(pngSignature)
	if string(data[pos+4:pos+8]) != "IHDR" {
		return 0, ErrMalformedPNG
	}
	end, ok := chunkEnd(data, pos)
	if !ok {
		return 0, ErrMalformedPNG
	}
	return end, nil
}

// chunkEnd returns the offset just past the chunk starting at pos, or false if
// the record does not fit in data.
func chunkEnd(data []byte, pos int) (int, bool) {
	if pos+8 > len(data) {
		return 0, false
	}
	n := int(binary.BigEndian.Uint32(data[pos:]))
	end := pos + 8 + n + 4
	if end > len(data) {
		return 0, false
	}
	return end, true
}

// findChunk locates the first aiip chunk, verifies its CRC and returns its data
// field (method tag + compressed payload).
func findChunk(data []byte) ([]byte, error) {
	pos, err := headerChunkEnd(data)
	if err != nil {
		return nil, err
	}
	for pos+8 <= len(data) {
		end, ok := chunkEnd(data, pos)
		if !ok {
			return nil, ErrMalformedPNG
		}
		typ := string(data[pos+4 : pos+8])
		if typ == chunkType {
			payload := data[pos+8 : end-4]
			crc := crc32.ChecksumIEEE(data[pos+4 : end-4])
			if crc != binary.BigEndian.Uint32(data[end-4:]) {
				return nil, ErrChecksumMismatch
			}
			return payload, nil
		}
		if typ == "IEND" {
			break
		}
		pos = end
	}
	return nil, ErrMetadataNotFound
}
