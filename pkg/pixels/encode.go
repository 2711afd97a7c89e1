package pixels

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodeJPEG compresses the buffer to JPEG bytes at the given quality.
func (b *Buffer) EncodeJPEG(quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, b.img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail returns a centered square thumbnail of the given side length,
// JPEG-compressed.
func (b *Buffer) Thumbnail(side, quality int) ([]byte, error) {
	thumb := imaging.Fill(b.img, side, side, imaging.Center, imaging.Lanczos)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// Base64 encodes the buffer for transport to a vision model, resized so the
// long side does not exceed maxDim (0 keeps the original size). Format is
// "png" or "jpg".
func (b *Buffer) Base64(format string, maxDim, quality int) (string, error) {
	img := b.img
	if maxDim > 0 && (b.width > maxDim || b.height > maxDim) {
		if b.width >= b.height {
			img = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("failed to encode png: %w", err)
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return "", fmt.Errorf("failed to encode jpeg: %w", err)
		}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
