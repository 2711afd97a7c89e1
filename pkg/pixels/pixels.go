// Package pixels decodes photos into immutable RGBA sample buffers for the
// analyzer stages.
package pixels

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrDecode indicates the input could not be interpreted as an image.
// Callers treat it as terminal for the current analysis attempt.
var ErrDecode = errors.New("cannot decode image")

// Buffer is a decoded RGBA pixel buffer. It is read-only by convention:
// analyzer stages share one Buffer concurrently and never mutate it.
type Buffer struct {
	img    *image.NRGBA
	width  int
	height int
}

// FromImage converts a decoded image into a Buffer.
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrDecode)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: zero-area image %dx%d", ErrDecode, b.Dx(), b.Dy())
	}
	nrgba := imaging.Clone(img)
	return &Buffer{img: nrgba, width: nrgba.Bounds().Dx(), height: nrgba.Bounds().Dy()}, nil
}

// Load decodes an image file into a Buffer.
func Load(path string) (*Buffer, error) {
	if img, err := imaging.Open(path); err == nil {
		return FromImage(img)
	}

	// Fallback: explicit WebP decode, then generic registered decoders.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	if strings.Contains(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return FromImage(img)
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}
	if img, _, err := image.Decode(f); err == nil {
		return FromImage(img)
	}
	return nil, fmt.Errorf("%w: unknown format for %s", ErrDecode, path)
}

// LoadReader decodes an image from a reader into a Buffer.
func LoadReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return FromImage(img)
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return FromImage(img)
	}
	return nil, fmt.Errorf("%w: unknown or unsupported format", ErrDecode)
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// AspectRatio returns width/height.
func (b *Buffer) AspectRatio() float64 {
	return float64(b.width) / float64(b.height)
}

// Image exposes the underlying image. Callers must not mutate it.
func (b *Buffer) Image() *image.NRGBA { return b.img }

// RGBA returns the 8-bit channel values at (x, y).
func (b *Buffer) RGBA(x, y int) (r, g, bl, a uint8) {
	i := b.img.PixOffset(x+b.img.Rect.Min.X, y+b.img.Rect.Min.Y)
	p := b.img.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// Luma returns the pixel brightness at (x, y) in [0,1].
func (b *Buffer) Luma(x, y int) float64 {
	r, g, bl, _ := b.RGBA(x, y)
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 255.0
}

// Crop returns a new Buffer restricted to rect, clamped to the buffer bounds.
// An empty intersection returns the original buffer unchanged.
func (b *Buffer) Crop(rect image.Rectangle) *Buffer {
	rect = rect.Intersect(image.Rect(0, 0, b.width, b.height))
	if rect.Empty() {
		return b
	}
	sub := imaging.Crop(b.img, rect)
	return &Buffer{img: sub, width: sub.Bounds().Dx(), height: sub.Bounds().Dy()}
}

// Downscale returns a copy resized by the given linear scale in (0,1].
// Degenerate scales return the buffer unchanged.
func (b *Buffer) Downscale(scale float64) *Buffer {
	if scale <= 0 || scale >= 1 {
		return b
	}
	w := int(float64(b.width) * scale)
	h := int(float64(b.height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	resized := imaging.Resize(b.img, w, h, imaging.Lanczos)
	return &Buffer{img: resized, width: w, height: h}
}

// Info describes basic buffer geometry.
type Info struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	Area        int     `json:"area"`
}

// Describe returns geometric metadata for the buffer.
func (b *Buffer) Describe() Info {
	return Info{
		Width:       b.width,
		Height:      b.height,
		AspectRatio: b.AspectRatio(),
		Area:        b.width * b.height,
	}
}
