package pixels

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 10 % 256), uint8(y * 10 % 256), 100, 255})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	buf, err := FromImage(testImage(20, 10))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	if buf.Width() != 20 || buf.Height() != 10 {
		t.Errorf("dimensions = %dx%d, want 20x10", buf.Width(), buf.Height())
	}
	if buf.AspectRatio() != 2.0 {
		t.Errorf("AspectRatio() = %f, want 2", buf.AspectRatio())
	}
}

func TestFromImageRejectsBadInput(t *testing.T) {
	if _, err := FromImage(nil); err == nil {
		t.Error("FromImage(nil) did not fail")
	}
	if _, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("FromImage(empty) did not fail")
	}
}

func TestRGBAAndLuma(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})
	img.Set(1, 0, color.RGBA{0, 0, 0, 255})

	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	r, g, b, a := buf.RGBA(0, 0)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("RGBA(0,0) = %d,%d,%d,%d", r, g, b, a)
	}

	if l := buf.Luma(0, 0); l < 0.99 {
		t.Errorf("Luma(white) = %f, want ~1", l)
	}
	if l := buf.Luma(1, 0); l > 0.01 {
		t.Errorf("Luma(black) = %f, want ~0", l)
	}
}

func TestCrop(t *testing.T) {
	buf, err := FromImage(testImage(40, 40))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	cropped := buf.Crop(image.Rect(10, 10, 30, 25))
	if cropped.Width() != 20 || cropped.Height() != 15 {
		t.Errorf("crop = %dx%d, want 20x15", cropped.Width(), cropped.Height())
	}

	// Out-of-bounds rects clamp to the frame.
	clamped := buf.Crop(image.Rect(30, 30, 100, 100))
	if clamped.Width() != 10 || clamped.Height() != 10 {
		t.Errorf("clamped crop = %dx%d, want 10x10", clamped.Width(), clamped.Height())
	}

	// An empty intersection leaves the buffer unchanged.
	if same := buf.Crop(image.Rect(50, 50, 60, 60)); same != buf {
		t.Error("empty-intersection crop did not return the original buffer")
	}
}

func TestDownscale(t *testing.T) {
	buf, err := FromImage(testImage(100, 50))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	small := buf.Downscale(0.1)
	if small.Width() != 10 || small.Height() != 5 {
		t.Errorf("downscaled = %dx%d, want 10x5", small.Width(), small.Height())
	}

	if same := buf.Downscale(1.5); same != buf {
		t.Error("upscale factor did not return the original buffer")
	}
	if same := buf.Downscale(0); same != buf {
		t.Error("zero factor did not return the original buffer")
	}

	// Never collapse to zero pixels.
	tiny, err := FromImage(testImage(2, 2))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if got := tiny.Downscale(0.1); got.Width() < 1 || got.Height() < 1 {
		t.Errorf("downscale collapsed to %dx%d", got.Width(), got.Height())
	}
}

func TestLoadReader(t *testing.T) {
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, testImage(16, 16)); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}

	buf, err := LoadReader(&encoded)
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if buf.Width() != 16 || buf.Height() != 16 {
		t.Errorf("loaded %dx%d, want 16x16", buf.Width(), buf.Height())
	}
}

func TestLoadReaderRejectsGarbage(t *testing.T) {
	if _, err := LoadReader(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("LoadReader accepted garbage input")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("definitely-missing.jpg"); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestEncodeJPEG(t *testing.T) {
	buf, err := FromImage(testImage(32, 32))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	data, err := buf.EncodeJPEG(85)
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}
	if len(data) < 2 || data[0] != 0xff || data[1] != 0xd8 {
		t.Error("EncodeJPEG output is not a JPEG stream")
	}
}

func TestThumbnail(t *testing.T) {
	buf, err := FromImage(testImage(100, 60))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	thumb, err := buf.Thumbnail(32, 85)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	decoded, err := LoadReader(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("thumbnail did not decode: %v", err)
	}
	if decoded.Width() != 32 || decoded.Height() != 32 {
		t.Errorf("thumbnail = %dx%d, want 32x32", decoded.Width(), decoded.Height())
	}
}

func TestDescribe(t *testing.T) {
	buf, err := FromImage(testImage(30, 20))
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}

	info := buf.Describe()
	if info.Width != 30 || info.Height != 20 || info.Area != 600 {
		t.Errorf("Describe() = %+v", info)
	}
}
