package shape

import (
	"image"
	"image/color"
	"testing"

	"github.com/b1443/ClosetManager/pkg/garment"
	"github.com/b1443/ClosetManager/pkg/pixels"
)

func solidBuffer(t *testing.T, w, h int, c color.RGBA) *pixels.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	buf, err := pixels.FromImage(img)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	return buf
}

func TestClassifyWideUniformIsPants(t *testing.T) {
	buf := solidBuffer(t, 200, 100, color.RGBA{128, 128, 128, 255})

	got := New().Classify(buf)
	if got.Type != garment.TypePants {
		t.Errorf("Classify(2:1 uniform) = %s, want pants", got.Type)
	}
	if got.Confidence != ruleBaseConfidence-layerPenalty {
		t.Errorf("confidence = %f, want %f", got.Confidence, ruleBaseConfidence-layerPenalty)
	}
}

func TestClassifyBrightMidWideIsShorts(t *testing.T) {
	buf := solidBuffer(t, 160, 100, color.RGBA{220, 220, 220, 255})

	got := New().Classify(buf)
	if got.Type != garment.TypeShorts {
		t.Errorf("Classify(1.6:1 bright) = %s, want shorts", got.Type)
	}
	if got.Confidence != ruleBaseConfidence {
		t.Errorf("confidence = %f, want %f", got.Confidence, ruleBaseConfidence)
	}
}

func TestClassifySquareDarkIsSweater(t *testing.T) {
	buf := solidBuffer(t, 100, 100, color.RGBA{40, 40, 40, 255})

	got := New().Classify(buf)
	if got.Type != garment.TypeSweater {
		t.Errorf("Classify(square dark) = %s, want sweater", got.Type)
	}
}

func TestClassifySquareUniformIsTShirt(t *testing.T) {
	buf := solidBuffer(t, 100, 100, color.RGBA{128, 128, 128, 255})

	got := New().Classify(buf)
	if got.Type != garment.TypeTShirt {
		t.Errorf("Classify(square uniform) = %s, want t-shirt", got.Type)
	}
}

func TestClassifyTallBrightIsDress(t *testing.T) {
	buf := solidBuffer(t, 50, 100, color.RGBA{220, 220, 220, 255})

	got := New().Classify(buf)
	if got.Type != garment.TypeDress {
		t.Errorf("Classify(tall bright) = %s, want dress", got.Type)
	}
}

func TestClassifyTallDarkIsCoat(t *testing.T) {
	buf := solidBuffer(t, 50, 100, color.RGBA{60, 60, 60, 255})

	got := New().Classify(buf)
	if got.Type != garment.TypeCoat {
		t.Errorf("Classify(tall dark) = %s, want coat", got.Type)
	}
}

func TestClassifyInBetweenDarkIsJacket(t *testing.T) {
	buf := solidBuffer(t, 120, 100, color.RGBA{50, 50, 50, 255})

	got := New().Classify(buf)
	if got.Type != garment.TypeJacket {
		t.Errorf("Classify(1.2:1 dark) = %s, want jacket", got.Type)
	}
}

func TestClassifyPoolPick(t *testing.T) {
	// 1.2:1 mid-gray hits no rule and falls through to the pool.
	buf := solidBuffer(t, 120, 100, color.RGBA{150, 150, 150, 255})

	got := New().Classify(buf)
	if !got.Type.Valid() || got.Type == garment.TypeUnknown {
		t.Errorf("pool pick produced %s", got.Type)
	}
	if got.Confidence != poolConfidence {
		t.Errorf("pool confidence = %f, want %f", got.Confidence, poolConfidence)
	}
}

func TestClassifyDeterministicWithSeed(t *testing.T) {
	buf := solidBuffer(t, 120, 100, color.RGBA{150, 150, 150, 255})

	a := NewWithSeed(9)
	b := NewWithSeed(9)
	first := a.Classify(buf)
	for i := 0; i < 10; i++ {
		ra, rb := a.Classify(buf), b.Classify(buf)
		if ra != rb || ra != first {
			t.Fatalf("run %d differs: %+v vs %+v vs first %+v", i, ra, rb, first)
		}
	}
}

func TestClassifyTinyFrame(t *testing.T) {
	buf := solidBuffer(t, 1, 1, color.RGBA{128, 128, 128, 255})

	got := New().Classify(buf)
	if !got.Type.Valid() {
		t.Errorf("Classify(1x1) type %q is invalid", got.Type)
	}
	if got.Confidence < 0 || got.Confidence > 1 {
		t.Errorf("Classify(1x1) confidence %f out of range", got.Confidence)
	}
}
