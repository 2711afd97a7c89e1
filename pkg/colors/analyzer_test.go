package colors

import (
	"context"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/b1443/ClosetManager/pkg/pixels"
)

// solidBuffer creates a buffer filled with one color.
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

func TestDominantColorNearBlack(t *testing.T) {
	buf := solidBuffer(t, 64, 64, color.RGBA{30, 30, 30, 255})

	if got := New().DominantColor(context.Background(), buf); got != "Black" {
		t.Errorf("DominantColor(solid 30,30,30) = %q, want Black", got)
	}
}

func TestDominantColorNearWhite(t *testing.T) {
	buf := solidBuffer(t, 64, 64, color.RGBA{245, 245, 245, 255})

	if got := New().DominantColor(context.Background(), buf); got != "White" {
		t.Errorf("DominantColor(solid 245,245,245) = %q, want White", got)
	}
}

func TestDominantColorSolidBlue(t *testing.T) {
	buf := solidBuffer(t, 64, 64, color.RGBA{40, 60, 150, 255})

	got := New().DominantColor(context.Background(), buf)
	if got != "Blue" && got != "Dark Blue" {
		t.Errorf("DominantColor(solid dark blue) = %q, want a Blue name", got)
	}
}

func TestDominantColorTinyFrame(t *testing.T) {
	buf := solidBuffer(t, 1, 1, color.RGBA{120, 40, 40, 255})

	if got := New().DominantColor(context.Background(), buf); got == "" {
		t.Error("DominantColor on a 1x1 frame returned an empty name")
	}
}

func TestDominantColorDeterministic(t *testing.T) {
	buf := solidBuffer(t, 48, 48, color.RGBA{60, 120, 70, 255})

	first := New().DominantColor(context.Background(), buf)
	for i := 0; i < 5; i++ {
		if got := New().DominantColor(context.Background(), buf); got != first {
			t.Fatalf("DominantColor changed across runs: %q then %q", first, got)
		}
	}
}

func TestDominantColorCanceledContext(t *testing.T) {
	buf := solidBuffer(t, 64, 64, color.RGBA{40, 60, 150, 255})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := New().DominantColor(ctx, buf); got != "Unknown" {
		t.Errorf("DominantColor with canceled context = %q, want Unknown", got)
	}
}

func TestDominantColorSharedAnalyzer(t *testing.T) {
	// One analyzer serving overlapping runs, as the session wrapper does
	// after a restart.
	a := New()
	bufs := []*pixels.Buffer{
		solidBuffer(t, 80, 80, color.RGBA{40, 60, 150, 255}),
		solidBuffer(t, 80, 80, color.RGBA{150, 40, 40, 255}),
	}

	var wg sync.WaitGroup
	names := make([]string, 8)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = a.DominantColor(context.Background(), bufs[i%2])
		}(i)
	}
	wg.Wait()

	for i, name := range names {
		if name == "" || name == "Unknown" {
			t.Errorf("concurrent run %d produced %q", i, name)
		}
	}
}

func TestFilterBackgroundDropsWhite(t *testing.T) {
	var whites []Sample
	for i := 0; i < 50; i++ {
		whites = append(whites, Sample{R: 250, G: 250, B: 250})
	}

	if kept := filterBackground(whites); len(kept) != 0 {
		t.Errorf("filterBackground kept %d of %d white samples, want 0", len(kept), len(whites))
	}
}

func TestFilterBackgroundKeepsFabric(t *testing.T) {
	samples := []Sample{
		{R: 40, G: 60, B: 150},   // saturated blue
		{R: 120, G: 120, B: 120}, // mid gray, inside the kept brightness band
	}

	kept := filterBackground(samples)
	if len(kept) != 2 {
		t.Errorf("filterBackground kept %d of 2 fabric samples", len(kept))
	}
}
