// Package colors estimates the dominant garment color of a photo. Pixel
// samples from the isolated garment region are filtered against backdrop
// lighting, clustered in RGB space, and the heaviest cluster centroid is
// named in HSL terms.
package colors

import (
	"context"
	"math/rand"

	"github.com/b1443/ClosetManager/pkg/pixels"
	"github.com/b1443/ClosetManager/pkg/region"
)

// Config tunes color sampling.
type Config struct {
	// DownscaleFactor is the linear scale applied to the region before
	// sampling.
	DownscaleFactor float64
	// SampleStride is the pixel step between samples.
	SampleStride int
	// MarginFrac is the fraction of the smaller dimension skipped near crop
	// edges to avoid boundary bleed.
	MarginFrac float64
}

// DefaultConfig returns the sampling defaults.
func DefaultConfig() Config {
	return Config{
		DownscaleFactor: 0.15,
		SampleStride:    2,
		MarginFrac:      0.10,
	}
}

// Analyzer extracts and names the dominant garment color. It holds no
// mutable state, so one instance may serve overlapping runs.
type Analyzer struct {
	config   Config
	isolator *region.Isolator
}

// New creates an Analyzer with default configuration.
func New() *Analyzer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an Analyzer with custom sampling configuration.
func NewWithConfig(config Config) *Analyzer {
	return &Analyzer{
		config:   config,
		isolator: region.New(region.ColorProfile()),
	}
}

// DominantColor names the dominant color of the garment in the frame. It
// never fails: frames with no usable samples, and runs canceled mid-pass,
// come back as "Unknown". Cluster seeding uses a fresh fixed source per call
// so repeated runs over the same photo agree.
func (a *Analyzer) DominantColor(ctx context.Context, buf *pixels.Buffer) string {
	isolated := a.isolator.Isolate(ctx, buf)
	if ctx.Err() != nil {
		return "Unknown"
	}

	samples := a.collectSamples(isolated, true)
	if len(samples) == 0 {
		// Last resort: sample the unmodified full frame without the
		// lighting-artifact skip, so uniform frames still get a name.
		samples = a.collectSamples(buf, false)
	}
	if len(samples) == 0 {
		return "Unknown"
	}
	if ctx.Err() != nil {
		return "Unknown"
	}

	filtered := filterBackground(samples)
	rng := rand.New(rand.NewSource(1))

	var clusters []Cluster
	if len(filtered) > 0 {
		clusters = kmeans(filtered, 2, rng)
	} else {
		// Background filtering removed everything; cluster the raw set wider.
		clusters = kmeans(samples, 3, rng)
	}
	if len(clusters) == 0 {
		return "Unknown"
	}

	dominant := clusters[0].Centroid
	hsl := RGBToHSL(uint8(clampChan(dominant.R)), uint8(clampChan(dominant.G)), uint8(clampChan(dominant.B)))
	return Name(hsl)
}

// collectSamples gathers stride-spaced pixel samples from the downscaled
// buffer, skipping the edge margin. With skipArtifacts set, pixels at the
// brightness extremes are dropped as lighting artifacts.
func (a *Analyzer) collectSamples(buf *pixels.Buffer, skipArtifacts bool) []Sample {
	small := buf.Downscale(a.config.DownscaleFactor)
	w, h := small.Width(), small.Height()

	margin := int(float64(minInt(w, h)) * a.config.MarginFrac)
	stride := a.config.SampleStride
	if stride < 1 {
		stride = 1
	}

	var samples []Sample
	for y := margin; y < h-margin; y += stride {
		for x := margin; x < w-margin; x += stride {
			r, g, b, _ := small.RGBA(x, y)
			brightness := (float64(r) + float64(g) + float64(b)) / (3.0 * 255.0)
			if skipArtifacts && (brightness <= 0.05 || brightness >= 0.95) {
				continue
			}
			samples = append(samples, Sample{R: float64(r), G: float64(g), B: float64(b)})
		}
	}
	return samples
}

// filterBackground keeps samples that look like fabric rather than a neutral
// backdrop: a sample survives if (brightness < 0.9 or saturation > 0.3) and
// brightness > 0.1 and (saturation > 0.1 or brightness within (0.2, 0.8)).
func filterBackground(samples []Sample) []Sample {
	var kept []Sample
	for _, s := range samples {
		hsl := RGBToHSL(uint8(clampChan(s.R)), uint8(clampChan(s.G)), uint8(clampChan(s.B)))
		brightness := (s.R + s.G + s.B) / (3.0 * 255.0)

		if brightness >= 0.9 && hsl.S <= 0.3 {
			continue
		}
		if brightness <= 0.1 {
			continue
		}
		if hsl.S <= 0.1 && (brightness <= 0.2 || brightness >= 0.8) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func clampChan(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
