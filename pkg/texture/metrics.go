package texture

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/b1443/ClosetManager/pkg/pixels"
)

// Metrics are the five scalar texture measures, each normalized to [0,1].
type Metrics struct {
	Roughness      float64 `json:"roughness"`
	Regularity     float64 `json:"regularity"`
	Granularity    float64 `json:"granularity"`
	Contrast       float64 `json:"contrast"`
	Directionality float64 `json:"directionality"`
}

// Surface holds the surface characteristics derived from the full-color
// region alongside the grayscale metrics.
type Surface struct {
	Shininess    float64 `json:"shininess"`
	Softness     float64 `json:"softness"`
	Thickness    float64 `json:"thickness"`
	Transparency float64 `json:"transparency"`
}

// Patterns are the higher-level boolean pattern flags plus the pattern-scale
// value derived from the metrics.
type Patterns struct {
	Weave     bool    `json:"weave"`
	Knit      bool    `json:"knit"`
	Fiber     bool    `json:"fiber"`
	Geometric bool    `json:"geometric"`
	Scale     float64 `json:"scale"`
}

// transparencyPlaceholder stands in for an unmeasured characteristic.
const transparencyPlaceholder = 0.1

// computeMetrics runs the five metric passes over a grayscale plane.
// Regions smaller than the Sobel support come back as zero metrics.
func computeMetrics(g *grayscale) Metrics {
	if g.width < 3 || g.height < 3 {
		return Metrics{}
	}

	var (
		sumMag   float64
		sumAbsGx float64
		sumAbsGy float64
		count    int
	)
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			gx, gy := sobelAt(g, x, y)
			sumMag += math.Sqrt(gx*gx + gy*gy)
			sumAbsGx += math.Abs(gx)
			sumAbsGy += math.Abs(gy)
			count++
		}
	}

	meanMag := sumMag / float64(count)
	// A Sobel response of 1.0 on the [0,1] plane is already a hard edge;
	// scale the mean into a usable band before clamping.
	roughness := clamp01(meanMag * 4.0)

	var directionality float64
	if total := sumAbsGx + sumAbsGy; total > 0 {
		directionality = math.Abs(sumAbsGx-sumAbsGy) / total
	}

	return Metrics{
		Roughness:      roughness,
		Regularity:     regularityOf(g),
		Granularity:    granularityOf(g),
		Contrast:       contrastOf(g),
		Directionality: directionality,
	}
}

// sobelAt computes the horizontal and vertical Sobel responses at (x, y),
// normalized by the kernel weight sum.
func sobelAt(g *grayscale, x, y int) (gx, gy float64) {
	tl := g.at(x-1, y-1)
	tc := g.at(x, y-1)
	tr := g.at(x+1, y-1)
	ml := g.at(x-1, y)
	mr := g.at(x+1, y)
	bl := g.at(x-1, y+1)
	bc := g.at(x, y+1)
	br := g.at(x+1, y+1)

	gx = ((tr + 2*mr + br) - (tl + 2*ml + bl)) / 4.0
	gy = ((bl + 2*bc + br) - (tl + 2*tc + tr)) / 4.0
	return gx, gy
}

// regularityOf is one minus the normalized mean of 7x7 windowed local
// variance, sampled on a stride.
func regularityOf(g *grayscale) float64 {
	const window = 7
	if g.width < window || g.height < window {
		return 1.0
	}

	stride := window / 2
	var sumVar float64
	count := 0
	for y := 0; y+window <= g.height; y += stride {
		for x := 0; x+window <= g.width; x += stride {
			sumVar += localVariance(g, x, y, window)
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	// Variance of values in [0,1] tops out at 0.25.
	normalized := clamp01(sumVar / float64(count) / 0.25)
	return 1.0 - normalized
}

func localVariance(g *grayscale, x, y, window int) float64 {
	vals := make([]float64, 0, window*window)
	for wy := y; wy < y+window; wy++ {
		for wx := x; wx < x+window; wx++ {
			vals = append(vals, g.at(wx, wy))
		}
	}
	return stat.Variance(vals, nil)
}

// granularityOf is the normalized mean absolute pixel-to-neighbor difference
// over the horizontal and vertical neighbors.
func granularityOf(g *grayscale) float64 {
	var sum float64
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			v := g.at(x, y)
			if x+1 < g.width {
				sum += math.Abs(v - g.at(x+1, y))
				count++
			}
			if y+1 < g.height {
				sum += math.Abs(v - g.at(x, y+1))
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return clamp01(sum / float64(count) * 8.0)
}

// contrastOf is the RMS contrast: the global standard deviation of
// brightness, normalized against the half-range.
func contrastOf(g *grayscale) float64 {
	if len(g.pix) < 2 {
		return 0
	}
	return clamp01(stat.StdDev(g.pix, nil) / 0.5)
}

// surfaceOf derives the surface characteristics from the full-color region
// and the already-computed metrics.
func surfaceOf(buf *pixels.Buffer, m Metrics) Surface {
	return Surface{
		Shininess:    shininessOf(buf),
		Softness:     1.0 - m.Roughness,
		Thickness:    m.Contrast,
		Transparency: transparencyPlaceholder,
	}
}

// shininessOf is the 95th-percentile pixel brightness of the region.
func shininessOf(buf *pixels.Buffer) float64 {
	w, h := buf.Width(), buf.Height()
	stride := maxInt(minInt(w, h)/64, 1)

	var lumas []float64
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			lumas = append(lumas, buf.Luma(x, y))
		}
	}
	if len(lumas) == 0 {
		return 0
	}
	sort.Float64s(lumas)
	return stat.Quantile(0.95, stat.Empirical, lumas, nil)
}

// patternsOf detects the higher-level pattern flags from the metrics.
func patternsOf(m Metrics) Patterns {
	return Patterns{
		Weave:     m.Directionality > 0.2,
		Knit:      m.Granularity > 0.25 && m.Regularity > 0.5,
		Fiber:     m.Roughness > 0.6 && m.Directionality < 0.2,
		Geometric: m.Regularity > 0.7 && m.Contrast > 0.3,
		Scale:     1.0 - m.Granularity,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
