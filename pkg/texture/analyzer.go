// Package texture estimates fabric composition from surface texture. A
// battery of gradient statistics over a grayscale reduction of the isolated
// garment region feeds an ordered rule table of material signatures.
//
// The analyzer never fails: degenerate regions fall back to a weighted
// random pick from the common-materials pool rather than reporting an error.
package texture

import (
	"context"
	"math/rand"

	"github.com/b1443/ClosetManager/pkg/garment"
	"github.com/b1443/ClosetManager/pkg/pixels"
	"github.com/b1443/ClosetManager/pkg/region"
)

// minRegionSide is the smallest region edge the metric passes accept.
const minRegionSide = 8

// fallbackPool weights the materials returned when analysis cannot run.
// Everyday fabrics dominate the pool.
var fallbackPool = []struct {
	material garment.Material
	weight   int
}{
	{garment.MaterialCotton, 4},
	{garment.MaterialPolyester, 3},
	{garment.MaterialWool, 1},
	{garment.MaterialLinen, 1},
	{garment.MaterialDenim, 1},
}

// Analyzer classifies fabric from texture metrics. It holds no mutable
// state, so one instance may serve overlapping runs.
type Analyzer struct {
	isolator *region.Isolator
	seed     int64
}

// New creates an Analyzer with the texture isolation profile.
func New() *Analyzer {
	return NewWithSeed(1)
}

// NewWithSeed creates an Analyzer whose fallback-pool draws derive from
// seed. The draw also mixes in the frame geometry, so a given analyzer
// answers the same for the same photo and still varies across photos.
func NewWithSeed(seed int64) *Analyzer {
	return &Analyzer{
		isolator: region.New(region.TextureProfile()),
		seed:     seed,
	}
}

// Classify estimates the fabric of the garment in the frame. It always
// returns a valid fabric label; runs canceled mid-pass get the fallback.
func (a *Analyzer) Classify(ctx context.Context, buf *pixels.Buffer) garment.Material {
	profile, ok := a.Analyze(ctx, buf)
	if !ok {
		return a.fallbackMaterial(buf)
	}
	return ClassifyProfile(profile)
}

// Analyze computes the full texture profile of the isolated region. ok is
// false when the region is too small for the metric passes or ctx ended.
func (a *Analyzer) Analyze(ctx context.Context, buf *pixels.Buffer) (Profile, bool) {
	isolated := a.isolator.Isolate(ctx, buf)
	if ctx.Err() != nil {
		return Profile{}, false
	}
	if isolated.Width() < minRegionSide || isolated.Height() < minRegionSide {
		return Profile{}, false
	}

	gray := toGrayscale(isolated)
	metrics := computeMetrics(gray)
	surface := surfaceOf(isolated, metrics)

	return Profile{
		Metrics:  metrics,
		Surface:  surface,
		Patterns: patternsOf(metrics),
	}, true
}

// fallbackMaterial draws from the weighted common-materials pool with a
// fresh source per call, keyed on the frame geometry.
func (a *Analyzer) fallbackMaterial(buf *pixels.Buffer) garment.Material {
	rng := rand.New(rand.NewSource(a.seed + int64(buf.Width())*7919 + int64(buf.Height())))

	total := 0
	for _, entry := range fallbackPool {
		total += entry.weight
	}
	n := rng.Intn(total)
	for _, entry := range fallbackPool {
		n -= entry.weight
		if n < 0 {
			return entry.material
		}
	}
	return garment.MaterialCotton
}
