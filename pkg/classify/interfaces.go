package classify

import (
	"context"

	"github.com/b1443/ClosetManager/pkg/garment"
	"github.com/b1443/ClosetManager/pkg/pixels"
)

// The three stage contracts are deliberately error-free: a stage must always
// terminate with a usable value, turning internal faults into fallback
// labels instead of propagating them. The aggregator relies on that to join
// all stages without partial-failure handling.

// ColorAnalyzer names the dominant garment color of a frame.
type ColorAnalyzer interface {
	DominantColor(ctx context.Context, buf *pixels.Buffer) string
}

// MaterialClassifier estimates the fabric of the garment in a frame.
type MaterialClassifier interface {
	ClassifyMaterial(ctx context.Context, buf *pixels.Buffer) garment.Material
}

// TypeEstimate is a garment type guess with its confidence score.
type TypeEstimate struct {
	Type       garment.Type
	Confidence float64
}

// TypeClassifier estimates the garment type of a frame. Implementations may
// be heuristic or model-backed; the aggregator only sees the estimate.
type TypeClassifier interface {
	ClassifyType(ctx context.Context, buf *pixels.Buffer) TypeEstimate
}
