package classify

import (
	"context"

	"github.com/b1443/ClosetManager/pkg/colors"
	"github.com/b1443/ClosetManager/pkg/garment"
	"github.com/b1443/ClosetManager/pkg/pixels"
	"github.com/b1443/ClosetManager/pkg/shape"
	"github.com/b1443/ClosetManager/pkg/texture"
)

// HeuristicColor adapts the color analyzer to the stage contract.
type HeuristicColor struct {
	analyzer *colors.Analyzer
}

// NewHeuristicColor wraps the default color analyzer.
func NewHeuristicColor() *HeuristicColor {
	return &HeuristicColor{analyzer: colors.New()}
}

// DominantColor names the dominant garment color. Cancellation stops the
// analysis pass short.
func (h *HeuristicColor) DominantColor(ctx context.Context, buf *pixels.Buffer) string {
	return h.analyzer.DominantColor(ctx, buf)
}

// HeuristicMaterial adapts the texture analyzer to the stage contract.
type HeuristicMaterial struct {
	analyzer *texture.Analyzer
}

// NewHeuristicMaterial wraps the default texture analyzer.
func NewHeuristicMaterial() *HeuristicMaterial {
	return &HeuristicMaterial{analyzer: texture.New()}
}

// ClassifyMaterial estimates the fabric from surface texture. Cancellation
// stops the analysis pass short.
func (h *HeuristicMaterial) ClassifyMaterial(ctx context.Context, buf *pixels.Buffer) garment.Material {
	return h.analyzer.Classify(ctx, buf)
}

// HeuristicType adapts the shape analyzer to the stage contract.
type HeuristicType struct {
	analyzer *shape.Analyzer
}

// NewHeuristicType wraps the default shape analyzer.
func NewHeuristicType() *HeuristicType {
	return &HeuristicType{analyzer: shape.New()}
}

// ClassifyType estimates the garment type from frame proportions. The shape
// pass samples a capped pixel grid, so it finishes within the cancellation
// grace the aggregator allows abandoned stages.
func (h *HeuristicType) ClassifyType(_ context.Context, buf *pixels.Buffer) TypeEstimate {
	r := h.analyzer.Classify(buf)
	return TypeEstimate{Type: r.Type, Confidence: r.Confidence}
}
