// Package detection asks a vision model what garment a photo shows. It is an
// optional alternative to the heuristic shape classifier: the model's answer
// is normalized into the closed garment vocabulary and falls back to the
// heuristic estimate whenever the model is unreachable or unsure.
package detection

import (
	"context"
	"log/slog"
	"strings"

	"github.com/b1443/ClosetManager/pkg/classify"
	"github.com/b1443/ClosetManager/pkg/client"
	"github.com/b1443/ClosetManager/pkg/garment"
	"github.com/b1443/ClosetManager/pkg/pixels"
)

// GarmentPrompt asks the model for a single-garment observation.
const GarmentPrompt = `You are a clothing catalog assistant looking at one photo of a single garment.

Return JSON only:
{
  "type": "string",
  "confidence": 0.0,
  "description": "short neutral sentence (<= 20 words)",
  "tags": ["tag1", "tag2", "tag3"]
}

HARD RULES
- "type" must be exactly one of: shirt, pants, jacket, dress, skirt, shorts,
  sweater, hoodie, jeans, blazer, t-shirt, blouse, coat, vest, cardigan, unknown.
- "confidence" is in [0,1] and reflects how sure you are of the type.
- Description must be brief and factual.
- Tags: lowercase, concise, no punctuation or duplicates.
- If the photo shows no garment, return:
  {"type":"unknown","confidence":0.0,"description":"no garment visible","tags":["none"]}
- JSON only. No markdown, no code fences, no comments, no trailing commas.`

// Send parameters for images forwarded to the model.
const (
	sendFormat  = "jpg"
	sendMaxDim  = 1024
	sendQuality = 85
)

// Confidence caps per fallback layer: full model answers keep their score up
// to modelCap, heuristic answers after an unsure model are capped lower, and
// heuristic answers after a backend failure lower still.
const (
	modelCap          = 0.95
	unsureFallbackCap = 0.6
	errorFallbackCap  = 0.4
)

// Observer classifies garment type through a vision model, with the
// heuristic classifier as its safety net. It satisfies the aggregator's
// TypeClassifier contract and therefore never fails.
type Observer struct {
	client    client.VisionClient
	model     string
	heuristic classify.TypeClassifier
}

// NewObserver creates an Observer over the given vision backend and model
// name.
func NewObserver(visionClient client.VisionClient, model string) *Observer {
	return &Observer{
		client:    visionClient,
		model:     model,
		heuristic: classify.NewHeuristicType(),
	}
}

// ClassifyType asks the model for a garment observation and normalizes it
// into a type estimate.
func (o *Observer) ClassifyType(ctx context.Context, buf *pixels.Buffer) classify.TypeEstimate {
	imgB64, err := buf.Base64(sendFormat, sendMaxDim, sendQuality)
	if err != nil {
		slog.Warn("vision encode failed, using heuristic type", "error", err)
		return o.heuristicCapped(ctx, buf, errorFallbackCap)
	}

	obs, err := o.client.ObserveGarment(ctx, o.model, GarmentPrompt, imgB64)
	if err != nil {
		slog.Warn("vision backend failed, using heuristic type", "error", err)
		return o.heuristicCapped(ctx, buf, errorFallbackCap)
	}

	gtype := garment.ParseType(obs.Type)
	if gtype == garment.TypeUnknown || obs.Confidence <= 0 {
		slog.Debug("vision backend unsure, using heuristic type",
			"reported_type", obs.Type, "reported_confidence", obs.Confidence)
		return o.heuristicCapped(ctx, buf, unsureFallbackCap)
	}

	conf := obs.Confidence
	if conf > modelCap {
		conf = modelCap
	}
	slog.Debug("vision observation",
		"type", gtype,
		"confidence", conf,
		"description", strings.TrimSpace(obs.Description))
	return classify.TypeEstimate{Type: gtype, Confidence: conf}
}

// heuristicCapped runs the heuristic classifier and caps the confidence to
// reflect the fallback layer taken.
func (o *Observer) heuristicCapped(ctx context.Context, buf *pixels.Buffer, limit float64) classify.TypeEstimate {
	est := o.heuristic.ClassifyType(ctx, buf)
	if est.Confidence > limit {
		est.Confidence = limit
	}
	return est
}
