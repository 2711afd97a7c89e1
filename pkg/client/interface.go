package client

import (
	"context"

	"github.com/b1443/ClosetManager/pkg/garment"
)

// VisionClient is a backend that can look at a garment photo and report what
// it sees.
type VisionClient interface {
	SimpleQuery(ctx context.Context, model, prompt, imgB64 string) (string, error)
	ObserveGarment(ctx context.Context, model, prompt, imgB64 string) (*garment.Observation, error)
}
