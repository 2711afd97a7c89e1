package garment

// Observation is a garment sighting reported by a vision model backend.
type Observation struct {
	Type        string   `json:"type"`
	Confidence  float64  `json:"confidence"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
