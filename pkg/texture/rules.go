package texture

import "github.com/b1443/ClosetManager/pkg/garment"

// Profile bundles everything a material rule may inspect.
type Profile struct {
	Metrics  Metrics  `json:"metrics"`
	Surface  Surface  `json:"surface"`
	Patterns Patterns `json:"patterns"`
}

// materialRule pairs a predicate with the fabric it selects.
type materialRule struct {
	label garment.Material
	match func(Profile) bool
}

// materialRules is evaluated in order; the first matching rule wins. The
// ordering is part of the classifier contract: denim must be tested before
// cotton, silk before polyester.
var materialRules = []materialRule{
	{garment.MaterialDenim, func(p Profile) bool {
		return p.Metrics.Roughness > 0.55 &&
			p.Metrics.Granularity > 0.4 &&
			p.Metrics.Directionality > 0.25 &&
			p.Patterns.Weave
	}},
	{garment.MaterialSilk, func(p Profile) bool {
		return p.Metrics.Roughness < 0.25 &&
			p.Metrics.Contrast < 0.25 &&
			p.Surface.Shininess > 0.6
	}},
	{garment.MaterialWool, func(p Profile) bool {
		return p.Metrics.Roughness > 0.6 &&
			p.Metrics.Directionality < 0.25 &&
			p.Patterns.Fiber &&
			p.Surface.Thickness > 0.4
	}},
	{garment.MaterialLinen, func(p Profile) bool {
		return p.Metrics.Roughness > 0.45 &&
			p.Patterns.Weave &&
			p.Patterns.Scale > 0.5
	}},
	{garment.MaterialCotton, func(p Profile) bool {
		return p.Metrics.Roughness < 0.5 &&
			p.Surface.Shininess < 0.4 &&
			!p.Patterns.Geometric &&
			!p.Patterns.Knit
	}},
	{garment.MaterialPolyester, func(p Profile) bool {
		return p.Metrics.Roughness < 0.4 &&
			p.Surface.Shininess > 0.4 &&
			p.Metrics.Regularity > 0.5
	}},
}

// ClassifyProfile resolves a texture profile to a fabric via the ordered
// rule table, falling back to unknown.
func ClassifyProfile(p Profile) garment.Material {
	for _, rule := range materialRules {
		if rule.match(p) {
			return rule.label
		}
	}
	return garment.MaterialUnknown
}
