package colors

import (
	"math"
	"math/rand"
)

// Sample is one sampled pixel color.
type Sample struct {
	R float64
	G float64
	B float64
}

// Cluster is one k-means cluster: a centroid color plus the fraction of
// samples assigned to it.
type Cluster struct {
	Centroid Sample
	Weight   float64
}

const kmeansIterations = 10

// kmeans partitions samples into at most k clusters by nearest centroid in
// RGB space. Clusters come back ordered by weight descending, and weights
// sum to 1 for any non-empty sample set.
func kmeans(samples []Sample, k int, rng *rand.Rand) []Cluster {
	if len(samples) == 0 {
		return nil
	}
	if k > len(samples) {
		k = len(samples)
	}
	if k < 1 {
		k = 1
	}

	// Random initial centroids drawn from the samples.
	centroids := make([]Sample, k)
	for i := range centroids {
		centroids[i] = samples[rng.Intn(len(samples))]
	}

	assignments := make([]int, len(samples))
	for iter := 0; iter < kmeansIterations; iter++ {
		for i, s := range samples {
			assignments[i] = nearestCentroid(s, centroids)
		}

		// Recompute centroid means; empty clusters keep their position.
		sums := make([]Sample, k)
		counts := make([]int, k)
		for i, s := range samples {
			a := assignments[i]
			sums[a].R += s.R
			sums[a].G += s.G
			sums[a].B += s.B
			counts[a]++
		}
		for i := range centroids {
			if counts[i] == 0 {
				continue
			}
			n := float64(counts[i])
			centroids[i] = Sample{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
		}
	}

	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}

	clusters := make([]Cluster, 0, k)
	for i, c := range centroids {
		if counts[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{
			Centroid: c,
			Weight:   float64(counts[i]) / float64(len(samples)),
		})
	}

	// Order by weight descending so the dominant cluster is first.
	for i := 0; i < len(clusters)-1; i++ {
		for j := i + 1; j < len(clusters); j++ {
			if clusters[i].Weight < clusters[j].Weight {
				clusters[i], clusters[j] = clusters[j], clusters[i]
			}
		}
	}
	return clusters
}

func nearestCentroid(s Sample, centroids []Sample) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range centroids {
		dr := s.R - c.R
		dg := s.G - c.G
		db := s.B - c.B
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
