package colors

import (
	"math"
	"math/rand"
	"testing"
)

func testSamples() []Sample {
	var samples []Sample
	// Two well-separated groups, the dark one twice as large.
	for i := 0; i < 60; i++ {
		samples = append(samples, Sample{R: 30 + float64(i%5), G: 30, B: 30})
	}
	for i := 0; i < 30; i++ {
		samples = append(samples, Sample{R: 220, G: 220 + float64(i%5), B: 220})
	}
	return samples
}

func TestKmeansWeights(t *testing.T) {
	clusters := kmeans(testSamples(), 2, rand.New(rand.NewSource(1)))
	if len(clusters) == 0 {
		t.Fatal("kmeans returned no clusters")
	}

	var sum float64
	for _, c := range clusters {
		sum += c.Weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("cluster weights sum to %f, want 1", sum)
	}

	for i := 1; i < len(clusters); i++ {
		if clusters[i].Weight > clusters[i-1].Weight {
			t.Errorf("clusters not sorted by weight: %f before %f",
				clusters[i-1].Weight, clusters[i].Weight)
		}
	}
}

func TestKmeansDominantCluster(t *testing.T) {
	clusters := kmeans(testSamples(), 2, rand.New(rand.NewSource(1)))
	if len(clusters) < 1 {
		t.Fatal("kmeans returned no clusters")
	}

	// The dark group holds two thirds of the samples, so the heaviest
	// centroid must be dark.
	dominant := clusters[0].Centroid
	if dominant.R > 100 {
		t.Errorf("dominant centroid %+v is not from the larger dark group", dominant)
	}
}

func TestKmeansEdgeCases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := kmeans(nil, 2, rng); got != nil {
		t.Errorf("kmeans(nil) = %v, want nil", got)
	}

	one := []Sample{{R: 10, G: 20, B: 30}}
	clusters := kmeans(one, 3, rng)
	if len(clusters) != 1 {
		t.Fatalf("kmeans with one sample returned %d clusters", len(clusters))
	}
	if clusters[0].Weight != 1.0 {
		t.Errorf("single cluster weight = %f, want 1", clusters[0].Weight)
	}
}

func TestKmeansDeterministicWithFixedSeed(t *testing.T) {
	a := kmeans(testSamples(), 2, rand.New(rand.NewSource(1)))
	b := kmeans(testSamples(), 2, rand.New(rand.NewSource(1)))

	if len(a) != len(b) {
		t.Fatalf("cluster counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("cluster %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
