// Package region locates the bounding box most likely to contain the garment
// inside a photo, rejecting backdrop. Detection faults never propagate: the
// isolator always answers with a region, falling back to a fixed centered
// window when no acceptable candidate is found.
package region

import (
	"context"
	"image"
	"math"

	"github.com/b1443/ClosetManager/pkg/pixels"
)

// Region is a rectangular region of interest in buffer coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
	Score  float64
}

// Center returns the center point of the region.
func (r Region) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Area returns the area of the region in pixels.
func (r Region) Area() int {
	return r.Width * r.Height
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Profile constrains candidate detection for one analyzer stage.
type Profile struct {
	// AspectMin/AspectMax bound candidate width/height ratios.
	AspectMin float64
	AspectMax float64
	// MinAreaFrac is the minimum candidate area relative to the frame.
	MinAreaFrac float64
	// MaxCandidates caps the number of scored observations kept.
	MaxCandidates int
	// FallbackFrac sizes the centered square used when detection finds nothing.
	FallbackFrac float64
	// EdgeThreshold is the minimum mean saliency for a window to qualify.
	EdgeThreshold float64
}

// ColorProfile returns the constraints used ahead of color analysis.
func ColorProfile() Profile {
	return Profile{
		AspectMin:     0.3,
		AspectMax:     3.0,
		MinAreaFrac:   0.20,
		MaxCandidates: 3,
		FallbackFrac:  0.6,
		EdgeThreshold: 0.01,
	}
}

// TextureProfile returns the constraints used ahead of texture analysis.
func TextureProfile() Profile {
	return Profile{
		AspectMin:     0.2,
		AspectMax:     5.0,
		MinAreaFrac:   0.15,
		MaxCandidates: 5,
		FallbackFrac:  0.5,
		EdgeThreshold: 0.01,
	}
}

// Isolator detects the dominant foreground object in a frame.
type Isolator struct {
	profile Profile
}

// New creates an Isolator with the given detection profile.
func New(profile Profile) *Isolator {
	return &Isolator{profile: profile}
}

// Isolate crops the buffer to the garment region. The result is always
// usable: either the best detected candidate or the centered fallback.
// Cancellation stops the window scan early and yields the fallback.
func (iso *Isolator) Isolate(ctx context.Context, buf *pixels.Buffer) *pixels.Buffer {
	return buf.Crop(iso.Locate(ctx, buf).Rect())
}

// Locate returns the region most likely to contain the garment. Among
// acceptable candidates the largest bounding box wins; ties go to the
// earliest candidate in scan order. With no candidate, or when ctx ends
// mid-scan, the centered fallback window is returned.
func (iso *Isolator) Locate(ctx context.Context, buf *pixels.Buffer) Region {
	candidates := iso.candidates(ctx, buf)
	if len(candidates) == 0 {
		return iso.Fallback(buf.Width(), buf.Height())
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Area() > best.Area() {
			best = c
		}
	}
	return best
}

// Fallback returns the fixed centered square covering FallbackFrac of the
// smaller frame dimension.
func (iso *Isolator) Fallback(width, height int) Region {
	side := int(float64(minInt(width, height)) * iso.profile.FallbackFrac)
	if side < 1 {
		side = 1
	}
	return Region{
		X:      (width - side) / 2,
		Y:      (height - side) / 2,
		Width:  side,
		Height: side,
	}
}

// candidates runs saliency-window detection and returns up to MaxCandidates
// acceptable observations ordered by score.
func (iso *Isolator) candidates(ctx context.Context, buf *pixels.Buffer) []Region {
	width, height := buf.Width(), buf.Height()
	if width < 16 || height < 16 {
		return nil
	}
	if ctx.Err() != nil {
		return nil
	}

	saliency := saliencyMap(buf)
	regions := iso.scanWindows(ctx, saliency, width, height)
	if ctx.Err() != nil {
		return nil
	}
	regions = iso.filter(regions, width, height)

	// Sort by score descending, stable in scan order.
	for i := 0; i < len(regions)-1; i++ {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Score < regions[j].Score {
				regions[i], regions[j] = regions[j], regions[i]
			}
		}
	}
	if len(regions) > iso.profile.MaxCandidates {
		regions = regions[:iso.profile.MaxCandidates]
	}
	return regions
}

// saliencyMap scores each interior pixel by local edge strength plus a small
// brightness term.
func saliencyMap(buf *pixels.Buffer) [][]float64 {
	width, height := buf.Width(), buf.Height()

	m := make([][]float64, height)
	for i := range m {
		m[i] = make([]float64, width)
	}

	neighbors := [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			r1, g1, b1, _ := buf.RGBA(x, y)

			var edgeStrength float64
			for _, off := range neighbors {
				r2, g2, b2, _ := buf.RGBA(x+off[0], y+off[1])
				dr := float64(r1) - float64(r2)
				dg := float64(g1) - float64(g2)
				db := float64(b1) - float64(b2)
				edgeStrength += math.Sqrt(dr*dr + dg*dg + db*db)
			}
			edgeStrength /= 8.0 * 441.673 // 8 neighbors, max channel distance sqrt(3)*255

			brightness := (float64(r1) + float64(g1) + float64(b1)) / (3.0 * 255.0)

			m[y][x] = 0.8*edgeStrength + 0.2*brightness
		}
	}
	return m
}

// scanWindows slides rectangular windows of several sizes and aspect shapes
// over the saliency map and keeps those above the edge threshold.
func (iso *Isolator) scanWindows(ctx context.Context, saliency [][]float64, width, height int) []Region {
	var regions []Region

	base := minInt(width, height)
	windowSides := []int{base / 2, (base * 2) / 3, (base * 4) / 5}
	// Taller and wider variants probe the allowed aspect range.
	aspectShapes := []float64{1.0, clampF(0.5, iso.profile.AspectMin, iso.profile.AspectMax), clampF(2.0, iso.profile.AspectMin, iso.profile.AspectMax)}

	for _, side := range windowSides {
		if side < 8 {
			continue
		}
		for _, aspect := range aspectShapes {
			if ctx.Err() != nil {
				return nil
			}
			w := side
			h := int(float64(side) / aspect)
			if w > width {
				w = width
			}
			if h > height {
				h = height
			}
			if w < 8 || h < 8 {
				continue
			}

			stepX := maxInt(w/4, 4)
			stepY := maxInt(h/4, 4)
			for y := 0; y <= height-h; y += stepY {
				for x := 0; x <= width-w; x += stepX {
					score := windowScore(saliency, x, y, w, h)
					if score > iso.profile.EdgeThreshold {
						regions = append(regions, Region{X: x, Y: y, Width: w, Height: h, Score: score})
					}
				}
			}
		}
	}
	return regions
}

func windowScore(saliency [][]float64, x, y, w, h int) float64 {
	var total float64
	count := 0
	// Sample on a stride so large windows stay cheap.
	stride := maxInt(minInt(w, h)/32, 1)
	for ry := y; ry < y+h && ry < len(saliency); ry += stride {
		row := saliency[ry]
		for rx := x; rx < x+w && rx < len(row); rx += stride {
			total += row[rx]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// filter drops candidates outside the aspect and minimum-area constraints.
func (iso *Isolator) filter(regions []Region, width, height int) []Region {
	minArea := int(float64(width*height) * iso.profile.MinAreaFrac)

	var kept []Region
	for _, r := range regions {
		if r.Height == 0 {
			continue
		}
		aspect := float64(r.Width) / float64(r.Height)
		if aspect < iso.profile.AspectMin || aspect > iso.profile.AspectMax {
			continue
		}
		if r.Area() < minArea {
			continue
		}
		kept = append(kept, r)
	}
	return kept
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

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
