package texture

import "github.com/b1443/ClosetManager/pkg/pixels"

// grayscale is a reduced-resolution luma plane with values in [0,1].
type grayscale struct {
	pix    []float64
	width  int
	height int
}

// maxAnalysisSide caps the grayscale working resolution.
const maxAnalysisSide = 256

// toGrayscale converts a buffer to a luma plane, downscaling large regions
// first so the metric passes stay cheap.
func toGrayscale(buf *pixels.Buffer) *grayscale {
	side := buf.Width()
	if buf.Height() > side {
		side = buf.Height()
	}
	if side > maxAnalysisSide {
		buf = buf.Downscale(float64(maxAnalysisSide) / float64(side))
	}

	w, h := buf.Width(), buf.Height()
	g := &grayscale{
		pix:    make([]float64, w*h),
		width:  w,
		height: h,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.pix[y*w+x] = buf.Luma(x, y)
		}
	}
	return g
}

func (g *grayscale) at(x, y int) float64 {
	return g.pix[y*g.width+x]
}
