package imaging

import (
	"math"

	"github.com/ironsheep/lutimage-mcp/internal/instr"
)

// Point represents a 2D point
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionStats summarises the pixels carrying one label
type RegionStats struct {
	Label    Label  `json:"label"`
	Hex      string `json:"hex"`
	Pixels   int    `json:"pixels"`
	Bounds   Region `json:"bounds"`
	Centroid Point  `json:"centroid"`
}

// MeasureRegions computes pixel count, bounding box and centroid for every
// label used by at least one pixel, in label order.
//
// After segmentation each generated label is one 4-connected region, so this
// reports the regions found.
func MeasureRegions(img *Image) []RegionStats {
	type acc struct {
		n          int
		sumX, sumY int
		minX, minY int
		maxX, maxY int
	}
	accs := make([]acc, len(img.lut))
	for i := range accs {
		accs[i].minX, accs[i].minY = math.MaxInt, math.MaxInt
		accs[i].maxX, accs[i].maxY = -1, -1
	}

	for v := 0; v < img.height; v++ {
		for u, label := range img.pix[v*img.width : (v+1)*img.width] {
			a := &accs[label]
			a.n++
			a.sumX += u
			a.sumY += v
			a.minX = min(a.minX, u)
			a.minY = min(a.minY, v)
			a.maxX = max(a.maxX, u)
			a.maxY = max(a.maxY, v)
		}
	}
	instr.PixMem.Add(len(img.pix))

	stats := make([]RegionStats, 0, len(accs))
	for i, a := range accs {
		if a.n == 0 {
			continue
		}
		stats = append(stats, RegionStats{
			Label:  Label(i),
			Hex:    img.lut[i].Hex(),
			Pixels: a.n,
			Bounds: Region{X1: a.minX, Y1: a.minY, X2: a.maxX + 1, Y2: a.maxY + 1},
			Centroid: Point{
				X: math.Round(float64(a.sumX)/float64(a.n)*100) / 100,
				Y: math.Round(float64(a.sumY)/float64(a.n)*100) / 100,
			},
		})
	}
	return stats
}
