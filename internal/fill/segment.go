package fill

import (
	"log"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// SeedColor is the color given to the first region found by Segment. Later
// regions use its successive RGB.Next values.
const SeedColor imaging.RGB = 0x0000FF

// Result describes a segmentation run.
type Result struct {
	// Regions is the number of regions labelled.
	Regions int `json:"regions"`

	// Pixels is the total number of pixels relabelled.
	Pixels int `json:"pixels"`

	// Labels lists the label given to each region, in discovery order.
	Labels []imaging.Label `json:"labels"`

	// Truncated is set when the LUT filled up before every white pixel was
	// reached.
	Truncated bool `json:"truncated"`
}

// Segment labels every 4-connected region of WhiteLabel pixels in img with
// a new LUT color and returns the number of regions. See SegmentRegions.
func Segment(img *imaging.Image, f Filler) int {
	return SegmentRegions(img, f).Regions
}

// SegmentRegions scans img in row-major order. Each pixel still carrying
// WhiteLabel seeds a new region: a color is appended to the LUT and f fills
// the region with its label. Relabelled pixels are no longer white, so no
// region is visited twice.
//
// If the LUT is full when a new region is found, the scan stops and the
// regions labelled so far are reported with Truncated set.
func SegmentRegions(img *imaging.Image, f Filler) Result {
	var res Result
	color := SeedColor

	for v := 0; v < img.Height(); v++ {
		for u := 0; u < img.Width(); u++ {
			if img.Pixel(u, v) != imaging.WhiteLabel {
				continue
			}

			label, err := img.AddColor(color)
			if err != nil {
				log.Printf("segment: stopping at region %d: %v", res.Regions, err)
				res.Truncated = true
				return res
			}

			res.Pixels += f.Fill(img, u, v, label)
			res.Labels = append(res.Labels, label)
			res.Regions++
			color = color.Next()
		}
	}
	return res
}
