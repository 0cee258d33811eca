package renderer

import (
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	JobID          uuid.UUID     // Identifies one Render call in logs
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	Workers        int           // Number of tiles rendered concurrently
	Duration       time.Duration // Wall-clock render time
}

// merge adds the counts of a finished tile
func (rs *RenderStats) merge(tile TileStats) {
	rs.TotalPixels += tile.Pixels
	rs.TotalSamples += tile.Samples
	rs.Tiles++
}

// finalize computes derived statistics
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// TileStats contains the counts for one rendered tile
type TileStats struct {
	Pixels  int
	Samples int
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Color // RGB accumulator for final result
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Color{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
