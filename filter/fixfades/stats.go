package fixfades

import (
	"math"

	"github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/generic"
	"github.com/cwbudde/algo-fixfades/video/frame"
)

// FieldStats holds the field sums of one plane of one frame.
type FieldStats struct {
	Top    float64 // Σ(sample − baseline) over even rows
	Bottom float64 // Σ(sample − baseline) over odd rows

	// FieldPixels is floor(width·height/2).
	FieldPixels int64
}

// NormalizedDifference returns |Top − Bottom| / FieldPixels. It is NaN for
// a plane with fewer than two samples and zero sums.
func (s FieldStats) NormalizedDifference() float64 {
	return math.Abs(s.Top-s.Bottom) / float64(s.FieldPixels)
}

// Measure computes the field statistics of p with the scalar kernel.
func Measure(p frame.Plane, baseline float64) FieldStats {
	top, bottom := generic.FieldSums(p, baseline)
	return FieldStats{Top: top, Bottom: bottom, FieldPixels: fieldPixels(p)}
}

// Decide reports whether a plane with stats s must be rescaled. Only a
// normalized difference strictly below threshold bypasses the rescale, so
// a NaN difference rescales.
func Decide(s FieldStats, threshold float64) bool {
	return !(s.NormalizedDifference() < threshold)
}

func fieldPixels(p frame.Plane) int64 {
	return int64(p.Width) * int64(p.Height) / 2
}
