// Package generic provides the portable scalar field kernels.
package generic

import "github.com/cwbudde/algo-fixfades/video/frame"

// FieldSums accumulates float64(sample) − baseline left to right, row by
// row, into the top (even rows) or bottom (odd rows) sum.
func FieldSums(p frame.Plane, baseline float64) (top, bottom float64) {
	for y := 0; y < p.Height; y++ {
		row := p.Row(y)
		if y%2 == 0 {
			for _, v := range row {
				top += float64(v) - baseline
			}
		} else {
			for _, v := range row {
				bottom += float64(v) - baseline
			}
		}
	}
	return top, bottom
}

// ScaleRow rescales one row in float64 and rounds each result to float32.
func ScaleRow(dst, src []float32, baseline, ref, field float64) {
	if len(dst) != len(src) {
		panic("fixfades: row length mismatch")
	}
	for x, v := range src {
		dst[x] = float32((float64(v)-baseline)*ref/field + baseline)
	}
}
