package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

// RequireNearlyEqualRel fails t if got and want differ by more than
// rel × max(1, |want|).
func RequireNearlyEqualRel(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > rel*math.Max(1, math.Abs(want)) {
		t.Fatalf("%s: got %v, want %v (diff %v > rel %v)", name, got, want, diff, rel)
	}
}

// RequirePlaneNearlyEqual fails t if the visible samples of got and want
// differ in shape or any pair exceeds rel × max(1, |want|).
func RequirePlaneNearlyEqual(t *testing.T, got, want frame.Plane, rel float64) {
	t.Helper()
	if got.Width != want.Width || got.Height != want.Height {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Width, got.Height, want.Width, want.Height)
	}
	for y := 0; y < want.Height; y++ {
		g, w := got.Row(y), want.Row(y)
		for x := range w {
			a, b := float64(g[x]), float64(w[x])
			if diff := math.Abs(a - b); diff > rel*math.Max(1, math.Abs(b)) {
				t.Fatalf("(%d,%d): got %v, want %v (diff %v)", x, y, a, b, diff)
			}
		}
	}
}

// RequireRowsEqual fails t unless rows y0, y0+2, ... of got and want hold
// identical samples.
func RequireRowsEqual(t *testing.T, got, want frame.Plane, y0 int) {
	t.Helper()
	for y := y0; y < want.Height; y += 2 {
		g, w := got.Row(y), want.Row(y)
		for x := range w {
			if math.Float32bits(g[x]) != math.Float32bits(w[x]) {
				t.Fatalf("row %d col %d: got %v, want %v", y, x, g[x], w[x])
			}
		}
	}
}

// AbsSum returns Σ|sample − baseline| over the visible samples of p, the
// scale against which field sum errors are judged.
func AbsSum(p frame.Plane, baseline float64) float64 {
	var s float64
	for y := 0; y < p.Height; y++ {
		for _, v := range p.Row(y) {
			s += math.Abs(float64(v) - baseline)
		}
	}
	return s
}

// MaxAbsDiff returns the maximum absolute difference between the visible
// samples of two planes. Returns an error if their shapes differ.
func MaxAbsDiff(a, b frame.Plane) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("shape mismatch: %dx%d vs %dx%d", a.Width, a.Height, b.Width, b.Height)
	}
	maxDiff := 0.0
	for y := 0; y < a.Height; y++ {
		ra, rb := a.Row(y), b.Row(y)
		for x := range ra {
			if d := math.Abs(float64(ra[x]) - float64(rb[x])); d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff, nil
}
