package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

// NoisePlane returns a w×h plane with the given stride padding, filled with
// deterministic uniform samples in [lo, hi). Padding is filled with a
// sentinel so tests notice reads or writes past the row width.
func NoisePlane(seed int64, w, h, pad int, lo, hi float32) frame.Plane {
	stride := w + pad
	data := make([]float32, stride*h)
	for i := range data {
		data[i] = PadSentinel
	}
	p := frame.PlaneFromSlice(data, w, h, stride)

	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < h; y++ {
		row := p.Row(y)
		for x := range row {
			row[x] = lo + rng.Float32()*(hi-lo)
		}
	}
	return p
}

// PadSentinel marks stride padding in generated planes.
const PadSentinel float32 = -12345

// FadedPlane returns a plane whose even rows carry gainTop × base and whose
// odd rows carry gainBottom × base, emulating a fade misapplied per field.
func FadedPlane(seed int64, w, h, pad int, gainTop, gainBottom float32) frame.Plane {
	p := NoisePlane(seed, w, h, pad, 0.1, 0.9)
	for y := 0; y < h; y++ {
		g := gainTop
		if y%2 != 0 {
			g = gainBottom
		}
		row := p.Row(y)
		for x := range row {
			row[x] *= g
		}
	}
	return p
}

// FadedFrame builds a frame of format with every plane produced by
// FadedPlane, using a distinct seed per plane.
func FadedFrame(seed int64, format *frame.Format, w, h int, gainTop, gainBottom float32) *frame.Frame {
	f := &frame.Frame{Format: format, Planes: make([]frame.Plane, format.NumPlanes)}
	for i := range f.Planes {
		pw, ph := format.PlaneSize(i, w, h)
		f.Planes[i] = FadedPlane(seed+int64(i), pw, ph, 3, gainTop, gainBottom)
	}
	return f
}

// PlaneFromRows builds an unpadded plane from rows of equal length.
func PlaneFromRows(rows ...[]float32) frame.Plane {
	if len(rows) == 0 {
		return frame.NewPlane(0, 0)
	}
	w := len(rows[0])
	data := make([]float32, 0, w*len(rows))
	for _, r := range rows {
		data = append(data, r...)
	}
	return frame.PlaneFromSlice(data, w, len(rows), w)
}
