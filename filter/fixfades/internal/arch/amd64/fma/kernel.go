//go:build amd64 && !purego

// Package fma provides field kernels working on 8 float32 lanes with fused
// multiply-add, laid out to match 256-bit AVX registers.
//
// The lane loops are written in Go; math.FMA lowers to VFMADD on CPUs that
// report FMA3, which is the only level this package registers for.
package fma

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixfades/video/frame"
)

const lanes = 8

// FieldSums accumulates each row into 8 float32 lanes, widens the lanes into
// float64 field accumulators at the end of the row, and sums the tail
// (Width mod 8) in float64. The lanes are reduced horizontally once per
// field and the baseline is removed as baseline × field sample count.
//
// Results differ from the generic kernel by reassociation only.
func FieldSums(p frame.Plane, baseline float64) (top, bottom float64) {
	var topLanes, bottomLanes [lanes]float64
	var topTail, bottomTail float64

	body := p.Width &^ (lanes - 1)
	for y := 0; y < p.Height; y++ {
		row := p.Row(y)

		var acc [lanes]float32
		for x := 0; x < body; x += lanes {
			v := row[x : x+lanes : x+lanes]
			for i := range lanes {
				acc[i] += v[i]
			}
		}

		var tail float64
		for _, v := range row[body:] {
			tail += float64(v)
		}

		fieldLanes, fieldTail := &topLanes, &topTail
		if y%2 != 0 {
			fieldLanes, fieldTail = &bottomLanes, &bottomTail
		}
		for i := range lanes {
			fieldLanes[i] += float64(acc[i])
		}
		*fieldTail += tail
	}

	topCount := float64((p.Height+1)/2) * float64(p.Width)
	bottomCount := float64(p.Height/2) * float64(p.Width)

	top = vecmath.Sum(topLanes[:]) + topTail - baseline*topCount
	bottom = vecmath.Sum(bottomLanes[:]) + bottomTail - baseline*bottomCount
	return top, bottom
}

// ScaleRow computes fma(src − baseline, ref/field, baseline) in float32 for
// the 8-lane body and falls back to the float64 formula for the tail.
func ScaleRow(dst, src []float32, baseline, ref, field float64) {
	if len(dst) != len(src) {
		panic("fixfades: row length mismatch")
	}

	b := float32(baseline)
	k := float32(ref / field)

	n := len(src)
	body := n &^ (lanes - 1)
	for x := 0; x < body; x += lanes {
		s := src[x : x+lanes : x+lanes]
		d := dst[x : x+lanes : x+lanes]
		for i := range lanes {
			d[i] = fma32(s[i]-b, k, b)
		}
	}

	for x := body; x < n; x++ {
		dst[x] = float32((float64(src[x])-baseline)*ref/field + baseline)
	}
}

// fma32 rounds a·b+c once in float64; for float32 inputs the product is
// exact, so the result matches a single-precision fused multiply-add except
// in rare double-rounding cases.
func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}
