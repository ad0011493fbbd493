//go:build amd64 && !purego

package fma

import (
	"github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/registry"
	"github.com/cwbudde/algo-fixfades/internal/cpu"
)

// init registers the 8-lane kernels for CPUs with AVX and FMA3.
//
// Priority: 20 (preferred over generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx-fma",
		SIMDLevel: cpu.SIMDAVXFMA,
		Priority:  20,
		FieldSums: FieldSums,
		ScaleRow:  ScaleRow,
	})
}
