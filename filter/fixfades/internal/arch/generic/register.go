package generic

import (
	"github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/registry"
	"github.com/cwbudde/algo-fixfades/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		FieldSums: FieldSums,
		ScaleRow:  ScaleRow,
	})
}
