//go:build amd64 && !purego

package fixfades

import (
	_ "github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/amd64/fma" // register AVX+FMA kernels
	_ "github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/generic"   // register generic kernels
	_ "github.com/cwbudde/algo-fixfades/filter/fixfades/internal/arch/registry"  // initialize kernel registry
)
