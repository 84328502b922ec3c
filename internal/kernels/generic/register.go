package generic

import (
	"github.com/cwbudde/algo-s16/internal/cpu"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"
)

// Name is the registry name of the all-scalar kernel set.
const Name = "generic"

// init registers the scalar kernels with the kernel registry.
//
// Priority: 0 (lowest - used only when packed execution is unavailable or
// ForceGeneric is set)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry describing the scalar kernels.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Fill:      Fill,
		Copy:      Copy,
		Add:       Add,
		Sub:       Sub,
		Mean:      Mean,
		Shift:     Shift,
		Abs:       Abs,
		Transpose: Transpose,
	}
}
