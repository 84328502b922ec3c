// Package packed provides fixed-point kernels that move two samples per
// 32-bit word.
//
// Every kernel follows the same shape: n/4 main iterations, each handling two
// packed words (four samples), followed by n%4 scalar iterations using the
// per-element transforms of package fixed. The output is identical to the
// all-scalar kernels for every input and every n.
//
// A Kernels value is bound to one packing order. The registered set uses
// fixed.NativeOrder; other orders exist so both layouts can be verified on
// any host.
package packed

import (
	"github.com/cwbudde/algo-s16/dsp/fixed"
	"github.com/cwbudde/algo-s16/internal/cpu"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"
)

// Name is the registry name of the packed kernel set.
const Name = "packed"

// Kernels is a packed kernel set bound to one packing order.
type Kernels struct {
	order fixed.Order
}

// New returns a kernel set that packs samples with order.
func New(order fixed.Order) Kernels {
	return Kernels{order: order}
}

// Order returns the packing order of the kernel set.
func (k Kernels) Order() fixed.Order {
	return k.order
}

// Entry returns a registry entry backed by k.
func (k Kernels) Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      Name,
		SIMDLevel: cpu.SIMDPacked16x2,
		Priority:  10,

		Fill:      k.Fill,
		Copy:      k.Copy,
		Add:       k.Add,
		Sub:       k.Sub,
		Mean:      k.Mean,
		Shift:     k.Shift,
		Abs:       k.Abs,
		Transpose: k.Transpose,
	}
}
