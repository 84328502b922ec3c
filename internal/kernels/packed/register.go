//go:build !purego

package packed

import (
	"github.com/cwbudde/algo-s16/dsp/fixed"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"
)

// init registers the packed kernels for the native packing order.
//
// Priority: 10 (preferred over generic when packed execution is available)
func init() {
	registry.Global.Register(New(fixed.NativeOrder).Entry())
}
