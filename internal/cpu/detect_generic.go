//go:build !amd64 && !arm64

package cpu

import (
	"math/bits"
	"runtime"
)

// detectFeaturesImpl is the fallback for other architectures.
//
// Packed execution only needs a native word of at least 32 bits.
func detectFeaturesImpl() Features {
	return Features{
		HasPacked16x2: bits.UintSize >= 32,
		Architecture:  runtime.GOARCH,
	}
}
