//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs feature detection on amd64 systems.
//
// SSE2 is part of the x86-64 baseline, so packed execution is always
// available; unaligned 32-bit accesses are native.
func detectFeaturesImpl() Features {
	return Features{
		HasPacked16x2: true,
		HasSSE2:       cpu.X86.HasSSE2,
		Architecture:  runtime.GOARCH,
	}
}
