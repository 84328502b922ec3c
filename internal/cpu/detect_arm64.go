//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs feature detection on arm64 systems.
//
// On ARMv8 (arm64), NEON is mandatory, so HasNEON should always be true.
func detectFeaturesImpl() Features {
	return Features{
		HasPacked16x2: true,
		HasNEON:       cpu.ARM64.HasASIMD,
		Architecture:  runtime.GOARCH,
	}
}
