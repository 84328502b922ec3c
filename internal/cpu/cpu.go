// Package cpu provides capability detection for fixed-point kernel selection.
//
// The only capability the kernels care about is packed execution: moving two
// 16-bit samples through one native 32-bit word. Detection also records the
// byte order of the target, which fixes how samples are placed in a word.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// SIMDLevel represents an execution strategy a kernel implementation needs.
type SIMDLevel int

const (
	// SIMDNone indicates one-sample-at-a-time scalar execution.
	SIMDNone SIMDLevel = iota

	// SIMDPacked16x2 indicates two 16-bit lanes per 32-bit word.
	SIMDPacked16x2
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDPacked16x2:
		return "Packed16x2"
	default:
		return "Unknown"
	}
}

// Features describes host capabilities relevant to kernel selection.
type Features struct {
	// HasPacked16x2 reports that two samples can travel in one native word.
	HasPacked16x2 bool

	// BigEndian reports the byte order of the target.
	BigEndian bool

	// Host SIMD extensions backing the packed path, informational only.
	HasSSE2 bool
	HasNEON bool

	// ForceGeneric disables packed execution (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g., "amd64", "arm64").
	Architecture string
}

var (
	// detectedFeatures holds the cached features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the capabilities of the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.BigEndian = cpu.IsBigEndian
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasPacked16x2 returns true if packed execution is available and not forced off.
func HasPacked16x2() bool {
	return Supports(DetectFeatures(), SIMDPacked16x2)
}

// SetForcedFeatures overrides feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given features support the specified SIMD level.
// This function is used by the kernel registry to determine implementation compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDPacked16x2:
		return features.HasPacked16x2
	default:
		return false
	}
}
