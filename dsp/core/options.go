// Package core holds configuration shared by the fixed-point kernel packages
// and small allocation helpers for callers that manage sample buffers.
package core

import (
	"errors"
	"strings"
)

// ErrUnknownImplementation is returned when a requested kernel
// implementation is not registered.
var ErrUnknownImplementation = errors.New("core: unknown kernel implementation")

// ImplementationAuto selects the best implementation for the host.
const ImplementationAuto = ""

// KernelConfig defines how a kernel handle is resolved and called.
type KernelConfig struct {
	// Implementation names a registered kernel set ("generic", "packed").
	// ImplementationAuto picks the highest-priority set the host supports.
	Implementation string

	// BoundsCheck routes calls through the checked variants, which report
	// short buffers as errors instead of panicking.
	BoundsCheck bool
}

// Option mutates a KernelConfig.
type Option func(*KernelConfig)

// DefaultKernelConfig returns the fast-path defaults: automatic selection,
// no bounds checks.
func DefaultKernelConfig() KernelConfig {
	return KernelConfig{
		Implementation: ImplementationAuto,
	}
}

// WithImplementation pins the kernel set by registry name. Names are matched
// case-insensitively; "auto" or "" restores automatic selection.
func WithImplementation(name string) Option {
	return func(cfg *KernelConfig) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "auto" {
			name = ImplementationAuto
		}
		cfg.Implementation = name
	}
}

// WithBoundsCheck enables the checked call path.
func WithBoundsCheck() Option {
	return func(cfg *KernelConfig) {
		cfg.BoundsCheck = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) KernelConfig {
	cfg := DefaultKernelConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
