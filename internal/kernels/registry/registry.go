// Package registry provides the implementation registry for fixed-point kernels.
//
// Every kernel set (all-scalar, packed, ...) registers one OpEntry from an
// init() function. Callers select the highest-priority entry the host
// supports, so exactly one concrete implementation backs each operation for
// the lifetime of a kernel handle.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-s16/internal/cpu"
)

// FillFn writes value to dst[:n].
type FillFn func(value int16, dst []int16, n int)

// CopyFn copies src[:n] to dst[:n].
type CopyFn func(src, dst []int16, n int)

// BinaryFn combines a[:n] and b[:n] element-wise into dst[:n].
type BinaryFn func(a, b, dst []int16, n int)

// UnaryFn transforms src[:n] element-wise into dst[:n].
type UnaryFn func(src, dst []int16, n int)

// MeanFn returns the truncated mean of src[:n].
type MeanFn func(src []int16, n int) int16

// ShiftFn shifts src[:n] by shiftBits into dst[:n].
type ShiftFn func(src []int16, shiftBits int8, dst []int16, n int)

// TransposeFn writes the transpose of the rows x cols matrix src into dst.
type TransposeFn func(src []int16, rows, cols int, dst []int16)

// OpEntry represents a registered kernel implementation variant.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "generic", "packed").
	Name string

	// SIMDLevel indicates the execution strategy required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - Packed16x2: 10
	Priority int

	Fill      FillFn
	Copy      CopyFn
	Add       BinaryFn
	Sub       BinaryFn
	Mean      MeanFn
	Shift     ShiftFn
	Abs       UnaryFn
	Transpose TransposeFn
}

// Complete reports whether every operation of the entry is populated.
func (e *OpEntry) Complete() bool {
	return e.Fill != nil && e.Copy != nil && e.Add != nil && e.Sub != nil &&
		e.Mean != nil && e.Shift != nil && e.Abs != nil && e.Transpose != nil
}

// OpRegistry manages the registration and lookup of kernel implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the public kernel packages.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given features.
//
// Returns the highest-priority entry compatible with the host, or nil if
// none is (which should never happen if a generic fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the entry registered under name, or nil.
// The entry is returned regardless of host support; every registered
// implementation is expressible in portable Go.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

func (r *OpRegistry) sortOnce() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
