// Package vector provides element-wise kernels over 16-bit fixed-point
// sample buffers: fill, copy, add, subtract, shift, absolute value and mean.
//
// Every kernel takes caller-owned slices and a block size, and touches only
// the first blockSize samples of each slice. Nothing is allocated and no
// reference is retained after a call returns. Arithmetic saturates to
// [-32768, 32767] instead of wrapping.
//
// # Fast and checked paths
//
// The package-level kernels (Add, Shift, ...) do not validate their
// arguments: a slice shorter than blockSize makes the Go runtime panic.
// The Checked variants (AddChecked, ShiftChecked, ...) validate first and
// return ErrOutOfRange or ErrInvalidArgument without writing anything.
//
// # Aliasing
//
// dst may be the same slice as a source (in-place processing). Overlapping
// buffers that are offset from each other are not supported and produce
// unspecified results.
//
// # Implementation selection
//
// Kernels are resolved once from the kernel registry: the packed
// implementation (two samples per 32-bit word) when the host supports it and
// the module was not built with the purego tag, the all-scalar one otherwise.
// Both produce identical output. New returns a handle pinned to a specific
// implementation or with bounds checks enabled.
package vector
