// Package buffer provides a reusable int16 sample buffer and pool.
//
// Kernels in dsp/vector and dsp/matrix never allocate and accept raw
// []int16 slices. Buffer is an optional convenience for callers that want to
// size, reuse and recycle those slices across blocks of varying length.
package buffer
