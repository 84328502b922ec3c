package buffer

import (
	"github.com/cwbudde/algo-s16/dsp/core"
	"github.com/cwbudde/algo-s16/dsp/matrix"
	"github.com/cwbudde/algo-s16/dsp/vector"
)

// Buffer owns a []int16 and keeps its capacity across resizes.
type Buffer struct {
	samples []int16
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]int16, length)}
}

// FromSlice wraps s without copying.
func FromSlice(s []int16) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []int16 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, keeping existing samples. Samples exposed
// beyond the previous length are zero.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n > cap(b.samples) {
		grown := make([]int16, n)
		copy(grown, b.samples)
		b.samples = grown
		return
	}
	b.samples = core.EnsureLen(b.samples, n)
	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}

// Fill sets all samples to v.
func (b *Buffer) Fill(v int16) {
	vector.Fill(v, b.samples, len(b.samples))
}

// Load resizes the buffer to len(src) and copies src into it.
func (b *Buffer) Load(src []int16) {
	b.Resize(len(src))
	core.CopyInto(b.samples, src)
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	c := New(len(b.samples))
	vector.Copy(b.samples, c.samples, len(b.samples))
	return c
}

// Matrix resizes the buffer to rows*cols and returns a row-major matrix
// descriptor over it. The descriptor shares storage with the buffer until
// the next Resize that grows past the current capacity.
func (b *Buffer) Matrix(rows, cols int) *matrix.Matrix {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	b.Resize(rows * cols)
	return matrix.New(rows, cols, b.samples)
}
