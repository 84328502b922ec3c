package vector

import (
	"github.com/cwbudde/algo-s16/dsp/core"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"
)

// Kernels is a vector kernel set resolved once from the registry.
//
// A Kernels value is immutable and safe for concurrent use on disjoint
// buffers. Its methods return an error only when bounds checking is
// enabled; otherwise short buffers panic like the package-level functions.
type Kernels struct {
	entry   *registry.OpEntry
	checked bool
}

// New resolves a kernel set. Without options it selects the best
// implementation for the host and skips bounds checks.
// It returns core.ErrUnknownImplementation for an unregistered name.
func New(opts ...core.Option) (*Kernels, error) {
	cfg := core.ApplyOptions(opts...)

	entry, err := resolve(cfg.Implementation)
	if err != nil {
		return nil, err
	}

	return &Kernels{entry: entry, checked: cfg.BoundsCheck}, nil
}

// Implementation returns the registry name of the resolved kernels.
func (k *Kernels) Implementation() string {
	return k.entry.Name
}

// BoundsCheck reports whether calls are validated.
func (k *Kernels) BoundsCheck() bool {
	return k.checked
}

// Fill sets dst[:blockSize] to value.
func (k *Kernels) Fill(value int16, dst []int16, blockSize int) error {
	if k.checked {
		if err := validate(blockSize, operand{"dst", dst}); err != nil {
			return err
		}
	}
	k.entry.Fill(value, dst, blockSize)
	return nil
}

// Copy copies src[:blockSize] to dst[:blockSize].
func (k *Kernels) Copy(src, dst []int16, blockSize int) error {
	if k.checked {
		if err := validate(blockSize, operand{"src", src}, operand{"dst", dst}); err != nil {
			return err
		}
	}
	k.entry.Copy(src, dst, blockSize)
	return nil
}

// Add computes dst[i] = srcA[i] + srcB[i] with saturation.
func (k *Kernels) Add(srcA, srcB, dst []int16, blockSize int) error {
	if k.checked {
		if err := validate(blockSize, operand{"srcA", srcA}, operand{"srcB", srcB}, operand{"dst", dst}); err != nil {
			return err
		}
	}
	k.entry.Add(srcA, srcB, dst, blockSize)
	return nil
}

// Sub computes dst[i] = srcA[i] - srcB[i] with saturation.
func (k *Kernels) Sub(srcA, srcB, dst []int16, blockSize int) error {
	if k.checked {
		if err := validate(blockSize, operand{"srcA", srcA}, operand{"srcB", srcB}, operand{"dst", dst}); err != nil {
			return err
		}
	}
	k.entry.Sub(srcA, srcB, dst, blockSize)
	return nil
}

// Mean returns the truncated mean of src[:blockSize].
func (k *Kernels) Mean(src []int16, blockSize int) (int16, error) {
	if k.checked {
		if err := validate(blockSize, operand{"src", src}); err != nil {
			return 0, err
		}
	}
	return k.entry.Mean(src, blockSize), nil
}

// Shift shifts src[:blockSize] by shiftBits into dst.
func (k *Kernels) Shift(src []int16, shiftBits int8, dst []int16, blockSize int) error {
	if k.checked {
		if err := validate(blockSize, operand{"src", src}, operand{"dst", dst}); err != nil {
			return err
		}
	}
	k.entry.Shift(src, shiftBits, dst, blockSize)
	return nil
}

// Abs computes dst[i] = |src[i]| with saturation.
func (k *Kernels) Abs(src, dst []int16, blockSize int) error {
	if k.checked {
		if err := validate(blockSize, operand{"src", src}, operand{"dst", dst}); err != nil {
			return err
		}
	}
	k.entry.Abs(src, dst, blockSize)
	return nil
}
