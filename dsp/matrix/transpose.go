package matrix

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-s16/internal/cpu"
	"github.com/cwbudde/algo-s16/internal/kernels/registry"

	// kernel sets register themselves in init()
	_ "github.com/cwbudde/algo-s16/internal/kernels/generic"
	_ "github.com/cwbudde/algo-s16/internal/kernels/packed"
)

var (
	transposeImpl     registry.TransposeFn
	transposeInitOnce sync.Once
)

func initTransposeKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("matrix: no transpose kernel registered (missing generic fallback?)")
	}
	if entry.Transpose == nil {
		panic("matrix: selected kernel missing Transpose")
	}
	transposeImpl = entry.Transpose
}

// Transpose writes the transpose of src into dst.
//
// dst must be declared as src.Cols x src.Rows; otherwise Transpose returns
// ErrSizeMismatch and leaves dst untouched. The check compares declared
// dimensions only; buffer lengths are the caller's responsibility (see
// TransposeChecked). Builds with the nomatrixcheck tag skip the shape check.
//
// src and dst must not share storage.
func Transpose(src, dst *Matrix) error {
	if shapeCheck {
		if err := checkShape(src, dst); err != nil {
			return err
		}
	}

	transposeInitOnce.Do(initTransposeKernel)
	transposeImpl(src.Data, src.Rows, src.Cols, dst.Data)
	return nil
}

// TransposeChecked is Transpose with the shape check always enabled and
// both descriptors validated. Nothing is written on error.
func TransposeChecked(src, dst *Matrix) error {
	if err := checkShape(src, dst); err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("matrix: source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("matrix: destination: %w", err)
	}

	transposeInitOnce.Do(initTransposeKernel)
	transposeImpl(src.Data, src.Rows, src.Cols, dst.Data)
	return nil
}

func checkShape(src, dst *Matrix) error {
	if dst.Rows != src.Cols || dst.Cols != src.Rows {
		return fmt.Errorf("%w: %dx%d source needs %dx%d destination, got %dx%d",
			ErrSizeMismatch, src.Rows, src.Cols, src.Cols, src.Rows, dst.Rows, dst.Cols)
	}
	return nil
}
