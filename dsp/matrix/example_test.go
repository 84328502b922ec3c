package matrix_test

import (
	"fmt"

	"github.com/cwbudde/algo-s16/dsp/matrix"
)

func ExampleTranspose() {
	src := matrix.New(2, 3, []int16{1, 2, 3, 4, 5, 6})
	dst := matrix.New(3, 2, make([]int16, 6))

	if err := matrix.Transpose(src, dst); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(dst)

	// Output:
	// [[1 4] [2 5] [3 6]]
}

func ExampleStatusOf() {
	src := matrix.New(2, 3, []int16{1, 2, 3, 4, 5, 6})
	dst := matrix.New(2, 3, make([]int16, 6))

	err := matrix.TransposeChecked(src, dst)
	fmt.Println(matrix.StatusOf(err))
	fmt.Println(err)

	// Output:
	// SizeMismatch
	// matrix: size mismatch: 2x3 source needs 3x2 destination, got 2x3
}
