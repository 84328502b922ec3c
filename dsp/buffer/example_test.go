package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-s16/dsp/buffer"
)

func ExampleBuffer() {
	b := buffer.New(4)
	b.Load([]int16{1, 2, 3, 4})

	b.Resize(2)
	b.Resize(5)

	fmt.Println(b.Samples())
	fmt.Println(b.Len(), b.Cap())

	// Output:
	// [1 2 0 0 0]
	// 5 5
}
