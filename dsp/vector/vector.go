package vector

// Fill sets dst[:blockSize] to value.
func Fill(value int16, dst []int16, blockSize int) {
	kernels().Fill(value, dst, blockSize)
}

// Copy copies src[:blockSize] to dst[:blockSize].
func Copy(src, dst []int16, blockSize int) {
	kernels().Copy(src, dst, blockSize)
}

// Add computes dst[i] = srcA[i] + srcB[i], saturated to the sample range.
func Add(srcA, srcB, dst []int16, blockSize int) {
	kernels().Add(srcA, srcB, dst, blockSize)
}

// Sub computes dst[i] = srcA[i] - srcB[i], saturated to the sample range.
func Sub(srcA, srcB, dst []int16, blockSize int) {
	kernels().Sub(srcA, srcB, dst, blockSize)
}

// Mean returns the mean of src[:blockSize]. The sum is accumulated in 64
// bits and divided with truncation toward zero, so Mean([1 2 4]) is 2.
// It returns 0 when blockSize is 0.
func Mean(src []int16, blockSize int) int16 {
	return kernels().Mean(src, blockSize)
}

// Shift shifts src[:blockSize] by shiftBits into dst. A positive shiftBits
// shifts left and saturates; a negative one shifts right arithmetically
// (sign-preserving, rounding toward negative infinity).
func Shift(src []int16, shiftBits int8, dst []int16, blockSize int) {
	kernels().Shift(src, shiftBits, dst, blockSize)
}

// Abs computes dst[i] = |src[i]|. The absolute value of -32768 saturates to
// 32767.
func Abs(src, dst []int16, blockSize int) {
	kernels().Abs(src, dst, blockSize)
}
