package generic

import "github.com/cwbudde/algo-s16/dsp/fixed"

// Add computes dst[i] = sat16(a[i] + b[i]) for i < n.
func Add(a, b, dst []int16, n int) {
	if n <= 0 {
		return
	}
	a, b, dst = a[:n], b[:n], dst[:n]
	for i := range dst {
		dst[i] = fixed.SSat16(int32(a[i]) + int32(b[i]))
	}
}

// Sub computes dst[i] = sat16(a[i] - b[i]) for i < n.
func Sub(a, b, dst []int16, n int) {
	if n <= 0 {
		return
	}
	a, b, dst = a[:n], b[:n], dst[:n]
	for i := range dst {
		dst[i] = fixed.SSat16(int32(a[i]) - int32(b[i]))
	}
}

// Abs computes dst[i] = |src[i]| for i < n, saturating -32768 to 32767.
func Abs(src, dst []int16, n int) {
	if n <= 0 {
		return
	}
	src, dst = src[:n], dst[:n]
	for i, x := range src {
		switch {
		case x > 0:
			dst[i] = x
		case x == fixed.MinSample:
			dst[i] = fixed.MaxSample
		default:
			dst[i] = -x
		}
	}
}

// Shift shifts src[:n] by shiftBits into dst[:n]. See fixed.ShiftSat16.
func Shift(src []int16, shiftBits int8, dst []int16, n int) {
	if n <= 0 {
		return
	}
	src, dst = src[:n], dst[:n]
	for i, x := range src {
		dst[i] = fixed.ShiftSat16(x, shiftBits)
	}
}

// Mean returns the mean of src[:n] using a wide accumulator and truncating
// division. It returns 0 for n <= 0.
func Mean(src []int16, n int) int16 {
	if n <= 0 {
		return 0
	}
	var sum int64
	for _, x := range src[:n] {
		sum += int64(x)
	}
	return fixed.SSat16(int32(sum / int64(n)))
}
