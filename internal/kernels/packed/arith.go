package packed

import "github.com/cwbudde/algo-s16/dsp/fixed"

// Add computes dst[i] = sat16(a[i] + b[i]) for i < n with lane-parallel
// saturating adds.
func (k Kernels) Add(a, b, dst []int16, n int) {
	if n <= 0 {
		return
	}
	a, b, dst = a[:n], b[:n], dst[:n]

	i := 0
	for blk := n >> 2; blk > 0; blk-- {
		a1 := k.order.Load(a[i:])
		a2 := k.order.Load(a[i+2:])
		b1 := k.order.Load(b[i:])
		b2 := k.order.Load(b[i+2:])

		k.order.Store(fixed.QAdd16x2(a1, b1), dst[i:])
		k.order.Store(fixed.QAdd16x2(a2, b2), dst[i+2:])
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = fixed.QAdd16(a[i], b[i])
	}
}

// Sub computes dst[i] = sat16(a[i] - b[i]) for i < n with lane-parallel
// saturating subtracts.
func (k Kernels) Sub(a, b, dst []int16, n int) {
	if n <= 0 {
		return
	}
	a, b, dst = a[:n], b[:n], dst[:n]

	i := 0
	for blk := n >> 2; blk > 0; blk-- {
		a1 := k.order.Load(a[i:])
		a2 := k.order.Load(a[i+2:])
		b1 := k.order.Load(b[i:])
		b2 := k.order.Load(b[i+2:])

		k.order.Store(fixed.QSub16x2(a1, b1), dst[i:])
		k.order.Store(fixed.QSub16x2(a2, b2), dst[i+2:])
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = fixed.QSub16(a[i], b[i])
	}
}

// Abs computes dst[i] = |src[i]| for i < n. Negative lanes are negated with a
// saturating subtract from zero, so -32768 becomes 32767.
func (k Kernels) Abs(src, dst []int16, n int) {
	if n <= 0 {
		return
	}
	src, dst = src[:n], dst[:n]

	i := 0
	for blk := n >> 2; blk > 0; blk-- {
		w1 := k.order.Load(src[i:])
		w2 := k.order.Load(src[i+2:])

		k.order.Store(abs16x2(w1), dst[i:])
		k.order.Store(abs16x2(w2), dst[i+2:])
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = fixed.QAbs16(src[i])
	}
}

func abs16x2(w fixed.Word) fixed.Word {
	m := fixed.NegMask16x2(w)
	return (w &^ m) | (fixed.QSub16x2(0, w) & m)
}

// Mean returns the mean of src[:n] using a wide accumulator and truncating
// division. It returns 0 for n <= 0.
func (k Kernels) Mean(src []int16, n int) int16 {
	if n <= 0 {
		return 0
	}
	src = src[:n]

	var sum int64
	i := 0
	for blk := n >> 2; blk > 0; blk-- {
		lo, hi := k.order.Unpack(k.order.Load(src[i:]))
		sum += int64(lo) + int64(hi)
		lo, hi = k.order.Unpack(k.order.Load(src[i+2:]))
		sum += int64(lo) + int64(hi)
		i += 4
	}

	for ; i < n; i++ {
		sum += int64(src[i])
	}

	return fixed.SSat16(int32(sum / int64(n)))
}
