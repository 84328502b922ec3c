package packed

import "github.com/cwbudde/algo-s16/dsp/fixed"

// Shift shifts src[:n] by shiftBits into dst[:n]. Positive values shift left
// with saturation, negative values shift right arithmetically.
func (k Kernels) Shift(src []int16, shiftBits int8, dst []int16, n int) {
	if n <= 0 {
		return
	}
	src, dst = src[:n], dst[:n]

	i := 0
	for blk := n >> 2; blk > 0; blk-- {
		k.order.Store(k.shift16x2(k.order.Load(src[i:]), shiftBits), dst[i:])
		k.order.Store(k.shift16x2(k.order.Load(src[i+2:]), shiftBits), dst[i+2:])
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = fixed.ShiftSat16(src[i], shiftBits)
	}
}

func (k Kernels) shift16x2(w fixed.Word, shiftBits int8) fixed.Word {
	lo, hi := k.order.Unpack(w)
	return k.order.Pack(fixed.ShiftSat16(lo, shiftBits), fixed.ShiftSat16(hi, shiftBits))
}
