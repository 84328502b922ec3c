package packed

// Transpose writes the transpose of the rows x cols row-major matrix src into
// dst (cols x rows). Each packed read yields two adjacent row elements which
// are scattered down a column of dst with a stride of rows.
func (k Kernels) Transpose(src []int16, rows, cols int, dst []int16) {
	if rows <= 0 || cols <= 0 {
		return
	}
	src = src[:rows*cols]
	dst = dst[:rows*cols]

	in := 0
	for r := 0; r < rows; r++ {
		out := r

		for blk := cols >> 2; blk > 0; blk-- {
			lo, hi := k.order.Unpack(k.order.Load(src[in:]))
			dst[out] = lo
			out += rows
			dst[out] = hi
			out += rows

			lo, hi = k.order.Unpack(k.order.Load(src[in+2:]))
			dst[out] = lo
			out += rows
			dst[out] = hi
			out += rows

			in += 4
		}

		for c := cols % 4; c > 0; c-- {
			dst[out] = src[in]
			in++
			out += rows
		}
	}
}
