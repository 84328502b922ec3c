package packed

// Fill sets dst[:n] to value, writing one packed word per sample pair.
func (k Kernels) Fill(value int16, dst []int16, n int) {
	if n <= 0 {
		return
	}
	dst = dst[:n]
	w := k.order.Pack(value, value)

	i := 0
	for blk := n >> 2; blk > 0; blk-- {
		k.order.Store(w, dst[i:])
		k.order.Store(w, dst[i+2:])
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = value
	}
}

// Copy copies src[:n] to dst[:n] one packed word at a time. src and dst may
// be the same slice.
func (k Kernels) Copy(src, dst []int16, n int) {
	if n <= 0 {
		return
	}
	src, dst = src[:n], dst[:n]

	i := 0
	for blk := n >> 2; blk > 0; blk-- {
		k.order.Store(k.order.Load(src[i:]), dst[i:])
		k.order.Store(k.order.Load(src[i+2:]), dst[i+2:])
		i += 4
	}

	for ; i < n; i++ {
		dst[i] = src[i]
	}
}
