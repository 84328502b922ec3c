package generic

// Fill sets dst[:n] to value.
func Fill(value int16, dst []int16, n int) {
	if n <= 0 {
		return
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = value
	}
}

// Copy copies src[:n] to dst[:n], one sample per step. src and dst may be the
// same slice.
func Copy(src, dst []int16, n int) {
	if n <= 0 {
		return
	}
	src, dst = src[:n], dst[:n]
	for i := range dst {
		dst[i] = src[i]
	}
}
