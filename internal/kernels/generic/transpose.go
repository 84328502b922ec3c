package generic

// Transpose writes the transpose of the rows x cols row-major matrix src into
// dst (cols x rows). The output cursor walks a column of dst with a stride of
// rows and restarts at the next column for every source row.
func Transpose(src []int16, rows, cols int, dst []int16) {
	if rows <= 0 || cols <= 0 {
		return
	}
	src = src[:rows*cols]
	dst = dst[:rows*cols]

	in := 0
	for r := 0; r < rows; r++ {
		out := r
		for c := 0; c < cols; c++ {
			dst[out] = src[in]
			in++
			out += rows
		}
	}
}
