// Package matrix provides a row-major 16-bit fixed-point matrix descriptor
// and a transpose kernel.
//
// A Matrix does not own its storage: Data is a caller-owned buffer that must
// hold exactly Rows*Cols samples, with element (r, c) at r*Cols + c.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when the destination shape is not the
	// transpose of the source shape.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrOutOfRange is returned when a buffer does not hold Rows*Cols samples.
	ErrOutOfRange = errors.New("matrix: buffer out of range")
)

// Matrix describes a Rows x Cols row-major matrix stored in Data.
type Matrix struct {
	Rows int
	Cols int
	Data []int16
}

// New attaches data and dimensions to a descriptor. It does not validate
// the buffer length; see Validate.
func New(rows, cols int, data []int16) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: data}
}

// Validate reports whether the descriptor is consistent: non-negative
// dimensions and len(Data) == Rows*Cols.
func (m *Matrix) Validate() error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrOutOfRange, m.Rows, m.Cols)
	}
	if len(m.Data) != m.Rows*m.Cols {
		return fmt.Errorf("%w: %dx%d matrix with %d samples", ErrOutOfRange, m.Rows, m.Cols, len(m.Data))
	}
	return nil
}

// At returns element (r, c).
func (m *Matrix) At(r, c int) int16 {
	return m.Data[r*m.Cols+c]
}

// Set stores v at element (r, c).
func (m *Matrix) Set(r, c int, v int16) {
	m.Data[r*m.Cols+c] = v
}

// String formats the matrix row by row, e.g. "[[1 2 3] [4 5 6]]".
func (m *Matrix) String() string {
	rows := make([][]int16, m.Rows)
	for r := range rows {
		rows[r] = m.Data[r*m.Cols : (r+1)*m.Cols]
	}
	return fmt.Sprint(rows)
}
