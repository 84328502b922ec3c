package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a buffer is shorter than the block size.
	ErrOutOfRange = errors.New("vector: buffer out of range")

	// ErrInvalidArgument is returned for a negative block size.
	ErrInvalidArgument = errors.New("vector: invalid argument")
)

type operand struct {
	name string
	buf  []int16
}

// validate reports the first operand shorter than n.
func validate(n int, ops ...operand) error {
	if n < 0 {
		return fmt.Errorf("%w: block size %d", ErrInvalidArgument, n)
	}
	for _, op := range ops {
		if len(op.buf) < n {
			return fmt.Errorf("%w: %s has %d samples, block size %d", ErrOutOfRange, op.name, len(op.buf), n)
		}
	}
	return nil
}

// FillChecked is Fill with argument validation.
func FillChecked(value int16, dst []int16, blockSize int) error {
	if err := validate(blockSize, operand{"dst", dst}); err != nil {
		return err
	}
	Fill(value, dst, blockSize)
	return nil
}

// CopyChecked is Copy with argument validation.
func CopyChecked(src, dst []int16, blockSize int) error {
	if err := validate(blockSize, operand{"src", src}, operand{"dst", dst}); err != nil {
		return err
	}
	Copy(src, dst, blockSize)
	return nil
}

// AddChecked is Add with argument validation.
func AddChecked(srcA, srcB, dst []int16, blockSize int) error {
	if err := validate(blockSize, operand{"srcA", srcA}, operand{"srcB", srcB}, operand{"dst", dst}); err != nil {
		return err
	}
	Add(srcA, srcB, dst, blockSize)
	return nil
}

// SubChecked is Sub with argument validation.
func SubChecked(srcA, srcB, dst []int16, blockSize int) error {
	if err := validate(blockSize, operand{"srcA", srcA}, operand{"srcB", srcB}, operand{"dst", dst}); err != nil {
		return err
	}
	Sub(srcA, srcB, dst, blockSize)
	return nil
}

// MeanChecked is Mean with argument validation.
func MeanChecked(src []int16, blockSize int) (int16, error) {
	if err := validate(blockSize, operand{"src", src}); err != nil {
		return 0, err
	}
	return Mean(src, blockSize), nil
}

// ShiftChecked is Shift with argument validation.
func ShiftChecked(src []int16, shiftBits int8, dst []int16, blockSize int) error {
	if err := validate(blockSize, operand{"src", src}, operand{"dst", dst}); err != nil {
		return err
	}
	Shift(src, shiftBits, dst, blockSize)
	return nil
}

// AbsChecked is Abs with argument validation.
func AbsChecked(src, dst []int16, blockSize int) error {
	if err := validate(blockSize, operand{"src", src}, operand{"dst", dst}); err != nil {
		return err
	}
	Abs(src, dst, blockSize)
	return nil
}
