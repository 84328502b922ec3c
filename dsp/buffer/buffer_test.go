package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-s16/dsp/matrix"
)

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, make([]int16, 8), b.Samples())

	assert.Equal(t, 0, New(-1).Len())
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []int16{1, 2, 3}
	b := FromSlice(s)
	b.Samples()[0] = 99
	assert.Equal(t, int16(99), s[0])
}

func TestResizeKeepsDataAndZeroesTail(t *testing.T) {
	b := FromSlice(make([]int16, 4, 8))
	copy(b.Samples(), []int16{1, 2, 3, 4})

	b.Resize(2)
	b.Resize(6)
	assert.Equal(t, []int16{1, 2, 0, 0, 0, 0}, b.Samples())
	assert.Equal(t, 8, b.Cap())

	b.Resize(12)
	assert.Equal(t, []int16{1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, b.Samples())

	b.Resize(-3)
	assert.Equal(t, 0, b.Len())
}

func TestFillLoadClone(t *testing.T) {
	b := New(5)
	b.Fill(-7)
	assert.Equal(t, []int16{-7, -7, -7, -7, -7}, b.Samples())

	b.Load([]int16{32767, -32768, 3})
	assert.Equal(t, []int16{32767, -32768, 3}, b.Samples())

	c := b.Clone()
	c.Samples()[0] = 0
	assert.Equal(t, int16(32767), b.Samples()[0])

	b.Zero()
	assert.Equal(t, []int16{0, 0, 0}, b.Samples())
}

func TestMatrixView(t *testing.T) {
	b := New(0)
	m := b.Matrix(2, 3)
	require.NoError(t, m.Validate())
	copy(m.Data, []int16{1, 2, 3, 4, 5, 6})

	out := New(0)
	tm := out.Matrix(3, 2)
	require.NoError(t, matrix.Transpose(m, tm))
	assert.Equal(t, []int16{1, 4, 2, 5, 3, 6}, out.Samples())

	assert.Equal(t, 0, b.Matrix(-1, 4).Rows)
}
