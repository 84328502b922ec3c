package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-s16/dsp/core"
	"github.com/cwbudde/algo-s16/internal/testutil"
)

func TestCheckedOutOfRange(t *testing.T) {
	short := testutil.DC(7, 3)
	long := testutil.DC(7, 8)

	tests := []struct {
		name string
		call func() error
	}{
		{"fill", func() error { return FillChecked(1, short, 4) }},
		{"copy src", func() error { return CopyChecked(short, long, 4) }},
		{"copy dst", func() error { return CopyChecked(long, short, 4) }},
		{"add srcB", func() error { return AddChecked(long, short, long, 4) }},
		{"sub dst", func() error { return SubChecked(long, long, short, 4) }},
		{"shift", func() error { return ShiftChecked(long, 2, short, 4) }},
		{"abs", func() error { return AbsChecked(short, long, 4) }},
		{"mean", func() error { _, err := MeanChecked(short, 4); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange), "got %v", err)
			testutil.RequireSamplesEqual(t, short, testutil.DC(7, 3))
			testutil.RequireSamplesEqual(t, long, testutil.DC(7, 8))
		})
	}
}

func TestCheckedNegativeBlockSize(t *testing.T) {
	err := FillChecked(1, make([]int16, 4), -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
}

func TestCheckedSuccess(t *testing.T) {
	dst := make([]int16, 4)
	require.NoError(t, AddChecked([]int16{1, 2, 3, 4}, []int16{4, 3, 2, 1}, dst, 4))
	assert.Equal(t, []int16{5, 5, 5, 5}, dst)

	require.NoError(t, SubChecked(dst, []int16{5, 5, 5, 5}, dst, 4))
	require.NoError(t, FillChecked(3, dst, 2))
	require.NoError(t, ShiftChecked(dst, 1, dst, 4))
	assert.Equal(t, []int16{6, 6, 0, 0}, dst)

	require.NoError(t, AbsChecked([]int16{-1, -2}, dst, 2))
	require.NoError(t, CopyChecked(dst, dst[2:], 2))
	assert.Equal(t, []int16{1, 2, 1, 2}, dst)

	m, err := MeanChecked(dst, 4)
	require.NoError(t, err)
	assert.Equal(t, int16(1), m)
}

func TestKernelsBoundsCheck(t *testing.T) {
	k, err := New(core.WithBoundsCheck())
	require.NoError(t, err)
	assert.True(t, k.BoundsCheck())

	dst := testutil.DC(4, 2)
	err = k.Add(make([]int16, 3), make([]int16, 3), dst, 3)
	assert.True(t, errors.Is(err, ErrOutOfRange), "got %v", err)
	assert.Equal(t, []int16{4, 4}, dst)

	_, err = k.Mean(nil, 1)
	assert.True(t, errors.Is(err, ErrOutOfRange), "got %v", err)

	require.NoError(t, k.Fill(2, dst, 2))
	assert.Equal(t, []int16{2, 2}, dst)
}

func TestKernelsUncheckedPanics(t *testing.T) {
	k, err := New(core.WithImplementation("generic"))
	require.NoError(t, err)
	assert.Panics(t, func() {
		_ = k.Copy(make([]int16, 1), make([]int16, 2), 2)
	})
}
