package vector

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-s16/dsp/fixed"
	"github.com/cwbudde/algo-s16/internal/testutil"
)

func resetDispatchForTest() {
	defaultEntry = nil
	defaultInitOnce = sync.Once{}
}

func TestAddSaturation(t *testing.T) {
	dst := make([]int16, 1)
	Add([]int16{32767}, []int16{1}, dst, 1)
	assert.Equal(t, []int16{32767}, dst)
}

func TestSubSaturation(t *testing.T) {
	dst := make([]int16, 1)
	Sub([]int16{-32768}, []int16{1}, dst, 1)
	assert.Equal(t, []int16{-32768}, dst)
}

func TestAbsMinSample(t *testing.T) {
	dst := make([]int16, 1)
	Abs([]int16{-32768}, dst, 1)
	assert.Equal(t, []int16{32767}, dst)
}

func TestShiftSignConvention(t *testing.T) {
	dst := make([]int16, 1)
	Shift([]int16{1}, 3, dst, 1)
	assert.Equal(t, []int16{8}, dst)

	Shift([]int16{-8}, -3, dst, 1)
	assert.Equal(t, []int16{-1}, dst)
}

func TestMeanTruncation(t *testing.T) {
	assert.Equal(t, int16(2), Mean([]int16{1, 2, 4}, 3))
	assert.Equal(t, int16(0), Mean(nil, 0))
}

func TestMeanSubRange(t *testing.T) {
	src := []int16{10, 20, 30, 1000}
	assert.Equal(t, int16(20), Mean(src, 3))
	assert.Equal(t, int16(30), Mean(src[2:], 1))
}

func TestCopyIdempotence(t *testing.T) {
	for _, n := range testutil.BlockSizes {
		v := testutil.EdgeMix(int64(n), n)
		dst := make([]int16, n)
		v2 := make([]int16, n)

		Copy(v, dst, n)
		Copy(dst, v2, n)
		testutil.RequireSamplesEqual(t, v2, v)
	}
}

func TestFillBlockSize(t *testing.T) {
	for _, n := range testutil.BlockSizes {
		full, dst := testutil.Guarded(n, 5, -3)
		Fill(fixed.MinSample, dst, n)
		testutil.RequireSamplesEqual(t, dst, testutil.DC(fixed.MinSample, n))
		testutil.RequireGuard(t, full, n, -3)
	}
}

// blockSize may be shorter than the buffers; samples past it stay untouched.
func TestPartialBlock(t *testing.T) {
	a := testutil.Ramp(1, 1, 8)
	b := testutil.DC(100, 8)
	dst := testutil.DC(-1, 8)

	Add(a, b, dst, 5)
	assert.Equal(t, []int16{101, 102, 103, 104, 105, -1, -1, -1}, dst)
}

func TestShortBufferPanics(t *testing.T) {
	assert.Panics(t, func() {
		Add(make([]int16, 3), make([]int16, 4), make([]int16, 4), 4)
	})
}

func TestZeroAndNegativeBlockSizeAreNoops(t *testing.T) {
	dst := []int16{9}
	for _, n := range []int{0, -4} {
		Fill(1, dst, n)
		Copy([]int16{1}, dst, n)
		Add([]int16{1}, []int16{1}, dst, n)
		Sub([]int16{1}, []int16{1}, dst, n)
		Shift([]int16{1}, 1, dst, n)
		Abs([]int16{-1}, dst, n)
		assert.Equal(t, int16(0), Mean([]int16{1}, n))
	}
	assert.Equal(t, []int16{9}, dst)
}

func TestInPlaceAbsShift(t *testing.T) {
	buf := []int16{-32768, -5, 0, 5, 32767}
	Abs(buf, buf, len(buf))
	assert.Equal(t, []int16{32767, 5, 0, 5, 32767}, buf)

	Shift(buf, -1, buf, len(buf))
	assert.Equal(t, []int16{16383, 2, 0, 2, 16383}, buf)
}
