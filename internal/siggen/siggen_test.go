package siggen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-s16/dsp/fixed"
)

func TestDeterministicNoiseReproducible(t *testing.T) {
	assert.Equal(t, DeterministicNoise(42, 64), DeterministicNoise(42, 64))
	assert.NotEqual(t, DeterministicNoise(1, 64), DeterministicNoise(2, 64))
}

func TestEdgeMixContainsEveryExtreme(t *testing.T) {
	for seed := int64(-3); seed < 12; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			s := EdgeMix(seed, 14)
			for _, e := range Extremes {
				assert.Contains(t, s, e, "extreme %d missing", e)
			}
		})
	}
}

func TestEdgeMixSaturatesBothLanes(t *testing.T) {
	for seed := int64(0); seed < 9; seed++ {
		s := EdgeMix(seed, 64)
		var even, odd [2]bool
		for i, v := range s {
			lanes := &even
			if i%2 == 1 {
				lanes = &odd
			}
			lanes[0] = lanes[0] || v == fixed.MinSample
			lanes[1] = lanes[1] || v == fixed.MaxSample
		}
		assert.Equal(t, [2]bool{true, true}, even, "seed %d even lane", seed)
		assert.Equal(t, [2]bool{true, true}, odd, "seed %d odd lane", seed)
	}
}

func TestRampSaturates(t *testing.T) {
	want := []int16{32760, 32765, fixed.MaxSample, fixed.MaxSample}
	assert.Equal(t, want, Ramp(32760, 5, 4))
}

func TestImpulse(t *testing.T) {
	assert.Equal(t, []int16{0, 0, fixed.MaxSample, 0}, Impulse(4, 2))
	assert.Equal(t, []int16{0, 0}, Impulse(2, 5))
}
