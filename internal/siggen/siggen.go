// Package siggen generates deterministic int16 signals for kernel tests and
// the s16info self-check.
package siggen

import (
	"math/rand"

	"github.com/cwbudde/algo-s16/dsp/fixed"
)

// Extremes lists the sample values that exercise saturation boundaries.
var Extremes = []int16{fixed.MinSample, fixed.MinSample + 1, -2, -1, 0, 1, 2, fixed.MaxSample - 1, fixed.MaxSample}

// DeterministicNoise generates uniformly distributed samples over the full
// 16-bit range with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, length int) []int16 {
	out := make([]int16, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int16(rng.Uint32())
	}
	return out
}

// EdgeMix replaces two of every three noise samples with the next entry of
// Extremes, starting at seed. Every extreme appears within the first
// 3*len(Extremes)/2 samples, in both packed lanes and in the remainder.
func EdgeMix(seed int64, length int) []int16 {
	out := DeterministicNoise(seed, length)
	k := int(seed % int64(len(Extremes)))
	if k < 0 {
		k += len(Extremes)
	}
	for i := range out {
		if i%3 == 2 {
			continue
		}
		out[i] = Extremes[k]
		k = (k + 1) % len(Extremes)
	}
	return out
}

// Ramp returns start, start+step, ... saturated to the sample range.
func Ramp(start, step int16, length int) []int16 {
	out := make([]int16, length)
	v := int32(start)
	for i := range out {
		out[i] = fixed.SSat16(v)
		v += int32(step)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value int16, length int) []int16 {
	out := make([]int16, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a full-scale impulse at the given position.
func Impulse(length, pos int) []int16 {
	out := make([]int16, length)
	if pos >= 0 && pos < length {
		out[pos] = fixed.MaxSample
	}
	return out
}
