package testutil

import "github.com/cwbudde/algo-s16/internal/siggen"

// Signal generators, re-exported so tests need a single helper import.
var (
	Extremes           = siggen.Extremes
	DeterministicNoise = siggen.DeterministicNoise
	EdgeMix            = siggen.EdgeMix
	Ramp               = siggen.Ramp
	DC                 = siggen.DC
	Impulse            = siggen.Impulse
)
