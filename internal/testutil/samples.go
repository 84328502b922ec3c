// Package testutil provides deterministic signals and comparison helpers for
// kernel tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// BlockSizes covers empty input, every remainder of the unrolled loop and a
// few multi-iteration lengths.
var BlockSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 64, 100, 1000}

// RequireSamplesEqual fails t with a diff if got and want differ in length
// or in any sample.
func RequireSamplesEqual(t testing.TB, got, want []int16) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
}

// Clone returns an independent copy of s.
func Clone(s []int16) []int16 {
	out := make([]int16, len(s))
	copy(out, s)
	return out
}

// Guarded returns a buffer of n samples followed by guard samples all set to
// fill, plus the n-sample view. Kernels must never touch the guard region.
func Guarded(n, guard int, fill int16) (full, view []int16) {
	full = DC(fill, n+guard)
	return full, full[:n]
}

// RequireGuard fails t if any sample after the first n of full differs from
// fill.
func RequireGuard(t testing.TB, full []int16, n int, fill int16) {
	t.Helper()
	for i := n; i < len(full); i++ {
		if full[i] != fill {
			t.Fatalf("guard sample %d overwritten: got %d, want %d", i, full[i], fill)
		}
	}
}
