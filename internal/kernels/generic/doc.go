// Package generic provides the all-scalar fixed-point kernels.
//
// These kernels process one sample per step with the per-element transforms
// from package fixed. They are the reference every other kernel set must
// match bit for bit, and the only set available when packed execution is
// disabled.
package generic
