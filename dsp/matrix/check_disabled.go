//go:build nomatrixcheck

package matrix

// shapeCheck is off: Transpose trusts the caller's shapes like the vector
// kernels trust buffer lengths.
const shapeCheck = false
