// Package fixed provides the saturation and packing primitives shared by the
// 16-bit fixed-point kernels.
//
// A Sample is a signed 16-bit value in [MinSample, MaxSample]. The package
// does not track a scaling factor; callers interpret the fixed-point format.
//
// # Packed words
//
// Packed execution moves two adjacent samples through one 32-bit Word. Which
// sample lands in which half is fixed by an Order:
//
//   - LittleEndian: the first sample occupies bits 0-15, the second bits 16-31
//   - BigEndian: the placement is swapped
//
// NativeOrder is resolved once from the target architecture and every packed
// kernel uses it for all Load, Store, Pack and Unpack calls. Mixing orders
// inside one kernel corrupts results silently.
//
// # Saturation
//
// QAdd16x2 and QSub16x2 are lane-parallel: each 16-bit half saturates on its
// own and no carry or borrow crosses the lane boundary. The scalar helpers
// (QAdd16, QSub16, QNeg16, QAbs16, ShiftSat16) define the per-element
// transforms that packed and scalar kernels must agree on.
//
// None of the functions in this package fail; overflow is absorbed by
// saturation.
package fixed
