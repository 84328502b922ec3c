package fixed

import "math/bits"

const (
	// MaxSample is the largest representable sample (0x7fff).
	MaxSample = 1<<15 - 1

	// MinSample is the smallest representable sample (-0x8000).
	MinSample = -1 << 15
)

// Saturate clamps v into the signed range representable in n bits:
// [-2^(n-1), 2^(n-1)-1]. For n outside [1, 32] v is returned unchanged.
func Saturate(v int32, n uint) int32 {
	if n < 1 || n > 32 {
		return v
	}

	hi := int64(1)<<(n-1) - 1
	lo := -1 - hi

	switch x := int64(v); {
	case x > hi:
		return int32(hi)
	case x < lo:
		return int32(lo)
	default:
		return v
	}
}

// SSat16 saturates v to the 16-bit sample range.
func SSat16(v int32) int16 {
	if v > MaxSample {
		return MaxSample
	}
	if v < MinSample {
		return MinSample
	}
	return int16(v)
}

// CountLeadingZeros returns the number of zero bits before the most
// significant set bit of v, or 32 if v is zero.
func CountLeadingZeros(v uint32) uint8 {
	return uint8(bits.LeadingZeros32(v))
}

// QAdd16 returns a+b saturated to the sample range.
func QAdd16(a, b int16) int16 {
	return SSat16(int32(a) + int32(b))
}

// QSub16 returns a-b saturated to the sample range.
func QSub16(a, b int16) int16 {
	return SSat16(int32(a) - int32(b))
}

// QNeg16 returns -x, mapping MinSample to MaxSample.
func QNeg16(x int16) int16 {
	if x == MinSample {
		return MaxSample
	}
	return -x
}

// QAbs16 returns |x|, mapping MinSample to MaxSample.
func QAbs16(x int16) int16 {
	if x > 0 {
		return x
	}
	return QNeg16(x)
}

// ShiftSat16 shifts x by shiftBits. Positive values shift left and saturate;
// negative values shift right arithmetically, which cannot overflow.
func ShiftSat16(x int16, shiftBits int8) int16 {
	if shiftBits >= 0 {
		s := uint(shiftBits)
		// one more bit already pushes any non-zero sample out of range
		if s > 16 {
			s = 16
		}
		return SSat16(int32(x) << s)
	}
	return x >> uint(-int(shiftBits))
}
