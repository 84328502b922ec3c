package fixed

import "golang.org/x/sys/cpu"

// Word holds two samples, one per 16-bit lane.
type Word uint32

const (
	signBits16x2 Word = 0x80008000
	lowBits16x2  Word = 0x7fff7fff
	laneLSB16x2  Word = 0x00010001
)

// Order fixes how two adjacent samples are placed in a Word.
type Order uint8

const (
	// LittleEndian puts the first sample in the low half of the word.
	LittleEndian Order = iota

	// BigEndian puts the first sample in the high half of the word.
	BigEndian
)

// NativeOrder is the packing order of the build target.
var NativeOrder = nativeOrder()

func nativeOrder() Order {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "unknown"
	}
}

// Pack combines two samples into a word. With LittleEndian lo occupies bits
// 0-15 and hi bits 16-31; BigEndian swaps the halves.
func (o Order) Pack(lo, hi int16) Word {
	if o == BigEndian {
		lo, hi = hi, lo
	}
	return Word(uint16(lo)) | Word(uint16(hi))<<16
}

// Unpack is the inverse of Pack.
func (o Order) Unpack(w Word) (lo, hi int16) {
	lo, hi = int16(w), int16(w>>16)
	if o == BigEndian {
		lo, hi = hi, lo
	}
	return lo, hi
}

// Load reads s[0] and s[1] as one word, the way a 32-bit memory load would on
// a target with this order.
func (o Order) Load(s []int16) Word {
	_ = s[1]
	return o.Pack(s[0], s[1])
}

// Store writes w to d[0] and d[1], the inverse of Load.
func (o Order) Store(w Word, d []int16) {
	_ = d[1]
	d[0], d[1] = o.Unpack(w)
}

// QAdd16x2 adds the two lanes of a and b independently, saturating each lane
// to the sample range. No carry crosses the lane boundary.
func QAdd16x2(a, b Word) Word {
	// the low 15 bits of each lane sum to at most 0xfffe, so nothing leaks
	// into the neighbouring lane; the sign bit is fixed up afterwards
	sum := (a & lowBits16x2) + (b & lowBits16x2)
	sum ^= (a ^ b) & signBits16x2

	// overflow: operands agree in sign, result does not
	ovf := ^(a ^ b) & (a ^ sum) & signBits16x2
	return saturateLanes(sum, a, ovf)
}

// QSub16x2 subtracts the lanes of b from the lanes of a independently,
// saturating each lane. No borrow crosses the lane boundary.
func QSub16x2(a, b Word) Word {
	// forcing the minuend's sign bit keeps every lane borrow-free
	diff := (a | signBits16x2) - (b & lowBits16x2)
	diff ^= (a ^ ^b) & signBits16x2

	// overflow: operands differ in sign, result differs from a
	ovf := (a ^ b) & (a ^ diff) & signBits16x2
	return saturateLanes(diff, a, ovf)
}

// NegMask16x2 returns a word whose lanes are 0xffff where the lane of a is
// negative and 0 elsewhere.
func NegMask16x2(a Word) Word {
	return ((a >> 15) & laneLSB16x2) * 0xffff
}

// saturateLanes replaces the lanes flagged in ovf (sign bit set) by the
// saturation value matching the sign of the corresponding lane of a.
func saturateLanes(w, a, ovf Word) Word {
	if ovf == 0 {
		return w
	}
	mask := ((ovf >> 15) & laneLSB16x2) * 0xffff

	// 0x7fff for non-negative lanes, 0x8000 for negative ones
	sat := lowBits16x2 + ((a >> 15) & laneLSB16x2)
	return (w &^ mask) | (sat & mask)
}
