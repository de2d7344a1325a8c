package matcher

import "github.com/coregx/numplan/digitseq"

// LengthMask is a bitset over digit-sequence lengths 0..MaxLength. Bit k
// set means length k is a possible length for the range set it belongs
// to. A uint32 is wide enough since digitseq.MaxLength is 19.
type LengthMask uint32

// NewLengthMask builds a mask with the given lengths set.
func NewLengthMask(lengths ...int) LengthMask {
	var m LengthMask
	for _, l := range lengths {
		m = m.With(l)
	}
	return m
}

// With returns a copy of m with bit l set.
func (m LengthMask) With(l int) LengthMask {
	if l < 0 || l > digitseq.MaxLength {
		return m
	}
	return m | (1 << uint(l))
}

// Has reports whether length l is set in m.
func (m LengthMask) Has(l int) bool {
	if l < 0 || l > digitseq.MaxLength {
		return false
	}
	return m&(1<<uint(l)) != 0
}

// Union returns the bitwise union of m and other, used when combining the
// length masks of a combined matcher's constituents.
func (m LengthMask) Union(other LengthMask) LengthMask {
	return m | other
}

// IsEmpty reports whether no length is possible.
func (m LengthMask) IsEmpty() bool {
	return m == 0
}

// Test classifies the length l against the mask per the LengthResult
// definitions:
//
//   - bit l set                              -> POSSIBLE
//   - some set bit < l and all set bits < l  -> TOO_LONG
//   - no set bit < l                         -> TOO_SHORT
//   - otherwise (set bits both < l and > l)  -> INVALID_LENGTH
func (m LengthMask) Test(l int) LengthResult {
	if m.Has(l) {
		return POSSIBLE
	}
	var sawBelow, sawAbove bool
	for k := 0; k <= digitseq.MaxLength; k++ {
		if !m.Has(k) {
			continue
		}
		if k < l {
			sawBelow = true
		} else {
			sawAbove = true
		}
	}
	switch {
	case !sawBelow:
		// No possible length below l, whether or not one lies above
		// (including an entirely empty mask): the sequence needs more
		// digits, or there simply is no valid length to compare against.
		return TOO_SHORT
	case !sawAbove:
		return TOO_LONG
	default:
		return INVALID_LENGTH
	}
}
