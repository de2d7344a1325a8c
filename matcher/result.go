// Package matcher implements MatcherFunction: a deterministic digit-sequence
// matcher that classifies a DigitSequence against one compiled range set,
// returning a five-valued result instead of a plain boolean.
//
// Three concrete variants satisfy the MatcherFunction interface: a DFA
// matcher backed by a compiled digit-alphabet automaton (package
// automaton), a regex matcher backed by the same automaton compiled from
// an ASCII-digit regular expression, and a combined matcher that
// disjuncts an ordered list of other matchers. An empty matcher always
// reports INVALID and is used where metadata declares no ranges at all.
package matcher

import "github.com/coregx/numplan/digitseq"

// Result classifies how a digit sequence relates to a compiled range set.
type Result int

const (
	// INVALID means no range accepts the sequence or any extension of it,
	// and its length is not a possible length for this range set.
	INVALID Result = iota
	// POSSIBLE_LENGTH means the sequence's length is a possible length
	// for this range set, but no range accepts its particular digits.
	POSSIBLE_LENGTH
	// EXCESS_DIGITS means the sequence has more digits than any range
	// that otherwise matches its prefix would accept.
	EXCESS_DIGITS
	// PARTIAL_MATCH means the sequence is a prefix of some digit string a
	// range would accept, but is not itself long enough to be accepted.
	PARTIAL_MATCH
	// MATCHED means some range in the set accepts the sequence exactly.
	MATCHED
)

// String renders the result using its spec name.
func (r Result) String() string {
	switch r {
	case MATCHED:
		return "MATCHED"
	case PARTIAL_MATCH:
		return "PARTIAL_MATCH"
	case EXCESS_DIGITS:
		return "EXCESS_DIGITS"
	case POSSIBLE_LENGTH:
		return "POSSIBLE_LENGTH"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN_MATCH_RESULT"
	}
}

// IsBetterThan reports whether r is strictly stronger than other under the
// fixed ordering MATCHED > PARTIAL_MATCH > EXCESS_DIGITS > POSSIBLE_LENGTH
// > INVALID. Because the underlying iota values already increase with
// strength, this is a plain comparison; the method exists so call sites
// document intent instead of comparing raw constants.
func (r Result) IsBetterThan(other Result) bool {
	return r > other
}

// Strongest returns whichever of a, b orders higher under IsBetterThan.
func Strongest(a, b Result) Result {
	if a.IsBetterThan(b) {
		return a
	}
	return b
}

// LengthResult classifies a digit sequence's length against a
// possible-lengths mask, independent of its actual digit values.
type LengthResult int

const (
	// POSSIBLE means the sequence's length matches at least one possible
	// length in the mask.
	POSSIBLE LengthResult = iota
	// TOO_SHORT means every possible length is greater than the
	// sequence's length.
	TOO_SHORT
	// TOO_LONG means every possible length is less than the sequence's
	// length.
	TOO_LONG
	// INVALID_LENGTH means the sequence's length falls strictly between
	// two possible lengths (neither TOO_SHORT nor TOO_LONG applies).
	INVALID_LENGTH
)

// String renders the length result using its spec name.
func (l LengthResult) String() string {
	switch l {
	case POSSIBLE:
		return "POSSIBLE"
	case TOO_SHORT:
		return "TOO_SHORT"
	case TOO_LONG:
		return "TOO_LONG"
	case INVALID_LENGTH:
		return "INVALID_LENGTH"
	default:
		return "UNKNOWN_LENGTH_RESULT"
	}
}

// MatcherFunction tests a DigitSequence against one compiled range set.
//
// Implementations must satisfy, for all s:
//
//	IsMatch(s) == (Match(s) == MATCHED)
//	TestLength(s) depends only on LengthMask() and s.Length()
type MatcherFunction interface {
	// Match classifies s against the range set.
	Match(s digitseq.Sequence) Result
	// IsMatch reports whether s is fully accepted.
	IsMatch(s digitseq.Sequence) bool
	// TestLength classifies s's length against LengthMask(), independent
	// of its digit values.
	TestLength(s digitseq.Sequence) LengthResult
	// LengthMask returns the bitset of possible lengths (bit k set iff
	// length k is possible), for lengths 0..MaxLength.
	LengthMask() LengthMask
}
