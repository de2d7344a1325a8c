package matcher

import (
	"github.com/coregx/numplan/automaton"
	"github.com/coregx/numplan/digitseq"
)

// automatonMatcher is the shared execution path for both the DFA-byte
// matcher variant (built from Decode) and the regex matcher variant
// (built from automaton.Compile): once a pattern is reduced to a
// compiled automaton.DFA, classifying a digit sequence against it is
// identical regardless of how the automaton was produced.
type automatonMatcher struct {
	dfa        *automaton.DFA
	lengthMask LengthMask
}

// NewDFAMatcher builds a MatcherFunction from a compact DFA byte array,
// the wire representation of the "DFA matcher" variant in the metadata
// codec (C8). The possibleLengthsMask argument overrides the mask
// implied by the automaton structure when metadata supplies an explicit
// one (the common case: the offline metadata generator computes it over
// the full, unsimplified range set, which can differ subtly from what
// this package derives from the compiled automaton alone).
func NewDFAMatcher(bytecode []byte, possibleLengthsMask uint32) (MatcherFunction, error) {
	dfa, err := automaton.Decode(bytecode)
	if err != nil {
		return nil, err
	}
	mask := LengthMask(possibleLengthsMask)
	if mask == 0 {
		mask = LengthMask(dfa.PossibleLengthMask())
	}
	return &automatonMatcher{dfa: dfa, lengthMask: mask}, nil
}

// NewRegexMatcher builds a MatcherFunction by compiling pattern, an
// ASCII-digit regular expression, into a DFA at metadata-load time. This
// is the "regex matcher" variant. possibleLengthsMask overrides the
// derived mask when metadata supplies one; pass 0 to use the mask
// derived from the compiled automaton.
func NewRegexMatcher(pattern string, possibleLengthsMask uint32) (MatcherFunction, error) {
	dfa, err := automaton.Compile(pattern)
	if err != nil {
		return nil, err
	}
	mask := LengthMask(possibleLengthsMask)
	if mask == 0 {
		mask = LengthMask(dfa.PossibleLengthMask())
	}
	return &automatonMatcher{dfa: dfa, lengthMask: mask}, nil
}

// rawStatus is the four-valued termination status a single automaton
// walk produces, before combining-matcher folding or the
// testLength==POSSIBLE upgrade rule map it onto the public five-valued
// Result.
type rawStatus int

const (
	rawMatched rawStatus = iota
	rawTooShort
	rawTooLong
	rawInvalid
)

// run walks s through m's automaton to completion, returning the raw
// termination status. It is a single pass with bounded scratch state
// (current state, whether the last live state accepted): no
// backtracking, no allocation.
func (m *automatonMatcher) run(s digitseq.Sequence) rawStatus {
	state := m.dfa.Start()
	wasAcceptingBeforeDying := false
	diedEarly := false

	cur := s.Iterate()
	for {
		d, ok := cur.Next()
		if !ok {
			break
		}
		next := m.dfa.Step(state, d)
		if next == automaton.Dead {
			wasAcceptingBeforeDying = m.dfa.IsAccept(state)
			diedEarly = true
			break
		}
		state = next
	}

	if diedEarly {
		if wasAcceptingBeforeDying {
			return rawTooLong
		}
		return rawInvalid
	}
	switch {
	case m.dfa.IsAccept(state):
		return rawMatched
	case m.dfa.CanAccept(state):
		return rawTooShort
	default:
		return rawInvalid
	}
}

func (m *automatonMatcher) Match(s digitseq.Sequence) Result {
	switch m.run(s) {
	case rawMatched:
		return MATCHED
	case rawTooShort:
		return PARTIAL_MATCH
	case rawTooLong:
		return EXCESS_DIGITS
	default: // rawInvalid
		if m.lengthMask.Test(s.Length()) == POSSIBLE {
			return POSSIBLE_LENGTH
		}
		return INVALID
	}
}

func (m *automatonMatcher) IsMatch(s digitseq.Sequence) bool {
	return m.Match(s) == MATCHED
}

func (m *automatonMatcher) TestLength(s digitseq.Sequence) LengthResult {
	return m.lengthMask.Test(s.Length())
}

func (m *automatonMatcher) LengthMask() LengthMask {
	return m.lengthMask
}
