package matcher

import "github.com/coregx/numplan/digitseq"

// combinedMatcher evaluates constituent matchers in declared order,
// returning MATCHED as soon as one of them matches, and otherwise the
// strongest of their individual results. Its length mask is the union of
// every constituent's mask, so testLength never rejects a length some
// constituent would actually accept.
type combinedMatcher struct {
	constituents []MatcherFunction
	lengthMask   LengthMask
}

// NewCombinedMatcher builds the disjunction of fns, used for a calling
// code's overall validity matcher (the union of every range in every
// type classifier) and for any type whose value is defined by more than
// one range function.
func NewCombinedMatcher(fns ...MatcherFunction) MatcherFunction {
	var mask LengthMask
	for _, f := range fns {
		mask = mask.Union(f.LengthMask())
	}
	return &combinedMatcher{constituents: fns, lengthMask: mask}
}

func (c *combinedMatcher) Match(s digitseq.Sequence) Result {
	best := INVALID
	for _, f := range c.constituents {
		r := f.Match(s)
		if r == MATCHED {
			return MATCHED
		}
		best = Strongest(best, r)
	}
	return best
}

func (c *combinedMatcher) IsMatch(s digitseq.Sequence) bool {
	return c.Match(s) == MATCHED
}

func (c *combinedMatcher) TestLength(s digitseq.Sequence) LengthResult {
	return c.lengthMask.Test(s.Length())
}

func (c *combinedMatcher) LengthMask() LengthMask {
	return c.lengthMask
}

// emptyMatcher always reports INVALID. It stands in for a calling code
// or classifier value with no declared ranges at all, so callers never
// need a nil check before invoking MatcherFunction methods.
type emptyMatcher struct{}

// Empty is the shared empty matcher instance.
var Empty MatcherFunction = emptyMatcher{}

func (emptyMatcher) Match(digitseq.Sequence) Result { return INVALID }
func (emptyMatcher) IsMatch(digitseq.Sequence) bool { return false }
func (emptyMatcher) TestLength(s digitseq.Sequence) LengthResult {
	return LengthMask(0).Test(s.Length())
}
func (emptyMatcher) LengthMask() LengthMask { return 0 }
