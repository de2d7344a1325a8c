package matcher

import (
	"testing"

	"github.com/coregx/numplan/digitseq"
)

func mustRegexMatcher(t *testing.T, pattern string) MatcherFunction {
	t.Helper()
	m, err := NewRegexMatcher(pattern, 0)
	if err != nil {
		t.Fatalf("NewRegexMatcher(%q) failed: %v", pattern, err)
	}
	return m
}

func TestRegexMatcherBasic(t *testing.T) {
	m := mustRegexMatcher(t, `[1-9]\d{8}`)

	cases := []struct {
		digits string
		want   Result
	}{
		{"123456789", MATCHED},
		{"12345678", PARTIAL_MATCH},
		{"1234567890", EXCESS_DIGITS},
		{"023456789", POSSIBLE_LENGTH}, // right length (9), wrong leading digit
	}
	for _, c := range cases {
		seq := digitseq.MustParse(c.digits)
		if got := m.Match(seq); got != c.want {
			t.Errorf("Match(%q) = %v, want %v", c.digits, got, c.want)
		}
	}
}

func TestIsMatchConsistentWithMatch(t *testing.T) {
	m := mustRegexMatcher(t, `\d{6,8}`)
	for _, digits := range []string{"123456", "12345", "123456789"} {
		seq := digitseq.MustParse(digits)
		if m.IsMatch(seq) != (m.Match(seq) == MATCHED) {
			t.Errorf("digits=%q: IsMatch inconsistent with Match", digits)
		}
	}
}

func TestResultOrdering(t *testing.T) {
	order := []Result{INVALID, POSSIBLE_LENGTH, EXCESS_DIGITS, PARTIAL_MATCH, MATCHED}
	for i := 0; i < len(order)-1; i++ {
		if !order[i+1].IsBetterThan(order[i]) {
			t.Errorf("%v should be better than %v", order[i+1], order[i])
		}
		if order[i].IsBetterThan(order[i+1]) {
			t.Errorf("%v should not be better than %v", order[i], order[i+1])
		}
	}
}

func TestCombinedMatcherShortCircuitsOnMatch(t *testing.T) {
	a := mustRegexMatcher(t, `1\d{2}`)
	b := mustRegexMatcher(t, `2\d{2}`)
	combined := NewCombinedMatcher(a, b)

	if got := combined.Match(digitseq.MustParse("199")); got != MATCHED {
		t.Errorf("Match(199) = %v, want MATCHED", got)
	}
	if got := combined.Match(digitseq.MustParse("299")); got != MATCHED {
		t.Errorf("Match(299) = %v, want MATCHED", got)
	}
	if got := combined.Match(digitseq.MustParse("399")); got != POSSIBLE_LENGTH {
		t.Errorf("Match(399) = %v, want POSSIBLE_LENGTH", got)
	}
}

func TestEmptyMatcherAlwaysInvalid(t *testing.T) {
	for _, digits := range []string{"", "1", "123456789"} {
		seq := digitseq.MustParse(digits)
		if Empty.Match(seq) != INVALID {
			t.Errorf("Empty.Match(%q) != INVALID", digits)
		}
		if Empty.IsMatch(seq) {
			t.Errorf("Empty.IsMatch(%q) = true", digits)
		}
	}
}

func TestLengthMaskTest(t *testing.T) {
	mask := NewLengthMask(6, 7)
	cases := []struct {
		length int
		want   LengthResult
	}{
		{6, POSSIBLE},
		{7, POSSIBLE},
		{5, TOO_SHORT},
		{8, TOO_LONG},
	}
	for _, c := range cases {
		if got := mask.Test(c.length); got != c.want {
			t.Errorf("Test(%d) = %v, want %v", c.length, got, c.want)
		}
	}
}

func TestLengthMaskInvalidLength(t *testing.T) {
	// Gaps in the mask (e.g. 5 and 9 possible, but not 7) classify as
	// INVALID_LENGTH for lengths strictly between the smallest and
	// largest possible lengths that are themselves not possible.
	mask := NewLengthMask(5, 9)
	if got := mask.Test(7); got != INVALID_LENGTH {
		t.Errorf("Test(7) = %v, want INVALID_LENGTH", got)
	}
}
