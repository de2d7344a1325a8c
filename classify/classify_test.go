package classify

import (
	"testing"

	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/phonemeta"
)

type numberType int

const (
	unknownType numberType = iota
	mobile
	fixedLine
)

func enumConverter(token string) (numberType, bool) {
	switch token {
	case "MOBILE":
		return mobile, true
	case "FIXED_LINE":
		return fixedLine, true
	default:
		return unknownType, false
	}
}

func mustMatcher(t *testing.T, pattern string) matcher.MatcherFunction {
	t.Helper()
	m, err := matcher.NewRegexMatcher(pattern, 0)
	if err != nil {
		t.Fatalf("NewRegexMatcher(%q): %v", pattern, err)
	}
	return m
}

func buildRawClassifier(t *testing.T) phonemeta.RawClassifier {
	t.Helper()
	tokens := phonemeta.NewTokenTable([]string{"", "MOBILE", "FIXED_LINE"})
	record := &phonemeta.CallingCodeRecord{
		CallingCode:     digitseq.MustParse("44"),
		ValidityMatcher: mustMatcher(t, `7\d{9}|[1-6]\d{9}`),
		TypeClassifiers: []phonemeta.TypeClassifier{
			{
				Functions: []phonemeta.ValueFunction{
					{ValueToken: 1, Matcher: mustMatcher(t, `7\d{9}`)},
					{ValueToken: 2, Matcher: mustMatcher(t, `[1-6]\d{9}`)},
				},
				SingleValued: true,
			},
			{
				Functions: []phonemeta.ValueFunction{
					{ValueToken: 1, Matcher: mustMatcher(t, `7\d{9}`)},
				},
				SingleValued: false,
			},
		},
	}
	raw, err := phonemeta.NewRawClassifier([]string{"TYPE", "REGION"}, []*phonemeta.CallingCodeRecord{record}, tokens, phonemeta.VersionInfo{})
	if err != nil {
		t.Fatalf("NewRawClassifier: %v", err)
	}
	return raw
}

func TestSingleValuedMatcherIdentify(t *testing.T) {
	raw := buildRawClassifier(t)
	cc := digitseq.MustParse("44")
	m := NewSingleValuedMatcher(raw, cc, "TYPE", enumConverter)

	v, ok, err := m.Identify(digitseq.MustParse("7911123456"))
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if !ok || v != mobile {
		t.Errorf("Identify = (%v, %v), want (mobile, true)", v, ok)
	}

	v, ok, err = m.Identify(digitseq.MustParse("2011123456"))
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if !ok || v != fixedLine {
		t.Errorf("Identify = (%v, %v), want (fixedLine, true)", v, ok)
	}
}

func TestMatcherGetPossibleValues(t *testing.T) {
	raw := buildRawClassifier(t)
	cc := digitseq.MustParse("44")
	m := NewMatcher(raw, cc, "REGION", Identity)

	values, err := m.GetPossibleValues(digitseq.MustParse("7911123456"))
	if err != nil {
		t.Fatalf("GetPossibleValues: %v", err)
	}
	if len(values) != 1 || values[0] != "MOBILE" {
		t.Errorf("GetPossibleValues = %v, want [MOBILE]", values)
	}

	values, err = m.GetPossibleValues(digitseq.MustParse("2011123456"))
	if err != nil {
		t.Fatalf("GetPossibleValues: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("GetPossibleValues = %v, want []", values)
	}
}

func TestMatcherMatchAndTestLength(t *testing.T) {
	raw := buildRawClassifier(t)
	cc := digitseq.MustParse("44")
	m := NewMatcher(raw, cc, "TYPE", Identity)

	if got := m.Match(digitseq.MustParse("7911123456")); got != matcher.MATCHED {
		t.Errorf("Match = %v, want MATCHED", got)
	}
	if got := m.TestLength(digitseq.MustParse("791112345")); got == matcher.POSSIBLE {
		t.Errorf("TestLength(9 digits) = POSSIBLE, want non-possible")
	}
}

func TestConverterRejectsUnknownToken(t *testing.T) {
	if _, ok := enumConverter("SOMETHING_NEW"); ok {
		t.Error("expected unrecognized token to report ok=false")
	}
}
