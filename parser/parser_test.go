package parser

import (
	"testing"

	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/phonemeta"
)

func mustMatcher(t *testing.T, pattern string) matcher.MatcherFunction {
	t.Helper()
	m, err := matcher.NewRegexMatcher(pattern, 0)
	if err != nil {
		t.Fatalf("NewRegexMatcher(%q): %v", pattern, err)
	}
	return m
}

func buildTestParser(t *testing.T) *PhoneNumberParser {
	t.Helper()
	records := []*phonemeta.CallingCodeRecord{
		{
			CallingCode:     digitseq.MustParse("44"),
			ValidityMatcher: mustMatcher(t, `\d{9}`),
			TypeClassifiers: nil,
			MainRegion:      "GB",
			Regions:         []string{"GB"},
		},
		{
			CallingCode:            digitseq.MustParse("41"),
			ValidityMatcher:        mustMatcher(t, `7\d{8}`),
			TypeClassifiers:        nil,
			NationalPrefixes:       []digitseq.Sequence{digitseq.MustParse("0")},
			NationalPrefixOptional: false,
			MainRegion:             "CH",
			Regions:                []string{"CH"},
		},
		{
			CallingCode:     digitseq.MustParse("54"),
			ValidityMatcher: mustMatcher(t, `9\d{10}|[2-8]\d{9}`),
			TypeClassifiers: nil,
			MainRegion:      "AR",
			Regions:         []string{"AR"},
		},
		{
			CallingCode:            digitseq.MustParse("7"),
			ValidityMatcher:        mustMatcher(t, `8\d{13}`),
			TypeClassifiers:        nil,
			NationalPrefixes:       []digitseq.Sequence{digitseq.MustParse("8")},
			NationalPrefixOptional: true,
			MainRegion:             "RU",
			Regions:                []string{"RU", "KZ"},
		},
		{
			CallingCode:     digitseq.MustParse("90"),
			ValidityMatcher: matcher.Empty,
			TypeClassifiers: nil,
			MainRegion:      "001",
			Regions:         []string{"001"},
		},
	}
	raw, err := phonemeta.NewRawClassifier(nil, records, nil, phonemeta.VersionInfo{})
	if err != nil {
		t.Fatalf("NewRawClassifier: %v", err)
	}
	return New(raw)
}

func TestParseLenientlyInternationalWhitespaceInsensitive(t *testing.T) {
	p := buildTestParser(t)
	a, ok := p.ParseLeniently("+44 123 456789", digitseq.Empty, false)
	if !ok {
		t.Fatal("ParseLeniently rejected input")
	}
	b, ok := p.ParseLeniently("+44 123 456 789", digitseq.Empty, false)
	if !ok {
		t.Fatal("ParseLeniently rejected input")
	}
	if !a.Equal(b) {
		t.Errorf("a=%v b=%v want equal", a, b)
	}
	if a.String() != "+44123456789" {
		t.Errorf("a.String() = %q, want +44123456789", a.String())
	}

	c, ok := p.ParseLeniently("+44 123 456 999", digitseq.Empty, false)
	if !ok {
		t.Fatal("ParseLeniently rejected input")
	}
	if a.Equal(c) {
		t.Errorf("a and c should not be equal")
	}
}

func TestParseStrictlyNationalSwitzerland(t *testing.T) {
	p := buildTestParser(t)
	r, err := p.ParseStrictly("(079) 555 1234", digitseq.MustParse("41"), true)
	if err != nil {
		t.Fatalf("ParseStrictly: %v", err)
	}
	if r.Number.String() != "+41795551234" {
		t.Errorf("Number = %q, want +41795551234", r.Number.String())
	}
	if r.Match != matcher.MATCHED {
		t.Errorf("Match = %v, want MATCHED", r.Match)
	}
	if r.Format != NATIONAL {
		t.Errorf("Format = %v, want NATIONAL", r.Format)
	}
}

func TestParseStrictlyArgentinaMobileTokenAdjustment(t *testing.T) {
	p := buildTestParser(t)
	r, err := p.ParseStrictly("0 11 15-3329-5195", digitseq.MustParse("54"), true)
	if err != nil {
		t.Fatalf("ParseStrictly: %v", err)
	}
	if !r.Number.CallingCode.Equal(digitseq.MustParse("54")) {
		t.Errorf("CallingCode = %v, want 54", r.Number.CallingCode)
	}
	if !r.Number.NationalNumber.Equal(digitseq.MustParse("91133295195")) {
		t.Errorf("NationalNumber = %v, want 91133295195", r.Number.NationalNumber)
	}
	if r.Match != matcher.MATCHED {
		t.Errorf("Match = %v, want MATCHED", r.Match)
	}
}

func TestParseStrictlyRussiaPrefixAmbiguity(t *testing.T) {
	p := buildTestParser(t)
	r, err := p.ParseStrictly("(8108) 6309 390 906", digitseq.MustParse("7"), true)
	if err != nil {
		t.Fatalf("ParseStrictly: %v", err)
	}
	if r.Number.String() != "+781086309390906" {
		t.Errorf("Number = %q, want +781086309390906", r.Number.String())
	}
	if r.Match != matcher.MATCHED {
		t.Errorf("Match = %v, want MATCHED", r.Match)
	}
}

func TestParseStrictlyUnsupportedCallingCode(t *testing.T) {
	p := buildTestParser(t)
	r, err := p.ParseStrictly("+90 800 471 709298", digitseq.Empty, false)
	if err != nil {
		t.Fatalf("ParseStrictly: %v", err)
	}
	if !r.Number.CallingCode.Equal(digitseq.MustParse("90")) {
		t.Errorf("CallingCode = %v, want 90", r.Number.CallingCode)
	}
	if !r.Number.NationalNumber.Equal(digitseq.MustParse("800471709298")) {
		t.Errorf("NationalNumber = %v, want 800471709298", r.Number.NationalNumber)
	}
	if r.Match != matcher.INVALID {
		t.Errorf("Match = %v, want INVALID", r.Match)
	}
	if r.Format != INTERNATIONAL {
		t.Errorf("Format = %v, want INTERNATIONAL", r.Format)
	}
}

func TestParseStrictlyUnparseableInput(t *testing.T) {
	p := buildTestParser(t)
	if _, err := p.ParseStrictly("hello world", digitseq.Empty, false); err == nil {
		t.Fatal("expected UnparseableInputError")
	} else if _, ok := err.(*UnparseableInputError); !ok {
		t.Errorf("error = %T, want *UnparseableInputError", err)
	}
}

func TestGetRegionsAndCallingCode(t *testing.T) {
	p := buildTestParser(t)
	cc, err := p.GetCallingCode("CH")
	if err != nil {
		t.Fatalf("GetCallingCode: %v", err)
	}
	if !cc.Equal(digitseq.MustParse("41")) {
		t.Errorf("GetCallingCode(CH) = %v, want 41", cc)
	}

	regions, err := p.GetRegions(digitseq.MustParse("7"))
	if err != nil {
		t.Fatalf("GetRegions: %v", err)
	}
	if len(regions) != 2 || regions[0] != "RU" {
		t.Errorf("GetRegions(7) = %v, want [RU KZ]", regions)
	}

	if _, err := p.GetCallingCode("001"); err != ErrUnknownRegion {
		t.Errorf("GetCallingCode(001) error = %v, want ErrUnknownRegion", err)
	}
}
