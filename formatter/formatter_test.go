package formatter

import (
	"testing"

	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/phonemeta"
	"github.com/coregx/numplan/phonenum"
)

func buildFormatterFixture(t *testing.T) *Formatter {
	t.Helper()
	records := []*phonemeta.CallingCodeRecord{
		{
			CallingCode:      digitseq.MustParse("1"),
			ValidityMatcher:  matcher.Empty,
			TypeClassifiers:  nil,
			NationalPrefixes: []digitseq.Sequence{digitseq.MustParse("1")},
			FormatTemplate:   "# XXX-XXX-XXXX",
		},
		{
			CallingCode:     digitseq.MustParse("54"),
			ValidityMatcher: matcher.Empty,
			TypeClassifiers: nil,
			FormatTemplate:  "{X>}XX XXXX-XXXX",
		},
		{
			CallingCode:     digitseq.MustParse("44"),
			ValidityMatcher: matcher.Empty,
			TypeClassifiers: nil,
			FormatTemplate:  "XXXX{ XXXXXX}*",
		},
	}
	raw, err := phonemeta.NewRawClassifier(nil, records, nil, phonemeta.VersionInfo{})
	if err != nil {
		t.Fatalf("NewRawClassifier: %v", err)
	}
	return New(raw)
}

func TestFormatNationalWithPrefix(t *testing.T) {
	f := buildFormatterFixture(t)
	n := phonenum.PhoneNumber{CallingCode: digitseq.MustParse("1"), NationalNumber: digitseq.MustParse("2015550123")}
	got := f.FormatNational(n)
	want := "1 201-555-0123"
	if got != want {
		t.Errorf("FormatNational = %q, want %q", got, want)
	}
}

func TestFormatInternationalOmitsPrefix(t *testing.T) {
	f := buildFormatterFixture(t)
	n := phonenum.PhoneNumber{CallingCode: digitseq.MustParse("1"), NationalNumber: digitseq.MustParse("2015550123")}
	got := f.FormatInternational(n)
	want := "+1 201-555-0123"
	if got != want {
		t.Errorf("FormatInternational = %q, want %q", got, want)
	}
}

func TestFormatNationalDropDigit(t *testing.T) {
	f := buildFormatterFixture(t)
	// "91133295195": drop the leading "9", then area "11", then
	// subscriber "3329-5195".
	n := phonenum.PhoneNumber{CallingCode: digitseq.MustParse("54"), NationalNumber: digitseq.MustParse("91133295195")}
	got := f.FormatNational(n)
	want := "11 3329-5195"
	if got != want {
		t.Errorf("FormatNational = %q, want %q", got, want)
	}
}

func TestFormatPartialElidesUnfillableOptionalGroup(t *testing.T) {
	f := buildFormatterFixture(t)
	n := phonenum.PhoneNumber{CallingCode: digitseq.MustParse("44"), NationalNumber: digitseq.MustParse("1234")}
	got := f.FormatPartial(n)
	want := "1234"
	if got != want {
		t.Errorf("FormatPartial = %q, want %q", got, want)
	}
}

func TestFormatNationalExcessDigitsRepeatGroup(t *testing.T) {
	f := buildFormatterFixture(t)
	n := phonenum.PhoneNumber{CallingCode: digitseq.MustParse("44"), NationalNumber: digitseq.MustParse("1234567890123456")}
	got := f.FormatNational(n)
	want := "1234 567890 123456"
	if got != want {
		t.Errorf("FormatNational = %q, want %q", got, want)
	}
}

func TestParseTemplateUnterminatedGroup(t *testing.T) {
	if _, err := Parse("XXX {XXX"); err != ErrUnterminatedGroup {
		t.Errorf("err = %v, want ErrUnterminatedGroup", err)
	}
}
