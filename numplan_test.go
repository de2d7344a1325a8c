package numplan

import (
	"testing"

	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/metadata"
	"github.com/coregx/numplan/phonemeta"
)

func buildFixture(t *testing.T) phonemeta.RawClassifier {
	t.Helper()
	validity, err := matcher.NewRegexMatcher(`[2-9]\d{9}`, 0)
	if err != nil {
		t.Fatalf("NewRegexMatcher: %v", err)
	}
	records := []*phonemeta.CallingCodeRecord{
		{
			CallingCode:            digitseq.MustParse("1"),
			ValidityMatcher:        validity,
			TypeClassifiers:        []phonemeta.TypeClassifier{},
			NationalPrefixes:       []digitseq.Sequence{digitseq.MustParse("1")},
			NationalPrefixOptional: true,
			MainRegion:             "US",
			Regions:                []string{"US"},
			FormatTemplate:         "# XXX-XXX-XXXX",
		},
		{
			CallingCode:     digitseq.MustParse("44"),
			ValidityMatcher: matcher.Empty,
			TypeClassifiers: []phonemeta.TypeClassifier{},
			MainRegion:      "GB",
			Regions:         []string{"GB"},
			FormatTemplate:  "XXXX XXXXXX",
		},
	}
	raw, err := phonemeta.NewRawClassifier(nil, records, nil, phonemeta.VersionInfo{SchemaURI: "test", SchemaVersion: 1})
	if err != nil {
		t.Fatalf("NewRawClassifier: %v", err)
	}
	return raw
}

func TestEngineParsesAndFormats(t *testing.T) {
	e := New(buildFixture(t))

	result, err := e.Parser.ParseStrictly("2015550123", digitseq.MustParse("1"), true)
	if err != nil {
		t.Fatalf("ParseStrictly: %v", err)
	}
	if result.Match != matcher.MATCHED {
		t.Fatalf("Match = %v, want MATCHED", result.Match)
	}
	if got, want := e.Formatter.FormatNational(result.Number), "1 201-555-0123"; got != want {
		t.Errorf("FormatNational = %q, want %q", got, want)
	}
}

func TestEngineSupportedCallingCodesSorted(t *testing.T) {
	e := New(buildFixture(t))
	codes := e.SupportedCallingCodes()
	if len(codes) != 2 {
		t.Fatalf("codes = %v, want 2 entries", codes)
	}
	if codes[0] != "1" || codes[1] != "44" {
		t.Errorf("codes = %v, want [1 44]", codes)
	}
}

func TestLoadPicksNewestByDataVersion(t *testing.T) {
	older := sampleDoc(0, 0)
	newer := sampleDoc(0, 5)

	p1 := metadata.ProviderFunc(func() (*metadata.Document, error) { return older, nil })
	p2 := metadata.ProviderFunc(func() (*metadata.Document, error) { return newer, nil })

	requested := phonemeta.VersionInfo{SchemaURI: "numplan/v1", SchemaVersion: 1}
	e, err := Load([]metadata.Provider{p1, p2}, requested, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := e.Raw().GetVersion().MinorDataVersion; got != 5 {
		t.Errorf("picked version MinorDataVersion = %d, want 5", got)
	}
}

func sampleDoc(major, minor int) *metadata.Document {
	doc := &metadata.Document{Tokens: []string{""}}
	doc.Version.Major = major
	doc.Version.Minor = minor
	doc.Version.SchemaURI = "numplan/v1"
	doc.Version.SchemaVersion = 1
	return doc
}
