package phonemeta

import (
	"fmt"
	"sort"

	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
)

// RawClassifier is the read-only query surface over a decoded metadata
// snapshot: calling-code validity, type classification, and the parser
// metadata a PhoneNumberParser/PhoneNumberFormatter need. Implementations
// are produced by package metadata's loaders, never constructed by hand
// outside this package.
type RawClassifier interface {
	// GetSupportedCallingCodes returns every calling code the classifier
	// has a record for, in ascending digitseq.Compare order.
	GetSupportedCallingCodes() []digitseq.Sequence

	// IsSupportedCallingCode reports whether cc has a record.
	IsSupportedCallingCode(cc digitseq.Sequence) bool

	// Match reports how well nn matches cc's overall validity pattern.
	// Returns INVALID if cc is unsupported.
	Match(cc digitseq.Sequence, nn digitseq.Sequence) matcher.Result

	// TestLength reports whether len(nn) is a possible national-number
	// length for cc. Returns matcher.INVALID_LENGTH if cc is unsupported.
	TestLength(cc digitseq.Sequence, nn digitseq.Sequence) matcher.LengthResult

	// Classify returns the values nn carries for classifier type typ
	// under calling code cc. Returns (nil, ErrUnknownCallingCode) if cc
	// is unsupported, (nil, nil) if typ isn't a registered type or
	// cc defines no such classifier.
	Classify(cc digitseq.Sequence, typ string, nn digitseq.Sequence) ([]string, error)

	// GetParserData returns the record fields a PhoneNumberParser needs
	// for cc.
	GetParserData(cc digitseq.Sequence) (ParserData, error)

	// GetVersion returns the metadata snapshot's version identity.
	GetVersion() VersionInfo

	// Types returns the registered classifier type names, in the order
	// records' TypeClassifiers slices are indexed by.
	Types() []string
}

// ParserData is the subset of a CallingCodeRecord a PhoneNumberParser
// and PhoneNumberFormatter consume, returned by value so callers cannot
// mutate classifier-owned state.
type ParserData struct {
	CallingCode            digitseq.Sequence
	NationalPrefixes       []digitseq.Sequence
	NationalPrefixOptional bool
	MainRegion             string
	Regions                []string
	ExampleNumber          digitseq.Sequence
	HasExampleNumber       bool
	FormatTemplate         string
}

type rawClassifier struct {
	types     []string
	typeIndex map[string]int
	records   map[digitseq.Sequence]*CallingCodeRecord
	supported []digitseq.Sequence // sorted ascending
	tokens    *TokenTable
	version   VersionInfo
}

// NewRawClassifier builds a RawClassifier from decoded records. types
// lists the classifier type names in the same order every record's
// TypeClassifiers slice is indexed by; every record's TypeClassifiers
// must have exactly len(types) entries, or construction fails with an
// AssertionError — a mismatch here means the codec or the data it
// decoded is corrupt, not that the caller supplied a bad number.
func NewRawClassifier(types []string, records []*CallingCodeRecord, tokens *TokenTable, version VersionInfo) (RawClassifier, error) {
	typeIndex := make(map[string]int, len(types))
	for i, t := range types {
		typeIndex[t] = i
	}

	byCode := make(map[digitseq.Sequence]*CallingCodeRecord, len(records))
	supported := make([]digitseq.Sequence, 0, len(records))
	for _, r := range records {
		if len(r.TypeClassifiers) != len(types) {
			return nil, &AssertionError{Message: fmt.Sprintf(
				"calling code %s: record has %d type classifiers, want %d",
				r.CallingCode, len(r.TypeClassifiers), len(types))}
		}
		if _, dup := byCode[r.CallingCode]; dup {
			return nil, &AssertionError{Message: fmt.Sprintf(
				"duplicate calling code %s", r.CallingCode)}
		}
		byCode[r.CallingCode] = r
		supported = append(supported, r.CallingCode)
	}
	sort.Slice(supported, func(i, j int) bool {
		return supported[i].Compare(supported[j]) < 0
	})

	if tokens == nil {
		tokens = NewTokenTable(nil)
	}

	return &rawClassifier{
		types:     types,
		typeIndex: typeIndex,
		records:   byCode,
		supported: supported,
		tokens:    tokens,
		version:   version,
	}, nil
}

func (c *rawClassifier) GetSupportedCallingCodes() []digitseq.Sequence {
	out := make([]digitseq.Sequence, len(c.supported))
	copy(out, c.supported)
	return out
}

func (c *rawClassifier) IsSupportedCallingCode(cc digitseq.Sequence) bool {
	_, ok := c.records[cc]
	return ok
}

func (c *rawClassifier) Match(cc, nn digitseq.Sequence) matcher.Result {
	r, ok := c.records[cc]
	if !ok {
		return matcher.INVALID
	}
	return r.ValidityMatcher.Match(nn)
}

func (c *rawClassifier) TestLength(cc, nn digitseq.Sequence) matcher.LengthResult {
	r, ok := c.records[cc]
	if !ok {
		return matcher.INVALID_LENGTH
	}
	return r.ValidityMatcher.TestLength(nn)
}

func (c *rawClassifier) Classify(cc digitseq.Sequence, typ string, nn digitseq.Sequence) ([]string, error) {
	r, ok := c.records[cc]
	if !ok {
		return nil, ErrUnknownCallingCode
	}
	idx, ok := c.typeIndex[typ]
	if !ok {
		return nil, nil
	}
	tc := &r.TypeClassifiers[idx]
	return tc.Classify(c.tokens, nn), nil
}

func (c *rawClassifier) GetParserData(cc digitseq.Sequence) (ParserData, error) {
	r, ok := c.records[cc]
	if !ok {
		return ParserData{}, ErrUnknownCallingCode
	}
	return ParserData{
		CallingCode:            r.CallingCode,
		NationalPrefixes:       r.NationalPrefixes,
		NationalPrefixOptional: r.NationalPrefixOptional,
		MainRegion:             r.MainRegion,
		Regions:                r.Regions,
		ExampleNumber:          r.ExampleNumber,
		HasExampleNumber:       r.HasExampleNumber,
		FormatTemplate:         r.FormatTemplate,
	}, nil
}

func (c *rawClassifier) GetVersion() VersionInfo {
	return c.version
}

func (c *rawClassifier) Types() []string {
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}
