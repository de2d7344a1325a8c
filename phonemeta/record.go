package phonemeta

import (
	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
)

// ValueFunction pairs one classifier value with the matcher that decides
// whether a national number carries that value. ValueToken indexes into
// the owning RawClassifier's shared token table; resolving it lazily
// (rather than storing the string inline) is what lets thousands of
// calling codes share one copy of common values like region codes or
// tariff names.
type ValueFunction struct {
	ValueToken int
	Matcher    matcher.MatcherFunction
}

// TypeClassifier holds, for one classifier type (e.g. "TYPE" or
// "REGION") and one calling code, the ordered list of value functions
// that type can produce.
type TypeClassifier struct {
	Functions []ValueFunction

	// HasDefault and DefaultToken implement the "total" classifier case:
	// a value returned when no function matches.
	HasDefault   bool
	DefaultToken int

	// SingleValued: at most one value is ever returned, by first match.
	SingleValued bool
	// ClassifierOnly: only MATCHED vs non-match is meaningful for this
	// type; partial-match distinctions among its functions may be lost
	// by callers that only care whether classification succeeded.
	ClassifierOnly bool
}

// Classify returns the values nn satisfies, resolved against tokens. The
// returned slice has at most one element when SingleValued is true.
func (tc *TypeClassifier) Classify(tokens *TokenTable, nn digitseq.Sequence) []string {
	if tc.SingleValued {
		for _, f := range tc.Functions {
			if f.Matcher.IsMatch(nn) {
				return []string{tokens.Get(f.ValueToken)}
			}
		}
		if tc.HasDefault {
			return []string{tokens.Get(tc.DefaultToken)}
		}
		return nil
	}

	var out []string
	for _, f := range tc.Functions {
		if f.Matcher.IsMatch(nn) {
			out = append(out, tokens.Get(f.ValueToken))
		}
	}
	if len(out) == 0 && tc.HasDefault {
		out = append(out, tokens.Get(tc.DefaultToken))
	}
	return out
}

// TokenTable is a deduplicated, shared string table. Index 0 is always
// the empty string, matching the wire format's convention so a zero
// ValueToken never needs special-casing at the call site.
type TokenTable struct {
	tokens []string
}

// NewTokenTable wraps tokens as a TokenTable. If tokens is empty or its
// first element isn't "", a leading "" is prepended so index 0 always
// resolves to the empty string.
func NewTokenTable(tokens []string) *TokenTable {
	if len(tokens) == 0 || tokens[0] != "" {
		withZero := make([]string, 0, len(tokens)+1)
		withZero = append(withZero, "")
		withZero = append(withZero, tokens...)
		tokens = withZero
	}
	return &TokenTable{tokens: tokens}
}

// Get resolves a token index to its string. Out-of-range indices resolve
// to "", matching index 0's reserved meaning.
func (t *TokenTable) Get(i int) string {
	if i < 0 || i >= len(t.tokens) {
		return ""
	}
	return t.tokens[i]
}

// Len returns the number of distinct tokens, including the reserved
// empty string at index 0.
func (t *TokenTable) Len() int {
	return len(t.tokens)
}

// CallingCodeRecord is the immutable, per-calling-code bundle of
// everything the classifier and parser need: a validity matcher, the
// type classifiers paralleling the RawClassifier's global type list, and
// the parsing metadata (national prefixes, regions, example number).
type CallingCodeRecord struct {
	CallingCode     digitseq.Sequence
	ValidityMatcher matcher.MatcherFunction
	TypeClassifiers []TypeClassifier

	NationalPrefixes       []digitseq.Sequence
	NationalPrefixOptional bool

	MainRegion string
	Regions    []string // first element equals MainRegion

	ExampleNumber    digitseq.Sequence
	HasExampleNumber bool

	// FormatTemplate is the national-number rendering template consumed
	// by package formatter (grammar: 'X' digit groups, '#' national
	// prefix marker, "{...}" optional groups, trailing '*' for repeat).
	// Not part of the core data model spec.md enumerates for
	// CallingCodeRecord; added because PhoneNumberFormatter (C7) needs
	// per-calling-code template data and the metadata codec (C8) is this
	// record's only producer.
	FormatTemplate string
}

// PreferredNationalPrefix returns the first national prefix, the one
// PhoneNumberFormatter inserts into national-format output, and true. If
// the record declares no national prefixes, it returns the zero value
// and false.
func (r *CallingCodeRecord) PreferredNationalPrefix() (digitseq.Sequence, bool) {
	if len(r.NationalPrefixes) == 0 {
		return digitseq.Empty, false
	}
	return r.NationalPrefixes[0], true
}
