// Package classify layers typed façades over a phonemeta.RawClassifier.
// The raw classifier only knows string-named types and string-valued
// tokens; Matcher and SingleValuedMatcher attach the caller's own value
// type (an enum, a region object, or plain string) by way of an injected
// converter, so application code never handles loose token strings.
package classify

import (
	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/phonemeta"
)

// Converter turns a raw token string into a caller-defined value V, and
// reports whether the token was recognized. An unrecognized token is
// dropped rather than propagated as a zero value, so a widened metadata
// vocabulary degrades gracefully instead of producing a bogus V.
type Converter[V any] func(token string) (V, bool)

// Identity is the Converter for types where the token string is already
// the desired value.
func Identity(token string) (string, bool) {
	return token, true
}

// Matcher classifies national numbers for one calling code and type
// name, returning every possible value. Use for multi-valued types such
// as region, where a number can plausibly belong to more than one
// value.
type Matcher[V any] struct {
	raw       phonemeta.RawClassifier
	cc        digitseq.Sequence
	typeName  string
	converter Converter[V]
}

// NewMatcher builds a Matcher over raw for calling code cc and classifier
// type typeName.
func NewMatcher[V any](raw phonemeta.RawClassifier, cc digitseq.Sequence, typeName string, converter Converter[V]) *Matcher[V] {
	return &Matcher[V]{raw: raw, cc: cc, typeName: typeName, converter: converter}
}

// Match reports how nn matches cc's overall validity range, independent
// of typeName.
func (m *Matcher[V]) Match(nn digitseq.Sequence) matcher.Result {
	return m.raw.Match(m.cc, nn)
}

// TestLength reports whether nn's length is possible for cc.
func (m *Matcher[V]) TestLength(nn digitseq.Sequence) matcher.LengthResult {
	return m.raw.TestLength(m.cc, nn)
}

// GetPossibleValues returns every value nn carries for typeName,
// converted through m's Converter. A token the converter does not
// recognize is silently omitted.
func (m *Matcher[V]) GetPossibleValues(nn digitseq.Sequence) ([]V, error) {
	tokens, err := m.raw.Classify(m.cc, m.typeName, nn)
	if err != nil {
		return nil, err
	}
	out := make([]V, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := m.converter(tok); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// SingleValuedMatcher additionally asserts the classifier type never
// produces more than one value at a time, exposing Identify as a
// convenience over GetPossibleValues.
type SingleValuedMatcher[V any] struct {
	Matcher[V]
}

// NewSingleValuedMatcher builds a SingleValuedMatcher over raw.
func NewSingleValuedMatcher[V any](raw phonemeta.RawClassifier, cc digitseq.Sequence, typeName string, converter Converter[V]) *SingleValuedMatcher[V] {
	return &SingleValuedMatcher[V]{Matcher: Matcher[V]{raw: raw, cc: cc, typeName: typeName, converter: converter}}
}

// Identify returns nn's single classified value, and false if nn carries
// none (or the underlying metadata violates single-valuedness and
// returns more than one — the first is used).
func (m *SingleValuedMatcher[V]) Identify(nn digitseq.Sequence) (V, bool, error) {
	values, err := m.GetPossibleValues(nn)
	if err != nil {
		var zero V
		return zero, false, err
	}
	if len(values) == 0 {
		var zero V
		return zero, false, nil
	}
	return values[0], true, nil
}
