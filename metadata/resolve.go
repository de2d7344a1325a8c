package metadata

import (
	"fmt"

	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/phonemeta"
)

// Resolve decodes doc into a phonemeta.RawClassifier, checking doc's
// declared version against requested with VersionInfo.Satisfies. It
// returns *IncompatibleMetadataError if the check fails, and
// *phonemeta.AssertionError (via phonemeta.NewRawClassifier) if doc's
// own structure is internally inconsistent.
func Resolve(doc *Document, requested phonemeta.VersionInfo) (phonemeta.RawClassifier, error) {
	version := phonemeta.VersionInfo{
		SchemaURI:        doc.Version.SchemaURI,
		SchemaVersion:    doc.Version.SchemaVersion,
		MajorDataVersion: doc.Version.Major,
		MinorDataVersion: doc.Version.Minor,
	}
	if !version.Satisfies(requested) {
		return nil, &IncompatibleMetadataError{Got: version, Requested: requested}
	}

	tokens := phonemeta.NewTokenTable(doc.Tokens)

	types := make([]string, len(doc.Types))
	for i, tok := range doc.Types {
		types[i] = tokens.Get(tok)
	}

	records := make([]*phonemeta.CallingCodeRecord, len(doc.CallingCodes))
	for i, wcc := range doc.CallingCodes {
		rec, err := resolveCallingCode(wcc, types, tokens, doc.SingleValuedMask, doc.ClassifierOnlyMask)
		if err != nil {
			return nil, &CorruptMetadataError{Reason: err.Error()}
		}
		records[i] = rec
	}

	return phonemeta.NewRawClassifier(types, records, tokens, version)
}

func resolveCallingCode(wcc wireCallingCode, types []string, tokens *phonemeta.TokenTable, singleValuedMask, classifierOnlyMask uint64) (*phonemeta.CallingCodeRecord, error) {
	cc, err := digitseq.Parse(fmt.Sprintf("%d", wcc.CallingCode))
	if err != nil {
		return nil, fmt.Errorf("calling code %d: %w", wcc.CallingCode, err)
	}

	pool := make([]matcher.MatcherFunction, len(wcc.MatcherData))
	for i, md := range wcc.MatcherData {
		m, err := resolveMatcher(md)
		if err != nil {
			return nil, fmt.Errorf("calling code %d matcher %d: %w", wcc.CallingCode, i, err)
		}
		pool[i] = m
	}

	validity, err := combineFromPool(pool, wcc.ValidityMatcherIndex)
	if err != nil {
		return nil, fmt.Errorf("calling code %d validity matcher: %w", wcc.CallingCode, err)
	}

	if len(wcc.NationalNumberData) != len(types) {
		return nil, fmt.Errorf("calling code %d: %d type classifiers, want %d", wcc.CallingCode, len(wcc.NationalNumberData), len(types))
	}

	typeClassifiers := make([]phonemeta.TypeClassifier, len(wcc.NationalNumberData))
	for i, tc := range wcc.NationalNumberData {
		functions := make([]phonemeta.ValueFunction, len(tc.Functions))
		for j, fn := range tc.Functions {
			m, err := combineFromPool(pool, fn.MatcherIndex)
			if err != nil {
				return nil, fmt.Errorf("calling code %d type %d function %d: %w", wcc.CallingCode, i, j, err)
			}
			functions[j] = phonemeta.ValueFunction{ValueToken: fn.Value, Matcher: m}
		}
		typeClassifiers[i] = phonemeta.TypeClassifier{
			Functions:      functions,
			HasDefault:     tc.HasDefault,
			DefaultToken:   tc.DefaultValue,
			SingleValued:   singleValuedMask&(1<<uint(i)) != 0,
			ClassifierOnly: classifierOnlyMask&(1<<uint(i)) != 0,
		}
	}

	nationalPrefixes := make([]digitseq.Sequence, len(wcc.NationalPrefix))
	for i, tok := range wcc.NationalPrefix {
		seq, err := digitseq.Parse(tokens.Get(tok))
		if err != nil {
			return nil, fmt.Errorf("calling code %d national prefix %d: %w", wcc.CallingCode, i, err)
		}
		nationalPrefixes[i] = seq
	}

	regions := make([]string, len(wcc.Regions))
	for i, tok := range wcc.Regions {
		regions[i] = tokens.Get(tok)
	}
	mainRegion := ""
	if len(regions) > 0 {
		mainRegion = regions[0]
	}

	var exampleNumber digitseq.Sequence
	hasExample := wcc.ExampleNumber != ""
	if hasExample {
		seq, err := digitseq.Parse(wcc.ExampleNumber)
		if err != nil {
			return nil, fmt.Errorf("calling code %d example number: %w", wcc.CallingCode, err)
		}
		exampleNumber = seq
	}

	return &phonemeta.CallingCodeRecord{
		CallingCode:            cc,
		ValidityMatcher:        validity,
		TypeClassifiers:        typeClassifiers,
		NationalPrefixes:       nationalPrefixes,
		NationalPrefixOptional: wcc.NationalPrefixOptional,
		MainRegion:             mainRegion,
		Regions:                regions,
		ExampleNumber:          exampleNumber,
		HasExampleNumber:       hasExample,
		FormatTemplate:         tokens.Get(wcc.FormatTemplate),
	}, nil
}

func resolveMatcher(md wireMatcherData) (matcher.MatcherFunction, error) {
	if len(md.MatcherBytes) > 0 {
		return matcher.NewDFAMatcher(md.MatcherBytes, md.PossibleLengthsMask)
	}
	if md.Regex != "" {
		return matcher.NewRegexMatcher(md.Regex, md.PossibleLengthsMask)
	}
	return matcher.Empty, nil
}

// combineFromPool builds a MatcherFunction from a list of indices into
// pool: matcher.Empty for no indices, the pool entry directly for one,
// and a combined matcher disjuncting all of them otherwise.
func combineFromPool(pool []matcher.MatcherFunction, indices []uint32) (matcher.MatcherFunction, error) {
	if len(indices) == 0 {
		return matcher.Empty, nil
	}
	fns := make([]matcher.MatcherFunction, len(indices))
	for i, idx := range indices {
		if int(idx) >= len(pool) {
			return nil, fmt.Errorf("matcher index %d out of range (pool size %d)", idx, len(pool))
		}
		fns[i] = pool[idx]
	}
	if len(fns) == 1 {
		return fns[0], nil
	}
	return matcher.NewCombinedMatcher(fns...), nil
}
