// Package numplan is the single front door over the numbering-plan
// runtime: given a decoded phonemeta.RawClassifier (however it was
// loaded), it wires up the parser, formatter, and classifier façades a
// caller typically needs together, the way coregex.Compile is the one
// entry point over that engine's internal nfa/dfa/meta machinery.
package numplan

import (
	"sort"

	"github.com/coregx/numplan/formatter"
	"github.com/coregx/numplan/metadata"
	"github.com/coregx/numplan/parser"
	"github.com/coregx/numplan/phonemeta"
)

// Engine bundles the façades built from one RawClassifier snapshot.
type Engine struct {
	raw       phonemeta.RawClassifier
	Parser    *parser.PhoneNumberParser
	Formatter *formatter.Formatter
}

// New builds an Engine directly from a decoded RawClassifier.
func New(raw phonemeta.RawClassifier) *Engine {
	return &Engine{
		raw:       raw,
		Parser:    parser.New(raw),
		Formatter: formatter.New(raw),
	}
}

// Raw returns the underlying RawClassifier, for callers that need
// direct access to classify.NewMatcher or classify.NewSingleValuedMatcher.
func (e *Engine) Raw() phonemeta.RawClassifier {
	return e.raw
}

// Load drives metadata.LoadAll across providers, requests the newest
// compatible classifier (by MajorDataVersion, then MinorDataVersion),
// and wraps the winner in an Engine. It is a convenience for the common
// case of one authoritative metadata snapshot; callers that need every
// loaded classifier should call metadata.LoadAll directly.
//
// maxConcurrency caps how many providers metadata.LoadAll runs at once;
// maxConcurrency <= 0 means unlimited.
func Load(providers []metadata.Provider, requested phonemeta.VersionInfo, maxConcurrency int) (*Engine, error) {
	classifiers, err := metadata.LoadAll(providers, requested, maxConcurrency, ascendingByDataVersion)
	if err != nil {
		return nil, err
	}
	if len(classifiers) == 0 {
		return nil, nil
	}
	return New(classifiers[len(classifiers)-1]), nil
}

func ascendingByDataVersion(a, b phonemeta.VersionInfo) bool {
	if a.MajorDataVersion != b.MajorDataVersion {
		return a.MajorDataVersion < b.MajorDataVersion
	}
	return a.MinorDataVersion < b.MinorDataVersion
}

// SupportedCallingCodes renders the engine's supported calling codes as
// sorted decimal strings, for CLI and diagnostic callers that only
// import numplan.
func (e *Engine) SupportedCallingCodes() []string {
	ccs := e.raw.GetSupportedCallingCodes()
	out := make([]string, len(ccs))
	for i, cc := range ccs {
		out[i] = cc.String()
	}
	sort.Strings(out)
	return out
}
