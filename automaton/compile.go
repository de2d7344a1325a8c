package automaton

import "regexp/syntax"

// Config bounds the work CompileWithConfig is willing to do, preventing a
// pathological pattern (e.g. deeply nested bounded repeats) from
// determinizing into an unbounded number of DFA states.
type Config struct {
	// MaxStates caps the number of DFA states subset construction may
	// produce before CompileWithConfig gives up with ErrTooComplex.
	MaxStates int
}

// DefaultConfig returns sane limits for the short patterns national
// numbering-plan metadata actually uses.
func DefaultConfig() Config {
	return Config{MaxStates: 4096}
}

// Compile parses pattern as a Perl-syntax regular expression restricted
// to the ASCII digit alphabet and determinizes it into a DFA, using
// DefaultConfig.
//
// Supported syntax covers what phone-numbering-plan ranges need:
// literals, character classes, concatenation, alternation, *, +, ?,
// bounded/unbounded repeats, and grouping. Anchors (^, $) and word
// boundaries are accepted: ^ and \A hold only before the first digit,
// while $, \z and word boundaries always hold. Every DFA produced by
// this package already matches the entire digit sequence from the first
// digit to the last, so an explicit ^...$ is redundant with how callers
// use the result (compare the whole sequence against the automaton, not
// a substring search).
func Compile(pattern string) (*DFA, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig is Compile with an explicit Config.
func CompileWithConfig(pattern string, cfg Config) (*DFA, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	re = re.Simplify()

	prog, err := syntax.Compile(re)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	dfa, err := determinize(prog, cfg)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return dfa, nil
}
