// Package parser implements PhoneNumberParser: lenient and strict
// parsing of free-form phone-number text, reconciling a "national"
// interpretation (given an assumed calling code) against an
// "international" one extracted from the text itself.
package parser

import (
	"regexp"

	"github.com/coregx/numplan/digitseq"
	"github.com/coregx/numplan/matcher"
	"github.com/coregx/numplan/phonemeta"
	"github.com/coregx/numplan/phonenum"
)

// FormatType records which path — national or international — produced
// a parse result.
type FormatType int

const (
	// NATIONAL means the result came from the assumed-calling-code path.
	NATIONAL FormatType = iota
	// INTERNATIONAL means the result came from the extracted-calling-code
	// path, or from reconciliation preferring it.
	INTERNATIONAL
)

func (f FormatType) String() string {
	if f == INTERNATIONAL {
		return "INTERNATIONAL"
	}
	return "NATIONAL"
}

// argentinaCallingCode is the one calling code the parser gives
// special-case treatment, per the data-driven Argentine mobile-token
// rule: kept here rather than in metadata so a regulation-specific
// quirk doesn't leak into the compact data format.
var argentinaCallingCode = digitseq.MustParse("54")

// argentineMobileToken matches a national number with the "0"+area+"15"
// mobile-token shape: optional leading 0, a 2-4 digit area code, the
// literal token "15", then a 6-8 digit subscriber number.
var argentineMobileToken = regexp.MustCompile(`^0?(\d{2,4})15(\d{6,8})$`)

// maxCallingCodeLength bounds calling-code extraction: no supported
// calling code is longer than 3 digits.
const maxCallingCodeLength = 3

// Result is the outcome of a parse: the best PhoneNumber found, how well
// it matched known metadata, and which path (national/international)
// produced it.
type Result struct {
	Number phonenum.PhoneNumber
	Match  matcher.Result
	Format FormatType
}

// PhoneNumberParser parses free-form text into PhoneNumber values using
// the calling-code records served by a phonemeta.RawClassifier.
type PhoneNumberParser struct {
	raw        phonemeta.RawClassifier
	regionToCC map[string]digitseq.Sequence
}

// New builds a PhoneNumberParser backed by raw, indexing raw's region
// lists for GetCallingCode lookups.
func New(raw phonemeta.RawClassifier) *PhoneNumberParser {
	p := &PhoneNumberParser{raw: raw, regionToCC: make(map[string]digitseq.Sequence)}
	for _, cc := range raw.GetSupportedCallingCodes() {
		data, err := raw.GetParserData(cc)
		if err != nil {
			continue
		}
		for _, region := range data.Regions {
			if region == "001" {
				continue
			}
			if _, exists := p.regionToCC[region]; !exists {
				p.regionToCC[region] = cc
			}
		}
	}
	return p
}

// ParseLeniently parses text, returning the best PhoneNumber found
// (possibly one that doesn't MATCH any known range) and true, or the
// zero value and false if preprocessing rejected the input outright or
// no calling code was available to evaluate it with.
// assumedCallingCode is used for the national path when hasAssumed is
// true.
func (p *PhoneNumberParser) ParseLeniently(text string, assumedCallingCode digitseq.Sequence, hasAssumed bool) (phonenum.PhoneNumber, bool) {
	r, err := p.parse(text, assumedCallingCode, hasAssumed)
	if err != nil {
		return phonenum.PhoneNumber{}, false
	}
	return r.Number, true
}

// ParseStrictly parses text, failing with an *UnparseableInputError when
// preprocessing rejects the input or no calling code was available to
// evaluate it with. Otherwise it returns the full Result,
// including match quality and inferred format, even when Match is
// matcher.INVALID.
func (p *PhoneNumberParser) ParseStrictly(text string, assumedCallingCode digitseq.Sequence, hasAssumed bool) (Result, error) {
	r, err := p.parse(text, assumedCallingCode, hasAssumed)
	if err != nil {
		return Result{}, &UnparseableInputError{Input: text, Err: err}
	}
	return r, nil
}

func (p *PhoneNumberParser) parse(text string, assumedCallingCode digitseq.Sequence, hasAssumed bool) (Result, error) {
	digitText, err := extractDigitText(text)
	if err != nil {
		return Result{}, err
	}

	extractedCC, suffix, hasExtracted := p.extractCallingCode(digitText)

	var national, international *Result
	if hasAssumed {
		nn, err := digitseq.Parse(digitText)
		if err == nil {
			r := p.getBestResult(assumedCallingCode, nn, NATIONAL)
			national = &r
		}
	}
	if hasExtracted {
		nn, err := digitseq.Parse(suffix)
		if err == nil {
			r := p.getBestResult(extractedCC, nn, INTERNATIONAL)
			international = &r
		}
	}

	result, ok := reconcile(national, international, func() bool {
		if hasAssumed && hasExtracted && assumedCallingCode.Equal(extractedCC) {
			return true
		}
		return hasExtracted && looksLikeInternationalFormat(text, extractedCC)
	})
	if !ok {
		return Result{}, ErrNoCallingCode
	}
	return result, nil
}

// getBestResult implements the spec's getBestResult(cc, nn, formatType)
// algorithm: Argentine mobile-token adjustment, unsupported-cc
// short-circuit, national-prefix stripping, and match-quality
// improvement.
func (p *PhoneNumberParser) getBestResult(cc, nn digitseq.Sequence, formatType FormatType) Result {
	nn = p.maybeAdjustArgentineFixedLineNumber(cc, nn)

	if !p.raw.IsSupportedCallingCode(cc) {
		num, _ := phonenum.New(cc, nn)
		return Result{Number: num, Match: matcher.INVALID, Format: formatType}
	}

	data, _ := p.raw.GetParserData(cc)

	best := nn
	var bestResult matcher.Result
	if formatType == INTERNATIONAL || len(data.NationalPrefixes) == 0 || data.NationalPrefixOptional {
		bestResult = p.raw.Match(cc, nn)
	} else {
		bestResult = matcher.INVALID
	}

	if bestResult != matcher.MATCHED {
		for _, np := range data.NationalPrefixes {
			if !nn.HasPrefix(np) {
				continue
			}
			candidate, ok := nn.TrimPrefix(np)
			if !ok {
				continue
			}
			candidateResult := p.raw.Match(cc, candidate)
			if candidateResult.IsBetterThan(bestResult) {
				best = candidate
				bestResult = candidateResult
			}
			if bestResult == matcher.MATCHED {
				break
			}
		}
	}

	num, _ := phonenum.New(cc, best)
	return Result{Number: num, Match: bestResult, Format: formatType}
}

// maybeAdjustArgentineFixedLineNumber applies the Argentine
// mobile-token rewrite: a fixed-line number dialed with the domestic
// "0"+area+"15"+subscriber mobile token is rewritten to "9"+area+
// subscriber, the canonical mobile form, when that rewrite produces a
// possible length.
func (p *PhoneNumberParser) maybeAdjustArgentineFixedLineNumber(cc, nn digitseq.Sequence) digitseq.Sequence {
	if !cc.Equal(argentinaCallingCode) {
		return nn
	}
	if p.raw.TestLength(cc, nn) != matcher.TOO_LONG {
		return nn
	}
	m := argentineMobileToken.FindStringSubmatch(nn.String())
	if m == nil {
		return nn
	}
	candidate, err := digitseq.Parse("9" + m[1] + m[2])
	if err != nil {
		return nn
	}
	if p.raw.TestLength(cc, candidate) == matcher.POSSIBLE {
		return candidate
	}
	return nn
}

// extractCallingCode finds the longest supported calling code that
// prefixes digitText, checking lengths 3, 2, 1 in that order.
func (p *PhoneNumberParser) extractCallingCode(digitText string) (cc digitseq.Sequence, suffix string, ok bool) {
	for length := maxCallingCodeLength; length >= 1; length-- {
		if len(digitText) <= length {
			continue
		}
		candidate, err := digitseq.Parse(digitText[:length])
		if err != nil {
			continue
		}
		if p.raw.IsSupportedCallingCode(candidate) {
			return candidate, digitText[length:], true
		}
	}
	return digitseq.Empty, "", false
}

// looksLikeInternationalFormat reports whether text's digits begin
// immediately after a single leading '+' (no other '+' appears after
// it) whose immediately following digits equal extractedCC.
func looksLikeInternationalFormat(text string, extractedCC digitseq.Sequence) bool {
	plusIdx := -1
	firstDigitIdx := -1
	runes := []rune(text)
	for i, r := range runes {
		if r == '+' {
			if plusIdx != -1 {
				return false // a second '+' appeared
			}
			plusIdx = i
			continue
		}
		if r >= '0' && r <= '9' || r >= 0xFF10 && r <= 0xFF19 {
			if firstDigitIdx == -1 {
				firstDigitIdx = i
			}
		}
	}
	if plusIdx == -1 || firstDigitIdx == -1 {
		return false
	}
	// The '+' must immediately precede the first digit.
	if plusIdx != firstDigitIdx-1 {
		return false
	}

	ccLen := extractedCC.Length()
	var digits []rune
	for _, r := range runes[firstDigitIdx:] {
		if len(digits) >= ccLen {
			break
		}
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		} else if r >= 0xFF10 && r <= 0xFF19 {
			digits = append(digits, '0'+(r-0xFF10))
		}
	}
	if len(digits) != ccLen {
		return false
	}
	got, err := digitseq.Parse(string(digits))
	if err != nil {
		return false
	}
	return got.Equal(extractedCC)
}
