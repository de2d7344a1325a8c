package formatter

import (
	"strings"

	"github.com/coregx/numplan/phonemeta"
	"github.com/coregx/numplan/phonenum"
)

// Formatter renders PhoneNumber values using the format template and
// national-prefix data a phonemeta.RawClassifier serves per calling
// code.
type Formatter struct {
	raw phonemeta.RawClassifier
}

// New builds a Formatter backed by raw.
func New(raw phonemeta.RawClassifier) *Formatter {
	return &Formatter{raw: raw}
}

// FormatNational renders n in national format: the calling code's
// template with its preferred national prefix substituted at '#'. If n's
// calling code is unsupported or declares no template, the national
// number's bare digit string is returned.
func (f *Formatter) FormatNational(n phonenum.PhoneNumber) string {
	data, err := f.raw.GetParserData(n.CallingCode)
	if err != nil || data.FormatTemplate == "" {
		return n.NationalNumber.String()
	}
	tmpl, err := Parse(data.FormatTemplate)
	if err != nil {
		return n.NationalNumber.String()
	}
	prefix := ""
	if len(data.NationalPrefixes) > 0 {
		prefix = data.NationalPrefixes[0].String()
	}
	return render(tmpl.nodes, prefix, n.NationalNumber.String(), true)
}

// FormatInternational renders n in international format:
// "+" + callingCode + " " + the calling code's template rendered with
// no national prefix substitution.
func (f *Formatter) FormatInternational(n phonenum.PhoneNumber) string {
	body := n.NationalNumber.String()
	data, err := f.raw.GetParserData(n.CallingCode)
	if err == nil && data.FormatTemplate != "" {
		if tmpl, err := Parse(data.FormatTemplate); err == nil {
			body = render(tmpl.nodes, "", n.NationalNumber.String(), false)
		}
	}
	return "+" + n.CallingCode.String() + " " + body
}

// FormatPartial renders an in-progress national number under n's
// calling-code template, for live-typing display: optional groups that
// can't yet be fully filled are elided, and formatting stops where the
// template runs out of available digits. It is FormatNational for a
// number still being entered.
func (f *Formatter) FormatPartial(n phonenum.PhoneNumber) string {
	return f.FormatNational(n)
}

// render walks nodes against digits (the national number's digit
// string), consuming them group by group. includePrefix controls
// whether a nationalPrefixMarker substitutes nationalPrefix or is
// dropped (international format omits it).
//
// Any literal text queued between groups is held in pending and only
// committed to the output once a following group actually consumes a
// digit, so a required group that the digits run out before reaching
// never leaves its leading separator dangling in the output — this is
// what gives partial formatting its "longest formatable prefix"
// behavior.
func render(nodes []node, nationalPrefix, digits string, includePrefix bool) string {
	var out, pending strings.Builder
	pos := 0

	flushPending := func() {
		out.WriteString(pending.String())
		pending.Reset()
	}

	for i := 0; i < len(nodes); i++ {
		if pos >= len(digits) {
			break
		}
		n := nodes[i]
		switch v := n.(type) {
		case literal:
			pending.WriteString(v.text)
		case nationalPrefixMarker:
			if includePrefix {
				pending.WriteString(nationalPrefix)
			} else if i+1 < len(nodes) {
				// The separator right after '#' exists only to set the
				// prefix off from the first digit group; with the prefix
				// itself omitted (international format), that separator
				// has nothing to separate and is dropped with it.
				if _, ok := nodes[i+1].(literal); ok {
					i++
				}
			}
		case digitGroup:
			take := v.count
			if remaining := len(digits) - pos; take > remaining {
				take = remaining
			}
			flushPending()
			out.WriteString(digits[pos : pos+take])
			pos += take
		case dropDigit:
			take := v.count
			if remaining := len(digits) - pos; take > remaining {
				take = remaining
			}
			pos += take
		case optionalGroup:
			capacity := digitCapacity(v.children)
			remaining := len(digits) - pos
			switch {
			case v.repeatable && remaining > 0:
				for remaining > 0 {
					chunkLen := capacity
					if chunkLen == 0 || chunkLen > remaining {
						chunkLen = remaining
					}
					flushPending()
					out.WriteString(render(v.children, "", digits[pos:pos+chunkLen], false))
					pos += chunkLen
					remaining = len(digits) - pos
				}
			case capacity > 0 && remaining >= capacity:
				flushPending()
				out.WriteString(render(v.children, nationalPrefix, digits[pos:pos+capacity], includePrefix))
				pos += capacity
			}
		}
	}
	flushPending()

	if pos < len(digits) {
		out.WriteString(digits[pos:])
	}
	return out.String()
}
