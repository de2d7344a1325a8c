// Package formatter implements PhoneNumberFormatter: template-driven
// national and international rendering of phone numbers, including
// partial (in-progress) input.
package formatter

import (
	"strings"
)

// node is one element of a parsed format template.
type node interface {
	isNode()
}

// literal is a run of characters emitted verbatim: punctuation, spaces,
// or digit literals that are part of the template itself rather than
// national-number digits.
type literal struct {
	text string
}

func (literal) isNode() {}

// nationalPrefixMarker is the template's '#' token: the preferred
// national prefix is substituted here in national format, and the
// marker contributes nothing in international format.
type nationalPrefixMarker struct{}

func (nationalPrefixMarker) isNode() {}

// digitGroup is a run of 'X' characters: a group of count national-number
// digits.
type digitGroup struct {
	count int
}

func (digitGroup) isNode() {}

// dropDigit is the "X>" token: consumes count national-number digits
// without emitting them. Used for the Argentine mobile-number rendering,
// where the leading "9" token is present in the canonical national
// number but dropped from some presentations.
type dropDigit struct {
	count int
}

func (dropDigit) isNode() {}

// optionalGroup is a "{...}" span: its children are emitted only if
// enough national-number digits remain to fill the group's full digit
// capacity; otherwise the whole group is elided. A trailing '*' makes it
// repeatable: once reached, it consumes all remaining digits, applying
// its children repeatedly.
type optionalGroup struct {
	children   []node
	repeatable bool
}

func (optionalGroup) isNode() {}

// Template is a parsed format template, ready to be rendered against a
// national number's digits.
type Template struct {
	nodes []node
}

// digitCapacity returns the number of national-number digit slots ns's
// direct digitGroup/dropDigit children consume (nested optionalGroups do
// not count toward their parent's capacity).
func digitCapacity(ns []node) int {
	n := 0
	for _, child := range ns {
		switch c := child.(type) {
		case digitGroup:
			n += c.count
		case dropDigit:
			n += c.count
		}
	}
	return n
}

// Parse parses a format template string into a Template. The grammar
// recognizes '#' (national prefix marker), runs of 'X' (digit groups,
// or "X>" drop-digit tokens), "{...}" optional groups with an optional
// trailing '*' for repeatability, and any other character as a literal.
func Parse(template string) (*Template, error) {
	runes := []rune(template)
	nodes, _, err := parseNodes(runes, 0, false)
	if err != nil {
		return nil, err
	}
	return &Template{nodes: nodes}, nil
}

// parseNodes parses a sequence of nodes starting at pos, stopping at the
// end of input or, if inBrace is true, at a matching '}'. It returns the
// parsed nodes and the position just past the point it stopped at.
func parseNodes(runes []rune, pos int, inBrace bool) ([]node, int, error) {
	var nodes []node
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, literal{text: lit.String()})
			lit.Reset()
		}
	}

	for pos < len(runes) {
		r := runes[pos]
		switch {
		case inBrace && r == '}':
			flush()
			return nodes, pos + 1, nil
		case r == '#':
			flush()
			nodes = append(nodes, nationalPrefixMarker{})
			pos++
		case r == 'X':
			start := pos
			for pos < len(runes) && runes[pos] == 'X' {
				pos++
			}
			count := pos - start
			if pos < len(runes) && runes[pos] == '>' {
				pos++
				flush()
				nodes = append(nodes, dropDigit{count: count})
			} else {
				flush()
				nodes = append(nodes, digitGroup{count: count})
			}
		case r == '{':
			flush()
			children, next, err := parseNodes(runes, pos+1, true)
			if err != nil {
				return nil, 0, err
			}
			pos = next
			repeatable := false
			if pos < len(runes) && runes[pos] == '*' {
				repeatable = true
				pos++
			}
			nodes = append(nodes, optionalGroup{children: children, repeatable: repeatable})
		default:
			lit.WriteRune(r)
			pos++
		}
	}
	if inBrace {
		return nil, 0, ErrUnterminatedGroup
	}
	flush()
	return nodes, pos, nil
}
