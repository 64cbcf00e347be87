package redfa

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// DefaultEpsilon is the canonical epsilon token used when none is configured.
const DefaultEpsilon = "ε"

var (
	// An escaped backslash is matched first so that `\\e` stays a backslash followed by 'e'.
	escapedEpsilon = regexp.MustCompile(`(?i)\\\\|\\epsilon|\\eps|\\e`)
	wordEpsilon    = regexp.MustCompile(`(?i)\b(?:epsilon|eps)\b`)
)

// Normalize
// Trims the raw expression, strips control characters and rewrites every way of writing
// epsilon (the words "epsilon" and "eps" in any case, and the escapes \e and \epsilon) to
// the canonical epsilon token.
func Normalize(raw, epsilon string) (string, error) {
	if epsilon == "" {
		epsilon = DefaultEpsilon
	}
	s := strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw))
	if s == "" {
		return "", ErrEmptyExpression
	}

	s = escapedEpsilon.ReplaceAllStringFunc(s, func(m string) string {
		if m == `\\` {
			return m
		}
		return epsilon
	})
	s = wordEpsilon.ReplaceAllLiteralString(s, epsilon)
	return s, nil
}

// Validate
// Checks a normalized expression for balanced grouping and character classes, and for unary
// operators that have no operand to apply to. Escaped characters and the members of a
// character class are literals and are not checked.
func Validate(expr string) error {
	rs := []rune(expr)
	depth := 0
	prev := TOKEN_LPAREN

	for i := 0; i < len(rs); i++ {
		switch r := rs[i]; r {
		case '\\':
			i++
			prev = TOKEN_ESCAPED
		case '[':
			end := classEnd(rs, i)
			if end < 0 {
				return fmt.Errorf("%w: '[' at position %d is never closed", ErrUnterminatedCharacterClass, i)
			}
			i = end
			prev = TOKEN_CLASS
		case ']':
			return fmt.Errorf("%w: ']' at position %d closes no character class", ErrUnbalancedGrouping, i)
		default:
			kind := kindOf(r)
			switch {
			case kind == TOKEN_LPAREN:
				depth++
			case kind == TOKEN_RPAREN:
				depth--
				if depth < 0 {
					return fmt.Errorf("%w: ')' at position %d has no matching '('", ErrUnbalancedGrouping, i)
				}
			case kind.isUnary():
				if i == 0 {
					return fmt.Errorf("%w: '%c' at the beginning of the expression", ErrMisplacedUnaryOperator, r)
				}
				if prev.isBinary() || prev == TOKEN_LPAREN {
					return fmt.Errorf("%w: '%c' at position %d follows '%c'", ErrMisplacedUnaryOperator, r, i, rs[i-1])
				}
			}
			prev = kind
		}
	}

	if depth != 0 {
		return fmt.Errorf("%w: %d '(' left open", ErrUnbalancedGrouping, depth)
	}
	return nil
}
