package redfa

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind int

const (
	TOKEN_LITERAL  = Kind(iota) // A single literal symbol
	TOKEN_ESCAPED               // A literal symbol written after an escape marker
	TOKEN_CLASS                 // A bracketed character class, e.g. [a-c]
	TOKEN_EPSILON               // The canonical epsilon token
	TOKEN_UNION                 // |
	TOKEN_CONCAT                // .
	TOKEN_STAR                  // *
	TOKEN_PLUS                  // +
	TOKEN_OPTIONAL              // ?
	TOKEN_LPAREN                // (
	TOKEN_RPAREN                // )
)

func (k Kind) isOperand() bool {
	return k == TOKEN_LITERAL || k == TOKEN_ESCAPED || k == TOKEN_CLASS || k == TOKEN_EPSILON
}

func (k Kind) isUnary() bool {
	return k == TOKEN_STAR || k == TOKEN_PLUS || k == TOKEN_OPTIONAL
}

func (k Kind) isBinary() bool {
	return k == TOKEN_UNION || k == TOKEN_CONCAT
}

// Can a token of this kind end an operand-producing expression.
func (k Kind) endsOperand() bool {
	return k.isOperand() || k.isUnary() || k == TOKEN_RPAREN
}

// Can a token of this kind begin an operand-producing expression.
func (k Kind) beginsOperand() bool {
	return k.isOperand() || k == TOKEN_LPAREN
}

// Token An atomic unit of an expression. Value holds the literal symbol for TOKEN_LITERAL and
// TOKEN_ESCAPED, the raw interior text for TOKEN_CLASS, the epsilon token for TOKEN_EPSILON and
// the operator or delimiter character otherwise.
type Token struct {
	Kind  Kind
	Value string
}

// String Returns the token as it is written in an expression.
func (t Token) String() string {
	switch t.Kind {
	case TOKEN_ESCAPED:
		return `\` + t.Value
	case TOKEN_CLASS:
		return "[" + t.Value + "]"
	default:
		return t.Value
	}
}

func (t Token) symbol() rune {
	r, _ := utf8.DecodeRuneInString(t.Value)
	return r
}

var concatToken = Token{Kind: TOKEN_CONCAT, Value: "."}

func kindOf(r rune) Kind {
	switch r {
	case '|':
		return TOKEN_UNION
	case '.':
		return TOKEN_CONCAT
	case '*':
		return TOKEN_STAR
	case '+':
		return TOKEN_PLUS
	case '?':
		return TOKEN_OPTIONAL
	case '(':
		return TOKEN_LPAREN
	case ')':
		return TOKEN_RPAREN
	default:
		return TOKEN_LITERAL
	}
}

// Tokenize Splits a normalized expression into tokens. It never fails: an opening bracket
// without a closing one is tokenized as the literal '['.
func Tokenize(expr, epsilon string) []Token {
	rs := []rune(expr)
	eps := []rune(epsilon)
	tokens := make([]Token, 0, len(rs))

	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case r == '\\' && i+1 < len(rs):
			tokens = append(tokens, Token{Kind: TOKEN_ESCAPED, Value: string(rs[i+1])})
			i += 2
		case r == '[':
			end := classEnd(rs, i)
			if end < 0 {
				tokens = append(tokens, Token{Kind: TOKEN_LITERAL, Value: "["})
				i++
				continue
			}
			tokens = append(tokens, Token{Kind: TOKEN_CLASS, Value: string(rs[i+1 : end])})
			i = end + 1
		case matchEpsilon(rs, i, eps):
			tokens = append(tokens, Token{Kind: TOKEN_EPSILON, Value: epsilon})
			i += len(eps)
		default:
			tokens = append(tokens, Token{Kind: kindOf(r), Value: string(r)})
			i++
		}
	}
	return tokens
}

// Returns the index of the ']' closing the class opened at rs[open], or -1.
func classEnd(rs []rune, open int) int {
	for j := open + 1; j < len(rs); j++ {
		switch rs[j] {
		case '\\':
			j++
		case ']':
			return j
		}
	}
	return -1
}

// A multi-rune epsilon token only matches as a whole word.
func matchEpsilon(rs []rune, i int, eps []rune) bool {
	end := i + len(eps)
	if len(eps) == 0 || end > len(rs) {
		return false
	}
	for j, r := range eps {
		if rs[i+j] != r {
			return false
		}
	}
	if len(eps) == 1 {
		return true
	}
	if i > 0 && isWordRune(rs[i-1]) {
		return false
	}
	return end == len(rs) || !isWordRune(rs[end])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// InsertConcat Returns tokens with an explicit TOKEN_CONCAT between every two adjacent tokens
// where the first can end an operand and the second can begin one.
func InsertConcat(tokens []Token) []Token {
	result := make([]Token, 0, 2*len(tokens))
	for i, tok := range tokens {
		result = append(result, tok)
		if i+1 < len(tokens) && tok.Kind.endsOperand() && tokens[i+1].Kind.beginsOperand() {
			result = append(result, concatToken)
		}
	}
	return result
}

// FormatTokens Writes tokens back out as expression text.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.String())
	}
	return b.String()
}
