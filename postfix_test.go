package redfa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postfixOf(t *testing.T, expr string) []Token {
	t.Helper()
	postfix, err := ToPostfix(InsertConcat(Tokenize(expr, DefaultEpsilon)))
	assert.Nil(t, err)
	return postfix
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{expr: "ab", want: "ab."},
		{expr: "a|b", want: "ab|"},
		{expr: "a|bc", want: "abc.|"},
		{expr: "(a|b)c", want: "ab|c."},
		{expr: "a*b*", want: "a*b*."},
		{expr: "(a|b)*abb", want: "ab|*a.b.b."},
		{expr: "a|b|c", want: "ab|c|"},
		{expr: "a?", want: "a?"},
		{expr: "ab+", want: "ab+."},
		// Unary operators are right associative: the later one is emitted first.
		{expr: "a+?", want: "a?+"},
		{expr: "a**", want: "a**"},
		{expr: `[a-c]\*ε`, want: `[a-c]\*.ε.`},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTokens(postfixOf(t, tt.expr)))
		})
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	for _, expr := range []string{"a)", "(a", "((a)"} {
		_, err := ToPostfix(InsertConcat(Tokenize(expr, DefaultEpsilon)))
		assert.True(t, errors.Is(err, ErrUnbalancedGrouping), "ToPostfix(%q) = %v", expr, err)
	}
}
