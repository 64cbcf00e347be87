package redfa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		epsilon string
		want    string
	}{
		{name: "trims", raw: "  (a|b)*abb \n", epsilon: DefaultEpsilon, want: "(a|b)*abb"},
		{name: "strips control characters", raw: "a\tb\x00c\x7f", epsilon: DefaultEpsilon, want: "abc"},
		{name: "word eps", raw: "eps|a", epsilon: DefaultEpsilon, want: "ε|a"},
		{name: "word epsilon any case", raw: "(EpSiLoN|a)b", epsilon: DefaultEpsilon, want: "(ε|a)b"},
		{name: "escape e", raw: `a\e`, epsilon: DefaultEpsilon, want: "aε"},
		{name: "escape epsilon", raw: `\epsilon|b`, epsilon: DefaultEpsilon, want: "ε|b"},
		{name: "escaped backslash before e", raw: `\\e`, epsilon: DefaultEpsilon, want: `\\e`},
		{name: "eps inside a word", raw: "steps", epsilon: DefaultEpsilon, want: "steps"},
		{name: "custom token", raw: "epsilon|a", epsilon: "eps", want: "eps|a"},
		{name: "empty token means default", raw: "eps", epsilon: "", want: "ε"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, tt.epsilon)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t", "\x01\x02"} {
		_, err := Normalize(raw, DefaultEpsilon)
		assert.True(t, errors.Is(err, ErrEmptyExpression), "Normalize(%q)", raw)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		expr string
		want error
	}{
		{expr: "(a|b)*abb", want: nil},
		{expr: "a**", want: nil},
		{expr: `\**`, want: nil},
		{expr: `\(a`, want: nil},
		{expr: "[(]+", want: nil},
		{expr: "(a)?b+", want: nil},
		{expr: "(a|b", want: ErrUnbalancedGrouping},
		{expr: "a)(", want: ErrUnbalancedGrouping},
		{expr: "ab]", want: ErrUnbalancedGrouping},
		{expr: "[ab", want: ErrUnterminatedCharacterClass},
		{expr: "*a", want: ErrMisplacedUnaryOperator},
		{expr: "a|*b", want: ErrMisplacedUnaryOperator},
		{expr: "(+a)", want: ErrMisplacedUnaryOperator},
		{expr: "a.?", want: ErrMisplacedUnaryOperator},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			err := Validate(tt.expr)
			if tt.want == nil {
				assert.Nil(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
