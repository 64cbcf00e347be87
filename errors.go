package redfa

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression            = errors.New("empty regular expression")
	ErrUnbalancedGrouping         = errors.New("unbalanced grouping")
	ErrUnterminatedCharacterClass = errors.New("unterminated character class")
	ErrMisplacedUnaryOperator     = errors.New("misplaced unary operator")
	ErrInvalidPostfixSymbol       = errors.New("invalid symbol in postfix expression")
	ErrMissingOperand             = errors.New("missing operand")
	ErrMalformedExpression        = errors.New("malformed expression")
	ErrInvalidDFA                 = errors.New("invalid dfa")
	ErrTooComplex                 = errors.New("too complex to determinize")
)

// CompileError is returned by Compile. It carries the expression that failed and
// unwraps to the error of the stage that rejected it.
type CompileError struct {
	Expression string
	Err        error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q: %v", e.Expression, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
