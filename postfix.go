package redfa

import "fmt"

var precedence = map[Kind]int{
	TOKEN_UNION:    1,
	TOKEN_CONCAT:   2,
	TOKEN_STAR:     3,
	TOKEN_PLUS:     3,
	TOKEN_OPTIONAL: 3,
}

// Unary operators are right associative.
var leftAssociative = map[Kind]bool{
	TOKEN_UNION:  true,
	TOKEN_CONCAT: true,
}

// ToPostfix Converts infix tokens, with explicit concatenation, to postfix order using the
// shunting-yard algorithm.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	operators := make([]Token, 0)

	for i, tok := range tokens {
		switch {
		case tok.Kind.isOperand():
			output = append(output, tok)
		case tok.Kind == TOKEN_LPAREN:
			operators = append(operators, tok)
		case tok.Kind == TOKEN_RPAREN:
			for len(operators) > 0 && operators[len(operators)-1].Kind != TOKEN_LPAREN {
				output = append(output, operators[len(operators)-1])
				operators = operators[:len(operators)-1]
			}
			if len(operators) == 0 {
				return nil, fmt.Errorf("%w: ')' at token %d has no matching '('", ErrUnbalancedGrouping, i)
			}
			// Discard the '('
			operators = operators[:len(operators)-1]
		default:
			prec := precedence[tok.Kind]
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.Kind == TOKEN_LPAREN {
					break
				}
				topPrec := precedence[top.Kind]
				if topPrec < prec || (topPrec == prec && !leftAssociative[tok.Kind]) {
					break
				}
				output = append(output, top)
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, tok)
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Kind == TOKEN_LPAREN {
			return nil, fmt.Errorf("%w: '(' is never closed", ErrUnbalancedGrouping)
		}
		output = append(output, top)
	}
	return output, nil
}
