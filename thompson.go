package redfa

import (
	"fmt"
	"slices"
)

// State An NFA state: an index into the arena of the Builder that created it.
type State int

// Epsilon is the label of an epsilon edge. It is distinct from every literal symbol.
const Epsilon rune = -1

// Edge A labeled NFA transition.
type Edge struct {
	Label rune
	To    State
}

// IsEpsilon Returns true if the edge can be taken without consuming input.
func (e Edge) IsEpsilon() bool {
	return e.Label == Epsilon
}

// Fragment A partially built NFA with one start and one accept state. Its transitions live
// in the Builder's arena.
type Fragment struct {
	Start  State
	Accept State
}

// Builder Builds NFAs by Thompson's construction. States are created by appending to an arena
// owned by the builder, so state numbers start at 0, increase monotonically and are never
// reused. Composition only ever adds epsilon edges at fragment boundaries; existing edges of a
// sub-fragment are never changed.
type Builder struct {
	edges [][]Edge
}

func NewBuilder() *Builder {
	return &Builder{edges: make([][]Edge, 0, 16)}
}

// CreateState Create a new state.
func (b *Builder) CreateState() State {
	state := State(len(b.edges))
	b.edges = append(b.edges, nil)
	return state
}

// NumStates How many states have been created so far.
func (b *Builder) NumStates() int {
	return len(b.edges)
}

// AddEdge Add a transition labeled with a symbol, or Epsilon, from source to dest.
func (b *Builder) AddEdge(source State, label rune, dest State) {
	b.edges[source] = append(b.edges[source], Edge{Label: label, To: dest})
}

// Symbols Returns a fragment accepting exactly one of the given symbols. With no symbols the
// fragment accepts only the empty string.
func (b *Builder) Symbols(symbols ...rune) Fragment {
	start := b.CreateState()
	accept := b.CreateState()
	if len(symbols) == 0 {
		b.AddEdge(start, Epsilon, accept)
	}
	for _, s := range symbols {
		b.AddEdge(start, s, accept)
	}
	return Fragment{Start: start, Accept: accept}
}

// Concat Returns a fragment for f1 followed by f2.
func (b *Builder) Concat(f1, f2 Fragment) Fragment {
	b.AddEdge(f1.Accept, Epsilon, f2.Start)
	return Fragment{Start: f1.Start, Accept: f2.Accept}
}

// Union Returns a fragment accepting what either f1 or f2 accepts.
func (b *Builder) Union(f1, f2 Fragment) Fragment {
	start := b.CreateState()
	accept := b.CreateState()
	b.AddEdge(start, Epsilon, f1.Start)
	b.AddEdge(start, Epsilon, f2.Start)
	b.AddEdge(f1.Accept, Epsilon, accept)
	b.AddEdge(f2.Accept, Epsilon, accept)
	return Fragment{Start: start, Accept: accept}
}

// Star Returns the Kleene closure of f.
func (b *Builder) Star(f Fragment) Fragment {
	start := b.CreateState()
	accept := b.CreateState()
	b.AddEdge(start, Epsilon, f.Start)
	b.AddEdge(f.Accept, Epsilon, accept)
	b.AddEdge(f.Accept, Epsilon, f.Start)
	b.AddEdge(start, Epsilon, accept)
	return Fragment{Start: start, Accept: accept}
}

// Plus Returns f concatenated with its own star. Both operands share f's states.
func (b *Builder) Plus(f Fragment) Fragment {
	return b.Concat(f, b.Star(f))
}

// Optional Returns a fragment accepting f or the empty string.
func (b *Builder) Optional(f Fragment) Fragment {
	start := b.CreateState()
	accept := b.CreateState()
	b.AddEdge(start, Epsilon, f.Start)
	b.AddEdge(f.Accept, Epsilon, accept)
	b.AddEdge(start, Epsilon, accept)
	return Fragment{Start: start, Accept: accept}
}

// FromPostfix
// Composes a fragment from postfix tokens, keeping the operands on a stack.
func (b *Builder) FromPostfix(postfix []Token) (Fragment, error) {
	stack := make([]Fragment, 0, len(postfix))
	pop := func() Fragment {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f
	}

	for i, tok := range postfix {
		switch tok.Kind {
		case TOKEN_LITERAL, TOKEN_ESCAPED:
			stack = append(stack, b.Symbols(tok.symbol()))
		case TOKEN_CLASS:
			symbols, err := classSymbols(tok.Value)
			if err != nil {
				return Fragment{}, err
			}
			stack = append(stack, b.Symbols(symbols...))
		case TOKEN_EPSILON:
			stack = append(stack, b.Symbols())
		case TOKEN_CONCAT, TOKEN_UNION:
			if len(stack) < 2 {
				return Fragment{}, fmt.Errorf("%w: '%s' at token %d needs two operands, have %d",
					ErrMissingOperand, tok.Value, i, len(stack))
			}
			f2 := pop()
			f1 := pop()
			if tok.Kind == TOKEN_CONCAT {
				stack = append(stack, b.Concat(f1, f2))
			} else {
				stack = append(stack, b.Union(f1, f2))
			}
		case TOKEN_STAR, TOKEN_PLUS, TOKEN_OPTIONAL:
			if len(stack) == 0 {
				return Fragment{}, fmt.Errorf("%w: '%s' at token %d has no operand", ErrMissingOperand, tok.Value, i)
			}
			f := pop()
			switch tok.Kind {
			case TOKEN_STAR:
				stack = append(stack, b.Star(f))
			case TOKEN_PLUS:
				stack = append(stack, b.Plus(f))
			default:
				stack = append(stack, b.Optional(f))
			}
		default:
			return Fragment{}, fmt.Errorf("%w: %q at token %d", ErrInvalidPostfixSymbol, tok.Value, i)
		}
	}

	if len(stack) != 1 {
		return Fragment{}, fmt.Errorf("%w: %d fragments remain after postfix processing", ErrMalformedExpression, len(stack))
	}
	return stack[0], nil
}

// Build Returns the NFA spanning fragment f. The builder may keep being used; the NFA does not
// observe later edges.
func (b *Builder) Build(f Fragment) *NFA {
	edges := make([][]Edge, len(b.edges))
	for s, out := range b.edges {
		edges[s] = slices.Clone(out)
	}
	return newNFA(f.Start, f.Accept, edges)
}

// FromPostfix Builds an NFA from postfix tokens with a fresh Builder.
func FromPostfix(postfix []Token) (*NFA, error) {
	b := NewBuilder()
	f, err := b.FromPostfix(postfix)
	if err != nil {
		return nil, err
	}
	return b.Build(f), nil
}

// Expands the interior of a character class into its sorted member symbols. Ranges x-y are
// inclusive; a '-' that cannot form a range is literal, and an escape makes the next rune
// literal.
func classSymbols(interior string) ([]rune, error) {
	rs := []rune(interior)
	if len(rs) == 0 {
		return nil, fmt.Errorf("%w: empty character class", ErrMalformedExpression)
	}

	seen := make(map[rune]struct{})
	symbols := make([]rune, 0, len(rs))
	add := func(r rune) {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			symbols = append(symbols, r)
		}
	}

	for i := 0; i < len(rs); i++ {
		lo := rs[i]
		if lo == '\\' && i+1 < len(rs) {
			i++
			add(rs[i])
			continue
		}
		if i+2 < len(rs) && rs[i+1] == '-' {
			hi := rs[i+2]
			if lo > hi {
				return nil, fmt.Errorf("%w: invalid range %c-%c in character class", ErrMalformedExpression, lo, hi)
			}
			for r := lo; r <= hi; r++ {
				add(r)
			}
			i += 2
			continue
		}
		add(lo)
	}

	slices.Sort(symbols)
	return symbols, nil
}
