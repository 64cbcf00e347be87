package redfa

// Acceptor is the contract shared by every automaton stage.
type Acceptor interface {
	Accepts(word string) bool
	NumStates() int
}

var (
	_ Acceptor = &NFA{}
	_ Acceptor = &DFA{}
)

type options struct {
	epsilon      string
	maxDFAStates int
}

type Option func(*options)

// WithEpsilon Sets the canonical epsilon token, DefaultEpsilon when empty.
func WithEpsilon(symbol string) Option {
	return func(o *options) {
		o.epsilon = symbol
	}
}

// WithMaxDFAStates Bounds the number of states subset construction may discover. Zero, the
// default, means no bound.
func WithMaxDFAStates(n int) Option {
	return func(o *options) {
		o.maxDFAStates = n
	}
}

func newOptions(opts ...Option) *options {
	o := &options{epsilon: DefaultEpsilon}
	for _, fn := range opts {
		fn(o)
	}
	if o.epsilon == "" {
		o.epsilon = DefaultEpsilon
	}
	return o
}

// Result Holds the output of every pipeline stage for one expression.
type Result struct {
	Expression string
	Epsilon    string
	Normalized string

	// Infix is the normalized expression with explicit concatenation operators.
	Infix         string
	Postfix       string
	PostfixTokens []Token

	NFA       *NFA
	DFA       *DFA
	Minimized *DFA
	Trace     []string
}

// Stage A named automaton of a Result.
type Stage struct {
	Name      string
	Automaton Acceptor
}

// Stages Returns the NFA, the subset construction DFA and the minimized DFA, in pipeline order.
func (r *Result) Stages() []Stage {
	return []Stage{
		{Name: "NFA", Automaton: r.NFA},
		{Name: "DFA", Automaton: r.DFA},
		{Name: "MinDFA", Automaton: r.Minimized},
	}
}

// Compile
// Runs expression through the whole pipeline: normalization and validation, tokenization with
// explicit concatenation, conversion to postfix, Thompson construction, subset construction,
// totalization and minimization. Any failure is returned as a *CompileError that unwraps to
// the error of the failing stage.
func Compile(expression string, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	result, err := compile(expression, o)
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}
	return result, nil
}

func compile(expression string, o *options) (*Result, error) {
	normalized, err := Normalize(expression, o.epsilon)
	if err != nil {
		return nil, err
	}
	if err := Validate(normalized); err != nil {
		return nil, err
	}

	infix := InsertConcat(Tokenize(normalized, o.epsilon))
	postfix, err := ToPostfix(infix)
	if err != nil {
		return nil, err
	}

	nfa, err := FromPostfix(postfix)
	if err != nil {
		return nil, err
	}
	dfa, err := Determinize(nfa, o.maxDFAStates)
	if err != nil {
		return nil, err
	}
	total, err := Totalize(dfa)
	if err != nil {
		return nil, err
	}
	minimized, trace, err := Minimize(total)
	if err != nil {
		return nil, err
	}

	return &Result{
		Expression:    expression,
		Epsilon:       o.epsilon,
		Normalized:    normalized,
		Infix:         FormatTokens(infix),
		Postfix:       FormatTokens(postfix),
		PostfixTokens: postfix,
		NFA:           nfa,
		DFA:           total,
		Minimized:     minimized,
		Trace:         trace,
	}, nil
}
