package redfa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DFA Represents an immutable deterministic automaton over a finite alphabet of symbols.
// States are integers from 0 to NumStates()-1, each carrying a unique name; state 0 is always
// the start state. A DFA may be partial, in which case Step returns -1 for the missing
// (state, symbol) pairs. Use DFABuilder to create one; transformations such as Totalize and
// Minimize return a new DFA.
type DFA struct {
	name     string
	alphabet []rune
	symbols  map[rune]int
	names    []string
	index    map[string]int
	isAccept *bitset.BitSet

	// Destination of state s on the i'th alphabet symbol at s*len(alphabet)+i, or -1.
	transitions []int
}

// Transition A DFA transition.
type Transition struct {
	Source int
	Symbol rune
	Dest   int
}

// DFABuilder Creates a DFA. Create states with CreateState, mark accept states with SetAccept
// and add transitions with AddTransition. The first created state is the start state.
// The builder must not be used after Finish.
type DFABuilder struct {
	dfa *DFA
	err error
}

// NewDFABuilder Returns a builder for a DFA over alphabet. Duplicate symbols are dropped and
// the alphabet is kept in ascending order.
func NewDFABuilder(name string, alphabet []rune) *DFABuilder {
	symbols := slices.Clone(alphabet)
	slices.Sort(symbols)
	symbols = slices.Compact(symbols)

	index := make(map[rune]int, len(symbols))
	for i, s := range symbols {
		index[s] = i
	}

	return &DFABuilder{
		dfa: &DFA{
			name:     name,
			alphabet: symbols,
			symbols:  index,
			index:    make(map[string]int),
			isAccept: bitset.New(0),
		},
	}
}

// CreateState Create a new state with the given name. Reusing a name makes Finish fail.
func (b *DFABuilder) CreateState(name string) int {
	d := b.dfa
	state := len(d.names)
	if _, ok := d.index[name]; ok && b.err == nil {
		b.err = fmt.Errorf("%w: duplicate state name %q", ErrInvalidDFA, name)
	}
	d.names = append(d.names, name)
	d.index[name] = state
	d.transitions = grow(d.transitions, len(d.names)*len(d.alphabet), -1)
	return state
}

// SetAccept Set or clear this state as an accept state. An unknown state makes Finish fail.
func (b *DFABuilder) SetAccept(state int, accept bool) {
	if state < 0 || state >= len(b.dfa.names) {
		if b.err == nil {
			b.err = fmt.Errorf("%w: cannot set accept on unknown state %d", ErrInvalidDFA, state)
		}
		return
	}
	b.dfa.isAccept.SetTo(uint(state), accept)
}

// NumStates How many states have been created so far.
func (b *DFABuilder) NumStates() int {
	return len(b.dfa.names)
}

// AddTransition Add the transition from source to dest on symbol. Each (source, symbol) pair
// takes at most one transition.
func (b *DFABuilder) AddTransition(source, dest int, symbol rune) error {
	d := b.dfa
	if source < 0 || source >= len(d.names) {
		return fmt.Errorf("%w: unknown source state %d", ErrInvalidDFA, source)
	}
	if dest < 0 || dest >= len(d.names) {
		return fmt.Errorf("%w: unknown destination state %d", ErrInvalidDFA, dest)
	}
	i, ok := d.symbols[symbol]
	if !ok {
		return fmt.Errorf("%w: symbol %q is not in the alphabet", ErrInvalidDFA, symbol)
	}
	slot := source*len(d.alphabet) + i
	if d.transitions[slot] != -1 {
		return fmt.Errorf("%w: state %q already has a transition on %q", ErrInvalidDFA, d.names[source], symbol)
	}
	d.transitions[slot] = dest
	return nil
}

// Finish Returns the built DFA.
func (b *DFABuilder) Finish() (*DFA, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.dfa.names) == 0 {
		return nil, fmt.Errorf("%w: no start state", ErrInvalidDFA)
	}
	d := b.dfa
	b.dfa = nil
	return d, nil
}

func (d *DFA) Name() string {
	return d.name
}

// Alphabet Returns the alphabet in ascending order.
func (d *DFA) Alphabet() []rune {
	return slices.Clone(d.alphabet)
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return len(d.names)
}

// States Returns the state names, indexed by state.
func (d *DFA) States() []string {
	return slices.Clone(d.names)
}

func (d *DFA) StateName(state int) string {
	return d.names[state]
}

// StateIndex Returns the state with the given name.
func (d *DFA) StateIndex(name string) (int, bool) {
	state, ok := d.index[name]
	return state, ok
}

// Start Returns the name of the start state.
func (d *DFA) Start() string {
	return d.names[0]
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.isAccept.Test(uint(state))
}

// AcceptStates Returns the names of the accept states in state order.
func (d *DFA) AcceptStates() []string {
	names := make([]string, 0)
	for s, ok := d.isAccept.NextSet(0); ok && int(s) < len(d.names); s, ok = d.isAccept.NextSet(s + 1) {
		names = append(names, d.names[s])
	}
	return names
}

// Step Returns the destination of state on symbol, -1 if there is none.
func (d *DFA) Step(state int, symbol rune) int {
	i, ok := d.symbols[symbol]
	if !ok {
		return -1
	}
	return d.transitions[state*len(d.alphabet)+i]
}

// Transitions Returns every transition, ordered by source state then by symbol.
func (d *DFA) Transitions() []Transition {
	result := make([]Transition, 0, len(d.transitions))
	for s := range d.names {
		for i, symbol := range d.alphabet {
			if dest := d.transitions[s*len(d.alphabet)+i]; dest != -1 {
				result = append(result, Transition{Source: s, Symbol: symbol, Dest: dest})
			}
		}
	}
	return result
}

// NumTransitions How many transitions this automaton has.
func (d *DFA) NumTransitions() int {
	count := 0
	for _, dest := range d.transitions {
		if dest != -1 {
			count++
		}
	}
	return count
}

// IsTotal Returns true if every state has a transition on every alphabet symbol.
func (d *DFA) IsTotal() bool {
	return !slices.Contains(d.transitions, -1)
}

// Accepts Returns true if the automaton accepts the whole word. Symbols outside the alphabet
// and missing transitions reject.
func (d *DFA) Accepts(word string) bool {
	state := 0
	for _, r := range word {
		next := d.Step(state, r)
		if next == -1 {
			return false
		}
		state = next
	}
	return d.IsAccept(state)
}
