package redfa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// NFA A Thompson automaton with one start and one accept state. The transition relation is
// fixed at construction; epsilon closures are cached per state on first use. The cache makes
// an NFA unsafe for concurrent use, give each goroutine its own.
type NFA struct {
	start    State
	accept   State
	edges    [][]Edge
	alphabet []rune
	closures []*bitset.BitSet
}

func newNFA(start, accept State, edges [][]Edge) *NFA {
	seen := make(map[rune]struct{})
	alphabet := make([]rune, 0)
	for _, out := range edges {
		for _, e := range out {
			if e.IsEpsilon() {
				continue
			}
			if _, ok := seen[e.Label]; !ok {
				seen[e.Label] = struct{}{}
				alphabet = append(alphabet, e.Label)
			}
		}
	}
	slices.Sort(alphabet)

	return &NFA{
		start:    start,
		accept:   accept,
		edges:    edges,
		alphabet: alphabet,
		closures: make([]*bitset.BitSet, len(edges)),
	}
}

func (n *NFA) Start() State {
	return n.start
}

func (n *NFA) Accept() State {
	return n.accept
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return len(n.edges)
}

// NumTransitions How many edges, epsilon edges included, this automaton has.
func (n *NFA) NumTransitions() int {
	count := 0
	for _, out := range n.edges {
		count += len(out)
	}
	return count
}

// Edges Returns the edges leaving state in insertion order.
func (n *NFA) Edges(state State) []Edge {
	return slices.Clone(n.edges[state])
}

// Alphabet Returns the distinct non-epsilon symbols of the automaton in ascending order.
func (n *NFA) Alphabet() []rune {
	return slices.Clone(n.alphabet)
}

// NewStateSet Returns a set, sized for this automaton, holding the given states.
func (n *NFA) NewStateSet(states ...State) *bitset.BitSet {
	set := bitset.New(uint(len(n.edges)))
	for _, s := range states {
		set.Set(uint(s))
	}
	return set
}

// EpsilonClosure Returns the states reachable from set using only epsilon edges, set included.
func (n *NFA) EpsilonClosure(set *bitset.BitSet) *bitset.BitSet {
	closure := n.NewStateSet()
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		closure.InPlaceUnion(n.closureOf(State(s)))
	}
	return closure
}

func (n *NFA) closureOf(state State) *bitset.BitSet {
	if c := n.closures[state]; c != nil {
		return c
	}

	closure := n.NewStateSet(state)
	workList := []State{state}
	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		for _, e := range n.edges[s] {
			if e.IsEpsilon() && !closure.Test(uint(e.To)) {
				closure.Set(uint(e.To))
				workList = append(workList, e.To)
			}
		}
	}
	n.closures[state] = closure
	return closure
}

// Move Returns the states reachable from set over one edge labeled symbol.
func (n *NFA) Move(set *bitset.BitSet, symbol rune) *bitset.BitSet {
	result := n.NewStateSet()
	if symbol == Epsilon {
		return result
	}
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		for _, e := range n.edges[s] {
			if e.Label == symbol {
				result.Set(uint(e.To))
			}
		}
	}
	return result
}

// Accepts Returns true if the automaton accepts the whole word.
func (n *NFA) Accepts(word string) bool {
	current := n.EpsilonClosure(n.NewStateSet(n.start))
	for _, r := range word {
		next := n.Move(current, r)
		if next.None() {
			return false
		}
		current = n.EpsilonClosure(next)
	}
	return current.Test(uint(n.accept))
}
