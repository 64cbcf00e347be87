package redfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Determinize
// Converts the NFA into an equivalent DFA by subset construction. DFA states are the epsilon
// closed sets of NFA states reachable from the closure of the NFA start state, named S0, S1, ...
// in breadth-first discovery order, so identical input always yields identical names. Every
// discovered state gets a transition on every symbol, the empty set included when reachable,
// so the result is total.
//
// Worst case complexity: exponential in the number of NFA states. When maxStates is positive,
// discovering more than maxStates DFA states fails with ErrTooComplex.
func Determinize(n *NFA, maxStates int) (*DFA, error) {
	alphabet := n.Alphabet()
	b := NewDFABuilder("subset", alphabet)
	accept := uint(n.Accept())

	initialSet := n.EpsilonClosure(n.NewStateSet(n.Start()))
	sets := []*bitset.BitSet{initialSet}
	newState := NewHashMap[int](WithCapacity(16))
	newState.Set(freeze(initialSet), b.CreateState("S0"))
	b.SetAccept(0, initialSet.Test(accept))

	// sets doubles as the work list: states are processed in the order they were named.
	for s := 0; s < len(sets); s++ {
		for _, symbol := range alphabet {
			target := n.EpsilonClosure(n.Move(sets[s], symbol))
			key := freeze(target)

			dest, ok := newState.Get(key)
			if !ok {
				if maxStates > 0 && len(sets) >= maxStates {
					return nil, fmt.Errorf("%w: more than %d dfa states", ErrTooComplex, maxStates)
				}
				dest = b.CreateState(fmt.Sprintf("S%d", len(sets)))
				b.SetAccept(dest, target.Test(accept))
				newState.Set(key, dest)
				sets = append(sets, target)
			}

			if err := b.AddTransition(s, dest, symbol); err != nil {
				return nil, err
			}
		}
	}

	return b.Finish()
}
