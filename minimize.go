package redfa

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// A block of the partition. queued is true while the block waits in the work list.
type block struct {
	states *bitset.BitSet
	queued bool
}

func (b *block) first() uint {
	s, _ := b.states.NextSet(0)
	return s
}

// Minimize
// Returns the minimal DFA equivalent to d by partition refinement, together with a trace of
// the refinement: the initial partition, one line per split and the state counts before and
// after. A partial DFA is totalized first.
//
// The partition starts as the accept and non accept states, both queued. A popped block B
// splits every block C that has states both with and without a transition into B on some
// symbol. If C was queued both halves stay queued, otherwise only the smaller half is. The
// loop stops when the work list is empty; the partition then is the coarsest stable one.
//
// Each block becomes one state named B0, B1, ... ordered by its lowest original state, so the
// block of the start state is B0.
func Minimize(d *DFA) (*DFA, []string, error) {
	d, err := Totalize(d)
	if err != nil {
		return nil, nil, err
	}

	numStates := d.NumStates()
	numSymbols := len(d.alphabet)

	// predecessors[i][s] holds the states reaching s on the i'th symbol.
	predecessors := make([][]*bitset.BitSet, numSymbols)
	for i := range predecessors {
		predecessors[i] = make([]*bitset.BitSet, numStates)
		for s := range predecessors[i] {
			predecessors[i][s] = bitset.New(uint(numStates))
		}
	}
	for s := 0; s < numStates; s++ {
		for i := 0; i < numSymbols; i++ {
			predecessors[i][d.transitions[s*numSymbols+i]].Set(uint(s))
		}
	}

	accepting := bitset.New(uint(numStates))
	rejecting := bitset.New(uint(numStates))
	for s := 0; s < numStates; s++ {
		if d.IsAccept(s) {
			accepting.Set(uint(s))
		} else {
			rejecting.Set(uint(s))
		}
	}

	partition := make([]*block, 0, numStates)
	for _, states := range []*bitset.BitSet{accepting, rejecting} {
		if states.Any() {
			partition = append(partition, &block{states: states, queued: true})
		}
	}
	workList := slices.Clone(partition)

	format := func(states *bitset.BitSet) string {
		names := make([]string, 0, states.Count())
		for s, ok := states.NextSet(0); ok; s, ok = states.NextSet(s + 1) {
			names = append(names, d.names[s])
		}
		return "{" + strings.Join(names, " ") + "}"
	}
	blocks := make([]string, len(partition))
	for i, blk := range partition {
		blocks[i] = format(blk.states)
	}
	trace := []string{"initial partition: " + strings.Join(blocks, " ")}

	for len(workList) > 0 {
		splitter := workList[0]
		workList = workList[1:]
		splitter.queued = false
		members := splitter.states.Clone()

		for i, symbol := range d.alphabet {
			reaching := bitset.New(uint(numStates))
			for s, ok := members.NextSet(0); ok; s, ok = members.NextSet(s + 1) {
				reaching.InPlaceUnion(predecessors[i][s])
			}
			if reaching.None() {
				continue
			}

			// Blocks split off during this pass are stable against reaching already.
			for j, n := 0, len(partition); j < n; j++ {
				c := partition[j]
				inside := c.states.Intersection(reaching)
				if inside.None() {
					continue
				}
				outside := c.states.Difference(reaching)
				if outside.None() {
					continue
				}

				trace = append(trace, fmt.Sprintf("split %s on %q: %s | %s",
					format(c.states), symbol, format(inside), format(outside)))

				c.states = inside
				rest := &block{states: outside}
				partition = append(partition, rest)

				switch {
				case c.queued:
					rest.queued = true
					workList = append(workList, rest)
				case inside.Count() <= outside.Count():
					c.queued = true
					workList = append(workList, c)
				default:
					rest.queued = true
					workList = append(workList, rest)
				}
			}
		}
	}

	slices.SortFunc(partition, func(a, b *block) int {
		return cmp.Compare(a.first(), b.first())
	})
	blockOf := make([]int, numStates)
	for i, blk := range partition {
		for s, ok := blk.states.NextSet(0); ok; s, ok = blk.states.NextSet(s + 1) {
			blockOf[s] = i
		}
	}

	b := NewDFABuilder(d.name+"_min", d.alphabet)
	for i, blk := range partition {
		b.CreateState(fmt.Sprintf("B%d", i))
		b.SetAccept(i, blk.states.IntersectionCardinality(accepting) > 0)
	}
	for i, blk := range partition {
		representative := int(blk.first())
		for j, symbol := range d.alphabet {
			dest := blockOf[d.transitions[representative*numSymbols+j]]
			if err := b.AddTransition(i, dest, symbol); err != nil {
				return nil, nil, err
			}
		}
	}

	minimized, err := b.Finish()
	if err != nil {
		return nil, nil, err
	}
	trace = append(trace, fmt.Sprintf("minimized: %d -> %d states", numStates, minimized.NumStates()))
	return minimized, trace, nil
}
