package redfa

// SinkStateName is the name given to the state Totalize adds.
const SinkStateName = "__sink__"

// Totalize
// Returns a total DFA equivalent to d. Every missing transition is redirected to an added
// sink state that loops to itself on every symbol. A DFA that is already total is returned
// unchanged.
func Totalize(d *DFA) (*DFA, error) {
	if d.IsTotal() {
		return d, nil
	}

	b := NewDFABuilder(d.name+"_total", d.alphabet)
	numStates := d.NumStates()
	for s := 0; s < numStates; s++ {
		b.CreateState(d.names[s])
		b.SetAccept(s, d.IsAccept(s))
	}

	sinkName := SinkStateName
	for _, taken := d.index[sinkName]; taken; _, taken = d.index[sinkName] {
		sinkName += "_"
	}
	sink := b.CreateState(sinkName)
	for _, symbol := range d.alphabet {
		if err := b.AddTransition(sink, sink, symbol); err != nil {
			return nil, err
		}
	}

	for s := 0; s < numStates; s++ {
		for _, symbol := range d.alphabet {
			dest := d.Step(s, symbol)
			if dest == -1 {
				dest = sink
			}
			if err := b.AddTransition(s, dest, symbol); err != nil {
				return nil, err
			}
		}
	}

	return b.Finish()
}
