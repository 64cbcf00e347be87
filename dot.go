package redfa

import (
	"fmt"
	"io"
	"strings"
)

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// WriteNFADOT Writes a Graphviz rendering of n to w. Epsilon edges are labeled epsilonLabel.
func WriteNFADOT(w io.Writer, n *NFA, epsilonLabel string) error {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("    rankdir=LR;\n")
	for s := 0; s < n.NumStates(); s++ {
		shape := "circle"
		if State(s) == n.Accept() {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    q%d [shape=%s];\n", s, shape)
	}
	for s := 0; s < n.NumStates(); s++ {
		for _, e := range n.edges[s] {
			label := epsilonLabel
			if !e.IsEpsilon() {
				label = string(e.Label)
			}
			fmt.Fprintf(&b, "    q%d -> q%d [label=\"%s\"];\n", s, e.To, dotEscape(label))
		}
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> q%d;\n", n.Start())
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteDFADOT Writes a Graphviz rendering of d to w. Parallel transitions share one edge
// labeled with all of their symbols.
func WriteDFADOT(w io.Writer, d *DFA) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", d.Name())
	b.WriteString("    rankdir=LR;\n")
	for s := 0; s < d.NumStates(); s++ {
		shape := "circle"
		if d.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "    \"%s\" [shape=%s];\n", dotEscape(d.StateName(s)), shape)
	}

	type arc struct{ source, dest int }
	labels := make(map[arc][]string)
	order := make([]arc, 0)
	for _, t := range d.Transitions() {
		a := arc{t.Source, t.Dest}
		if _, ok := labels[a]; !ok {
			order = append(order, a)
		}
		labels[a] = append(labels[a], string(t.Symbol))
	}
	for _, a := range order {
		fmt.Fprintf(&b, "    \"%s\" -> \"%s\" [label=\"%s\"];\n",
			dotEscape(d.StateName(a.source)), dotEscape(d.StateName(a.dest)), dotEscape(strings.Join(labels[a], ",")))
	}
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> \"%s\";\n", dotEscape(d.Start()))
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
