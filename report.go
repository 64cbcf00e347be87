package redfa

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTransitionTable Writes d as a table with one row per state and one column per symbol.
// The start state is marked "->" and accept states "*"; "-" stands for a missing transition.
func WriteTransitionTable(w io.Writer, d *DFA) error {
	header := []string{"State"}
	for _, symbol := range d.alphabet {
		header = append(header, string(symbol))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	for s := 0; s < d.NumStates(); s++ {
		marker := ""
		if s == 0 {
			marker += "->"
		}
		if d.IsAccept(s) {
			marker += "*"
		}

		row := []string{marker + d.StateName(s)}
		for _, symbol := range d.alphabet {
			dest := d.Step(s, symbol)
			if dest == -1 {
				row = append(row, "-")
			} else {
				row = append(row, d.StateName(dest))
			}
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteSummary Writes one row per result: the postfix form, the state count of every stage
// and whether each stage accepts word.
func WriteSummary(w io.Writer, word string, results []*Result) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Expression", "Postfix", "NFA", "DFA", "MinDFA", "Accepts " + strconv.Quote(word)})

	for _, r := range results {
		row := []string{r.Expression, r.Postfix}
		verdicts := ""
		for i, stage := range r.Stages() {
			row = append(row, strconv.Itoa(stage.Automaton.NumStates()))
			if i > 0 {
				verdicts += "/"
			}
			if stage.Automaton.Accepts(word) {
				verdicts += "yes"
			} else {
				verdicts += "no"
			}
		}
		row = append(row, verdicts)
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
