package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/geange/redfa"
	"github.com/manifoldco/promptui"
)

type config struct {
	word         string
	epsilonLabel string
	verbose      bool
	opts         []redfa.Option
}

// A line of an input file holding an expression.
type expression struct {
	line int
	text string
}

// Returns the expressions of r, skipping blank lines and lines starting with '#'.
func readExpressions(r io.Reader) ([]expression, error) {
	result := make([]expression, 0)
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		result = append(result, expression{line: n, text: text})
	}
	return result, scanner.Err()
}

// Compiles expr and writes its DOT files and report into dir.
func processRegex(expr, dir string, cfg *config) (*redfa.Result, error) {
	r, err := redfa.Compile(expr, cfg.opts...)
	if err != nil {
		return nil, err
	}
	if cfg.verbose {
		log.Printf("normalized: %s", r.Normalized)
		log.Printf("infix: %s", r.Infix)
		log.Printf("postfix: %s", r.Postfix)
		log.Printf("states: nfa=%d dfa=%d min=%d", r.NFA.NumStates(), r.DFA.NumStates(), r.Minimized.NumStates())
		for _, line := range r.Trace {
			log.Print(line)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"nfa.dot", func(w io.Writer) error { return redfa.WriteNFADOT(w, r.NFA, cfg.epsilonLabel) }},
		{"dfa.dot", func(w io.Writer) error { return redfa.WriteDFADOT(w, r.DFA) }},
		{"dfa_min.dot", func(w io.Writer) error { return redfa.WriteDFADOT(w, r.Minimized) }},
		{"regex.txt", func(w io.Writer) error { return writeReport(w, cfg.word, r) }},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Processes every expression of the file at path, each into its own case_NN directory under
// dir, and writes summary.txt. A failing expression does not stop the others; its error is
// returned in failures.
func processFile(path, dir string, cfg *config) ([]*redfa.Result, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	exprs, err := readExpressions(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(exprs) == 0 {
		return nil, nil, fmt.Errorf("no regular expressions found in %s", path)
	}

	results := make([]*redfa.Result, 0, len(exprs))
	failures := make([]string, 0)
	for i, e := range exprs {
		r, err := processRegex(e.text, filepath.Join(dir, fmt.Sprintf("case_%02d", i+1)), cfg)
		if err != nil {
			failures = append(failures, fmt.Sprintf("case %d (line %d): %v", i+1, e.line, err))
			continue
		}
		if cfg.verbose {
			log.Printf("processed case %d: %s", i+1, e.text)
		}
		results = append(results, r)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	err = writeFile(filepath.Join(dir, "summary.txt"), func(w io.Writer) error {
		if err := redfa.WriteSummary(w, cfg.word, results); err != nil {
			return err
		}
		for _, failure := range failures {
			if _, err := fmt.Fprintln(w, failure); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return results, failures, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// One line with the postfix form, the state counts and the verdict of every stage on word.
func describe(r *redfa.Result, word string) string {
	counts := make([]string, 0, 3)
	verdicts := make([]string, 0, 3)
	for _, stage := range r.Stages() {
		counts = append(counts, fmt.Sprintf("%s=%d", stage.Name, stage.Automaton.NumStates()))
		verdicts = append(verdicts, fmt.Sprintf("%s=%s", stage.Name, yesNo(stage.Automaton.Accepts(word))))
	}
	return fmt.Sprintf("%s  postfix: %s  states: %s  accepts %q: %s",
		r.Expression, r.Postfix, strings.Join(counts, " "), word, strings.Join(verdicts, " "))
}

func writeReport(w io.Writer, word string, r *redfa.Result) error {
	var b strings.Builder
	b.WriteString("Regular Expression Processing Report\n\n")
	fmt.Fprintf(&b, "Original regex:     %s\n", r.Expression)
	fmt.Fprintf(&b, "Normalized regex:   %s\n", r.Normalized)
	fmt.Fprintf(&b, "With concatenation: %s\n", r.Infix)
	fmt.Fprintf(&b, "Postfix notation:   %s\n\n", r.Postfix)

	b.WriteString("Automaton Statistics:\n")
	for _, stage := range r.Stages() {
		fmt.Fprintf(&b, "  %-8s states: %d\n", stage.Name, stage.Automaton.NumStates())
	}
	fmt.Fprintf(&b, "\nSimulation Results for %q:\n", word)
	for _, stage := range r.Stages() {
		fmt.Fprintf(&b, "  %-8s accepts: %s\n", stage.Name, yesNo(stage.Automaton.Accepts(word)))
	}
	b.WriteString("\nMinimization Log:\n")
	for _, line := range r.Trace {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for _, d := range []*redfa.DFA{r.DFA, r.Minimized} {
		if _, err := fmt.Fprintf(w, "\n%s:\n", d.Name()); err != nil {
			return err
		}
		if err := redfa.WriteTransitionTable(w, d); err != nil {
			return err
		}
	}
	return nil
}

// Reads words from the terminal until "exit" and prints the verdict of every stage.
func runInteractive(r *redfa.Result) error {
	alphabet := r.Minimized.Alphabet()
	for {
		prompt := promptui.Prompt{
			Label: "Enter a word to test (or type 'exit' to quit)",
		}
		input, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "exit" {
			return nil
		}

		for _, c := range input {
			if !slices.Contains(alphabet, c) {
				fmt.Println(promptui.Styler(promptui.FGYellow)("Symbol not in alphabet: " + string(c)))
			}
		}
		for _, stage := range r.Stages() {
			if stage.Automaton.Accepts(input) {
				fmt.Println(promptui.Styler(promptui.FGGreen)(stage.Name + ": accepted"))
			} else {
				fmt.Println(promptui.Styler(promptui.FGRed)(stage.Name + ": rejected"))
			}
		}
		fmt.Println(promptui.Styler(promptui.FGMagenta)(strings.Repeat("-", 30)))
	}
}
