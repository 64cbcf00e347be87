package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/geange/redfa"
)

func main() {
	regex := flag.String("regex", "", "single regular expression in infix notation")
	input := flag.String("input", "", "file with one regular expression per line")
	word := flag.String("word", "", "word to test against every automaton")
	outDir := flag.String("outdir", "outputs", "output directory for generated files")
	eps := flag.String("eps", redfa.DefaultEpsilon, "symbol to use for epsilon")
	asciiEps := flag.Bool("ascii-eps", false, "label epsilon edges 'eps' in DOT files")
	maxStates := flag.Int("max-states", 0, "fail when subset construction discovers more DFA states (0: no limit)")
	interactive := flag.Bool("interactive", false, "test words interactively after compiling -regex")
	verbose := flag.Bool("v", false, "log every pipeline stage")
	flag.Parse()

	log.SetFlags(0)
	if (*regex == "") == (*input == "") {
		fmt.Fprintln(os.Stderr, "usage: redfa (-regex <expr> | -input <file>) [-word w] [-outdir dir] [-eps sym] [-ascii-eps] [-max-states n] [-interactive] [-v]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := &config{
		word:         *word,
		epsilonLabel: *eps,
		verbose:      *verbose,
		opts:         []redfa.Option{redfa.WithEpsilon(*eps), redfa.WithMaxDFAStates(*maxStates)},
	}
	if *asciiEps {
		cfg.epsilonLabel = "eps"
	}

	if *input != "" {
		results, failures, err := processFile(*input, *outDir, cfg)
		if err != nil {
			log.Fatal(err)
		}
		for i, r := range results {
			fmt.Printf("[%d] %s\n", i+1, describe(r, cfg.word))
		}
		fmt.Printf("Files generated in: %s\n", *outDir)
		if len(failures) > 0 {
			for _, f := range failures {
				log.Print(f)
			}
			os.Exit(1)
		}
		return
	}

	r, err := processRegex(*regex, *outDir, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(describe(r, cfg.word))
	fmt.Printf("Files generated in: %s\n", *outDir)

	if *interactive {
		if err := runInteractive(r); err != nil {
			log.Fatal(err)
		}
	}
}
