// Command gllrun is a small REPL-style driver over the demo grammars in
// internal/grammars, playing the role example/rpn and example/sexp
// play in hucsmn/peg: read a line, run it through a chosen grammar,
// print every parse result (or, on an ambiguous grammar, all of them)
// and any semantic errors.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/hcomb/gll"
	"github.com/hcomb/gll/internal/grammars"
)

// fileConfig is the TOML shape accepted by --config; flags override
// whatever it sets, matching hucsmn/peg's convention of flags winning
// over file-sourced defaults.
type fileConfig struct {
	MaxAmbiguityBreadth int `toml:"max_ambiguity_breadth"`
}

func main() {
	grammarName := pflag.String("grammar", "arithmetic", "grammar to run: arithmetic, ambiguous, recursion, recovery-fields")
	configPath := pflag.String("config", "", "optional TOML config file (max_ambiguity_breadth)")
	maxAmbiguity := pflag.Int("max-ambiguity", 0, "override MaxAmbiguityBreadth (0 = unlimited)")
	input := pflag.String("input", "", "parse this input and exit instead of starting the REPL")
	pflag.Parse()

	config := gll.DefaultConfig
	if *configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(*configPath, &fc); err != nil {
			fmt.Fprintf(os.Stderr, "gllrun: reading %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		config.MaxAmbiguityBreadth = fc.MaxAmbiguityBreadth
	}
	if pflag.CommandLine.Changed("max-ambiguity") {
		config.MaxAmbiguityBreadth = *maxAmbiguity
	}

	// recovery-fields lives on the token-combinator layer (Recovery/
	// Recover have no symbol-layer counterpart), so it runs through its
	// own driver rather than selectGrammar/runLine's symbol-layer Run.
	if *grammarName == "recovery-fields" {
		field := grammars.FieldList()
		if *input != "" {
			runFieldListLine(field, *input)
			return
		}
		fieldListRepl(field)
		return
	}

	root, err := selectGrammar(*grammarName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gllrun:", err)
		os.Exit(1)
	}

	if *input != "" {
		runLine(config, root, *input)
		return
	}
	repl(config, root)
}

func selectGrammar(name string) (*gll.SymbolCombinator, error) {
	switch name {
	case "arithmetic":
		return grammars.Arithmetic()
	case "ambiguous":
		return grammars.Ambiguous(), nil
	case "recursion":
		return grammars.MixedRecursion(), nil
	default:
		return nil, fmt.Errorf("unknown grammar %q", name)
	}
}

func repl(config gll.Config, root *gll.SymbolCombinator) {
	buf := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">>> ")
		line, err := buf.ReadString('\n')
		if len(line) > 0 {
			runLine(config, root, line)
		}
		if err != nil {
			break
		}
	}
}

func fieldListRepl(field *gll.TokenCombinator) {
	buf := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">>> ")
		line, err := buf.ReadString('\n')
		if len(line) > 0 {
			runFieldListLine(field, line)
		}
		if err != nil {
			break
		}
	}
}

func runFieldListLine(field *gll.TokenCombinator, line string) {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	if line == "" {
		return
	}
	s, err := field.Run(line, nil)
	if err != nil {
		fmt.Println("fault:", err)
		return
	}
	if s.IsError() {
		fmt.Printf("error at %d: %v\n", s.Index, s.Err)
		return
	}
	fmt.Printf("%v\n", s.Data)
}

func runLine(config gll.Config, root *gll.SymbolCombinator, line string) {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	if line == "" {
		return
	}
	results, err := gll.ConfiguredRun(config, root, line, gll.NoneIdentity{})
	if err != nil {
		fmt.Println("fault:", err)
		return
	}
	if len(results) == 0 {
		fmt.Println("no parse")
		return
	}
	for _, r := range results {
		if r.IsError() {
			fmt.Printf("error at %d: %v\n", r.Index, r.Err)
			continue
		}
		fmt.Printf("%v\n", r.Data)
	}
}
