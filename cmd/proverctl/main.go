// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"prover/internal/errors"
	"prover/internal/peano"
	"prover/internal/prove"
	"prover/internal/rule"
	"prover/internal/surface"
	"prover/internal/term"
)

const defaultMaxNodes = 10000

func main() {
	rulesPath := flag.String("rules", "", "path to an axiom file (defaults to the embedded Peano set)")
	maxNodes := flag.Uint64("max-nodes", defaultMaxNodes, "node budget for the search")
	falseGoal := flag.Bool("false-goal", false, "also recognise S(x) = 0 as a proved-false terminal state")
	flag.Parse()

	configureLogging()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: proverctl [flags] '<term> = <term>'")
		os.Exit(2)
	}
	theorem := flag.Arg(0)

	store := term.NewStore()

	var rules []*rule.Rule
	var err error
	rulesFilename, rulesSource := "<embedded>", ""
	if *rulesPath == "" {
		rules, err = surface.LoadDefaultAxioms(store)
	} else {
		var src []byte
		src, err = os.ReadFile(*rulesPath)
		if err != nil {
			reportErr(errors.RulesFileUnreadable(*rulesPath, err), *rulesPath, "")
			os.Exit(2)
		}
		rulesFilename, rulesSource = *rulesPath, string(src)
		rules, err = surface.LoadAxiomSource(store, *rulesPath, rulesSource)
	}
	if err != nil {
		reportParseOrRuleErr(err, rulesFilename, rulesSource)
		os.Exit(2)
	}

	eq, err := surface.ParseEquation("<argument>", theorem)
	if err != nil {
		reportParseOrRuleErr(err, "<argument>", theorem)
		os.Exit(2)
	}
	lhs, rhs, err := surface.DesugarEquation(eq, store)
	if err != nil {
		reportParseOrRuleErr(err, "<argument>", theorem)
		os.Exit(2)
	}

	goals := peano.DefaultGoals
	if *falseGoal {
		goals = peano.FalseGoals
	}

	prover := prove.New(prove.Config{
		Store:       store,
		Signature:   peano.Signature{},
		Rules:       rules,
		Congruences: []*rule.CongruenceRule{peano.Ax6},
		Goals:       goals,
		MaxNodes:    *maxNodes,
	})

	result := prover.Prove(lhs, rhs)
	fmt.Print(errors.FormatProof(result, peano.Signature{}))

	if result.Status == prove.StatusFound {
		os.Exit(0)
	}
	os.Exit(1)
}

// reportParseOrRuleErr renders a syntax or desugaring failure through the
// reporter's Rust-style diagnostic, using the position carried by
// surface.ParseError / surface.UndefinedIdentError /
// surface.UnboundReplacementVariableError. filename/source anchor the
// context lines FormatError prints around the error position.
func reportParseOrRuleErr(err error, filename, source string) {
	var pe *surface.ParseError
	if stderrors.As(err, &pe) {
		pos := pe.Position()
		reportErr(errors.SyntaxError(pe.Error(), errors.Position{Line: pos.Line, Column: pos.Column}), filename, source)
		return
	}

	var uie *surface.UndefinedIdentError
	if stderrors.As(err, &uie) {
		reportErr(errors.UndefinedIdentifier(uie.Name, errors.Position{Line: uie.Pos.Line, Column: uie.Pos.Column}), filename, source)
		return
	}

	var urv *surface.UnboundReplacementVariableError
	if stderrors.As(err, &urv) {
		reportErr(errors.UnboundReplacementVariable(urv.RuleName, errors.Position{Line: urv.Pos.Line, Column: urv.Pos.Column}), filename, source)
		return
	}

	color.Red("error: %s", err)
}

func reportErr(e errors.ProverError, filename, source string) {
	reporter := errors.NewErrorReporter(filename, source)
	fmt.Fprint(os.Stderr, reporter.FormatError(e))
}

// configureLogging reads PROVER_LOG (spec.md 6.1), mapping it to
// commonlog's integer verbosity scale (higher means more verbose; the
// default, warn, is 1).
func configureLogging() {
	level := strings.ToLower(os.Getenv("PROVER_LOG"))
	verbosity := 1 // warn
	switch level {
	case "trace":
		verbosity = 4
	case "debug":
		verbosity = 3
	case "info":
		verbosity = 2
	case "warn", "":
		verbosity = 1
	case "error":
		verbosity = 0
	default:
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)
}
