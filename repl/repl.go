// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"prover/internal/errors"
	"prover/internal/peano"
	"prover/internal/prove"
	"prover/internal/rule"
	"prover/internal/surface"
	"prover/internal/term"
)

const PROMPT = ">> "

// Start runs the line-oriented REPL loop: one equation per line, proved
// against a persistent term.Store and the embedded Peano axiom set
// (spec.md 7.4). The store outlives every line, so numerals and subterms
// typed across a session share the same interned Refs.
func Start(in io.Reader) {
	store := term.NewStore()
	rules, err := surface.LoadDefaultAxioms(store)
	if err != nil {
		color.Red("repl: failed to load embedded axioms: %s", err)
		return
	}

	prover := prove.New(prove.Config{
		Store:       store,
		Signature:   peano.Signature{},
		Rules:       rules,
		Congruences: []*rule.CongruenceRule{peano.Ax6},
		Goals:       peano.DefaultGoals,
		MaxNodes:    10000,
	})

	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		eq, err := surface.ParseEquation("<repl>", line)
		if err != nil {
			reportErr(err, "<repl>", line)
			continue
		}

		lhs, rhs, err := surface.DesugarEquation(eq, store)
		if err != nil {
			reportErr(err, "<repl>", line)
			continue
		}

		fmt.Print(errors.FormatProof(prover.Prove(lhs, rhs), peano.Signature{}))
	}
}

// reportErr renders a syntax or desugaring failure through the same
// positioned Rust-style diagnostic cmd/proverctl uses, so a typo mid
// REPL session gets a caret and a code, not a bare Go error string.
func reportErr(err error, filename, source string) {
	var pe *surface.ParseError
	if stderrors.As(err, &pe) {
		pos := pe.Position()
		printErr(errors.SyntaxError(pe.Error(), errors.Position{Line: pos.Line, Column: pos.Column}), filename, source)
		return
	}

	var uie *surface.UndefinedIdentError
	if stderrors.As(err, &uie) {
		printErr(errors.UndefinedIdentifier(uie.Name, errors.Position{Line: uie.Pos.Line, Column: uie.Pos.Column}), filename, source)
		return
	}

	var urv *surface.UnboundReplacementVariableError
	if stderrors.As(err, &urv) {
		printErr(errors.UnboundReplacementVariable(urv.RuleName, errors.Position{Line: urv.Pos.Line, Column: urv.Pos.Column}), filename, source)
		return
	}

	color.Red("error: %s", err)
}

func printErr(e errors.ProverError, filename, source string) {
	reporter := errors.NewErrorReporter(filename, source)
	fmt.Print(reporter.FormatError(e))
}
