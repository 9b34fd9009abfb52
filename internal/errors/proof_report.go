package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"prover/internal/prove"
	"prover/internal/term"
)

// FormatProof renders a prove.ProofResult (spec.md 6, 7.3) with the same
// gutter/color conventions FormatError uses for a source diagnostic: a
// dimmed "│" gutter per derivation step, then a bold green/red verdict
// line. Unlike FormatError there is no source file or line to anchor a
// caret on, so the gutter carries rewrite steps instead of context lines.
func FormatProof(result prove.ProofResult, sig term.Signature) string {
	var b strings.Builder
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, step := range result.Steps {
		b.WriteString(dim("  │ "))
		if step.Side == prove.Both {
			fmt.Fprintf(&b, "%s %s: %s => %s   and   %s => %s\n",
				bold(fmt.Sprintf("[%s]", step.Side)), step.RuleName,
				term.Render(step.Before, sig), term.Render(step.After, sig),
				term.Render(step.RhsBefore, sig), term.Render(step.RhsAfter, sig))
			continue
		}
		fmt.Fprintf(&b, "%s %s @ %s: %s => %s\n",
			bold(fmt.Sprintf("[%s]", step.Side)), step.RuleName, step.Position,
			term.Render(step.Before, sig), term.Render(step.After, sig))
	}

	if result.Status == prove.StatusFound {
		verdict := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Fprintf(&b, "%s (goal: %s, %d states explored)\n", verdict("true"), result.GoalName, result.NodesExplored)
		return b.String()
	}

	verdict := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(&b, "%s after %d states explored without finding a proof\n", verdict("exhausted"), result.NodesExplored)
	return b.String()
}
