package peano

import (
	"prover/internal/prove"
	"prover/internal/rule"
	"prover/internal/term"
)

// DefaultGoals is the default Prover goal list: identity only, named
// "Ax1" for the demonstration's reflexivity axiom (x = x <-> true), which
// in this engine is recognised by the generic identity goal predicate
// rather than modelled as a rewrite rule.
var DefaultGoals = []prove.NamedGoal{{Name: "Ax1", Goal: prove.IdentityGoal}}

// FalseGoals composes DefaultGoals with GoalFalse, for hosts that opt in
// (e.g. the CLI's -false-goal flag).
var FalseGoals = []prove.NamedGoal{
	{Name: "Ax1", Goal: prove.IdentityGoal},
	{Name: "false-goal", Goal: GoalFalse},
}

// Ax6 is successor-injectivity, S(x) = S(y) <-> x = y: a whole-equation
// congruence rather than a one-sided rewrite, so it is built directly as
// a rule.CongruenceRule instead of coming from the embedded axiom file
// (see DESIGN.md).
var Ax6 = &rule.CongruenceRule{Name: "Ax6", Opcode: Succ}

// GoalFalse recognises S(x) = 0 or 0 = S(x) as a proved *false* state —
// the source's documented-but-not-always-wired secondary goal predicate
// from spec.md 9's Open Question. It is not part of the default Prover
// configuration (see DESIGN.md): composing it in is a host/CLI opt-in,
// since the default scenario table in spec.md 8 requires S(0) = 0 (which
// matches this predicate on the very first state) to report Exhausted.
func GoalFalse(lhs, rhs term.Ref) bool {
	return isSuccOfSomething(lhs) && isZero(rhs) || isZero(lhs) && isSuccOfSomething(rhs)
}

func isZero(t term.Ref) bool {
	return t.Kind() != term.KindVar && t.Opcode() == Zero
}

func isSuccOfSomething(t term.Ref) bool {
	return t.Kind() != term.KindVar && t.Opcode() == Succ
}
