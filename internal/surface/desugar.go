package surface

import (
	stderrors "errors"
	"fmt"

	"prover/internal/pattern"
	"prover/internal/peano"
	"prover/internal/rule"
	"prover/internal/term"
)

// varScope tracks the de Bruijn index assigned to each bound identifier
// while desugaring one rule's pattern/replacement pair, in order of first
// appearance unless a "forall" clause fixed the order explicitly.
type varScope struct {
	index map[string]int
}

func newVarScope(forall []string) *varScope {
	s := &varScope{index: make(map[string]int)}
	for i, name := range forall {
		s.index[name] = i
	}
	return s
}

// indexOf returns name's de Bruijn index, assigning it the next free
// index on first sight when no "forall" clause pre-declared it.
func (s *varScope) indexOf(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	i := len(s.index)
	s.index[name] = i
	return i
}

// toPattern lowers a surface Term into a pattern.Pattern, resolving
// lowercase identifiers to de Bruijn variable holes via scope.
func toPattern(t *Term, scope *varScope, store *term.Store) (pattern.Pattern, error) {
	head, err := atomToPattern(t.Head, scope, store)
	if err != nil {
		return pattern.Pattern{}, err
	}
	for _, a := range t.Rest {
		rhs, err := atomToPattern(a, scope, store)
		if err != nil {
			return pattern.Pattern{}, err
		}
		head = pattern.Compound(peano.Add, head, rhs)
	}
	return head, nil
}

func atomToPattern(a *Atom, scope *varScope, store *term.Store) (pattern.Pattern, error) {
	switch {
	case a.Succ != nil:
		inner, err := toPattern(a.Succ, scope, store)
		if err != nil {
			return pattern.Pattern{}, err
		}
		return pattern.Compound(peano.Succ, inner), nil
	case a.Number != nil:
		return pattern.Const(peano.BuildNumeral(store, *a.Number)), nil
	case a.Paren != nil:
		return toPattern(a.Paren, scope, store)
	case a.Ident != "":
		return pattern.Var(scope.indexOf(a.Ident)), nil
	default:
		return pattern.Pattern{}, fmt.Errorf("surface: empty atom")
	}
}

// ErrUndefinedIdent is returned when a ground term (an equation's side)
// references a bare identifier: equations have no variable scope to bind
// it in, unlike a rule's pattern/replacement.
var ErrUndefinedIdent = fmt.Errorf("surface: identifier used outside a rule has no binding")

// UndefinedIdentError carries the position of the offending identifier
// alongside ErrUndefinedIdent, so a caller (CLI, LSP) can render a real
// diagnostic instead of anchoring one at (0, 0).
type UndefinedIdentError struct {
	Name string
	Pos  Position
}

func (e *UndefinedIdentError) Error() string {
	return fmt.Sprintf("%s: %s: identifier %q has no binding", e.Pos, ErrUndefinedIdent, e.Name)
}

func (e *UndefinedIdentError) Unwrap() error { return ErrUndefinedIdent }

// toGroundTerm lowers a surface Term into an interned, fully ground
// term.Ref. Equations (spec.md 1's worked example) never bind variables,
// so any bare identifier is rejected.
func toGroundTerm(t *Term, store *term.Store) (term.Ref, error) {
	head, err := atomToGround(t.Head, store)
	if err != nil {
		return term.Ref{}, err
	}
	for _, a := range t.Rest {
		rhs, err := atomToGround(a, store)
		if err != nil {
			return term.Ref{}, err
		}
		head = store.Build(peano.Add, head, rhs)
	}
	return head, nil
}

func atomToGround(a *Atom, store *term.Store) (term.Ref, error) {
	switch {
	case a.Succ != nil:
		inner, err := toGroundTerm(a.Succ, store)
		if err != nil {
			return term.Ref{}, err
		}
		return store.Build(peano.Succ, inner), nil
	case a.Number != nil:
		return peano.BuildNumeral(store, *a.Number), nil
	case a.Paren != nil:
		return toGroundTerm(a.Paren, store)
	case a.Ident != "":
		return term.Ref{}, &UndefinedIdentError{Name: a.Ident, Pos: positionFromLexer(a.Pos)}
	default:
		return term.Ref{}, fmt.Errorf("surface: empty atom")
	}
}

// DesugarEquation lowers a parsed EquationFile into two ground term.Refs.
func DesugarEquation(eq *EquationFile, store *term.Store) (lhs, rhs term.Ref, err error) {
	lhs, err = toGroundTerm(eq.Lhs, store)
	if err != nil {
		return term.Ref{}, term.Ref{}, err
	}
	rhs, err = toGroundTerm(eq.Rhs, store)
	if err != nil {
		return term.Ref{}, term.Ref{}, err
	}
	return lhs, rhs, nil
}

func directionOf(arrow string) (rule.Direction, error) {
	switch arrow {
	case "<->":
		return rule.Both, nil
	case "->":
		return rule.Forward, nil
	case "<-":
		return rule.Backward, nil
	default:
		return 0, fmt.Errorf("surface: unknown arrow %q", arrow)
	}
}

// UnboundReplacementVariableError carries the declaring RuleDecl's
// position alongside rule.ErrUnboundVariableInReplacement, so a caller
// can render a real diagnostic instead of anchoring one at (0, 0).
type UnboundReplacementVariableError struct {
	RuleName string
	Pos      Position
	cause    error
}

func (e *UnboundReplacementVariableError) Error() string {
	return fmt.Sprintf("%s: rule %s: %s", e.Pos, e.RuleName, e.cause)
}

func (e *UnboundReplacementVariableError) Unwrap() error { return e.cause }

// DesugarRule lowers one parsed RuleDecl into a *rule.Rule, validating the
// replacement's variable use exactly as rule.New does.
func DesugarRule(decl *RuleDecl, store *term.Store) (*rule.Rule, error) {
	scope := newVarScope(decl.Forall)

	lhs, err := toPattern(decl.Lhs, scope, store)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", decl.Name, err)
	}
	rhs, err := toPattern(decl.Rhs, scope, store)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", decl.Name, err)
	}
	dir, err := directionOf(decl.Arrow)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", decl.Name, err)
	}

	r, err := rule.New(decl.Name, lhs, rhs, dir)
	if err != nil {
		if stderrors.Is(err, rule.ErrUnboundVariableInReplacement) {
			return nil, &UnboundReplacementVariableError{RuleName: decl.Name, Pos: positionFromLexer(decl.Pos), cause: err}
		}
		return nil, err
	}
	return r, nil
}

// DesugarAxiomFile lowers every rule declaration in af, stopping at the
// first that fails to desugar or fails rule.New's validation.
func DesugarAxiomFile(af *AxiomFile, store *term.Store) ([]*rule.Rule, error) {
	rules := make([]*rule.Rule, 0, len(af.Rules))
	for _, decl := range af.Rules {
		r, err := DesugarRule(decl, store)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
