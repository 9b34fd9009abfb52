package prove

import (
	"prover/internal/rewrite"
	"prover/internal/rule"
	"prover/internal/term"
)

// CostEstimator is the search-priority heuristic (lhs, rhs) -> cost. It is
// advisory and need not be admissible; the search is best-first, not
// guaranteed-optimal (spec.md 4.G).
type CostEstimator func(lhs, rhs term.Ref) uint64

// DefaultEstimator returns size(lhs) + size(rhs): smaller combined term
// size is preferred.
func DefaultEstimator(lhs, rhs term.Ref) uint64 {
	return uint64(lhs.Size() + rhs.Size())
}

// GoalPredicate decides whether a state is terminal.
type GoalPredicate func(lhs, rhs term.Ref) bool

// IdentityGoal succeeds iff lhs and rhs are the same interned term —
// structural equality via hash-consing (spec.md 4.G's default).
func IdentityGoal(lhs, rhs term.Ref) bool {
	return lhs.Equal(rhs)
}

// NamedGoal pairs a goal predicate with a label, so a Prover configured
// with several composed goals (e.g. identity plus a domain-specific
// "recognised false" predicate) can report which one actually fired.
type NamedGoal struct {
	Name string
	Goal GoalPredicate
}

// Config bundles everything a Prover needs: the ordered rule list, the
// cost estimator, the goal predicates (tried in order, first match wins),
// and the node budget (spec.md 4.G).
type Config struct {
	Store       *term.Store
	Signature   term.Signature
	Rules       []*rule.Rule
	Congruences []*rule.CongruenceRule
	Estimator   CostEstimator
	Goals       []NamedGoal
	MaxNodes    uint64
}

// Prover runs a single best-first search per spec.md 4.G. It holds no
// state across calls to Prove; a fresh search starts from the frontier
// seeded in Prove.
type Prover struct {
	cfg Config
}

// New constructs a Prover from cfg, filling in DefaultEstimator and
// IdentityGoal if the caller left them unset.
func New(cfg Config) *Prover {
	if cfg.Estimator == nil {
		cfg.Estimator = DefaultEstimator
	}
	if len(cfg.Goals) == 0 {
		cfg.Goals = []NamedGoal{{Name: "identity", Goal: IdentityGoal}}
	}
	return &Prover{cfg: cfg}
}

// Status distinguishes a successful derivation from budget/frontier
// exhaustion.
type Status uint8

const (
	StatusFound Status = iota
	StatusExhausted
)

// ProofResult is the outcome of a Prove call (spec.md 6).
type ProofResult struct {
	Status        Status
	Steps         []ProofStep
	NodesExplored uint64
	GoalName      string // which NamedGoal fired, only set when Status == StatusFound
}

// Prove runs the best-first search described in spec.md 4.G from the
// initial equation (lhs0, rhs0) to a goal state or exhaustion.
func (p *Prover) Prove(lhs0, rhs0 term.Ref) ProofResult {
	f := newFrontier()
	visited := make(map[Key]bool)

	seq := 0
	seed := &EquationState{
		Lhs:      lhs0,
		Rhs:      rhs0,
		Cost:     p.cfg.Estimator(lhs0, rhs0),
		sequence: seq,
	}
	f.push(seed)

	var nodesExplored uint64

	for !f.empty() && nodesExplored < p.cfg.MaxNodes {
		state := f.pop()
		key := KeyOf(state.Lhs, state.Rhs)
		if visited[key] {
			continue
		}
		visited[key] = true
		nodesExplored++

		if name, ok := p.matchGoal(state.Lhs, state.Rhs); ok {
			return ProofResult{
				Status:        StatusFound,
				Steps:         state.History,
				NodesExplored: nodesExplored,
				GoalName:      name,
			}
		}

		for _, r := range p.cfg.Rules {
			p.expandRule(state, r, LHS, f, visited, &seq)
			p.expandRule(state, r, RHS, f, visited, &seq)
		}
		for _, c := range p.cfg.Congruences {
			p.expandCongruence(state, c, f, visited, &seq)
		}
	}

	return ProofResult{Status: StatusExhausted, NodesExplored: nodesExplored}
}

// matchGoal tries each configured goal predicate in order and returns the
// name of the first one that holds.
func (p *Prover) matchGoal(lhs, rhs term.Ref) (string, bool) {
	for _, g := range p.cfg.Goals {
		if g.Goal(lhs, rhs) {
			return g.Name, true
		}
	}
	return "", false
}

// expandRule enumerates every rewrite rule r produces on the named side
// of state, for every position and every direction the rule permits
// (spec.md 4.G step 3c), pushing each not-yet-visited successor.
func (p *Prover) expandRule(state *EquationState, r *rule.Rule, side Side, f *frontier, visited map[Key]bool, seq *int) {
	var target term.Ref
	if side == LHS {
		target = state.Lhs
	} else {
		target = state.Rhs
	}

	for _, rw := range r.AllRewrites(target, p.cfg.Store, p.cfg.Signature) {
		newLhs, newRhs := state.Lhs, state.Rhs
		if side == LHS {
			newLhs = rw.Term
		} else {
			newRhs = rw.Term
		}

		key := KeyOf(newLhs, newRhs)
		if visited[key] {
			continue
		}

		step := ProofStep{
			RuleName:  r.Name,
			Side:      side,
			Direction: rw.Direction,
			Position:  rw.Position,
			Before:    target,
			After:     rw.Term,
		}

		history := make([]ProofStep, len(state.History), len(state.History)+1)
		copy(history, state.History)
		history = append(history, step)

		*seq++
		f.push(&EquationState{
			Lhs:      newLhs,
			Rhs:      newRhs,
			History:  history,
			Cost:     p.cfg.Estimator(newLhs, newRhs),
			sequence: *seq,
		})
	}
}

// expandCongruence tries a single CongruenceRule against the whole
// equation (not one side), pushing the resulting successor if it is new
// (spec.md 8's Ax6, successor-injectivity).
func (p *Prover) expandCongruence(state *EquationState, c *rule.CongruenceRule, f *frontier, visited map[Key]bool, seq *int) {
	newLhs, newRhs, ok := c.Apply(state.Lhs, state.Rhs)
	if !ok {
		return
	}

	key := KeyOf(newLhs, newRhs)
	if visited[key] {
		return
	}

	step := ProofStep{
		RuleName:  c.Name,
		Side:      Both,
		Position:  rewrite.Position{},
		Before:    state.Lhs,
		After:     newLhs,
		RhsBefore: state.Rhs,
		RhsAfter:  newRhs,
	}

	history := make([]ProofStep, len(state.History), len(state.History)+1)
	copy(history, state.History)
	history = append(history, step)

	*seq++
	f.push(&EquationState{
		Lhs:      newLhs,
		Rhs:      newRhs,
		History:  history,
		Cost:     p.cfg.Estimator(newLhs, newRhs),
		sequence: *seq,
	})
}
