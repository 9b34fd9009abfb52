package surface

import "github.com/alecthomas/participle/v2/lexer"

// Grammar types mirror grammar.go's struct-tag style: a flat left-to-right
// operand list for the one infix operator (+), folded left-associatively
// in Desugar rather than via a recursive precedence grammar, the same
// simplification grammar.go's BinaryExpr/BinOp pair makes for Kanso's
// binary expressions. Atom and RuleDecl carry a bare, untagged Pos field
// (grammar/shared.go's convention) so desugaring can anchor its errors at
// a real source location instead of (0, 0).

// EquationFile is a standalone "<term> = <term>" theorem statement, the
// surface form of a CLI/REPL goal.
type EquationFile struct {
	Lhs *Term `@@ "="`
	Rhs *Term `@@`
}

// AxiomFile is a sequence of named rule declarations, the surface form of
// a rule file loaded by the CLI's -rules flag.
type AxiomFile struct {
	Rules []*RuleDecl `{ @@ }`
}

// RuleDecl is one "rule Name: [forall v1, v2.] <term> <arrow> <term> ;"
// declaration. Pos is filled in by participle (grammar/shared.go's
// convention) and anchors UnboundReplacementVariable diagnostics on the
// declaration that failed construction.
type RuleDecl struct {
	Pos    lexer.Position
	Name   string   `"rule" @Ident ":"`
	Forall []string `[ "forall" @Ident { "," @Ident } "." ]`
	Lhs    *Term    `@@`
	Arrow  string   `@Arrow`
	Rhs    *Term    `@@ ";"`
}

// Term is a left-associative sum of Atoms: a1 + a2 + ... + an (n >= 1).
type Term struct {
	Head *Atom   `@@`
	Rest []*Atom `{ "+" @@ }`
}

// Atom is one summand: a variable/constant identifier, a numeral, a
// successor application S(term), or a parenthesised term. Pos is filled
// in by participle and anchors UndefinedIdentifier diagnostics on the
// identifier that has no binding.
type Atom struct {
	Pos    lexer.Position
	Succ   *Term  `( "S" "(" @@ ")"`
	Number *int   `| @Integer`
	Paren  *Term  `| "(" @@ ")"`
	Ident  string `| @Ident )`
}
