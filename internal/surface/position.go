package surface

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Position is a 1-based source location carried by grammar nodes that
// originate errors needing one (Atom, RuleDecl), mirroring the corpus's
// ast.Position convention (internal/ast/contract.go) but populated by
// participle's lexer instead of a hand-rolled scanner: any field named
// Pos of type lexer.Position on a grammar struct is filled in by the
// parser automatically, the same bare-field convention grammar/shared.go
// uses throughout.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func positionFromLexer(p lexer.Position) Position {
	return Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}
