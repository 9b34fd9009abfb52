package surface

import (
	"github.com/alecthomas/participle/v2"
)

var (
	equationParser = participle.MustBuild[EquationFile](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	axiomParser = participle.MustBuild[AxiomFile](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
)

// ParseError wraps a participle.Error, exposing the position it occurred
// at so a caller (CLI, LSP) can render a positioned diagnostic via
// internal/errors' reporter rather than this package formatting its own.
type ParseError struct {
	Source string
	inner  participle.Error
}

func (e *ParseError) Error() string {
	return e.inner.Message()
}

// Unwrap exposes the underlying participle.Error for errors.As callers.
func (e *ParseError) Unwrap() error { return e.inner }

// Position returns the 1-based line/column the error occurred at.
func (e *ParseError) Position() Position {
	return positionFromLexer(e.inner.Position())
}

func wrapParseErr(src string, err error) error {
	if err == nil {
		return nil
	}
	pe, ok := err.(participle.Error)
	if !ok {
		return err
	}
	return &ParseError{Source: src, inner: pe}
}

// ParseEquation parses a single "<term> = <term>" equation.
func ParseEquation(filename, src string) (*EquationFile, error) {
	eq, err := equationParser.ParseString(filename, src)
	if err != nil {
		return nil, wrapParseErr(src, err)
	}
	return eq, nil
}

// ParseAxiomFile parses a sequence of rule declarations.
func ParseAxiomFile(filename, src string) (*AxiomFile, error) {
	af, err := axiomParser.ParseString(filename, src)
	if err != nil {
		return nil, wrapParseErr(src, err)
	}
	return af, nil
}
