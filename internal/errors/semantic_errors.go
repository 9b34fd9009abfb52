package errors

import (
	"fmt"
)

// ErrorBuilder provides a fluent interface for creating prover errors with
// suggestions (renamed from the source's SemanticErrorBuilder).
type ErrorBuilder struct {
	err ProverError
}

// NewError creates a new error builder.
func NewError(code, message string, pos Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: ProverError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewNote creates a new note/warning builder.
func NewNote(code, message string, pos Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: ProverError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed error
func (b *ErrorBuilder) Build() ProverError {
	return b.err
}

// SyntaxError wraps an equation or axiom-file parse failure.
func SyntaxError(message string, pos Position) ProverError {
	return NewError(ErrorSyntax, message, pos).
		WithHelp("equations are '<term> = <term>'; rules are 'rule Name: [forall v...] <term> <-> <term>;'").
		Build()
}

// UndefinedIdentifier creates an error for a bare identifier used in an
// equation, where there is no pattern scope to bind it in.
func UndefinedIdentifier(name string, pos Position) ProverError {
	return NewError(ErrorUndefinedIdentifier, fmt.Sprintf("identifier '%s' has no binding here", name), pos).
		WithLength(len(name)).
		WithSuggestion("equations must be fully ground: use a numeral or S(...) application, not a bare variable").
		WithNote("variables are only meaningful inside a rule's pattern/replacement").
		Build()
}

// UnboundReplacementVariable creates an error for a rule whose replacement
// references a variable its pattern (for the attempted direction) never
// binds.
func UnboundReplacementVariable(ruleName string, pos Position) ProverError {
	return NewError(ErrorUnboundReplacementVariable,
		fmt.Sprintf("rule '%s': replacement references a variable its pattern does not bind", ruleName), pos).
		WithSuggestion("add the missing variable to the pattern side, or remove it from the replacement").
		WithNote("every variable in a rewrite's output must be bound by its input").
		Build()
}

// BudgetExhausted creates a note reporting that the search ran out of its
// node budget without finding a proof.
func BudgetExhausted(nodesExplored, maxNodes uint64) ProverError {
	return NewNote(NoteBudgetExhausted,
		fmt.Sprintf("exhausted after exploring %d of %d allotted states without finding a proof", nodesExplored, maxNodes), Position{}).
		WithSuggestion("raise the node budget with -max-nodes, or check whether the equation is actually false").
		Build()
}

// RulesFileUnreadable creates an error for a -rules file that could not
// be read.
func RulesFileUnreadable(path string, cause error) ProverError {
	return NewError(ErrorRulesFileUnreadable, fmt.Sprintf("could not read rules file %q: %s", path, cause), Position{}).
		Build()
}
