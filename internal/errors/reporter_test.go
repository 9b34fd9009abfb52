package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorReporterFormatsSyntaxError(t *testing.T) {
	source := "S(0) + = S(0)"
	reporter := NewErrorReporter("<test>", source)

	err := SyntaxError("unexpected '='", Position{Line: 1, Column: 8})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorSyntax+"]")
	assert.Contains(t, formatted, "unexpected '='")
	assert.Contains(t, formatted, "<test>:1:8")
}

func TestUndefinedIdentifierError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := UndefinedIdentifier("x", pos)
	assert.Equal(t, ErrorUndefinedIdentifier, err.Code)
	assert.Contains(t, err.Message, "'x'")
	assert.NotEmpty(t, err.Suggestions)
}

func TestUnboundReplacementVariableError(t *testing.T) {
	pos := Position{Line: 2, Column: 10}

	err := UnboundReplacementVariable("Bad", pos)
	assert.Equal(t, ErrorUnboundReplacementVariable, err.Code)
	assert.Contains(t, err.Message, "Bad")
	assert.NotEmpty(t, err.Suggestions)
}

func TestBudgetExhaustedIsANote(t *testing.T) {
	err := BudgetExhausted(500, 1000)
	assert.Equal(t, NoteBudgetExhausted, err.Code)
	assert.True(t, IsWarning(err.Code))
	assert.Contains(t, err.Message, "500")
	assert.Contains(t, err.Message, "1000")
}

func TestWarningFormatting(t *testing.T) {
	source := "S(0) = 0"
	reporter := NewErrorReporter("<test>", source)

	err := BudgetExhausted(1000, 1000)
	err.Position = Position{Line: 1, Column: 1}
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning["+NoteBudgetExhausted+"]")
	assert.Contains(t, formatted, "exhausted")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := "let variable = value;"
	reporter := NewErrorReporter("<test>", source)

	marker := reporter.createMarker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestErrorLevels(t *testing.T) {
	source := "test"
	reporter := NewErrorReporter("<test>", source)
	pos := Position{Line: 1, Column: 1}

	errorErr := ProverError{Level: Error, Message: "test error", Position: pos}
	warningErr := ProverError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
