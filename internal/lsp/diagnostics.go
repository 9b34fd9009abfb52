package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"prover/internal/surface"
)

// ConvertParseError transforms a surface.ParseError into a single LSP
// diagnostic, the same shape as the source's ConvertParseErrors over a
// list of parser.ParseError (the surface grammar only ever reports one
// syntax error before giving up, so there is no list to range over).
func ConvertParseError(err error) []protocol.Diagnostic {
	var pe *surface.ParseError
	if !errors.As(err, &pe) {
		return []protocol.Diagnostic{plainDiagnostic(err.Error())}
	}
	return []protocol.Diagnostic{diagnosticAt(pe.Position(), pe.Error(), "prover-surface")}
}

// ConvertDesugarError transforms a rule-construction failure into a
// diagnostic anchored at the position surface.UndefinedIdentError /
// surface.UnboundReplacementVariableError carry, falling back to the
// start of the document only for an error neither type matches.
func ConvertDesugarError(err error) []protocol.Diagnostic {
	var uie *surface.UndefinedIdentError
	if errors.As(err, &uie) {
		return []protocol.Diagnostic{diagnosticAt(uie.Pos, err.Error(), "prover-rules")}
	}
	var urv *surface.UnboundReplacementVariableError
	if errors.As(err, &urv) {
		return []protocol.Diagnostic{diagnosticAt(urv.Pos, err.Error(), "prover-rules")}
	}
	return []protocol.Diagnostic{plainDiagnostic(err.Error())}
}

// diagnosticAt anchors a diagnostic at a surface.Position, used by both
// ConvertParseError and ConvertDesugarError (no token-length information
// is carried from participle, so the range is a fixed 6-column span
// starting at the position's column).
func diagnosticAt(pos surface.Position, message, source string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(max0(pos.Line - 1)),
				Character: uint32(max0(pos.Column - 1)),
			},
			End: protocol.Position{
				Line:      uint32(max0(pos.Line - 1)),
				Character: uint32(max0(pos.Column + 5)),
			},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(source),
		Message:  message,
	}
}

func plainDiagnostic(message string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("prover"),
		Message:  message,
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
