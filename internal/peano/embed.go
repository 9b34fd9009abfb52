package peano

import "embed"

// AxiomsFS embeds the default Ax3/Ax4 rule set, written in
// internal/surface's syntax. internal/surface provides the loader
// (LoadDefaultAxioms) since peano cannot import surface without a import
// cycle (surface already depends on peano for its opcode table).
//
//go:embed axioms.peano
var AxiomsFS embed.FS
