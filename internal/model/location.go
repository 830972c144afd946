// Package model defines the language-agnostic normalized schema that every
// extractor emits and every resolver stage consumes: source locations,
// parsed declarations, symbols, and the read-only symbol table built from
// them.
package model

// SourceLocation pins a declaration or call site to a byte range in a file.
// Columns are 0-based, lines are 1-based, and the range is half-open at the
// end: [StartLine:StartColumn, EndLine:EndColumn).
type SourceLocation struct {
	FilePath    string
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Zero reports whether the location was never set (used for synthetic
// stdlib symbols, which carry a zeroed location by contract).
func (l SourceLocation) Zero() bool {
	return l == SourceLocation{}
}
