package model

// ParsedImport is one normalized import statement. Path is the raw module
// specifier as written in source: relative ("./x"), absolute ("/x"),
// package-style ("foo/bar"), or dotted ("com.example").
type ParsedImport struct {
	Path              string
	Name              string // simple imported name, empty for a bare/wildcard import
	Alias             string // local alias, empty if not aliased
	IsWildcard        bool
	IsTypeOnly        bool
	IsDynamic         bool
	IsTemplateLiteral bool // dynamic import whose specifier is computed; never resolvable
	Location          SourceLocation
}

// ParsedReexport republishes a name from one module through the current
// module. It is never conflated with ParsedImport: an import binds a local
// name, a re-export republishes someone else's.
type ParsedReexport struct {
	SourcePath          string
	OriginalName        string
	ExportedName        string
	IsNamespaceReexport bool
	IsWildcard          bool
	IsTypeOnly          bool
	Location            SourceLocation
}
