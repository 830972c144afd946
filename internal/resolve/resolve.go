package resolve

import (
	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/stdlib"
)

// Result is everything the resolution phase produces: the join-point
// structures (§4.6-§4.7) plus resolved calls per file (§4.8).
type Result struct {
	SymbolTable  *model.SymbolTable
	ExportIndex  ExportIndex
	ImportMaps   map[string]ImportMap
	CallsByFile  map[string][]ResolvedCall
	Unresolved   []UnresolvedCall
}

// UnresolvedCall records an unresolvable call site for reporting and
// metrics, per spec §4.8's failure handling — it is bookkeeping, not an
// error.
type UnresolvedCall struct {
	FilePath string
	Call     model.ParsedCall
}

// Run executes the full resolution phase over a completed set of
// ParsedFiles: build the export index and import maps, the symbol table,
// the type hierarchy, then resolve every call per file. The symbol table
// and type hierarchy require the complete file set (§5's join point); call
// resolution is parallel-safe afterward but this entry point runs it
// sequentially for determinism of the unresolved-call ordering.
func Run(files []*model.ParsedFile, providers stdlib.Providers) *Result {
	exportIndex := BuildExportIndex(files)
	importMaps := BuildImportMaps(files, exportIndex)
	table := BuildSymbolTable(files)
	BuildTypeHierarchy(files, table)

	callsByFile := make(map[string][]ResolvedCall, len(files))
	var unresolved []UnresolvedCall

	for _, pf := range files {
		ctx := NewResolutionContext(pf, importMaps[pf.FilePath], table, providers)
		resolved := ResolveCalls(pf, ctx)
		callsByFile[pf.FilePath] = resolved
		for _, rc := range resolved {
			if rc.IsUnresolved {
				unresolved = append(unresolved, UnresolvedCall{FilePath: pf.FilePath, Call: rc.Call})
			}
		}
	}

	return &Result{
		SymbolTable: table,
		ExportIndex: exportIndex,
		ImportMaps:  importMaps,
		CallsByFile: callsByFile,
		Unresolved:  unresolved,
	}
}
