package resolve

import (
	"path"
	"strings"

	"github.com/graphlang/codeindex/internal/model"
)

// ExportEntry is one name a file makes available to importers, per spec §4.5.
type ExportEntry struct {
	ExportedName   string
	OriginalName   string
	FQN            string
	Kind           model.SymbolKind
	IsDefault      bool
	IsReexport     bool
	SourceFilePath string // set when IsReexport; the module the name came from
}

// ExportIndex maps a file path to its exported-name -> ExportEntry map.
type ExportIndex map[string]map[string]ExportEntry

// resolvableExtensions is the fixed tie-break order spec §4.5 mandates for
// extension-less relative imports.
var resolvableExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}

// BuildExportIndex produces one ExportEntry map per file. Classes, top-level
// functions/properties, and type aliases each produce an entry; nested
// classes also emit entries, qualified under the outer class's exported
// name with a dot, so a re-export chain can still reach `Outer.Inner`.
func BuildExportIndex(files []*model.ParsedFile) ExportIndex {
	idx := make(ExportIndex, len(files))
	for _, pf := range files {
		entries := make(map[string]ExportEntry)
		pkg := packageOf(pf)

		for _, cls := range pf.Classes {
			addClassExports(entries, cls, pkg, "")
		}
		for _, fn := range pf.TopLevelFunctions {
			entries[fn.Name] = ExportEntry{ExportedName: fn.Name, OriginalName: fn.Name, FQN: fqnOf(pkg, fn.Name), Kind: model.SymbolKindFunction}
		}
		for _, prop := range pf.TopLevelProperties {
			entries[prop.Name] = ExportEntry{ExportedName: prop.Name, OriginalName: prop.Name, FQN: fqnOf(pkg, prop.Name), Kind: model.SymbolKindProperty}
		}
		for _, ta := range pf.TypeAliases {
			entries[ta.Name] = ExportEntry{ExportedName: ta.Name, OriginalName: ta.Name, FQN: fqnOf(pkg, ta.Name), Kind: model.SymbolKindTypeAlias}
		}
		for _, re := range pf.Reexports {
			name := re.ExportedName
			if name == "" {
				name = re.OriginalName
			}
			entries[name] = ExportEntry{
				ExportedName:   name,
				OriginalName:   re.OriginalName,
				IsReexport:     true,
				SourceFilePath: re.SourcePath,
			}
		}
		idx[pf.FilePath] = entries
	}
	return idx
}

func addClassExports(entries map[string]ExportEntry, cls model.ParsedClass, pkg, prefix string) {
	exportedName := prefix + cls.Name
	fqn := fqnOf(pkg, exportedName)
	entries[exportedName] = ExportEntry{ExportedName: exportedName, OriginalName: cls.Name, FQN: fqn, Kind: model.SymbolKindClass}
	for _, nested := range cls.NestedClasses {
		addClassExports(entries, nested, pkg, exportedName+".")
	}
}

// ResolveModulePath resolves a relative/absolute import specifier to a known
// file path, trying an exact match, then each extension in
// resolvableExtensions, then an index file under the specifier treated as a
// directory. Bare-package specifiers (not starting with "." or "/") are
// always unresolved — they point outside the indexed tree.
func ResolveModulePath(importPath, fromFile string, knownFiles map[string]bool) (string, bool) {
	if !strings.HasPrefix(importPath, ".") && !strings.HasPrefix(importPath, "/") {
		return "", false
	}

	base := importPath
	if strings.HasPrefix(importPath, ".") {
		base = path.Join(path.Dir(fromFile), importPath)
	}
	base = path.Clean(base)

	if knownFiles[base] {
		return base, true
	}
	for _, ext := range resolvableExtensions {
		if candidate := base + ext; knownFiles[candidate] {
			return candidate, true
		}
	}
	for _, ext := range resolvableExtensions {
		if candidate := path.Join(base, "index"+ext); knownFiles[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// ImportMap is the per-file local-name -> FQN map built in step 3 of §4.5.
type ImportMap map[string]string

// BuildImportMaps resolves every file's import statements against the
// export index, following re-export chains to their origin, and seeds each
// map with the file's own local declarations so intra-file references
// resolve without consulting the symbol table.
func BuildImportMaps(files []*model.ParsedFile, index ExportIndex) map[string]ImportMap {
	knownFiles := make(map[string]bool, len(files))
	for _, pf := range files {
		knownFiles[pf.FilePath] = true
	}

	result := make(map[string]ImportMap, len(files))
	for _, pf := range files {
		m := make(ImportMap)
		for name, entry := range index[pf.FilePath] {
			if !entry.IsReexport {
				m[name] = entry.FQN
			}
		}
		for _, imp := range pf.Imports {
			if imp.IsWildcard || imp.IsTemplateLiteral {
				continue
			}
			targetFile, ok := ResolveModulePath(imp.Path, pf.FilePath, knownFiles)
			if !ok {
				continue
			}
			exported := imp.Name
			if exported == "" {
				exported = "default"
			}
			fqn, ok := followExport(index, knownFiles, targetFile, exported, make(map[string]bool))
			if !ok {
				continue
			}
			local := imp.Alias
			if local == "" {
				local = imp.Name
			}
			if local != "" {
				m[local] = fqn
			}
		}
		result[pf.FilePath] = m
	}
	return result
}

// followExport chases a re-export chain from filePath/exportedName to the
// originating non-re-export ExportEntry's FQN, guarding against cycles.
// SourceFilePath on a ParsedReexport is the raw import specifier, so each
// hop re-resolves it against knownFiles the same way an import statement
// would.
func followExport(index ExportIndex, knownFiles map[string]bool, filePath, exportedName string, visited map[string]bool) (string, bool) {
	key := filePath + "#" + exportedName
	if visited[key] {
		return "", false
	}
	visited[key] = true

	entries, ok := index[filePath]
	if !ok {
		return "", false
	}
	entry, ok := entries[exportedName]
	if !ok {
		return "", false
	}
	if !entry.IsReexport {
		return entry.FQN, true
	}
	next := entry.OriginalName
	if next == "" {
		next = exportedName
	}
	nextFile, ok := ResolveModulePath(entry.SourceFilePath, filePath, knownFiles)
	if !ok {
		return "", false
	}
	return followExport(index, knownFiles, nextFile, next, visited)
}
