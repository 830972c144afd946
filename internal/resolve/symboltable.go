// Package resolve implements the join-point phase: it consumes the full
// set of ParsedFiles and produces a SymbolTable, a type hierarchy, module
// import maps, resolved calls per file, and the list of call sites left
// unresolved (spec §4.5-§4.8).
package resolve

import (
	"github.com/graphlang/codeindex/internal/model"
)

// packageOf returns a file's package/pseudo-package for indexing purposes.
// TypeScript/JavaScript files have no package statement; the spec leaves
// the file-oriented "package" choice to the implementation provided it is
// consistent (§3) — this uses the file path itself.
func packageOf(pf *model.ParsedFile) string {
	if pf.HasPackage() {
		return pf.PackageName
	}
	return pf.FilePath
}

// BuildSymbolTable indexes every declaration across files under its FQN,
// per spec §4.6.
func BuildSymbolTable(files []*model.ParsedFile) *model.SymbolTable {
	table := model.NewSymbolTable()
	for _, pf := range files {
		pkg := packageOf(pf)
		b := &symbolBuilder{pf: pf, pkg: pkg, table: table}
		b.indexFile()
	}
	return table
}

type symbolBuilder struct {
	pf    *model.ParsedFile
	pkg   string
	table *model.SymbolTable
}

func fqnOf(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

func (b *symbolBuilder) indexFile() {
	for _, cls := range b.pf.Classes {
		b.indexClass(cls, b.pkg)
	}
	for _, fn := range b.pf.TopLevelFunctions {
		b.indexFunction(fn, "", b.pkg)
	}
	for _, prop := range b.pf.TopLevelProperties {
		b.indexProperty(prop, "", b.pkg)
	}
	for _, ta := range b.pf.TypeAliases {
		b.indexTypeAlias(ta, b.pkg)
	}
}

func (b *symbolBuilder) indexClass(cls model.ParsedClass, enclosingFQN string) {
	fqn := fqnOf(enclosingFQN, cls.Name)
	sym := &model.Symbol{
		Name: cls.Name, FQN: fqn, FilePath: b.pf.FilePath,
		Location: cls.Location, PackageName: b.pkg, Kind: model.SymbolKindClass,
		Class: &model.ClassSymbol{
			ClassKind:  cls.Kind,
			SuperClass: cls.SuperClass,
			Interfaces: cls.Interfaces,
			IsAbstract: cls.IsAbstract,
		},
	}
	b.table.Add(sym)

	for _, fn := range cls.Functions {
		b.indexFunction(fn, fqn, b.pkg)
	}
	for _, prop := range cls.Properties {
		b.indexProperty(prop, fqn, b.pkg)
	}
	for _, nested := range cls.NestedClasses {
		b.indexClass(nested, fqn)
	}
	if cls.CompanionObject != nil {
		b.indexClass(*cls.CompanionObject, fqn)
	}
}

func (b *symbolBuilder) indexFunction(fn model.ParsedFunction, enclosingFQN, pkg string) {
	fqn := fqnOf(enclosingFQN, fn.Name)
	if enclosingFQN == "" {
		fqn = fqnOf(pkg, fn.Name)
	}
	sym := &model.Symbol{
		Name: fn.Name, FQN: fqn, FilePath: b.pf.FilePath,
		Location: fn.Location, PackageName: pkg, Kind: model.SymbolKindFunction,
		Function: &model.FunctionSymbol{
			DeclaringTypeFQN: enclosingFQN,
			ParameterTypes:   paramTypes(fn.Parameters),
			ReturnType:       fn.ReturnType,
			IsExtension:      fn.IsExtension,
			ReceiverType:     fn.ReceiverType,
			IsSuspend:        fn.IsSuspend,
			IsInline:         fn.IsInline,
			IsOperator:       fn.IsOperator,
		},
	}
	b.table.Add(sym)
}

func paramTypes(params []model.ParsedParameter) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Type
	}
	return out
}

func (b *symbolBuilder) indexProperty(prop model.ParsedProperty, enclosingFQN, pkg string) {
	fqn := fqnOf(enclosingFQN, prop.Name)
	if enclosingFQN == "" {
		fqn = fqnOf(pkg, prop.Name)
	}
	sym := &model.Symbol{
		Name: prop.Name, FQN: fqn, FilePath: b.pf.FilePath,
		Location: prop.Location, PackageName: pkg, Kind: model.SymbolKindProperty,
		Property: &model.PropertySymbol{Type: prop.Type, IsVal: prop.IsVal},
	}
	b.table.Add(sym)
}

func (b *symbolBuilder) indexTypeAlias(ta model.ParsedTypeAlias, pkg string) {
	fqn := fqnOf(pkg, ta.Name)
	sym := &model.Symbol{
		Name: ta.Name, FQN: fqn, FilePath: b.pf.FilePath,
		Location: ta.Location, PackageName: pkg, Kind: model.SymbolKindTypeAlias,
		TypeAlias: &model.TypeAliasSymbol{AliasedType: ta.AliasedType},
	}
	b.table.Add(sym)
}
