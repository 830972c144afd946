package graph

import (
	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/resolve"
)

func classLabel(kind model.ClassKind) NodeLabel {
	switch kind {
	case model.ClassKindInterface:
		return LabelInterface
	case model.ClassKindObject:
		return LabelObject
	case model.ClassKindEnum:
		return LabelEnum
	case model.ClassKindAnnotation:
		return LabelAnnotation
	default:
		return LabelClass
	}
}

// BuildFileBatch converts one ParsedFile plus its resolved calls into a
// graph Batch: one node per class/interface/object/enum/annotation,
// function, property, and type alias (spec §4.9), a Package node derived
// from the file's package name, CONTAINS/DECLARES edges from the package
// and enclosing types down to their members, EXTENDS/IMPLEMENTS edges from
// the type hierarchy, and CALLS/USES/RETURNS edges from resolved calls and
// signatures.
func BuildFileBatch(pf *model.ParsedFile, pkgName string, table *model.SymbolTable, calls []resolve.ResolvedCall) Batch {
	b := &builder{pf: pf, pkgName: pkgName, table: table}
	b.addPackageNode()
	for _, cls := range pf.Classes {
		b.addClass(cls, "", pkgName)
	}
	for _, fn := range pf.TopLevelFunctions {
		b.addFunction(fn, "", pkgName)
	}
	for _, prop := range pf.TopLevelProperties {
		b.addProperty(prop, "", pkgName)
	}
	for _, ta := range pf.TypeAliases {
		b.addTypeAlias(ta, pkgName)
	}
	b.addCallEdges(calls)
	return Batch{Nodes: b.nodes, Edges: b.edges}
}

type builder struct {
	pf      *model.ParsedFile
	pkgName string
	table   *model.SymbolTable
	nodes   []Node
	edges   []Edge
}

func (b *builder) fqn(pkg, name string) string {
	if pkg == "" {
		pkg = b.pkgName
	}
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

func (b *builder) addPackageNode() {
	b.nodes = append(b.nodes, NewNode(LabelPackage, b.pkgName, b.pkgName, b.pf.FilePath, 0, 0, 0, 0, ""))
}

func (b *builder) addClass(cls model.ParsedClass, enclosingFQN, pkg string) {
	fqn := b.fqn(enclosingFQN, cls.Name)
	loc := cls.Location
	b.nodes = append(b.nodes, NewNode(classLabel(cls.Kind), cls.Name, fqn, b.pf.FilePath,
		loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn, string(cls.Visibility)))

	if enclosingFQN == "" {
		b.edges = append(b.edges, NewEdge(EdgeContains, pkg, fqn, false))
	} else {
		b.edges = append(b.edges, NewEdge(EdgeDeclares, enclosingFQN, fqn, false))
	}

	for _, parentFQN := range b.table.TypeHierarchy[fqn] {
		edgeType := EdgeImplements
		if _, ok := b.table.ByFQN[parentFQN]; ok && b.table.ByFQN[parentFQN].Class != nil &&
			b.table.ByFQN[parentFQN].Class.ClassKind == model.ClassKindClass {
			edgeType = EdgeExtends
		}
		_, known := b.table.ByFQN[parentFQN]
		b.edges = append(b.edges, NewEdge(edgeType, fqn, parentFQN, !known))
	}

	for _, fn := range cls.Functions {
		b.addFunction(fn, fqn, pkg)
	}
	for _, prop := range cls.Properties {
		b.addProperty(prop, fqn, pkg)
	}
	for _, nested := range cls.NestedClasses {
		b.addClass(nested, fqn, pkg)
	}
	if cls.CompanionObject != nil {
		b.addClass(*cls.CompanionObject, fqn, pkg)
	}
}

func (b *builder) addFunction(fn model.ParsedFunction, enclosingFQN, pkg string) {
	fqn := b.fqn(enclosingFQN, fn.Name)
	loc := fn.Location
	b.nodes = append(b.nodes, NewNode(LabelFunction, fn.Name, fqn, b.pf.FilePath,
		loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn, string(fn.Visibility)))

	if enclosingFQN == "" {
		b.edges = append(b.edges, NewEdge(EdgeContains, pkg, fqn, false))
	} else {
		b.edges = append(b.edges, NewEdge(EdgeDeclares, enclosingFQN, fqn, false))
	}

	if fn.ReturnType != "" {
		if retFQN, known := b.resolveTypeRefLoose(fn.ReturnType); retFQN != "" {
			b.edges = append(b.edges, NewEdge(EdgeReturns, fqn, retFQN, !known))
		}
	}
}

func (b *builder) addProperty(prop model.ParsedProperty, enclosingFQN, pkg string) {
	fqn := b.fqn(enclosingFQN, prop.Name)
	loc := prop.Location
	b.nodes = append(b.nodes, NewNode(LabelProperty, prop.Name, fqn, b.pf.FilePath,
		loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn, string(prop.Visibility)))

	if enclosingFQN == "" {
		b.edges = append(b.edges, NewEdge(EdgeContains, pkg, fqn, false))
	} else {
		b.edges = append(b.edges, NewEdge(EdgeDeclares, enclosingFQN, fqn, false))
	}

	if prop.Type != "" {
		if typeFQN, known := b.resolveTypeRefLoose(prop.Type); typeFQN != "" {
			b.edges = append(b.edges, NewEdge(EdgeUses, fqn, typeFQN, !known))
		}
	}
}

func (b *builder) addTypeAlias(ta model.ParsedTypeAlias, pkg string) {
	fqn := b.fqn(pkg, ta.Name)
	loc := ta.Location
	b.nodes = append(b.nodes, NewNode(LabelTypeAlias, ta.Name, fqn, b.pf.FilePath,
		loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn, string(ta.Visibility)))
	b.edges = append(b.edges, NewEdge(EdgeContains, pkg, fqn, false))
}

// resolveTypeRefLoose looks a raw type-reference string up in the symbol
// table the same way the hierarchy builder does, for RETURNS/USES edges —
// best-effort, since arbitrary type text (generics, unions) is not always a
// single resolvable symbol.
func (b *builder) resolveTypeRefLoose(raw string) (string, bool) {
	if sym, ok := b.table.ByFQN[raw]; ok {
		return sym.FQN, true
	}
	if fqn := b.fqn(b.pkgName, raw); fqn != raw {
		if sym, ok := b.table.ByFQN[fqn]; ok {
			return sym.FQN, true
		}
	}
	if candidates := b.table.ByName[raw]; len(candidates) == 1 {
		return candidates[0].FQN, true
	}
	return "", false
}

func (b *builder) addCallEdges(calls []resolve.ResolvedCall) {
	for _, rc := range calls {
		if rc.IsUnresolved || rc.FromFQN == "" {
			continue
		}
		edgeType := EdgeCalls
		if rc.IsConstruct {
			edgeType = EdgeUses
		}
		_, known := b.table.ByFQN[rc.FQN]
		b.edges = append(b.edges, NewEdge(edgeType, rc.FromFQN, rc.FQN, !known))
	}
}
