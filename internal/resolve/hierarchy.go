package resolve

import (
	"strings"

	"github.com/graphlang/codeindex/internal/model"
)

// BuildTypeHierarchy resolves every class's superClass and interfaces to an
// FQN where possible and records the result on table.TypeHierarchy, per
// spec §4.7. Order is preserved: superclass first (when present), then
// interfaces in declaration order.
func BuildTypeHierarchy(files []*model.ParsedFile, table *model.SymbolTable) {
	for _, pf := range files {
		pkg := packageOf(pf)
		for _, cls := range pf.Classes {
			walkHierarchy(cls, pkg, pkg, table)
		}
	}
}

func walkHierarchy(cls model.ParsedClass, pkg, enclosingFQN string, table *model.SymbolTable) {
	fqn := fqnOf(enclosingFQN, cls.Name)

	if cls.SuperClass != "" {
		table.AppendParent(fqn, resolveTypeRef(cls.SuperClass, pkg, table))
	}
	for _, iface := range cls.Interfaces {
		table.AppendParent(fqn, resolveTypeRef(iface, pkg, table))
	}
	for _, nested := range cls.NestedClasses {
		walkHierarchy(nested, pkg, fqn, table)
	}
	if cls.CompanionObject != nil {
		walkHierarchy(*cls.CompanionObject, pkg, fqn, table)
	}
}

// resolveTypeRef resolves raw superclass/interface text to an FQN using (a)
// exact-FQN match, (b) same-package match, (c) unique simple-name match.
// Generic arguments (`List<Item>`) are stripped before lookup since the
// symbol table indexes bare type names. Falls back to the raw text.
func resolveTypeRef(raw, pkg string, table *model.SymbolTable) string {
	name := strings.TrimSpace(raw)
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)

	if _, ok := table.ByFQN[name]; ok {
		return name
	}
	if sameFQN := fqnOf(pkg, name); sameFQN != name {
		if _, ok := table.ByFQN[sameFQN]; ok {
			return sameFQN
		}
	}
	if candidates := table.ByName[name]; len(candidates) == 1 {
		return candidates[0].FQN
	}
	return raw
}
