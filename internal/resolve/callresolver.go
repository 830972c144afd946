package resolve

import (
	"strings"

	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/stdlib"
)

// ResolvedCall is a ParsedCall paired with its resolution outcome.
type ResolvedCall struct {
	Call         model.ParsedCall
	FromFQN      string // the enclosing function/method that made the call
	FQN          string
	IsConstruct  bool
	IsUnresolved bool
	// MatchedParameterTypes is set when overload resolution picked a
	// specific FunctionSymbol, since the FQN alone (name-based, not
	// signature-based, per spec §4.6) cannot distinguish overloads.
	MatchedParameterTypes []string
}

// ResolutionContext is the per-file context the call resolver consults, per
// spec §4.8: the current package, the import map from §4.5, the effective
// wildcard imports, the current class FQN while traversing members, a
// running map of local-variable types, and the language (for stdlib and
// constructor-name conventions).
type ResolutionContext struct {
	Package         string
	Imports         ImportMap
	WildcardImports []string
	CurrentClassFQN string
	LocalVarTypes   map[string]string
	Language        model.Language

	table     *model.SymbolTable
	providers stdlib.Providers
}

// NewResolutionContext builds a context for one file, folding the
// extractor's own `isWildcard` imports in ahead of the language's default
// wildcards (so an explicit wildcard import shadows nothing but still
// participates at the same priority tier).
func NewResolutionContext(pf *model.ParsedFile, imports ImportMap, table *model.SymbolTable, providers stdlib.Providers) *ResolutionContext {
	wildcards := make([]string, 0, 2)
	for _, imp := range pf.Imports {
		if imp.IsWildcard {
			wildcards = append(wildcards, imp.Path)
		}
	}
	if p := providers.For(pf.Language); p != nil {
		wildcards = append(wildcards, p.DefaultWildcardImports()...)
	}
	return &ResolutionContext{
		Package:         packageOf(pf),
		Imports:         imports,
		WildcardImports: wildcards,
		LocalVarTypes:   make(map[string]string),
		Language:        pf.Language,
		table:           table,
		providers:       providers,
	}
}

// ResolveCalls walks every function in a class (and nested classes) plus
// top-level functions, resolving each recorded ParsedCall.
func ResolveCalls(pf *model.ParsedFile, ctx *ResolutionContext) []ResolvedCall {
	var out []ResolvedCall
	for _, cls := range pf.Classes {
		out = append(out, resolveClassCalls(cls, ctx.Package, ctx)...)
	}
	for _, fn := range pf.TopLevelFunctions {
		ctx.CurrentClassFQN = ""
		fromFQN := fqnOf(ctx.Package, fn.Name)
		out = append(out, resolveFunctionCalls(fn, fromFQN, ctx)...)
	}
	return out
}

func resolveClassCalls(cls model.ParsedClass, enclosingFQN string, ctx *ResolutionContext) []ResolvedCall {
	fqn := fqnOf(enclosingFQN, cls.Name)
	var out []ResolvedCall
	for _, fn := range cls.Functions {
		ctx.CurrentClassFQN = fqn
		fromFQN := fqnOf(fqn, fn.Name)
		out = append(out, resolveFunctionCalls(fn, fromFQN, ctx)...)
	}
	for _, nested := range cls.NestedClasses {
		out = append(out, resolveClassCalls(nested, fqn, ctx)...)
	}
	if cls.CompanionObject != nil {
		out = append(out, resolveClassCalls(*cls.CompanionObject, fqn, ctx)...)
	}
	return out
}

func resolveFunctionCalls(fn model.ParsedFunction, fromFQN string, ctx *ResolutionContext) []ResolvedCall {
	out := make([]ResolvedCall, 0, len(fn.Calls))
	for _, call := range fn.Calls {
		fqn, isCtor, matched, ok := resolveCall(call, ctx)
		rc := ResolvedCall{Call: call, FromFQN: fromFQN, FQN: fqn, IsConstruct: isCtor, IsUnresolved: !ok}
		if matched != nil {
			rc.MatchedParameterTypes = matched.ParameterTypes
		}
		out = append(out, rc)
	}
	return out
}

// resolveCall applies the priority chain from spec §4.8, returning on the
// first successful step. matched is non-nil whenever the winning step
// settles on a specific FunctionSymbol (steps 3-6 and 8-12); steps 1, 2
// and 7 leave it nil.
func resolveCall(call model.ParsedCall, ctx *ResolutionContext) (fqn string, isConstruct bool, matched *model.FunctionSymbol, ok bool) {
	// 1. Qualified call.
	if strings.Contains(call.Receiver, ".") {
		if recvFQN, ok2 := ctx.resolveTypeName(call.Receiver); ok2 {
			if fqn, ok3 := lookupMethodOrEnumConst(ctx, recvFQN, call.Name); ok3 {
				return fqn, false, nil, true
			}
		}
	}

	// 2. Constructor call. Node identity is the class FQN itself; isConstruct
	// marks the relationship as construction for the graph writer.
	if call.Receiver == "" && call.IsConstructorCall {
		if clsFQN, ok2 := ctx.resolveTypeName(call.Name); ok2 {
			return clsFQN, true, nil, true
		}
	}

	// 3. Explicit receiver type.
	if call.ReceiverType != "" {
		if clsFQN, ok2 := ctx.resolveTypeName(call.ReceiverType); ok2 {
			if fqn, fn, ok3 := resolveMethodOnType(ctx, clsFQN, call); ok3 {
				return fqn, false, fn, true
			}
		}
	}

	// 4. Receiver expression: local variable or current-class property type.
	if call.Receiver != "" && !strings.Contains(call.Receiver, ".") {
		if t, ok2 := ctx.LocalVarTypes[call.Receiver]; ok2 {
			if clsFQN, ok3 := ctx.resolveTypeName(t); ok3 {
				if fqn, fn, ok4 := resolveMethodOnType(ctx, clsFQN, call); ok4 {
					return fqn, false, fn, true
				}
			}
		}
		if ctx.CurrentClassFQN != "" {
			if propType, ok2 := ctx.propertyType(ctx.CurrentClassFQN, call.Receiver); ok2 {
				if clsFQN, ok3 := ctx.resolveTypeName(propType); ok3 {
					if fqn, fn, ok4 := resolveMethodOnType(ctx, clsFQN, call); ok4 {
						return fqn, false, fn, true
					}
				}
			}
		}
		if clsFQN, ok2 := ctx.resolveTypeName(call.Receiver); ok2 {
			if fqn, ok3 := lookupMethodOrEnumConst(ctx, clsFQN, call.Name); ok3 {
				return fqn, false, nil, true
			}
		}
	}

	// 5 & 6. Current-class lookup, then inherited methods.
	if call.Receiver == "" && ctx.CurrentClassFQN != "" {
		if fqn, fn, ok2 := resolveMethodInHierarchy(ctx, ctx.CurrentClassFQN, call, make(map[string]bool)); ok2 {
			return fqn, false, fn, true
		}
	}

	// 7. Explicit imports.
	if call.Receiver == "" {
		if fqn, ok2 := ctx.Imports[call.Name]; ok2 {
			return fqn, false, nil, true
		}
	}

	// 8. Same package.
	if call.Receiver == "" {
		if fqn, fn, ok2 := resolveOverloadSet(ctx.table.FunctionsByName[call.Name], call, func(s *model.Symbol) bool {
			return s.PackageName == ctx.Package && s.Function.DeclaringTypeFQN == ""
		}, ctx.table); ok2 {
			return fqn, false, fn, true
		}
	}

	// 9. Wildcard imports.
	if call.Receiver == "" {
		for _, wc := range ctx.WildcardImports {
			if fqn, fn, ok2 := resolveOverloadSet(ctx.table.FunctionsByName[call.Name], call, func(s *model.Symbol) bool {
				return s.PackageName == wc
			}, ctx.table); ok2 {
				return fqn, false, fn, true
			}
		}
	}

	// 10. Extension functions.
	if call.Receiver != "" {
		receiverType := call.ReceiverType
		if receiverType == "" {
			receiverType = ctx.LocalVarTypes[call.Receiver]
		}
		if receiverType != "" {
			for _, fn := range ctx.table.FunctionsByName[call.Name] {
				if fn.IsExtension && extensionReceiverMatches(ctx, fn.ReceiverType, receiverType) {
					if owner := ctx.table.OwnerOf(fn); owner != nil {
						return owner.FQN, false, fn, true
					}
				}
			}
		}
	}

	// 11. Top-level last-resort.
	if fqn, fn, ok2 := resolveOverloadSet(ctx.table.FunctionsByName[call.Name], call, func(*model.Symbol) bool { return true }, ctx.table); ok2 {
		return fqn, false, fn, true
	}

	// 12. Stdlib.
	if p := ctx.providers.For(ctx.Language); p != nil {
		if call.Receiver != "" {
			if fn := p.LookupStaticMethod(call.Receiver + "." + call.Name); fn != nil {
				return fn.DeclaringTypeFQN + "." + call.Name, false, fn, true
			}
		}
		if fn := p.LookupFunction(call.Name); fn != nil {
			return call.Name, false, fn, true
		}
	}

	return "", false, nil, false
}

// resolveTypeName resolves a bare type name (or already-qualified FQN) to a
// known class/interface/object/enum FQN via the same-package/byName search
// spec §4.8 describes for constructor and receiver-type resolution.
func (ctx *ResolutionContext) resolveTypeName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	if sym, ok := ctx.table.ByFQN[name]; ok && sym.Kind == model.SymbolKindClass {
		return resolveAliasedClass(ctx, sym), true
	}
	if fqn := fqnOf(ctx.Package, name); fqn != name {
		if sym, ok := ctx.table.ByFQN[fqn]; ok && sym.Kind == model.SymbolKindClass {
			return resolveAliasedClass(ctx, sym), true
		}
	}
	if importedFQN, ok := ctx.Imports[name]; ok {
		if sym, ok2 := ctx.table.ByFQN[importedFQN]; ok2 && sym.Kind == model.SymbolKindClass {
			return resolveAliasedClass(ctx, sym), true
		}
	}
	var match string
	count := 0
	for _, sym := range ctx.table.ByName[name] {
		if sym.Kind == model.SymbolKindClass {
			match = sym.FQN
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return "", false
}

// resolveAliasedClass returns sym's FQN, or, for a TypeAliasSymbol, the FQN
// its aliased type resolves to. resolveTypeName only ever passes class
// symbols, so a type-alias name is not resolved through its aliased type.
func resolveAliasedClass(ctx *ResolutionContext, sym *model.Symbol) string {
	if sym.Kind == model.SymbolKindTypeAlias && sym.TypeAlias != nil {
		if fqn, ok := ctx.resolveTypeName(sym.TypeAlias.AliasedType); ok {
			return fqn
		}
	}
	return sym.FQN
}

func (ctx *ResolutionContext) propertyType(classFQN, propName string) (string, bool) {
	for _, p := range ctx.table.ByName[propName] {
		if p.Kind == model.SymbolKindProperty && strings.HasPrefix(p.FQN, classFQN+".") {
			return p.Property.Type, true
		}
	}
	return "", false
}

func lookupMethodOrEnumConst(ctx *ResolutionContext, typeFQN, name string) (string, bool) {
	fqn := typeFQN + "." + name
	if _, ok := ctx.table.ByFQN[fqn]; ok {
		return fqn, true
	}
	if sym, ok := ctx.table.ByFQN[typeFQN]; ok && sym.Class != nil && sym.Class.ClassKind == model.ClassKindEnum {
		switch name {
		case "valueOf", "values", "entries":
			return fqn, true
		}
	}
	return "", false
}

func resolveMethodOnType(ctx *ResolutionContext, typeFQN string, call model.ParsedCall) (string, *model.FunctionSymbol, bool) {
	return resolveMethodInHierarchy(ctx, typeFQN, call, make(map[string]bool))
}

func resolveMethodInHierarchy(ctx *ResolutionContext, classFQN string, call model.ParsedCall, visited map[string]bool) (string, *model.FunctionSymbol, bool) {
	if visited[classFQN] {
		return "", nil, false
	}
	visited[classFQN] = true

	if fqn, fn, ok := resolveOverloadSet(ctx.table.FunctionsByName[call.Name], call, func(s *model.Symbol) bool {
		return s.Function.DeclaringTypeFQN == classFQN
	}, ctx.table); ok {
		return fqn, fn, true
	}
	for _, parent := range ctx.table.TypeHierarchy[classFQN] {
		if fqn, fn, ok := resolveMethodInHierarchy(ctx, parent, call, visited); ok {
			return fqn, fn, true
		}
	}
	return "", nil, false
}

func extensionReceiverMatches(ctx *ResolutionContext, receiverType, actualType string) bool {
	receiverType = strings.TrimSuffix(strings.TrimSpace(receiverType), "?")
	actualType = strings.TrimSuffix(strings.TrimSpace(actualType), "?")
	if receiverType == actualType {
		return true
	}
	recvFQN, ok1 := ctx.resolveTypeName(receiverType)
	actualFQN, ok2 := ctx.resolveTypeName(actualType)
	if !ok1 || !ok2 {
		return false
	}
	if recvFQN == actualFQN {
		return true
	}
	visited := make(map[string]bool)
	return isAncestor(ctx, actualFQN, recvFQN, visited)
}

func isAncestor(ctx *ResolutionContext, classFQN, ancestorFQN string, visited map[string]bool) bool {
	if visited[classFQN] {
		return false
	}
	visited[classFQN] = true
	for _, parent := range ctx.table.TypeHierarchy[classFQN] {
		if parent == ancestorFQN {
			return true
		}
		if isAncestor(ctx, parent, ancestorFQN, visited) {
			return true
		}
	}
	return false
}
