// Package stdlib holds declarative, preloaded symbol tables for each
// supported language's standard library (spec §4.4). Providers are data,
// not code generated at runtime: every entry below is a literal map.
package stdlib

import "github.com/graphlang/codeindex/internal/model"

// Provider answers stdlib lookups for one or more languages. A provider
// returns synthetic symbols with FilePath="<lang-stdlib>" and a zeroed
// Location, per spec §4.4.
type Provider interface {
	Languages() []model.Language
	DefaultWildcardImports() []string
	LookupFunction(name string) *model.FunctionSymbol
	LookupClass(name string) *model.ClassSymbol
	LookupStaticMethod(qualifiedName string) *model.FunctionSymbol
	IsKnownSymbol(name string) bool
	IsBuiltinType(name string) bool
	GetAllSymbols() map[string]*model.Symbol
}

const stdlibFilePath = "<lang-stdlib>"

// staticProvider is the shared implementation backing every concrete
// provider below: plain maps built once at construction, read-only after.
type staticProvider struct {
	languages       []model.Language
	wildcardImports []string
	classes         map[string]*model.Symbol
	functions       map[string]*model.Symbol
	staticMethods   map[string]*model.FunctionSymbol
	builtinTypes    map[string]bool
}

func (p *staticProvider) Languages() []model.Language        { return p.languages }
func (p *staticProvider) DefaultWildcardImports() []string   { return p.wildcardImports }
func (p *staticProvider) IsBuiltinType(name string) bool     { return p.builtinTypes[name] }

func (p *staticProvider) LookupFunction(name string) *model.FunctionSymbol {
	if sym, ok := p.functions[name]; ok {
		return sym.Function
	}
	return nil
}

func (p *staticProvider) LookupClass(name string) *model.ClassSymbol {
	if sym, ok := p.classes[name]; ok {
		return sym.Class
	}
	return nil
}

func (p *staticProvider) LookupStaticMethod(qualifiedName string) *model.FunctionSymbol {
	return p.staticMethods[qualifiedName]
}

func (p *staticProvider) IsKnownSymbol(name string) bool {
	if _, ok := p.classes[name]; ok {
		return true
	}
	if _, ok := p.functions[name]; ok {
		return true
	}
	return false
}

func (p *staticProvider) GetAllSymbols() map[string]*model.Symbol {
	out := make(map[string]*model.Symbol, len(p.classes)+len(p.functions))
	for k, v := range p.classes {
		out[k] = v
	}
	for k, v := range p.functions {
		out[k] = v
	}
	return out
}

func classSymbol(fqn, name string) *model.Symbol {
	return &model.Symbol{
		Name: name, FQN: fqn, FilePath: stdlibFilePath, Kind: model.SymbolKindClass,
		Class: &model.ClassSymbol{ClassKind: model.ClassKindClass},
	}
}

func staticMethod(declaringFQN, name string, params ...string) *model.FunctionSymbol {
	return &model.FunctionSymbol{DeclaringTypeFQN: declaringFQN, ParameterTypes: params}
}
