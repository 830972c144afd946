package stdlib

import "github.com/graphlang/codeindex/internal/model"

var tsBuiltinTypes = []string{
	"string", "number", "boolean", "bigint", "symbol", "undefined", "null",
	"void", "any", "unknown", "never", "object", "Array", "ReadonlyArray",
	"Promise", "Map", "Set", "Record", "Partial", "Required", "Readonly", "Pick", "Omit",
	"Error", "RegExp", "Date", "JSON", "Math", "Object", "Function",
}

var tsStaticMethods = map[string][]string{
	"Object.keys":     {"object"},
	"Object.values":   {"object"},
	"Object.entries":  {"object"},
	"Object.assign":   {"object", "object"},
	"Object.freeze":   {"object"},
	"Array.isArray":   {"unknown"},
	"Array.from":      {"unknown"},
	"Array.of":        {"unknown..."},
	"Promise.resolve": {"unknown"},
	"Promise.reject":  {"unknown"},
	"Promise.all":     {"unknown"},
	"JSON.parse":      {"string"},
	"JSON.stringify":  {"unknown"},
	"Math.max":        {"number", "number"},
	"Math.min":        {"number", "number"},
	"Math.floor":      {"number"},
	"Date.now":        nil,
}

// domGlobals are the browser globals a DOM provider contributes on top of
// the plain ECMAScript surface, per spec §4.4.
var domGlobals = []string{
	"window", "document", "console", "navigator", "localStorage", "sessionStorage",
	"HTMLElement", "Element", "Event", "CustomEvent", "fetch", "XMLHttpRequest",
}

// NewTypeScriptProvider builds the shared TypeScript/JavaScript stdlib
// provider with the DOM globals folded in.
func NewTypeScriptProvider() Provider {
	p := &staticProvider{
		languages:       []model.Language{model.LangTypeScript, model.LangJavaScript},
		wildcardImports: nil,
		classes:         map[string]*model.Symbol{},
		functions:       map[string]*model.Symbol{},
		staticMethods:   map[string]*model.FunctionSymbol{},
		builtinTypes:    map[string]bool{},
	}

	for _, name := range tsBuiltinTypes {
		p.classes[name] = classSymbol(name, name)
		p.builtinTypes[name] = true
	}
	for _, name := range domGlobals {
		p.classes[name] = classSymbol(name, name)
	}
	for key, params := range tsStaticMethods {
		cls := key[:indexDot(key)]
		method := key[indexDot(key)+1:]
		p.staticMethods[key] = staticMethod(cls, method, params...)
	}
	return p
}
