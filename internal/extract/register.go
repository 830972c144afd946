package extract

import (
	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/registry"
	"github.com/graphlang/codeindex/internal/treesitter"
)

// RegisterBuiltins wires the four built-in language extractors into r,
// per spec §4.2. Each factory shares the same *treesitter.Parsers instance,
// built once here — one sitter.Parser per language, with Parsers.Parse
// serializing concurrent calls so no parser is used by two workers at once.
func RegisterBuiltins(r *registry.Registry) {
	parsers := treesitter.NewParsers()

	r.RegisterParser(model.LangKotlin, []string{".kt", ".kts"}, func() (registry.LanguageParser, error) {
		return NewKotlinExtractor(parsers), nil
	})
	r.RegisterParser(model.LangJava, []string{".java"}, func() (registry.LanguageParser, error) {
		return NewJavaExtractor(parsers), nil
	})
	r.RegisterParser(model.LangTypeScript, []string{".ts", ".tsx"}, func() (registry.LanguageParser, error) {
		return NewTypeScriptExtractor(parsers), nil
	})
	r.RegisterParser(model.LangJavaScript, []string{".js", ".jsx", ".mjs", ".cjs"}, func() (registry.LanguageParser, error) {
		return NewJavaScriptExtractor(parsers), nil
	})
}
