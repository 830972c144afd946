package stdlib

import "github.com/graphlang/codeindex/internal/model"

// Providers maps each supported language to its stdlib provider. Java and
// Kotlin intentionally share one provider (java.lang interop, spec §4.4).
type Providers map[model.Language]Provider

// NewProviders builds the default provider set once at startup; the
// returned map is read-only from the caller's perspective.
func NewProviders() Providers {
	java := NewJavaProvider()
	ts := NewTypeScriptProvider()
	return Providers{
		model.LangJava:       java,
		model.LangKotlin:     java,
		model.LangTypeScript: ts,
		model.LangJavaScript: ts,
	}
}

// For returns the provider registered for lang, or nil if none is.
func (p Providers) For(lang model.Language) Provider {
	return p[lang]
}
