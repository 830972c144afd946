package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/stdlib"
)

func TestJavaProvider_ImplicitWildcardAndStaticMethod(t *testing.T) {
	p := stdlib.NewJavaProvider()
	assert.Contains(t, p.DefaultWildcardImports(), "java.lang")
	assert.True(t, p.IsBuiltinType("String"))

	fn := p.LookupStaticMethod("UUID.randomUUID")
	require.NotNil(t, fn)
	assert.Equal(t, "UUID", fn.DeclaringTypeFQN)
}

func TestTypeScriptProvider_DOMGlobalKnown(t *testing.T) {
	p := stdlib.NewTypeScriptProvider()
	assert.True(t, p.IsKnownSymbol("window"))
	assert.True(t, p.IsBuiltinType("Promise"))
	assert.Nil(t, p.LookupStaticMethod("NoSuch.method"))
}

func TestProviders_KotlinSharesJavaProvider(t *testing.T) {
	providers := stdlib.NewProviders()
	assert.Same(t, providers.For(model.LangJava), providers.For(model.LangKotlin))
	assert.Same(t, providers.For(model.LangTypeScript), providers.For(model.LangJavaScript))
}
