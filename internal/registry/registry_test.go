package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/registry"
)

type stubParser struct {
	lang model.Language
	exts []string
}

func (s *stubParser) Language() model.Language                  { return s.lang }
func (s *stubParser) Extensions() []string                      { return s.exts }
func (s *stubParser) Parse(_ []byte, _ string) (*model.ParsedFile, error) {
	return &model.ParsedFile{Language: s.lang}, nil
}

func TestRegistry_LazyInstantiateOnce(t *testing.T) {
	calls := 0
	r := registry.New()
	r.RegisterParser(model.LangKotlin, []string{".kt", ".kts"}, func() (registry.LanguageParser, error) {
		calls++
		return &stubParser{lang: model.LangKotlin, exts: []string{".kt", ".kts"}}, nil
	})

	p1, err := r.GetParserForFile("Main.kt")
	require.NoError(t, err)
	require.NotNil(t, p1)

	p2, err := r.GetParserForFile("script.kts")
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, 1, calls, "factory must be invoked at most once")
}

func TestRegistry_UnknownExtension(t *testing.T) {
	r := registry.New()
	p, err := r.GetParserForFile("README.md")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	r := registry.New()
	r.RegisterParser(model.LangJava, []string{".java"}, func() (registry.LanguageParser, error) {
		return &stubParser{lang: model.LangJava, exts: []string{".java"}}, nil
	})
	r.RegisterParser(model.LangJava, []string{".java"}, func() (registry.LanguageParser, error) {
		return nil, errors.New("replaced factory fails")
	})

	_, err := r.GetParserForFile("App.java")
	assert.Error(t, err)
}

func TestRegistry_CaseInsensitiveExtension(t *testing.T) {
	r := registry.New()
	r.RegisterParser(model.LangTypeScript, []string{".ts", ".tsx"}, func() (registry.LanguageParser, error) {
		return &stubParser{lang: model.LangTypeScript, exts: []string{".ts", ".tsx"}}, nil
	})
	p, err := r.GetParserForFile("Component.TSX")
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestRegistry_SupportedExtensions(t *testing.T) {
	r := registry.New()
	r.RegisterParser(model.LangKotlin, []string{".kt", ".kts"}, func() (registry.LanguageParser, error) {
		return &stubParser{lang: model.LangKotlin}, nil
	})
	exts := r.GetSupportedExtensions()
	assert.ElementsMatch(t, []string{".kt", ".kts"}, exts)
	assert.True(t, r.IsFileSupported("x.kt"))
	assert.False(t, r.IsFileSupported("x.py"))
}
