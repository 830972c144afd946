// Package registry maps file extensions to language parsers and
// lazy-instantiates them exactly once. It is the only process-wide mutable
// state in the core (per spec §5) and is guarded accordingly.
package registry

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/graphlang/codeindex/internal/model"
)

// LanguageParser is the trait every per-language extractor implements.
type LanguageParser interface {
	Language() model.Language
	Extensions() []string
	Parse(source []byte, filePath string) (*model.ParsedFile, error)
}

// Factory lazily builds a LanguageParser. It is invoked at most once per
// language; the result is cached forever.
type Factory func() (LanguageParser, error)

// Registry is a process-wide, lazily-initialized extension->parser map.
type Registry struct {
	mu         sync.Mutex
	factories  map[model.Language]Factory
	extensions map[model.Language][]string
	instances  map[model.Language]LanguageParser
	byExt      map[string]model.Language
}

// New returns an empty registry. Call RegisterParser to populate it before
// scanning begins.
func New() *Registry {
	return &Registry{
		factories:  make(map[model.Language]Factory),
		extensions: make(map[model.Language][]string),
		instances:  make(map[model.Language]LanguageParser),
		byExt:      make(map[string]model.Language),
	}
}

// RegisterParser records a lazy factory for language under the given
// extensions (including the leading dot, e.g. ".kt"). Re-registering the
// same language replaces its factory, extensions, and any cached instance.
func (r *Registry) RegisterParser(language model.Language, extensions []string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range r.extensions[language] {
		delete(r.byExt, ext)
	}

	normalized := make([]string, len(extensions))
	for i, ext := range extensions {
		normalized[i] = strings.ToLower(ext)
		r.byExt[normalized[i]] = language
	}

	r.factories[language] = factory
	r.extensions[language] = normalized
	delete(r.instances, language)
}

// GetParserForFile resolves the parser registered for path's extension,
// instantiating it on first use. Returns nil, nil if no parser is
// registered for the extension.
func (r *Registry) GetParserForFile(path string) (LanguageParser, error) {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.Lock()
	defer r.mu.Unlock()

	lang, ok := r.byExt[ext]
	if !ok {
		return nil, nil
	}

	if inst, ok := r.instances[lang]; ok {
		return inst, nil
	}

	factory := r.factories[lang]
	inst, err := factory()
	if err != nil {
		return nil, err
	}
	r.instances[lang] = inst
	return inst, nil
}

// GetSupportedExtensions returns every registered extension, across all
// languages, in no particular order.
func (r *Registry) GetSupportedExtensions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}

// IsFileSupported reports whether path's extension is registered.
func (r *Registry) IsFileSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byExt[ext]
	return ok
}
