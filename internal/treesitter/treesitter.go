// Package treesitter wraps the smacker/go-tree-sitter bindings for the
// four supported languages behind a thin typed facade. Extractors still
// dispatch on the node's type string — that duck-typed shape is the right
// one for walking a concrete syntax tree — but they never touch the
// sitter.Language/sitter.Parser plumbing directly.
package treesitter

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/kotlin"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/graphlang/codeindex/internal/model"
)

// Tree is the parsed result for one file: its root node plus the source
// bytes needed to slice node text out of it.
type Tree struct {
	Root    *sitter.Node
	Content []byte
}

// Parsers holds one *sitter.Parser per language, all built by NewParsers.
// One Parsers is shared by every extractor and parse worker; tree-sitter
// parsers are not safe for concurrent use, so Parse holds mu for the whole
// parse and each call has the parser to itself.
type Parsers struct {
	mu     sync.Mutex
	kotlin *sitter.Parser
	java   *sitter.Parser
	ts     *sitter.Parser
	js     *sitter.Parser
}

// NewParsers initializes one sitter.Parser per supported language.
func NewParsers() *Parsers {
	p := &Parsers{
		kotlin: sitter.NewParser(),
		java:   sitter.NewParser(),
		ts:     sitter.NewParser(),
		js:     sitter.NewParser(),
	}
	p.kotlin.SetLanguage(kotlin.GetLanguage())
	p.java.SetLanguage(java.GetLanguage())
	p.ts.SetLanguage(typescript.GetLanguage())
	p.js.SetLanguage(javascript.GetLanguage())
	return p
}

// Parse parses content as lang and returns the resulting tree. A non-nil
// root is returned even when the tree contains syntax errors (partial
// results), paired with a non-nil error so the caller can decide whether to
// keep the best-effort ParsedFile.
func (p *Parsers) Parse(content []byte, lang model.Language) (*Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	parser, err := p.parserFor(lang)
	if err != nil {
		return nil, err
	}

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", lang, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("parse %s: nil tree", lang)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse %s: nil root node", lang)
	}

	result := &Tree{Root: root, Content: content}
	if root.HasError() {
		return result, fmt.Errorf("parse %s: syntax tree contains errors", lang)
	}
	return result, nil
}

func (p *Parsers) parserFor(lang model.Language) (*sitter.Parser, error) {
	switch lang {
	case model.LangKotlin:
		return p.kotlin, nil
	case model.LangJava:
		return p.java, nil
	case model.LangTypeScript:
		return p.ts, nil
	case model.LangJavaScript:
		// JavaScript is parsed with its own tree-sitter grammar; the
		// extractor shares the TypeScript walker and stamps
		// language=javascript on the output (registry §4.2).
		return p.js, nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
}

// Child-lookup helpers shared by every extractor. These wrap the handful of
// tree-sitter operations the extractors actually need: named/typed child
// lookup, depth-first traversal, and text slicing.

// Text returns the source text spanned by node.
func Text(node *sitter.Node, content []byte) string {
	if node == nil {
		return ""
	}
	return node.Content(content)
}

// ChildByFieldName looks up a node's child by its grammar field name (e.g.
// "name", "body", "type"). Returns nil if absent.
func ChildByFieldName(node *sitter.Node, field string) *sitter.Node {
	if node == nil {
		return nil
	}
	return node.ChildByFieldName(field)
}

// FirstChildOfType returns the first direct child whose Type() equals typ.
func FirstChildOfType(node *sitter.Node, typ string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if c := node.Child(i); c != nil && c.Type() == typ {
			return c
		}
	}
	return nil
}

// ChildrenOfType returns every direct child whose Type() equals typ.
func ChildrenOfType(node *sitter.Node, typ string) []*sitter.Node {
	if node == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		if c := node.Child(i); c != nil && c.Type() == typ {
			out = append(out, c)
		}
	}
	return out
}

// Walk calls visit for node and every descendant, depth-first,
// pre-order. Walking stops early for a subtree if visit returns false.
func Walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(i), visit)
	}
}

// Location converts a tree-sitter node's span into a model.SourceLocation.
func Location(filePath string, node *sitter.Node) model.SourceLocation {
	if node == nil {
		return model.SourceLocation{FilePath: filePath}
	}
	start := node.StartPoint()
	end := node.EndPoint()
	return model.SourceLocation{
		FilePath:    filePath,
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column),
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column),
	}
}
