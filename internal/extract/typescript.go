package extract

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/treesitter"
)

// TypeScriptExtractor walks a tree-sitter TypeScript/TSX concrete syntax
// tree. JavaScriptExtractor below is a thin wrapper around the same walker
// that stamps model.LangJavaScript on the output, per spec §4.2.
type TypeScriptExtractor struct {
	parsers *treesitter.Parsers
}

func NewTypeScriptExtractor(parsers *treesitter.Parsers) *TypeScriptExtractor {
	return &TypeScriptExtractor{parsers: parsers}
}

func (e *TypeScriptExtractor) Language() model.Language { return model.LangTypeScript }

func (e *TypeScriptExtractor) Extensions() []string { return []string{".ts", ".tsx"} }

func (e *TypeScriptExtractor) Parse(source []byte, filePath string) (*model.ParsedFile, error) {
	return parseJSFamily(e.parsers, model.LangTypeScript, source, filePath)
}

// JavaScriptExtractor runs the same walker as TypeScriptExtractor over a tree
// from the tree-sitter JavaScript grammar and stamps language=javascript on
// its output.
type JavaScriptExtractor struct {
	parsers *treesitter.Parsers
}

func NewJavaScriptExtractor(parsers *treesitter.Parsers) *JavaScriptExtractor {
	return &JavaScriptExtractor{parsers: parsers}
}

func (e *JavaScriptExtractor) Language() model.Language { return model.LangJavaScript }

func (e *JavaScriptExtractor) Extensions() []string {
	return []string{".js", ".jsx", ".mjs", ".cjs"}
}

func (e *JavaScriptExtractor) Parse(source []byte, filePath string) (*model.ParsedFile, error) {
	return parseJSFamily(e.parsers, model.LangJavaScript, source, filePath)
}

func parseJSFamily(parsers *treesitter.Parsers, lang model.Language, source []byte, filePath string) (*model.ParsedFile, error) {
	tree, err := parsers.Parse(source, lang)
	if tree == nil {
		return nil, err
	}
	pf := &model.ParsedFile{FilePath: filePath, Language: lang}
	t := &tsWalk{content: source, path: filePath, pf: pf}
	t.walkFile(tree.Root)
	return pf, err
}

type tsWalk struct {
	content []byte
	path    string
	pf      *model.ParsedFile
}

func (t *tsWalk) text(n *sitter.Node) string { return treesitter.Text(n, t.content) }
func (t *tsWalk) loc(n *sitter.Node) model.SourceLocation {
	return treesitter.Location(t.path, n)
}

func (t *tsWalk) walkFile(root *sitter.Node) {
	if root == nil {
		return
	}
	for i := 0; i < int(root.ChildCount()); i++ {
		t.walkTopLevel(root.Child(i))
	}
}

func (t *tsWalk) walkTopLevel(n *sitter.Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "import_statement":
		t.parseImportStatement(n)
	case "export_statement":
		t.parseExportStatement(n)
	case "class_declaration":
		t.pf.Classes = append(t.pf.Classes, t.parseClass(n))
	case "interface_declaration":
		t.pf.Classes = append(t.pf.Classes, t.parseInterface(n))
	case "function_declaration", "generator_function_declaration":
		t.addFunction(t.parseFunction(n))
	case "function_signature":
		fn := t.parseFunction(n)
		fn.IsOverloadSignature = true
		t.addFunction(fn)
	case "lexical_declaration", "variable_declaration":
		t.parseTopLevelVariable(n)
	case "type_alias_declaration":
		t.pf.TypeAliases = append(t.pf.TypeAliases, t.parseTypeAlias(n))
	case "ambient_declaration":
		t.parseAmbientDeclaration(n)
	case "module", "internal_module":
		t.pf.Classes = append(t.pf.Classes, t.parseNamespace(n, false))
	}
}

// addFunction merges a TypeScript overload chain: consecutive bodyless
// headers sharing a name become the implementation's `overloads`.
func (t *tsWalk) addFunction(fn model.ParsedFunction) {
	if fn.IsOverloadSignature && len(t.pf.TopLevelFunctions) == 0 {
		t.pf.TopLevelFunctions = append(t.pf.TopLevelFunctions, fn)
		return
	}
	if !fn.IsOverloadSignature {
		n := len(t.pf.TopLevelFunctions)
		var merged []model.ParsedOverloadSignature
		for n > 0 && t.pf.TopLevelFunctions[n-1].IsOverloadSignature && t.pf.TopLevelFunctions[n-1].Name == fn.Name {
			prev := t.pf.TopLevelFunctions[n-1]
			merged = append([]model.ParsedOverloadSignature{{
				Parameters:     prev.Parameters,
				ReturnType:     prev.ReturnType,
				TypeParameters: prev.TypeParameters,
				Location:       prev.Location,
			}}, merged...)
			t.pf.TopLevelFunctions = t.pf.TopLevelFunctions[:n-1]
			n--
		}
		fn.Overloads = merged
	}
	t.pf.TopLevelFunctions = append(t.pf.TopLevelFunctions, fn)
}

func (t *tsWalk) parseImportStatement(n *sitter.Node) {
	source := treesitter.FirstChildOfType(n, "string")
	path := strings.Trim(t.text(source), "\"'`")

	clause := treesitter.FirstChildOfType(n, "import_clause")
	isTypeOnly := treesitter.FirstChildOfType(n, "type") != nil

	if clause == nil {
		// Side-effect import: `import './polyfill'`.
		t.pf.Imports = append(t.pf.Imports, model.ParsedImport{Path: path, Location: t.loc(n)})
		return
	}

	for i := 0; i < int(clause.ChildCount()); i++ {
		c := clause.Child(i)
		if c == nil {
			continue
		}
		switch c.Type() {
		case "identifier":
			t.pf.Imports = append(t.pf.Imports, model.ParsedImport{
				Path: path, Name: "default", Alias: t.text(c), IsTypeOnly: isTypeOnly, Location: t.loc(n),
			})
		case "namespace_import":
			t.pf.Imports = append(t.pf.Imports, model.ParsedImport{
				Path: path, IsWildcard: true, Alias: t.text(treesitter.FirstChildOfType(c, "identifier")),
				IsTypeOnly: isTypeOnly, Location: t.loc(n),
			})
		case "named_imports":
			for j := 0; j < int(c.ChildCount()); j++ {
				spec := c.Child(j)
				if spec == nil || spec.Type() != "import_specifier" {
					continue
				}
				imp := model.ParsedImport{Path: path, IsTypeOnly: isTypeOnly, Location: t.loc(n)}
				if alias := treesitter.ChildByFieldName(spec, "alias"); alias != nil {
					imp.Name = t.text(treesitter.ChildByFieldName(spec, "name"))
					imp.Alias = t.text(alias)
				} else {
					imp.Name = t.text(spec)
				}
				t.pf.Imports = append(t.pf.Imports, imp)
			}
		}
	}
}

func (t *tsWalk) parseExportStatement(n *sitter.Node) {
	source := treesitter.FirstChildOfType(n, "string")
	isTypeOnly := treesitter.FirstChildOfType(n, "type") != nil

	if source != nil {
		path := strings.Trim(t.text(source), "\"'`")
		if star := treesitter.FirstChildOfType(n, "*"); star != nil {
			re := model.ParsedReexport{SourcePath: path, IsWildcard: true, IsTypeOnly: isTypeOnly, Location: t.loc(n)}
			if ns := treesitter.FirstChildOfType(n, "identifier"); ns != nil {
				re.IsNamespaceReexport = true
				re.ExportedName = t.text(ns)
			}
			t.pf.Reexports = append(t.pf.Reexports, re)
			return
		}
		if clause := treesitter.FirstChildOfType(n, "export_clause"); clause != nil {
			for i := 0; i < int(clause.ChildCount()); i++ {
				spec := clause.Child(i)
				if spec == nil || spec.Type() != "export_specifier" {
					continue
				}
				re := model.ParsedReexport{SourcePath: path, IsTypeOnly: isTypeOnly, Location: t.loc(spec)}
				if alias := treesitter.ChildByFieldName(spec, "alias"); alias != nil {
					re.OriginalName = t.text(treesitter.ChildByFieldName(spec, "name"))
					re.ExportedName = t.text(alias)
				} else {
					re.OriginalName = t.text(spec)
					re.ExportedName = re.OriginalName
				}
				t.pf.Reexports = append(t.pf.Reexports, re)
			}
		}
		return
	}

	// `export { X }` without a source is a local re-publish, not an import
	// re-export; declarations are still indexed by their own walk of the
	// wrapped declaration.
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || child.Type() == "export" || child.Type() == "default" || child.Type() == ";" {
			continue
		}
		t.walkTopLevel(child)
	}
}

func (t *tsWalk) parseTopLevelVariable(n *sitter.Node) {
	isVal := strings.HasPrefix(t.text(n), "const")
	for i := 0; i < int(n.ChildCount()); i++ {
		decl := n.Child(i)
		if decl == nil || decl.Type() != "variable_declarator" {
			continue
		}
		nameNode := treesitter.ChildByFieldName(decl, "name")
		value := treesitter.ChildByFieldName(decl, "value")
		if value != nil && (value.Type() == "arrow_function" || value.Type() == "function_expression") {
			fn := t.parseFunction(value)
			fn.Name = t.text(nameNode)
			fn.Location = t.loc(decl)
			t.addFunction(fn)
			continue
		}
		prop := model.ParsedProperty{
			Name:       t.text(nameNode),
			Type:       t.text(treesitter.ChildByFieldName(decl, "type")),
			Visibility: model.VisibilityPublic,
			IsVal:      isVal,
			Location:   t.loc(decl),
		}
		if value != nil {
			prop.Initializer = t.text(value)
			if value.Type() == "object" {
				t.pf.ObjectExpressions = append(t.pf.ObjectExpressions, t.parseObjectExpression(value))
			}
		}
		t.pf.TopLevelProperties = append(t.pf.TopLevelProperties, prop)
	}
}

func (t *tsWalk) decorators(n *sitter.Node) []model.ParsedAnnotation {
	var out []model.ParsedAnnotation
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil || c.Type() != "decorator" {
			continue
		}
		out = append(out, t.parseDecorator(c))
	}
	return out
}

func (t *tsWalk) parseDecorator(n *sitter.Node) model.ParsedAnnotation {
	ann := model.ParsedAnnotation{Arguments: map[string]string{}}
	call := treesitter.FirstChildOfType(n, "call_expression")
	if call != nil {
		ann.Name = t.text(treesitter.ChildByFieldName(call, "function"))
		args := treesitter.ChildByFieldName(call, "arguments")
		if args != nil {
			pos := 0
			for i := 0; i < int(args.ChildCount()); i++ {
				a := args.Child(i)
				if a == nil || a.Type() == "(" || a.Type() == ")" || a.Type() == "," {
					continue
				}
				if a.Type() == "object" {
					for _, prop := range t.objectEntries(a) {
						ann.Arguments[prop.key] = prop.value
					}
				} else {
					ann.Arguments["arg"+strconv.Itoa(pos)] = t.text(a)
					pos++
				}
			}
		}
	} else {
		id := treesitter.FirstChildOfType(n, "identifier")
		ann.Name = t.text(id)
	}
	return ann
}

type objEntry struct{ key, value string }

func (t *tsWalk) objectEntries(obj *sitter.Node) []objEntry {
	var out []objEntry
	for i := 0; i < int(obj.ChildCount()); i++ {
		pair := obj.Child(i)
		if pair == nil || pair.Type() != "pair" {
			continue
		}
		out = append(out, objEntry{
			key:   strings.Trim(t.text(treesitter.ChildByFieldName(pair, "key")), "\"'"),
			value: t.text(treesitter.ChildByFieldName(pair, "value")),
		})
	}
	return out
}

func (t *tsWalk) parseObjectExpression(n *sitter.Node) model.ParsedObjectExpression {
	obj := model.ParsedObjectExpression{Location: t.loc(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch c.Type() {
		case "pair":
			obj.Properties = append(obj.Properties, model.ParsedProperty{
				Name:        strings.Trim(t.text(treesitter.ChildByFieldName(c, "key")), "\"'"),
				Initializer: t.text(treesitter.ChildByFieldName(c, "value")),
				Visibility:  model.VisibilityPublic,
				Location:    t.loc(c),
			})
		case "method_definition":
			obj.Functions = append(obj.Functions, t.parseFunction(c))
		}
	}
	return obj
}

func (t *tsWalk) typeParameters(n *sitter.Node) []model.ParsedTypeParameter {
	tp := treesitter.FirstChildOfType(n, "type_parameters")
	if tp == nil {
		return nil
	}
	var out []model.ParsedTypeParameter
	for i := 0; i < int(tp.ChildCount()); i++ {
		c := tp.Child(i)
		if c == nil || c.Type() != "type_parameter" {
			continue
		}
		param := model.ParsedTypeParameter{Name: t.text(treesitter.ChildByFieldName(c, "name"))}
		if constraint := treesitter.FirstChildOfType(c, "constraint"); constraint != nil {
			param.Bounds = append(param.Bounds, strings.TrimSpace(strings.TrimPrefix(t.text(constraint), "extends")))
		}
		out = append(out, param)
	}
	return out
}

func (t *tsWalk) parseClass(n *sitter.Node) model.ParsedClass {
	cls := model.ParsedClass{
		Name:           t.text(treesitter.ChildByFieldName(n, "name")),
		Kind:           model.ClassKindClass,
		Visibility:     model.VisibilityPublic,
		Annotations:    t.decorators(n),
		TypeParameters: t.typeParameters(n),
		Location:       t.loc(n),
	}
	if heritage := treesitter.FirstChildOfType(n, "class_heritage"); heritage != nil {
		for i := 0; i < int(heritage.ChildCount()); i++ {
			clause := heritage.Child(i)
			if clause == nil {
				continue
			}
			switch clause.Type() {
			case "extends_clause":
				cls.SuperClass = t.text(treesitter.ChildByFieldName(clause, "value" /* first type */))
				if cls.SuperClass == "" {
					cls.SuperClass = strings.TrimSpace(strings.TrimPrefix(t.text(clause), "extends"))
				}
			case "implements_clause":
				text := strings.TrimSpace(strings.TrimPrefix(t.text(clause), "implements"))
				for _, part := range strings.Split(text, ",") {
					cls.Interfaces = append(cls.Interfaces, strings.TrimSpace(part))
				}
			}
		}
	}
	if body := treesitter.ChildByFieldName(n, "body"); body != nil {
		t.parseClassBody(body, &cls)
	}
	return cls
}

func (t *tsWalk) parseClassBody(body *sitter.Node, cls *model.ParsedClass) {
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		if member == nil {
			continue
		}
		switch member.Type() {
		case "public_field_definition", "field_definition":
			cls.Properties = append(cls.Properties, t.parseFieldDefinition(member))
		case "method_definition":
			name := t.text(treesitter.ChildByFieldName(member, "name"))
			if name == "constructor" {
				ctor, ctorProps := t.parseConstructorMethod(member)
				cls.SecondaryConstructors = append(cls.SecondaryConstructors, ctor)
				cls.Properties = append(cls.Properties, ctorProps...)
				continue
			}
			cls.Functions = append(cls.Functions, t.parseFunction(member))
		case "class_declaration":
			cls.NestedClasses = append(cls.NestedClasses, t.parseClass(member))
		}
	}
}

func (t *tsWalk) fieldVisibilityAndName(n *sitter.Node) (model.Visibility, bool, string) {
	name := t.text(treesitter.ChildByFieldName(n, "name"))
	if strings.HasPrefix(name, "#") {
		return model.VisibilityPrivate, false, strings.TrimPrefix(name, "#")
	}
	vis := model.VisibilityPublic
	isReadonly := false
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch c.Type() {
		case "accessibility_modifier":
			switch t.text(c) {
			case "private":
				vis = model.VisibilityPrivate
			case "protected":
				vis = model.VisibilityProtected
			case "public":
				vis = model.VisibilityPublic
			}
		case "readonly":
			isReadonly = true
		}
	}
	return vis, isReadonly, name
}

func (t *tsWalk) parseFieldDefinition(n *sitter.Node) model.ParsedProperty {
	vis, readonly, name := t.fieldVisibilityAndName(n)
	prop := model.ParsedProperty{
		Name:        name,
		Type:        t.text(treesitter.ChildByFieldName(n, "type")),
		Visibility:  vis,
		IsVal:       readonly,
		Annotations: t.decorators(n),
		Location:    t.loc(n),
	}
	if value := treesitter.ChildByFieldName(n, "value"); value != nil {
		prop.Initializer = t.text(value)
	}
	return prop
}

// parseConstructorMethod extracts TypeScript parameter properties
// (`constructor(public x: T)`), which produce both a constructor parameter
// and a class property per spec §4.3.
func (t *tsWalk) parseConstructorMethod(n *sitter.Node) (model.ParsedConstructor, []model.ParsedProperty) {
	ctor := model.ParsedConstructor{Visibility: model.VisibilityPublic, Location: t.loc(n)}
	var props []model.ParsedProperty

	params := treesitter.ChildByFieldName(n, "parameters")
	if params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			p := params.Child(i)
			if p == nil {
				continue
			}
			switch p.Type() {
			case "required_parameter", "optional_parameter":
				param := model.ParsedParameter{
					Name: t.text(treesitter.ChildByFieldName(p, "pattern")),
					Type: t.text(treesitter.ChildByFieldName(p, "type")),
				}
				ctor.Parameters = append(ctor.Parameters, param)

				hasModifier := false
				vis := model.VisibilityPublic
				isReadonly := false
				for j := 0; j < int(p.ChildCount()); j++ {
					c := p.Child(j)
					if c == nil {
						continue
					}
					switch c.Type() {
					case "accessibility_modifier":
						hasModifier = true
						switch t.text(c) {
						case "private":
							vis = model.VisibilityPrivate
						case "protected":
							vis = model.VisibilityProtected
						}
					case "readonly":
						hasModifier = true
						isReadonly = true
					}
				}
				if hasModifier {
					props = append(props, model.ParsedProperty{
						Name:       param.Name,
						Type:       param.Type,
						Visibility: vis,
						IsVal:      isReadonly,
						Location:   t.loc(p),
					})
				}
			}
		}
	}

	body := treesitter.ChildByFieldName(n, "body")
	if body != nil {
		for i := 0; i < int(body.ChildCount()); i++ {
			stmt := body.Child(i)
			if stmt == nil || stmt.Type() == "{" {
				continue
			}
			text := t.text(stmt)
			if strings.HasPrefix(text, "super(") {
				ctor.DelegatesTo = "super"
			}
			break
		}
	}
	return ctor, props
}

func (t *tsWalk) parseInterface(n *sitter.Node) model.ParsedClass {
	cls := model.ParsedClass{
		Name:           t.text(treesitter.ChildByFieldName(n, "name")),
		Kind:           model.ClassKindInterface,
		Visibility:     model.VisibilityPublic,
		TypeParameters: t.typeParameters(n),
		Location:       t.loc(n),
	}
	if ext := treesitter.FirstChildOfType(n, "extends_type_clause"); ext != nil {
		text := strings.TrimSpace(strings.TrimPrefix(t.text(ext), "extends"))
		for _, part := range strings.Split(text, ",") {
			cls.Interfaces = append(cls.Interfaces, strings.TrimSpace(part))
		}
	}
	body := treesitter.ChildByFieldName(n, "body")
	if body == nil {
		return cls
	}
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		if member == nil {
			continue
		}
		switch member.Type() {
		case "property_signature":
			cls.Properties = append(cls.Properties, model.ParsedProperty{
				Name:       t.text(treesitter.ChildByFieldName(member, "name")),
				Type:       t.text(treesitter.ChildByFieldName(member, "type")),
				Visibility: model.VisibilityPublic,
				Location:   t.loc(member),
			})
		case "method_signature":
			fn := model.ParsedFunction{
				Name:                t.text(treesitter.ChildByFieldName(member, "name")),
				Visibility:          model.VisibilityPublic,
				TypeParameters:      t.typeParameters(member),
				IsAbstract:          true,
				IsOverloadSignature: true,
				Location:            t.loc(member),
			}
			if params := treesitter.ChildByFieldName(member, "parameters"); params != nil {
				fn.Parameters = t.parseFormalParams(params)
			}
			if ret := treesitter.ChildByFieldName(member, "return_type"); ret != nil {
				fn.ReturnType = t.text(ret)
			}
			cls.Functions = append(cls.Functions, fn)
		case "call_signature":
			cls.Properties = append(cls.Properties, model.ParsedProperty{
				Name: "[[call]]", Initializer: t.text(member), Visibility: model.VisibilityPublic, Location: t.loc(member),
			})
		case "construct_signature":
			cls.Properties = append(cls.Properties, model.ParsedProperty{
				Name: "[[construct]]", Initializer: t.text(member), Visibility: model.VisibilityPublic, Location: t.loc(member),
			})
		case "index_signature":
			cls.Properties = append(cls.Properties, model.ParsedProperty{
				Name: "[[index]]", Initializer: t.text(member), Visibility: model.VisibilityPublic, Location: t.loc(member),
			})
		}
	}
	return cls
}

// parseAmbientDeclaration handles `declare module 'x' { ... }` and
// `declare global { ... }`.
func (t *tsWalk) parseAmbientDeclaration(n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		switch c.Type() {
		case "module", "internal_module":
			t.pf.Classes = append(t.pf.Classes, t.parseNamespace(c, true))
		case "global_statement":
			glob := model.ParsedClass{
				Name:        "global",
				Kind:        model.ClassKindInterface,
				IsAbstract:  true,
				Visibility:  model.VisibilityPublic,
				Annotations: []model.ParsedAnnotation{{Name: "global", Arguments: map[string]string{}}},
				Location:    t.loc(c),
			}
			if body := treesitter.FirstChildOfType(c, "statement_block"); body != nil {
				t.parseAmbientBody(body, &glob)
			}
			t.pf.Classes = append(t.pf.Classes, glob)
		default:
			t.walkTopLevel(c)
		}
	}
}

// parseNamespace handles `namespace X { ... }` (object) and, when ambient
// and carrying a string-literal name, `declare module 'x' { ... }`
// (interface, annotated ambient-module).
func (t *tsWalk) parseNamespace(n *sitter.Node, ambient bool) model.ParsedClass {
	nameNode := treesitter.ChildByFieldName(n, "name")
	rawName := t.text(nameNode)
	isStringModule := nameNode != nil && nameNode.Type() == "string"

	cls := model.ParsedClass{
		Name:       strings.Trim(rawName, "\"'"),
		Kind:       model.ClassKindObject,
		Visibility: model.VisibilityPublic,
		Location:   t.loc(n),
	}
	if ambient && isStringModule {
		cls.Kind = model.ClassKindInterface
		cls.IsAbstract = true
		cls.Annotations = []model.ParsedAnnotation{{Name: "ambient-module", Arguments: map[string]string{}}}
	}
	if n.Type() == "internal_module" && strings.HasPrefix(t.text(n), "module ") {
		cls.Annotations = append(cls.Annotations, model.ParsedAnnotation{Name: "module", Arguments: map[string]string{}})
	}

	body := treesitter.FirstChildOfType(n, "statement_block")
	if body != nil {
		t.parseAmbientBody(body, &cls)
	}
	return cls
}

func (t *tsWalk) parseAmbientBody(body *sitter.Node, cls *model.ParsedClass) {
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		if member == nil {
			continue
		}
		switch member.Type() {
		case "interface_declaration":
			cls.NestedClasses = append(cls.NestedClasses, t.parseInterface(member))
		case "class_declaration":
			cls.NestedClasses = append(cls.NestedClasses, t.parseClass(member))
		case "function_declaration":
			cls.Functions = append(cls.Functions, t.parseFunction(member))
		case "module", "internal_module":
			cls.NestedClasses = append(cls.NestedClasses, t.parseNamespace(member, false))
		case "ambient_declaration":
			for j := 0; j < int(member.ChildCount()); j++ {
				inner := member.Child(j)
				if inner != nil && (inner.Type() == "module" || inner.Type() == "internal_module") {
					cls.NestedClasses = append(cls.NestedClasses, t.parseNamespace(inner, true))
				}
			}
		case "export_statement":
			for j := 0; j < int(member.ChildCount()); j++ {
				inner := member.Child(j)
				if inner == nil {
					continue
				}
				if inner.Type() == "interface_declaration" {
					cls.NestedClasses = append(cls.NestedClasses, t.parseInterface(inner))
				}
			}
		}
	}
}

func (t *tsWalk) parseTypeAlias(n *sitter.Node) model.ParsedTypeAlias {
	alias := model.ParsedTypeAlias{
		Name:           t.text(treesitter.ChildByFieldName(n, "name")),
		Visibility:     model.VisibilityPublic,
		TypeParameters: t.typeParameters(n),
		Location:       t.loc(n),
	}
	value := treesitter.ChildByFieldName(n, "value")
	alias.AliasedType = t.text(value)
	if value == nil {
		return alias
	}
	if value.Type() == "mapped_type_clause" || strings.Contains(alias.AliasedType, " in ") {
		alias.MappedType = t.tryParseMappedType(value)
	}
	if value.Type() == "conditional_type" {
		alias.ConditionalType = t.tryParseConditionalType(value)
	}
	return alias
}

func (t *tsWalk) tryParseMappedType(n *sitter.Node) *model.ParsedMappedType {
	text := t.text(n)
	mt := &model.ParsedMappedType{
		IsReadonly: strings.Contains(text, "readonly"),
		IsOptional: strings.Contains(text, "?:") || strings.Contains(text, "?]"),
	}
	if name := treesitter.ChildByFieldName(n, "name"); name != nil {
		mt.KeyName = t.text(name)
	}
	if c := treesitter.ChildByFieldName(n, "constraint"); c != nil {
		mt.Constraint = t.text(c)
	}
	if v := treesitter.ChildByFieldName(n, "type"); v != nil {
		mt.ValueType = t.text(v)
	}
	return mt
}

func (t *tsWalk) tryParseConditionalType(n *sitter.Node) *model.ParsedConditionalType {
	return &model.ParsedConditionalType{
		CheckType:   t.text(treesitter.ChildByFieldName(n, "left")),
		ExtendsType: t.text(treesitter.ChildByFieldName(n, "right")),
		TrueType:    t.text(treesitter.ChildByFieldName(n, "consequence")),
		FalseType:   t.text(treesitter.ChildByFieldName(n, "alternative")),
	}
}

func (t *tsWalk) parseFunction(n *sitter.Node) model.ParsedFunction {
	fn := model.ParsedFunction{
		Name:           t.text(treesitter.ChildByFieldName(n, "name")),
		Visibility:     model.VisibilityPublic,
		TypeParameters: t.typeParameters(n),
		Annotations:    t.decorators(n),
		Location:       t.loc(n),
	}
	raw := t.text(n)
	fn.IsSuspend = strings.Contains(raw[:min(len(raw), 16)], "async")

	if params := treesitter.ChildByFieldName(n, "parameters"); params != nil {
		fn.Parameters = t.parseFormalParams(params)
	} else if n.Type() == "arrow_function" {
		if p := treesitter.ChildByFieldName(n, "parameter"); p != nil {
			fn.Parameters = []model.ParsedParameter{{Name: t.text(p)}}
		}
	}

	if ret := treesitter.ChildByFieldName(n, "return_type"); ret != nil {
		fn.ReturnType = t.text(ret)
		if guard := t.tryParseTypeGuard(ret); guard != nil {
			fn.TypeGuard = guard
		}
	}

	body := treesitter.ChildByFieldName(n, "body")
	if body != nil {
		fn.Calls = t.collectCalls(body)
	}
	return fn
}

func (t *tsWalk) tryParseTypeGuard(retType *sitter.Node) *model.ParsedTypeGuard {
	text := t.text(retType)
	asserts := strings.HasPrefix(text, "asserts ")
	body := strings.TrimPrefix(text, "asserts ")
	parts := strings.SplitN(body, " is ", 2)
	if len(parts) != 2 {
		return nil
	}
	return &model.ParsedTypeGuard{
		Parameter:    strings.TrimSpace(parts[0]),
		NarrowedType: strings.TrimSpace(parts[1]),
		IsAssertion:  asserts,
	}
}

func (t *tsWalk) parseFormalParams(params *sitter.Node) []model.ParsedParameter {
	var out []model.ParsedParameter
	for i := 0; i < int(params.ChildCount()); i++ {
		p := params.Child(i)
		if p == nil {
			continue
		}
		switch p.Type() {
		case "required_parameter", "optional_parameter":
			param := model.ParsedParameter{
				Name: t.text(treesitter.ChildByFieldName(p, "pattern")),
				Type: t.text(treesitter.ChildByFieldName(p, "type")),
			}
			if def := treesitter.ChildByFieldName(p, "value"); def != nil {
				param.DefaultValue = t.text(def)
			}
			if ft := treesitter.FirstChildOfType(p, "function_type"); ft != nil {
				param.FunctionType = t.parseFunctionType(ft)
			}
			out = append(out, param)
		case "identifier":
			out = append(out, model.ParsedParameter{Name: t.text(p)})
		}
	}
	return out
}

func (t *tsWalk) parseFunctionType(n *sitter.Node) *model.ParsedFunctionType {
	ft := &model.ParsedFunctionType{}
	if params := treesitter.ChildByFieldName(n, "parameters"); params != nil {
		for _, p := range t.parseFormalParams(params) {
			ft.ParameterTypes = append(ft.ParameterTypes, p.Type)
		}
	}
	if ret := treesitter.ChildByFieldName(n, "return_type"); ret != nil {
		ft.ReturnType = t.text(ret)
	}
	return ft
}

func (t *tsWalk) collectCalls(body *sitter.Node) []model.ParsedCall {
	var calls []model.ParsedCall
	treesitter.Walk(body, func(n *sitter.Node) bool {
		if n.Type() == "call_expression" {
			calls = append(calls, t.parseCallExpression(n))
		}
		if n.Type() == "new_expression" {
			calls = append(calls, t.parseNewExpression(n))
		}
		if n.Type() == "object" {
			t.pf.ObjectExpressions = append(t.pf.ObjectExpressions, t.parseObjectExpression(n))
		}
		return true
	})
	return calls
}

func (t *tsWalk) parseCallExpression(n *sitter.Node) model.ParsedCall {
	call := model.ParsedCall{Location: t.loc(n)}
	fn := treesitter.ChildByFieldName(n, "function")
	if fn != nil && fn.Type() == "member_expression" {
		call.Receiver = t.text(treesitter.ChildByFieldName(fn, "object"))
		call.Name = t.text(treesitter.ChildByFieldName(fn, "property"))
	} else if fn != nil && fn.Type() == "optional_member_expression" {
		call.Receiver = t.text(treesitter.ChildByFieldName(fn, "object"))
		call.Name = t.text(treesitter.ChildByFieldName(fn, "property"))
		call.IsSafeCall = true
	} else {
		call.Name = t.text(fn)
	}
	if args := treesitter.ChildByFieldName(n, "arguments"); args != nil {
		call.HasArgumentCount = true
		for i := 0; i < int(args.ChildCount()); i++ {
			a := args.Child(i)
			if a == nil || a.Type() == "(" || a.Type() == ")" || a.Type() == "," {
				continue
			}
			call.ArgumentCount++
			call.ArgumentTypes = append(call.ArgumentTypes, inferTSLiteralType(t.text(a)))
		}
	}
	return call
}

func (t *tsWalk) parseNewExpression(n *sitter.Node) model.ParsedCall {
	call := model.ParsedCall{
		Name:              t.text(treesitter.ChildByFieldName(n, "constructor")),
		IsConstructorCall: true,
		Location:          t.loc(n),
	}
	if args := treesitter.ChildByFieldName(n, "arguments"); args != nil {
		call.HasArgumentCount = true
		for i := 0; i < int(args.ChildCount()); i++ {
			a := args.Child(i)
			if a == nil || a.Type() == "(" || a.Type() == ")" || a.Type() == "," {
				continue
			}
			call.ArgumentCount++
			call.ArgumentTypes = append(call.ArgumentTypes, inferTSLiteralType(t.text(a)))
		}
	}
	return call
}

func inferTSLiteralType(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return "unknown"
	case text == "true" || text == "false":
		return "boolean"
	case text == "null":
		return "null"
	case text == "undefined":
		return "undefined"
	case strings.HasPrefix(text, "`"):
		return "string"
	case strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "'"):
		return "string"
	case strings.HasPrefix(text, "["):
		return "Array<unknown>"
	case strings.HasPrefix(text, "new "):
		fields := strings.Fields(strings.TrimPrefix(text, "new "))
		if len(fields) > 0 {
			return strings.SplitN(fields[0], "(", 2)[0]
		}
		return "unknown"
	case strings.Contains(text, " as "):
		parts := strings.SplitN(text, " as ", 2)
		return strings.TrimSpace(parts[1])
	case strings.Contains(text, ".") && isDigits(strings.ReplaceAll(text, ".", "")):
		return "number"
	case strings.HasSuffix(text, "n") && isDigits(strings.TrimSuffix(text, "n")):
		return "bigint"
	case isDigits(text):
		return "number"
	default:
		return "unknown"
	}
}
