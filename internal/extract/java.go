package extract

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/treesitter"
)

// JavaExtractor walks a tree-sitter-java concrete syntax tree.
type JavaExtractor struct {
	parsers *treesitter.Parsers
}

func NewJavaExtractor(parsers *treesitter.Parsers) *JavaExtractor {
	return &JavaExtractor{parsers: parsers}
}

func (e *JavaExtractor) Language() model.Language { return model.LangJava }

func (e *JavaExtractor) Extensions() []string { return []string{".java"} }

func (e *JavaExtractor) Parse(source []byte, filePath string) (*model.ParsedFile, error) {
	tree, err := e.parsers.Parse(source, model.LangJava)
	if tree == nil {
		return nil, err
	}
	pf := &model.ParsedFile{FilePath: filePath, Language: model.LangJava}
	j := &javaWalk{content: source, path: filePath, pf: pf}
	j.walkFile(tree.Root)
	return pf, err
}

type javaWalk struct {
	content []byte
	path    string
	pf      *model.ParsedFile
}

func (j *javaWalk) text(n *sitter.Node) string { return treesitter.Text(n, j.content) }
func (j *javaWalk) loc(n *sitter.Node) model.SourceLocation {
	return treesitter.Location(j.path, n)
}

func (j *javaWalk) walkFile(root *sitter.Node) {
	if root == nil {
		return
	}
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "package_declaration":
			j.pf.PackageName = j.text(treesitter.FirstChildOfType(child, "scoped_identifier"))
			if j.pf.PackageName == "" {
				j.pf.PackageName = j.text(treesitter.FirstChildOfType(child, "identifier"))
			}
		case "import_declaration":
			j.pf.Imports = append(j.pf.Imports, j.parseImport(child))
		case "class_declaration":
			j.pf.Classes = append(j.pf.Classes, j.parseClass(child))
		case "interface_declaration":
			j.pf.Classes = append(j.pf.Classes, j.parseInterface(child))
		case "enum_declaration":
			j.pf.Classes = append(j.pf.Classes, j.parseEnum(child))
		case "record_declaration":
			j.pf.Classes = append(j.pf.Classes, j.parseRecord(child))
		case "annotation_type_declaration":
			j.pf.Classes = append(j.pf.Classes, j.parseAnnotationType(child))
		}
	}
}

func (j *javaWalk) parseImport(n *sitter.Node) model.ParsedImport {
	raw := j.text(n)
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(raw, "import"), ";"))
	imp := model.ParsedImport{Location: j.loc(n)}
	if strings.HasPrefix(raw, "static ") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "static "))
	}
	if strings.HasSuffix(raw, ".*") {
		imp.IsWildcard = true
		raw = strings.TrimSuffix(raw, ".*")
	} else if i := strings.LastIndex(raw, "."); i != -1 {
		imp.Name = raw[i+1:]
	} else {
		imp.Name = raw
	}
	imp.Path = raw
	return imp
}

func (j *javaWalk) visibility(n *sitter.Node) model.Visibility {
	mods := treesitter.FirstChildOfType(n, "modifiers")
	if mods == nil {
		return model.VisibilityInternal
	}
	for i := 0; i < int(mods.ChildCount()); i++ {
		switch mods.Child(i).Type() {
		case "public":
			return model.VisibilityPublic
		case "private":
			return model.VisibilityPrivate
		case "protected":
			return model.VisibilityProtected
		}
	}
	return model.VisibilityInternal
}

func (j *javaWalk) annotations(n *sitter.Node) []model.ParsedAnnotation {
	mods := treesitter.FirstChildOfType(n, "modifiers")
	if mods == nil {
		return nil
	}
	var out []model.ParsedAnnotation
	for i := 0; i < int(mods.ChildCount()); i++ {
		c := mods.Child(i)
		if c == nil || (c.Type() != "annotation" && c.Type() != "marker_annotation") {
			continue
		}
		out = append(out, j.parseAnnotation(c))
	}
	return out
}

func (j *javaWalk) parseAnnotation(n *sitter.Node) model.ParsedAnnotation {
	ann := model.ParsedAnnotation{Arguments: map[string]string{}}
	name := treesitter.ChildByFieldName(n, "name")
	ann.Name = strings.TrimPrefix(j.text(name), "@")
	args := treesitter.FirstChildOfType(n, "annotation_argument_list")
	if args == nil {
		return ann
	}
	pos := 0
	for i := 0; i < int(args.ChildCount()); i++ {
		arg := args.Child(i)
		if arg == nil {
			continue
		}
		if arg.Type() == "element_value_pair" {
			key := j.text(treesitter.ChildByFieldName(arg, "key"))
			val := j.text(treesitter.ChildByFieldName(arg, "value"))
			ann.Arguments[key] = val
		} else if arg.Type() != "(" && arg.Type() != ")" && arg.Type() != "," {
			ann.Arguments["arg"+strconv.Itoa(pos)] = j.text(arg)
			pos++
		}
	}
	return ann
}

func (j *javaWalk) typeParameters(n *sitter.Node) []model.ParsedTypeParameter {
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
		param := model.ParsedTypeParameter{Name: j.text(treesitter.FirstChildOfType(c, "type_identifier"))}
		if bound := treesitter.FirstChildOfType(c, "type_bound"); bound != nil {
			param.Bounds = append(param.Bounds, j.text(bound))
		}
		out = append(out, param)
	}
	return out
}

func (j *javaWalk) superclass(n *sitter.Node) string {
	sc := treesitter.FirstChildOfType(n, "superclass")
	if sc == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(j.text(sc), "extends"))
}

func (j *javaWalk) interfaces(n *sitter.Node, containerType string) []string {
	container := treesitter.FirstChildOfType(n, containerType)
	if container == nil {
		return nil
	}
	list := treesitter.FirstChildOfType(container, "type_list")
	if list == nil {
		return nil
	}
	var out []string
	for i := 0; i < int(list.ChildCount()); i++ {
		c := list.Child(i)
		if c == nil || c.Type() == "," {
			continue
		}
		out = append(out, j.text(c))
	}
	return out
}

func (j *javaWalk) parseClass(n *sitter.Node) model.ParsedClass {
	cls := model.ParsedClass{
		Name:           j.text(treesitter.ChildByFieldName(n, "name")),
		Kind:           model.ClassKindClass,
		Visibility:     j.visibility(n),
		Annotations:    j.annotations(n),
		TypeParameters: j.typeParameters(n),
		SuperClass:     j.superclass(n),
		Interfaces:     j.interfaces(n, "super_interfaces"),
		Location:       j.loc(n),
	}
	if mods := treesitter.FirstChildOfType(n, "modifiers"); mods != nil {
		for i := 0; i < int(mods.ChildCount()); i++ {
			switch mods.Child(i).Type() {
			case "abstract":
				cls.IsAbstract = true
			case "sealed":
				cls.IsSealed = true
			}
		}
	}
	if perms := treesitter.FirstChildOfType(n, "permits"); perms != nil {
		if list := treesitter.FirstChildOfType(perms, "type_list"); list != nil {
			for i := 0; i < int(list.ChildCount()); i++ {
				c := list.Child(i)
				if c != nil && c.Type() != "," {
					cls.PermittedSubclasses = append(cls.PermittedSubclasses, j.text(c))
				}
			}
		}
	}
	if body := treesitter.ChildByFieldName(n, "body"); body != nil {
		j.parseClassBody(body, &cls)
	}
	return cls
}

func (j *javaWalk) parseInterface(n *sitter.Node) model.ParsedClass {
	cls := model.ParsedClass{
		Name:           j.text(treesitter.ChildByFieldName(n, "name")),
		Kind:           model.ClassKindInterface,
		Visibility:     j.visibility(n),
		Annotations:    j.annotations(n),
		TypeParameters: j.typeParameters(n),
		Interfaces:     j.interfaces(n, "extends_interfaces"),
		Location:       j.loc(n),
	}
	if body := treesitter.ChildByFieldName(n, "body"); body != nil {
		j.parseClassBody(body, &cls)
	}
	return cls
}

func (j *javaWalk) parseEnum(n *sitter.Node) model.ParsedClass {
	cls := model.ParsedClass{
		Name:        j.text(treesitter.ChildByFieldName(n, "name")),
		Kind:        model.ClassKindEnum,
		Visibility:  j.visibility(n),
		Annotations: j.annotations(n),
		Interfaces:  j.interfaces(n, "super_interfaces"),
		Location:    j.loc(n),
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
		if member.Type() == "enum_constant" {
			cls.Properties = append(cls.Properties, model.ParsedProperty{
				Name:     j.text(treesitter.ChildByFieldName(member, "name")),
				IsVal:    true,
				Location: j.loc(member),
			})
		}
	}
	if decls := treesitter.FirstChildOfType(body, "enum_body_declarations"); decls != nil {
		j.parseClassBody(decls, &cls)
	}
	return cls
}

func (j *javaWalk) parseRecord(n *sitter.Node) model.ParsedClass {
	cls := model.ParsedClass{
		Name:        j.text(treesitter.ChildByFieldName(n, "name")),
		Kind:        model.ClassKindClass,
		IsData:      true,
		Visibility:  j.visibility(n),
		Annotations: j.annotations(n),
		Interfaces:  j.interfaces(n, "super_interfaces"),
		Location:    j.loc(n),
	}
	if params := treesitter.ChildByFieldName(n, "parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			p := params.Child(i)
			if p == nil || p.Type() != "formal_parameter" {
				continue
			}
			cls.Properties = append(cls.Properties, model.ParsedProperty{
				Name:     j.text(treesitter.ChildByFieldName(p, "name")),
				Type:     j.text(treesitter.ChildByFieldName(p, "type")),
				IsVal:    true,
				Location: j.loc(p),
			})
		}
	}
	if body := treesitter.ChildByFieldName(n, "body"); body != nil {
		j.parseClassBody(body, &cls)
	}
	return cls
}

func (j *javaWalk) parseAnnotationType(n *sitter.Node) model.ParsedClass {
	return model.ParsedClass{
		Name:       j.text(treesitter.ChildByFieldName(n, "name")),
		Kind:       model.ClassKindAnnotation,
		Visibility: j.visibility(n),
		Location:   j.loc(n),
	}
}

func (j *javaWalk) parseClassBody(body *sitter.Node, cls *model.ParsedClass) {
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		if member == nil {
			continue
		}
		switch member.Type() {
		case "field_declaration":
			cls.Properties = append(cls.Properties, j.parseFieldDeclaration(member)...)
		case "method_declaration":
			cls.Functions = append(cls.Functions, j.parseMethod(member))
		case "constructor_declaration":
			cls.SecondaryConstructors = append(cls.SecondaryConstructors, j.parseConstructor(member))
		case "class_declaration":
			cls.NestedClasses = append(cls.NestedClasses, j.parseClass(member))
		case "interface_declaration":
			cls.NestedClasses = append(cls.NestedClasses, j.parseInterface(member))
		case "enum_declaration":
			cls.NestedClasses = append(cls.NestedClasses, j.parseEnum(member))
		case "record_declaration":
			cls.NestedClasses = append(cls.NestedClasses, j.parseRecord(member))
		}
	}
}

// parseFieldDeclaration expands a multi-declarator statement
// (`int a, b = 5, c;`) into one ParsedProperty per declarator, sharing
// type/visibility/annotations, per spec §4.3.
func (j *javaWalk) parseFieldDeclaration(n *sitter.Node) []model.ParsedProperty {
	baseType := j.text(treesitter.ChildByFieldName(n, "type"))
	vis := j.visibility(n)
	anns := j.annotations(n)
	isVal := false
	if mods := treesitter.FirstChildOfType(n, "modifiers"); mods != nil {
		for i := 0; i < int(mods.ChildCount()); i++ {
			if mods.Child(i).Type() == "final" {
				isVal = true
			}
		}
	}

	var props []model.ParsedProperty
	for i := 0; i < int(n.ChildCount()); i++ {
		decl := n.Child(i)
		if decl == nil || decl.Type() != "variable_declarator" {
			continue
		}
		name := j.text(treesitter.ChildByFieldName(decl, "name"))
		typ := baseType
		// Array dimensions trailing the identifier (`int matrix[][]`) are
		// appended to the base type rather than the name.
		if dims := treesitter.FirstChildOfType(decl, "dimensions"); dims != nil {
			typ += j.text(dims)
		}
		prop := model.ParsedProperty{
			Name:        name,
			Type:        typ,
			Visibility:  vis,
			IsVal:       isVal,
			Annotations: anns,
			Location:    j.loc(decl),
		}
		if val := treesitter.ChildByFieldName(decl, "value"); val != nil {
			prop.Initializer = j.text(val)
		}
		props = append(props, prop)
	}
	return props
}

func (j *javaWalk) parseMethod(n *sitter.Node) model.ParsedFunction {
	fn := model.ParsedFunction{
		Name:           j.text(treesitter.ChildByFieldName(n, "name")),
		Visibility:     j.visibility(n),
		TypeParameters: j.typeParameters(n),
		Annotations:    j.annotations(n),
		Location:       j.loc(n),
	}
	if retType := treesitter.ChildByFieldName(n, "type"); retType != nil {
		text := j.text(retType)
		if text != "void" {
			fn.ReturnType = text
		}
	}
	if params := treesitter.ChildByFieldName(n, "parameters"); params != nil {
		fn.Parameters = j.parseFormalParameters(params)
	}
	if mods := treesitter.FirstChildOfType(n, "modifiers"); mods != nil {
		for i := 0; i < int(mods.ChildCount()); i++ {
			if mods.Child(i).Type() == "abstract" {
				fn.IsAbstract = true
			}
		}
	}
	body := treesitter.ChildByFieldName(n, "body")
	if body != nil {
		fn.Calls = j.collectCalls(body)
	} else {
		fn.IsAbstract = true
	}
	return fn
}

func (j *javaWalk) parseFormalParameters(params *sitter.Node) []model.ParsedParameter {
	var out []model.ParsedParameter
	for i := 0; i < int(params.ChildCount()); i++ {
		p := params.Child(i)
		if p == nil || (p.Type() != "formal_parameter" && p.Type() != "spread_parameter") {
			continue
		}
		typ := j.text(treesitter.ChildByFieldName(p, "type"))
		if p.Type() == "spread_parameter" {
			typ += "..."
		}
		out = append(out, model.ParsedParameter{
			Name: j.text(treesitter.ChildByFieldName(p, "name")),
			Type: typ,
		})
	}
	return out
}

// parseConstructor detects `this(...)`/`super(...)` delegation from the
// first statement of the constructor body per spec §4.3.
func (j *javaWalk) parseConstructor(n *sitter.Node) model.ParsedConstructor {
	ctor := model.ParsedConstructor{
		Visibility:  j.visibility(n),
		Annotations: j.annotations(n),
		Location:    j.loc(n),
	}
	if params := treesitter.ChildByFieldName(n, "parameters"); params != nil {
		ctor.Parameters = j.parseFormalParameters(params)
	}
	body := treesitter.ChildByFieldName(n, "body")
	if body != nil {
		for i := 0; i < int(body.ChildCount()); i++ {
			stmt := body.Child(i)
			if stmt == nil || stmt.Type() == "{" {
				continue
			}
			if stmt.Type() == "explicit_constructor_invocation" {
				text := j.text(stmt)
				if strings.HasPrefix(text, "this") {
					ctor.DelegatesTo = "this"
				} else if strings.HasPrefix(text, "super") {
					ctor.DelegatesTo = "super"
				}
			}
			break
		}
	}
	return ctor
}

func (j *javaWalk) collectCalls(body *sitter.Node) []model.ParsedCall {
	var calls []model.ParsedCall
	treesitter.Walk(body, func(n *sitter.Node) bool {
		switch n.Type() {
		case "method_invocation":
			calls = append(calls, j.parseMethodInvocation(n))
		case "object_creation_expression":
			calls = append(calls, j.parseObjectCreation(n))
		}
		return true
	})
	return calls
}

func (j *javaWalk) parseMethodInvocation(n *sitter.Node) model.ParsedCall {
	call := model.ParsedCall{
		Name:     j.text(treesitter.ChildByFieldName(n, "name")),
		Location: j.loc(n),
	}
	if object := treesitter.ChildByFieldName(n, "object"); object != nil {
		call.Receiver = j.text(object)
	}
	if args := treesitter.ChildByFieldName(n, "arguments"); args != nil {
		call.HasArgumentCount = true
		for i := 0; i < int(args.ChildCount()); i++ {
			a := args.Child(i)
			if a == nil || a.Type() == "(" || a.Type() == ")" || a.Type() == "," {
				continue
			}
			call.ArgumentCount++
			call.ArgumentTypes = append(call.ArgumentTypes, inferJavaLiteralType(j.text(a)))
		}
	}
	return call
}

func (j *javaWalk) parseObjectCreation(n *sitter.Node) model.ParsedCall {
	call := model.ParsedCall{
		Name:              j.text(treesitter.ChildByFieldName(n, "type")),
		IsConstructorCall: true,
		Location:          j.loc(n),
	}
	if args := treesitter.ChildByFieldName(n, "arguments"); args != nil {
		call.HasArgumentCount = true
		for i := 0; i < int(args.ChildCount()); i++ {
			a := args.Child(i)
			if a == nil || a.Type() == "(" || a.Type() == ")" || a.Type() == "," {
				continue
			}
			call.ArgumentCount++
			call.ArgumentTypes = append(call.ArgumentTypes, inferJavaLiteralType(j.text(a)))
		}
	}
	return call
}

func inferJavaLiteralType(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return "Object"
	case text == "true" || text == "false":
		return "boolean"
	case text == "null":
		return "null"
	case strings.HasPrefix(text, "\""):
		return "String"
	case strings.HasPrefix(text, "new "):
		fields := strings.Fields(strings.TrimPrefix(text, "new "))
		if len(fields) > 0 {
			return strings.SplitN(fields[0], "(", 2)[0]
		}
		return "Object"
	case strings.Contains(text, ".") && isDigits(strings.ReplaceAll(text, ".", "")):
		return "double"
	case isDigits(text):
		if strings.HasSuffix(text, "L") {
			return "long"
		}
		return "int"
	default:
		return "Object"
	}
}
