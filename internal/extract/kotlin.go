// Package extract implements the per-language AST extractors: the walk from
// a concrete syntax tree to a model.ParsedFile. Each extractor satisfies
// registry.LanguageParser and is stateless after construction.
package extract

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/treesitter"
)

// KotlinExtractor walks a tree-sitter-kotlin concrete syntax tree.
type KotlinExtractor struct {
	parsers *treesitter.Parsers
}

// NewKotlinExtractor builds the Kotlin extractor on a shared parser set.
func NewKotlinExtractor(parsers *treesitter.Parsers) *KotlinExtractor {
	return &KotlinExtractor{parsers: parsers}
}

func (e *KotlinExtractor) Language() model.Language { return model.LangKotlin }

func (e *KotlinExtractor) Extensions() []string { return []string{".kt", ".kts"} }

func (e *KotlinExtractor) Parse(source []byte, filePath string) (*model.ParsedFile, error) {
	tree, err := e.parsers.Parse(source, model.LangKotlin)
	if tree == nil {
		return nil, err
	}

	pf := &model.ParsedFile{FilePath: filePath, Language: model.LangKotlin}
	k := &kotlinWalk{content: source, path: filePath, pf: pf}
	k.walkFile(tree.Root)
	return pf, err
}

type kotlinWalk struct {
	content []byte
	path    string
	pf      *model.ParsedFile
}

func (k *kotlinWalk) text(n *sitter.Node) string { return treesitter.Text(n, k.content) }
func (k *kotlinWalk) loc(n *sitter.Node) model.SourceLocation {
	return treesitter.Location(k.path, n)
}

func (k *kotlinWalk) walkFile(root *sitter.Node) {
	if root == nil {
		return
	}
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "package_header":
			k.pf.PackageName = k.identifierText(child)
		case "import_header":
			k.pf.Imports = append(k.pf.Imports, k.parseImport(child))
		case "class_declaration":
			k.pf.Classes = append(k.pf.Classes, k.parseClass(child))
		case "object_declaration":
			k.pf.Classes = append(k.pf.Classes, k.parseObject(child))
		case "function_declaration":
			k.pf.TopLevelFunctions = append(k.pf.TopLevelFunctions, k.parseFunction(child))
		case "property_declaration":
			if d, ok := k.tryParseDestructuring(child); ok {
				k.pf.DestructuringDeclarations = append(k.pf.DestructuringDeclarations, d)
			} else {
				k.pf.TopLevelProperties = append(k.pf.TopLevelProperties, k.parseProperties(child)...)
			}
		case "type_alias":
			k.pf.TypeAliases = append(k.pf.TypeAliases, k.parseTypeAlias(child))
		}
	}
}

// identifierText returns the dotted text of the first identifier-ish child
// (package_header's lone child, import_header's path before `as`/`.*`).
func (k *kotlinWalk) identifierText(n *sitter.Node) string {
	id := treesitter.FirstChildOfType(n, "identifier")
	if id == nil {
		id = treesitter.FirstChildOfType(n, "qualified_identifier")
	}
	if id == nil {
		return ""
	}
	return k.text(id)
}

func (k *kotlinWalk) parseImport(n *sitter.Node) model.ParsedImport {
	raw := k.text(n)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "import"))
	imp := model.ParsedImport{Location: k.loc(n)}

	if idx := strings.Index(raw, " as "); idx != -1 {
		imp.Alias = strings.TrimSpace(raw[idx+4:])
		raw = strings.TrimSpace(raw[:idx])
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

func (k *kotlinWalk) modifiers(n *sitter.Node) []*sitter.Node {
	mods := treesitter.FirstChildOfType(n, "modifiers")
	if mods == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(mods.ChildCount()); i++ {
		out = append(out, mods.Child(i))
	}
	return out
}

func (k *kotlinWalk) hasModifierText(n *sitter.Node, word string) bool {
	for _, m := range k.modifiers(n) {
		if strings.Contains(k.text(m), word) {
			return true
		}
	}
	return false
}

func (k *kotlinWalk) visibility(n *sitter.Node) model.Visibility {
	for _, m := range k.modifiers(n) {
		switch k.text(m) {
		case "public":
			return model.VisibilityPublic
		case "private":
			return model.VisibilityPrivate
		case "protected":
			return model.VisibilityProtected
		case "internal":
			return model.VisibilityInternal
		}
	}
	return model.VisibilityPublic
}

func (k *kotlinWalk) annotations(n *sitter.Node) []model.ParsedAnnotation {
	var out []model.ParsedAnnotation
	for _, m := range k.modifiers(n) {
		if m.Type() != "annotation" {
			continue
		}
		out = append(out, k.parseAnnotation(m))
	}
	return out
}

func (k *kotlinWalk) parseAnnotation(n *sitter.Node) model.ParsedAnnotation {
	ann := model.ParsedAnnotation{Arguments: map[string]string{}}
	id := treesitter.FirstChildOfType(n, "user_type")
	if id == nil {
		id = treesitter.FirstChildOfType(n, "constructor_invocation")
	}
	name := k.text(id)
	name = strings.TrimPrefix(name, "@")
	if idx := strings.Index(name, "("); idx != -1 {
		name = name[:idx]
	}
	ann.Name = strings.TrimPrefix(strings.TrimSpace(name), "@")

	args := treesitter.FirstChildOfType(n, "value_arguments")
	if args != nil {
		pos := 0
		for i := 0; i < int(args.ChildCount()); i++ {
			arg := args.Child(i)
			if arg == nil || arg.Type() != "value_argument" {
				continue
			}
			if namedRef := treesitter.ChildByFieldName(arg, "name"); namedRef != nil {
				ann.Arguments[k.text(namedRef)] = k.text(arg)
			} else {
				ann.Arguments["arg"+strconv.Itoa(pos)] = k.text(arg)
				pos++
			}
		}
	}
	return ann
}

func (k *kotlinWalk) typeParameters(n *sitter.Node) []model.ParsedTypeParameter {
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
		param := model.ParsedTypeParameter{Name: k.text(treesitter.FirstChildOfType(c, "type_identifier"))}
		param.Reified = strings.Contains(k.text(c), "reified ")
		if treesitter.FirstChildOfType(c, "in") != nil || strings.HasPrefix(k.text(c), "in ") {
			param.Variance = model.VarianceIn
		} else if strings.HasPrefix(k.text(c), "out ") {
			param.Variance = model.VarianceOut
		}
		if bound := treesitter.ChildByFieldName(c, "type"); bound != nil {
			param.Bounds = append(param.Bounds, k.text(bound))
		}
		out = append(out, param)
	}
	return out
}

func (k *kotlinWalk) parseClass(n *sitter.Node) model.ParsedClass {
	name := treesitter.ChildByFieldName(n, "name")
	if name == nil {
		name = treesitter.FirstChildOfType(n, "type_identifier")
	}

	cls := model.ParsedClass{
		Name:           k.text(name),
		Kind:           model.ClassKindClass,
		Visibility:     k.visibility(n),
		Annotations:    k.annotations(n),
		TypeParameters: k.typeParameters(n),
		Location:       k.loc(n),
	}

	if treesitter.FirstChildOfType(n, "interface") != nil {
		cls.Kind = model.ClassKindInterface
	}
	if k.hasModifierText(n, "enum") {
		cls.Kind = model.ClassKindEnum
	}
	if k.hasModifierText(n, "annotation") {
		cls.Kind = model.ClassKindAnnotation
	}
	if k.hasModifierText(n, "data") {
		cls.IsData = true
	}
	if k.hasModifierText(n, "sealed") {
		cls.IsSealed = true
	}
	if k.hasModifierText(n, "abstract") {
		cls.IsAbstract = true
	}

	var ctorProps []model.ParsedProperty
	var secondaryCtors []model.ParsedConstructor
	if pc := treesitter.FirstChildOfType(n, "primary_constructor" /* class_parameters container */); pc != nil {
		ctorProps = k.parsePrimaryConstructor(pc)
	} else if cp := treesitter.FirstChildOfType(n, "class_parameters"); cp != nil {
		ctorProps = k.parseClassParameters(cp)
	}

	if ds := treesitter.FirstChildOfType(n, "delegation_specifiers"); ds != nil {
		supers := k.parseDelegationSpecifiers(ds)
		if len(supers) > 0 {
			cls.SuperClass = supers[0]
			cls.Interfaces = supers[1:]
		}
	}

	if body := treesitter.ChildByFieldName(n, "body"); body != nil {
		k.parseClassBody(body, &cls, &secondaryCtors)
	} else if body := treesitter.FirstChildOfType(n, "class_body"); body != nil {
		k.parseClassBody(body, &cls, &secondaryCtors)
	} else if body := treesitter.FirstChildOfType(n, "enum_class_body"); body != nil {
		k.parseClassBody(body, &cls, &secondaryCtors)
	}

	cls.SecondaryConstructors = secondaryCtors
	cls.Properties = append(append([]model.ParsedProperty{}, ctorProps...), cls.Properties...)
	return cls
}

func (k *kotlinWalk) parsePrimaryConstructor(pc *sitter.Node) []model.ParsedProperty {
	cp := treesitter.FirstChildOfType(pc, "class_parameters")
	if cp == nil {
		return nil
	}
	return k.parseClassParameters(cp)
}

func (k *kotlinWalk) parseClassParameters(cp *sitter.Node) []model.ParsedProperty {
	var props []model.ParsedProperty
	for i := 0; i < int(cp.ChildCount()); i++ {
		param := cp.Child(i)
		if param == nil || param.Type() != "class_parameter" {
			continue
		}
		isVal := true
		if k.hasModifierText(param, "var") || treesitter.FirstChildOfType(param, "var") != nil {
			isVal = false
		}
		if treesitter.FirstChildOfType(param, "val") == nil && treesitter.FirstChildOfType(param, "var") == nil {
			// Plain constructor parameter, not promoted to a property.
			continue
		}
		name := treesitter.ChildByFieldName(param, "name")
		typ := treesitter.ChildByFieldName(param, "type")
		prop := model.ParsedProperty{
			Name:        k.text(name),
			Type:        k.text(typ),
			Visibility:  k.visibility(param),
			IsVal:       isVal,
			Annotations: k.annotations(param),
			Location:    k.loc(param),
		}
		if def := treesitter.ChildByFieldName(param, "default_value"); def != nil {
			prop.Initializer = k.text(def)
		}
		props = append(props, prop)
	}
	return props
}

func (k *kotlinWalk) parseDelegationSpecifiers(ds *sitter.Node) []string {
	var out []string
	for i := 0; i < int(ds.ChildCount()); i++ {
		spec := ds.Child(i)
		if spec == nil || spec.Type() != "delegation_specifier" {
			continue
		}
		text := k.text(spec)
		if idx := strings.Index(text, "("); idx != -1 {
			text = text[:idx]
		}
		if idx := strings.Index(text, " by "); idx != -1 {
			text = text[:idx]
		}
		out = append(out, strings.TrimSpace(text))
	}
	return out
}

func (k *kotlinWalk) parseClassBody(body *sitter.Node, cls *model.ParsedClass, secondaryCtors *[]model.ParsedConstructor) {
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		if member == nil {
			continue
		}
		switch member.Type() {
		case "property_declaration":
			cls.Properties = append(cls.Properties, k.parseProperties(member)...)
		case "function_declaration":
			cls.Functions = append(cls.Functions, k.parseFunction(member))
		case "secondary_constructor":
			*secondaryCtors = append(*secondaryCtors, k.parseSecondaryConstructor(member))
		case "class_declaration":
			cls.NestedClasses = append(cls.NestedClasses, k.parseClass(member))
		case "object_declaration":
			obj := k.parseObject(member)
			if obj.Name == "Companion" || k.hasModifierText(member, "companion") {
				companion := obj
				cls.CompanionObject = &companion
			} else {
				cls.NestedClasses = append(cls.NestedClasses, obj)
			}
		case "companion_object":
			companion := k.parseCompanionObject(member)
			cls.CompanionObject = &companion
		case "type_alias":
			_ = member // nested type aliases are rare; tracked at file scope only
		case "enum_entry":
			cls.Properties = append(cls.Properties, model.ParsedProperty{
				Name:     k.text(treesitter.FirstChildOfType(member, "simple_identifier")),
				IsVal:    true,
				Location: k.loc(member),
			})
		}
	}
}

func (k *kotlinWalk) parseCompanionObject(n *sitter.Node) model.ParsedClass {
	name := treesitter.ChildByFieldName(n, "name")
	companion := model.ParsedClass{
		Name:       k.text(name),
		Kind:       model.ClassKindObject,
		Visibility: k.visibility(n),
		Location:   k.loc(n),
	}
	if companion.Name == "" {
		companion.Name = "Companion"
	}
	if body := treesitter.FirstChildOfType(n, "class_body"); body != nil {
		var secondary []model.ParsedConstructor
		k.parseClassBody(body, &companion, &secondary)
	}
	return companion
}

func (k *kotlinWalk) parseObject(n *sitter.Node) model.ParsedClass {
	name := treesitter.ChildByFieldName(n, "name")
	obj := model.ParsedClass{
		Name:       k.text(name),
		Kind:       model.ClassKindObject,
		Visibility: k.visibility(n),
		Location:   k.loc(n),
	}
	if ds := treesitter.FirstChildOfType(n, "delegation_specifiers"); ds != nil {
		supers := k.parseDelegationSpecifiers(ds)
		if len(supers) > 0 {
			obj.SuperClass = supers[0]
			obj.Interfaces = supers[1:]
		}
	}
	if body := treesitter.FirstChildOfType(n, "class_body"); body != nil {
		var secondary []model.ParsedConstructor
		k.parseClassBody(body, &obj, &secondary)
	}
	return obj
}

func (k *kotlinWalk) parseSecondaryConstructor(n *sitter.Node) model.ParsedConstructor {
	ctor := model.ParsedConstructor{
		Visibility:  k.visibility(n),
		Annotations: k.annotations(n),
		Location:    k.loc(n),
	}
	if params := treesitter.FirstChildOfType(n, "function_value_parameters"); params != nil {
		ctor.Parameters = k.parseValueParameters(params)
	}
	if delegation := treesitter.FirstChildOfType(n, "constructor_delegation_call"); delegation != nil {
		text := k.text(delegation)
		if strings.HasPrefix(text, "this") {
			ctor.DelegatesTo = "this"
		} else if strings.HasPrefix(text, "super") {
			ctor.DelegatesTo = "super"
		}
	}
	return ctor
}

func (k *kotlinWalk) parseValueParameters(params *sitter.Node) []model.ParsedParameter {
	var out []model.ParsedParameter
	for i := 0; i < int(params.ChildCount()); i++ {
		p := params.Child(i)
		if p == nil || (p.Type() != "parameter" && p.Type() != "function_value_parameter") {
			continue
		}
		param := model.ParsedParameter{
			Name:        k.text(treesitter.ChildByFieldName(p, "name")),
			Type:        k.text(treesitter.ChildByFieldName(p, "type")),
			Annotations: k.annotations(p),
		}
		if def := treesitter.ChildByFieldName(p, "default_value"); def != nil {
			param.DefaultValue = k.text(def)
		}
		if k.hasModifierText(p, "crossinline") {
			param.IsCrossinline = true
		}
		if k.hasModifierText(p, "noinline") {
			param.IsNoinline = true
		}
		if ft := treesitter.FirstChildOfType(p, "function_type"); ft != nil {
			param.FunctionType = k.parseFunctionType(ft)
		}
		out = append(out, param)
	}
	return out
}

func (k *kotlinWalk) parseFunctionType(n *sitter.Node) *model.ParsedFunctionType {
	ft := &model.ParsedFunctionType{}
	if params := treesitter.FirstChildOfType(n, "function_type_parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			p := params.Child(i)
			if p != nil && p.Type() != "," {
				ft.ParameterTypes = append(ft.ParameterTypes, k.text(p))
			}
		}
	}
	if ret := treesitter.ChildByFieldName(n, "return_type"); ret != nil {
		ft.ReturnType = k.text(ret)
	}
	if recv := treesitter.FirstChildOfType(n, "receiver_type"); recv != nil {
		ft.ReceiverType = k.text(recv)
	}
	return ft
}

func (k *kotlinWalk) parseFunction(n *sitter.Node) model.ParsedFunction {
	name := treesitter.ChildByFieldName(n, "name")
	if name == nil {
		name = treesitter.FirstChildOfType(n, "simple_identifier")
	}

	fn := model.ParsedFunction{
		Name:           k.text(name),
		Visibility:     k.visibility(n),
		TypeParameters: k.typeParameters(n),
		Annotations:    k.annotations(n),
		Location:       k.loc(n),
	}

	if k.hasModifierText(n, "abstract") {
		fn.IsAbstract = true
	}
	if k.hasModifierText(n, "suspend") {
		fn.IsSuspend = true
	}
	if k.hasModifierText(n, "inline") {
		fn.IsInline = true
	}
	if k.hasModifierText(n, "infix") {
		fn.IsInfix = true
	}
	if k.hasModifierText(n, "operator") {
		fn.IsOperator = true
	}

	if recv := treesitter.ChildByFieldName(n, "receiver"); recv != nil {
		fn.IsExtension = true
		fn.ReceiverType = k.text(recv)
	}

	if params := treesitter.FirstChildOfType(n, "function_value_parameters"); params != nil {
		fn.Parameters = k.parseValueParameters(params)
	}
	if ret := treesitter.ChildByFieldName(n, "return_type"); ret != nil {
		fn.ReturnType = k.text(ret)
	} else if ret := treesitter.FirstChildOfType(n, "user_type"); ret != nil && treesitter.ChildByFieldName(n, "body") == nil {
		fn.ReturnType = k.text(ret)
	}

	body := treesitter.ChildByFieldName(n, "body")
	if body == nil {
		body = treesitter.FirstChildOfType(n, "function_body")
	}
	if body != nil {
		fn.Calls = k.collectCalls(body)
	} else {
		fn.IsAbstract = true
	}
	return fn
}

func (k *kotlinWalk) parseProperties(n *sitter.Node) []model.ParsedProperty {
	isVal := treesitter.FirstChildOfType(n, "val") != nil
	vis := k.visibility(n)
	anns := k.annotations(n)

	var initializer string
	if init := treesitter.ChildByFieldName(n, "value"); init != nil {
		initializer = k.text(init)
	}

	if multi := treesitter.FirstChildOfType(n, "multi_variable_declaration"); multi != nil {
		return nil // surfaced separately as a DestructuringDeclaration by the caller
	}

	decl := treesitter.FirstChildOfType(n, "variable_declaration")
	if decl == nil {
		return nil
	}
	name := treesitter.ChildByFieldName(decl, "name")
	typ := treesitter.ChildByFieldName(decl, "type")
	return []model.ParsedProperty{{
		Name:        k.text(name),
		Type:        k.text(typ),
		Visibility:  vis,
		IsVal:       isVal,
		Initializer: initializer,
		Annotations: anns,
		Location:    k.loc(n),
	}}
}

// tryParseDestructuring handles `val (a, b) = pair`. Per spec §9's open
// question, the tree-sitter-kotlin grammar does not expose the initializer
// through a `value`/`initializer` field here; it is recovered by walking
// the siblings that follow the `=` token instead.
func (k *kotlinWalk) tryParseDestructuring(n *sitter.Node) (model.ParsedDestructuringDeclaration, bool) {
	multi := treesitter.FirstChildOfType(n, "multi_variable_declaration")
	if multi == nil {
		return model.ParsedDestructuringDeclaration{}, false
	}

	d := model.ParsedDestructuringDeclaration{
		IsVal:      treesitter.FirstChildOfType(n, "val") != nil,
		Visibility: k.visibility(n),
		Location:   k.loc(n),
	}
	for i := 0; i < int(multi.ChildCount()); i++ {
		v := multi.Child(i)
		if v == nil || v.Type() != "variable_declaration" {
			continue
		}
		d.ComponentNames = append(d.ComponentNames, k.text(treesitter.ChildByFieldName(v, "name")))
		d.ComponentTypes = append(d.ComponentTypes, k.text(treesitter.ChildByFieldName(v, "type")))
	}

	seenEquals := false
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c == nil {
			continue
		}
		if c.Type() == "=" {
			seenEquals = true
			continue
		}
		if seenEquals {
			d.Initializer = k.text(c)
			break
		}
	}
	return d, true
}

func (k *kotlinWalk) parseTypeAlias(n *sitter.Node) model.ParsedTypeAlias {
	name := treesitter.ChildByFieldName(n, "name")
	if name == nil {
		name = treesitter.FirstChildOfType(n, "type_identifier")
	}
	aliased := treesitter.ChildByFieldName(n, "type")
	return model.ParsedTypeAlias{
		Name:           k.text(name),
		AliasedType:    k.text(aliased),
		Visibility:     k.visibility(n),
		TypeParameters: k.typeParameters(n),
		Location:       k.loc(n),
	}
}

// collectCalls walks a function body depth-first and emits one ParsedCall
// per call_expression node.
func (k *kotlinWalk) collectCalls(body *sitter.Node) []model.ParsedCall {
	var calls []model.ParsedCall
	treesitter.Walk(body, func(n *sitter.Node) bool {
		if n.Type() == "call_expression" {
			calls = append(calls, k.parseCallExpression(n))
		}
		return true
	})
	return calls
}

func (k *kotlinWalk) parseCallExpression(n *sitter.Node) model.ParsedCall {
	call := model.ParsedCall{Location: k.loc(n)}

	callee := treesitter.ChildByFieldName(n, "callee" /* navigation_expression or identifier */)
	if callee == nil {
		callee = n.Child(0)
	}

	switch {
	case callee != nil && callee.Type() == "navigation_expression":
		receiver := callee.Child(0)
		suffix := treesitter.FirstChildOfType(callee, "navigation_suffix")
		call.Receiver = k.text(receiver)
		if suffix != nil {
			call.Name = strings.TrimPrefix(k.text(suffix), ".")
			call.Name = strings.TrimPrefix(call.Name, "?.")
		}
		call.IsSafeCall = strings.Contains(k.text(callee), "?.")
	default:
		call.Name = k.text(callee)
	}

	call.IsConstructorCall = len(call.Name) > 0 && call.Name[0] >= 'A' && call.Name[0] <= 'Z' && call.Receiver == ""

	// A literal receiver (e.g. `"hi".shout()`) carries a statically known
	// type the call resolver's extension-function step (§4.8 step 10) needs.
	if call.Receiver != "" {
		if t := inferKotlinLiteralType(call.Receiver); t != "Any" {
			call.ReceiverType = t
		}
	}

	if args := treesitter.FirstChildOfType(n, "value_arguments"); args != nil {
		call.HasArgumentCount = true
		for i := 0; i < int(args.ChildCount()); i++ {
			arg := args.Child(i)
			if arg == nil || arg.Type() != "value_argument" {
				continue
			}
			call.ArgumentCount++
			call.ArgumentTypes = append(call.ArgumentTypes, inferKotlinLiteralType(k.text(arg)))
		}
	}
	return call
}

// inferKotlinLiteralType is the best-effort literal-shape inference from
// spec §4.3; unrecognized shapes are opaque ("Any").
func inferKotlinLiteralType(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return "Any"
	case text == "true" || text == "false":
		return "Boolean"
	case text == "null":
		return "null"
	case strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "`"):
		return "String"
	case strings.HasPrefix(text, "new "):
		return strings.TrimSpace(strings.Fields(strings.TrimPrefix(text, "new "))[0])
	case strings.Contains(text, ".") && isDigits(strings.ReplaceAll(text, ".", "")):
		return "Double"
	case isDigits(text):
		if strings.HasSuffix(text, "L") {
			return "Long"
		}
		return "Int"
	default:
		return "Any"
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			if r == 'L' {
				continue
			}
			return false
		}
	}
	return true
}
