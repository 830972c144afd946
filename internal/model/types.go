package model

// ParsedProperty is a field / property declaration. IsVal marks it immutable
// (final, readonly, const — whatever the language's spelling is).
type ParsedProperty struct {
	Name        string
	Type        string
	Visibility  Visibility
	IsVal       bool
	Initializer string
	Annotations []ParsedAnnotation
	Location    SourceLocation
}

// ParsedMappedType is a structured view of a TypeScript mapped type,
// `{ [K in C]: V }`. Optional: a minimal extractor may leave it unset on the
// owning ParsedTypeAlias and rely on the raw aliased-type text instead.
type ParsedMappedType struct {
	KeyName      string
	Constraint   string // the `C` in `[K in C]`
	ValueType    string
	IsReadonly   bool
	IsOptional   bool
}

// ParsedConditionalType is a structured view of a TypeScript conditional
// type, `T extends U ? X : Y`.
type ParsedConditionalType struct {
	CheckType   string
	ExtendsType string
	TrueType    string
	FalseType   string
}

// ParsedTypeAlias is a `type X = ...` declaration.
type ParsedTypeAlias struct {
	Name            string
	AliasedType     string
	Visibility      Visibility
	TypeParameters  []ParsedTypeParameter
	MappedType      *ParsedMappedType
	ConditionalType *ParsedConditionalType
	Location        SourceLocation
}

// ParsedDestructuringDeclaration is a Kotlin `val (a, b) = pair`-style
// declaration.
type ParsedDestructuringDeclaration struct {
	ComponentNames []string
	ComponentTypes []string
	Initializer    string
	Visibility     Visibility
	IsVal          bool
	Location       SourceLocation
}

// ParsedObjectExpression is an anonymous object literal or class expression
// used as a value, kept for dependency tracking even though it never gets a
// top-level FQN of its own.
type ParsedObjectExpression struct {
	SuperTypes []string
	Properties []ParsedProperty
	Functions  []ParsedFunction
	Location   SourceLocation
}

// ParsedClass is a class, interface, object, enum, or annotation type.
//
// Records map to Kind=class, IsData=true with record components becoming
// IsVal properties. Ambient TypeScript modules map to Kind=interface with an
// "ambient-module" or "global" annotation; namespaces map to Kind=object.
type ParsedClass struct {
	Name                string
	Kind                ClassKind
	Visibility          Visibility
	IsAbstract          bool
	IsData              bool
	IsSealed            bool
	PermittedSubclasses []string
	SuperClass          string
	Interfaces          []string
	TypeParameters      []ParsedTypeParameter
	Annotations         []ParsedAnnotation
	Properties          []ParsedProperty
	Functions           []ParsedFunction
	NestedClasses       []ParsedClass
	CompanionObject     *ParsedClass
	SecondaryConstructors []ParsedConstructor
	Location            SourceLocation
}
