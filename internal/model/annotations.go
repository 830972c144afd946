package model

// ParsedAnnotation is a decorator/annotation attached to a declaration.
// Arguments maps an argument key (or "arg0", "arg1", ... for positional
// arguments) to the textual form of the value. Object-literal arguments
// (TypeScript decorators called with `{key: value}`) are exploded into this
// map by key.
type ParsedAnnotation struct {
	Name      string
	Arguments map[string]string
}

// ParsedTypeParameter is a generic type parameter wherever one can appear:
// class, interface, function, constructor, or type alias.
type ParsedTypeParameter struct {
	Name     string
	Bounds   []string // upper bounds from the parameter's own declaration; Kotlin `where`-clause bounds are not collected
	Variance Variance
	Reified  bool // Kotlin `reified`; false for languages without the concept
}
