package model

// SymbolKind tags which Symbol variant a given entry is.
type SymbolKind string

const (
	SymbolKindClass     SymbolKind = "class"
	SymbolKindFunction  SymbolKind = "function"
	SymbolKindProperty  SymbolKind = "property"
	SymbolKindTypeAlias SymbolKind = "type_alias"
)

// Symbol is a tagged record for any declaration indexed by FQN. Exactly one
// of the *Data fields is meaningful, selected by Kind — this mirrors the
// spec's tagged-variant Symbol while staying a single allocatable struct,
// which keeps the symbol table's five indexes free of per-kind type
// assertions in the hot resolution path.
type Symbol struct {
	Name        string
	FQN         string
	FilePath    string
	Location    SourceLocation
	PackageName string
	Kind        SymbolKind

	Class     *ClassSymbol
	Function  *FunctionSymbol
	Property  *PropertySymbol
	TypeAlias *TypeAliasSymbol
}

// ClassSymbol is the class/interface/object/enum/annotation variant.
type ClassSymbol struct {
	ClassKind  ClassKind
	SuperClass string
	Interfaces []string
	IsAbstract bool
}

// FunctionSymbol is the function/method variant, carrying enough signature
// information for overload resolution and extension-function matching.
type FunctionSymbol struct {
	DeclaringTypeFQN string // empty for a top-level/package function
	ParameterTypes   []string
	ReturnType       string
	IsExtension      bool
	ReceiverType     string
	IsSuspend        bool
	IsInline         bool
	IsOperator       bool
}

// PropertySymbol is the field/property variant.
type PropertySymbol struct {
	Type  string
	IsVal bool
}

// TypeAliasSymbol is the type-alias variant.
type TypeAliasSymbol struct {
	AliasedType string
}

// SymbolTable is the five-index, read-only-after-build structure the
// resolver consumes. All five indexes share the same underlying *Symbol
// values — a Symbol indexed in byName is the identical pointer stored in
// byFqn.
type SymbolTable struct {
	ByFQN           map[string]*Symbol
	ByName          map[string][]*Symbol
	FunctionsByName map[string][]*FunctionSymbol
	ByPackage       map[string][]*Symbol
	// TypeHierarchy maps a class/interface FQN to its direct parents, in
	// declaration order: superclass first (if any), then interfaces.
	// Unresolvable parents are stored as their raw text.
	TypeHierarchy map[string][]string

	// functionOwners lets the call resolver recover which Symbol a
	// FunctionSymbol came from, since FunctionsByName stores the lighter
	// variant type directly (spec: "functionsByName: name -> FunctionSymbol[]").
	functionOwners map[*FunctionSymbol]*Symbol
}

// NewSymbolTable returns an empty, ready-to-populate table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		ByFQN:           make(map[string]*Symbol),
		ByName:          make(map[string][]*Symbol),
		FunctionsByName: make(map[string][]*FunctionSymbol),
		ByPackage:       make(map[string][]*Symbol),
		TypeHierarchy:   make(map[string][]string),
		functionOwners:  make(map[*FunctionSymbol]*Symbol),
	}
}

// Add indexes sym under byFqn, byName, and byPackage, and additionally under
// functionsByName if it is a function. Re-adding the same FQN overwrites the
// prior entry's byFqn slot but does not deduplicate byName/byPackage — the
// builder is responsible for calling Add exactly once per declaration.
func (t *SymbolTable) Add(sym *Symbol) {
	t.ByFQN[sym.FQN] = sym
	t.ByName[sym.Name] = append(t.ByName[sym.Name], sym)
	t.ByPackage[sym.PackageName] = append(t.ByPackage[sym.PackageName], sym)

	if sym.Kind == SymbolKindFunction && sym.Function != nil {
		t.FunctionsByName[sym.Name] = append(t.FunctionsByName[sym.Name], sym.Function)
		t.functionOwners[sym.Function] = sym
	}
}

// OwnerOf returns the Symbol a FunctionSymbol was registered under, or nil
// if fn was never added through Add (e.g. a synthetic stdlib symbol).
func (t *SymbolTable) OwnerOf(fn *FunctionSymbol) *Symbol {
	return t.functionOwners[fn]
}

// AppendParent records a direct parent FQN (or raw, unresolved text) for a
// child type, preserving insertion order.
func (t *SymbolTable) AppendParent(childFQN, parentFQNOrRaw string) {
	t.TypeHierarchy[childFQN] = append(t.TypeHierarchy[childFQN], parentFQNOrRaw)
}
