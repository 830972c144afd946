package stdlib

import "github.com/graphlang/codeindex/internal/model"

// javaClasses are the stdlib classes preloaded per spec §4.4: UUID,
// LocalDate, Optional, Collections, CompletableFuture, BigDecimal,
// Pattern, Files, Paths, plus the everyday java.lang surface so
// unqualified String/Object/Integer references resolve without an
// explicit import.
var javaClasses = []string{
	"java.lang.String", "java.lang.Object", "java.lang.Integer", "java.lang.Long",
	"java.lang.Double", "java.lang.Boolean", "java.lang.Math", "java.lang.System",
	"java.util.UUID", "java.time.LocalDate", "java.time.LocalDateTime",
	"java.util.Optional", "java.util.Collections", "java.util.List", "java.util.Map",
	"java.util.concurrent.CompletableFuture", "java.math.BigDecimal",
	"java.util.regex.Pattern", "java.nio.file.Files", "java.nio.file.Paths",
}

var javaStaticMethods = map[string][]string{
	"UUID.randomUUID":                   nil,
	"UUID.fromString":                   {"String"},
	"LocalDate.now":                     nil,
	"LocalDate.of":                      {"int", "int", "int"},
	"Optional.of":                       {"Object"},
	"Optional.empty":                    nil,
	"Optional.ofNullable":               {"Object"},
	"Collections.emptyList":             nil,
	"Collections.singletonList":         {"Object"},
	"Collections.unmodifiableList":      {"List"},
	"CompletableFuture.completedFuture": {"Object"},
	"CompletableFuture.supplyAsync":     {"Supplier"},
	"BigDecimal.valueOf":                {"double"},
	"Pattern.compile":                   {"String"},
	"Pattern.matches":                   {"String", "CharSequence"},
	"Files.readAllLines":                {"Path"},
	"Files.exists":                      {"Path"},
	"Paths.get":                         {"String"},
	"String.valueOf":                   {"Object"},
	"String.format":                    {"String", "Object..."},
	"Integer.parseInt":                 {"String"},
	"Integer.valueOf":                  {"String"},
	"Math.max":                         {"int", "int"},
	"Math.min":                         {"int", "int"},
	"System.currentTimeMillis":         nil,
}

// NewJavaProvider builds the Java/Kotlin-interop stdlib provider. It is
// also registered for Kotlin per spec §4.4, since `java.lang.*` is an
// implicit wildcard import shared by both JVM languages.
func NewJavaProvider() Provider {
	p := &staticProvider{
		languages:       []model.Language{model.LangJava, model.LangKotlin},
		wildcardImports: []string{"java.lang"},
		classes:         map[string]*model.Symbol{},
		functions:       map[string]*model.Symbol{},
		staticMethods:   map[string]*model.FunctionSymbol{},
		builtinTypes:    map[string]bool{},
	}

	for _, fqn := range javaClasses {
		simple := simpleName(fqn)
		sym := classSymbol(fqn, simple)
		p.classes[simple] = sym
		p.classes[fqn] = sym
		p.builtinTypes[simple] = true
	}

	for key, params := range javaStaticMethods {
		cls := key[:indexDot(key)]
		method := key[indexDot(key)+1:]
		p.staticMethods[key] = staticMethod(cls, method, params...)
	}

	return p
}

func simpleName(fqn string) string {
	for i := len(fqn) - 1; i >= 0; i-- {
		if fqn[i] == '.' {
			return fqn[i+1:]
		}
	}
	return fqn
}

func indexDot(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}
