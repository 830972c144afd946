package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/resolve"
	"github.com/graphlang/codeindex/internal/stdlib"
)

func findCall(calls []resolve.ResolvedCall, name string) (resolve.ResolvedCall, bool) {
	for _, c := range calls {
		if c.Call.Name == name {
			return c, true
		}
	}
	return resolve.ResolvedCall{}, false
}

// Scenario A — Kotlin method resolution through an interface.
func TestRun_ScenarioA_InterfaceMethodResolution(t *testing.T) {
	repo := &model.ParsedFile{
		FilePath: "pkg/Repo.kt", Language: model.LangKotlin, PackageName: "pkg",
		Classes: []model.ParsedClass{{
			Name: "Repo", Kind: model.ClassKindInterface,
			Functions: []model.ParsedFunction{{
				Name: "save", Parameters: []model.ParsedParameter{{Name: "u", Type: "User"}}, ReturnType: "Long",
			}},
		}},
	}
	userRepo := &model.ParsedFile{
		FilePath: "pkg/UserRepo.kt", Language: model.LangKotlin, PackageName: "pkg",
		Classes: []model.ParsedClass{{
			Name: "UserRepo", Kind: model.ClassKindClass, Interfaces: []string{"Repo"},
			Functions: []model.ParsedFunction{{
				Name: "save", Parameters: []model.ParsedParameter{{Name: "u", Type: "User"}}, ReturnType: "Long",
			}},
		}},
	}
	svc := &model.ParsedFile{
		FilePath: "pkg/Svc.kt", Language: model.LangKotlin, PackageName: "pkg",
		Classes: []model.ParsedClass{{
			Name: "Svc", Kind: model.ClassKindClass,
			Properties: []model.ParsedProperty{{Name: "repo", Type: "Repo"}},
			Functions: []model.ParsedFunction{{
				Name: "doIt", Parameters: []model.ParsedParameter{{Name: "u", Type: "User"}},
				Calls: []model.ParsedCall{{Name: "save", Receiver: "repo"}},
			}},
		}},
	}

	result := resolve.Run([]*model.ParsedFile{repo, userRepo, svc}, stdlib.NewProviders())

	assert.Equal(t, []string{"pkg.Repo"}, result.SymbolTable.TypeHierarchy["pkg.UserRepo"])

	call, found := findCall(result.CallsByFile["pkg/Svc.kt"], "save")
	require.True(t, found)
	assert.False(t, call.IsUnresolved)
	assert.Equal(t, "pkg.Repo.save", call.FQN)
	assert.NotEqual(t, "pkg.UserRepo.save", call.FQN)
}

// Scenario B — Java overload resolution by arity.
func TestRun_ScenarioB_OverloadResolutionByArity(t *testing.T) {
	calc := &model.ParsedFile{
		FilePath: "pkg/Calc.java", Language: model.LangJava, PackageName: "pkg",
		Classes: []model.ParsedClass{{
			Name: "Calc", Kind: model.ClassKindClass,
			Functions: []model.ParsedFunction{
				{Name: "add", Parameters: []model.ParsedParameter{{Name: "a", Type: "int"}}, ReturnType: "int"},
				{Name: "add", Parameters: []model.ParsedParameter{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}, ReturnType: "int"},
				{Name: "use", ReturnType: "int", Calls: []model.ParsedCall{{
					Name: "add", HasArgumentCount: true, ArgumentCount: 2,
					ArgumentTypes: []string{"int", "int"},
				}}},
			},
		}},
	}

	result := resolve.Run([]*model.ParsedFile{calc}, stdlib.NewProviders())

	call, found := findCall(result.CallsByFile["pkg/Calc.java"], "add")
	require.True(t, found)
	assert.False(t, call.IsUnresolved)
	assert.Equal(t, "pkg.Calc.add", call.FQN)
	assert.Equal(t, []string{"int", "int"}, call.MatchedParameterTypes)
}

// Scenario C — TypeScript re-export chain.
func TestRun_ScenarioC_ReexportChain(t *testing.T) {
	userFile := &model.ParsedFile{
		FilePath: "src/models/User.ts", Language: model.LangTypeScript,
		Classes: []model.ParsedClass{{Name: "User", Kind: model.ClassKindClass}},
	}
	indexFile := &model.ParsedFile{
		FilePath: "src/models/index.ts", Language: model.LangTypeScript,
		Reexports: []model.ParsedReexport{{SourcePath: "./User", OriginalName: "User", ExportedName: "User"}},
	}
	appFile := &model.ParsedFile{
		FilePath: "src/app.ts", Language: model.LangTypeScript,
		Imports: []model.ParsedImport{{Path: "./models", Name: "User"}},
		TopLevelFunctions: []model.ParsedFunction{{
			Name: "main", Calls: []model.ParsedCall{{Name: "User", IsConstructorCall: true}},
		}},
	}

	index := resolve.BuildExportIndex([]*model.ParsedFile{userFile, indexFile, appFile})
	entry := index["src/models/index.ts"]["User"]
	assert.True(t, entry.IsReexport)

	importMaps := resolve.BuildImportMaps([]*model.ParsedFile{userFile, indexFile, appFile}, index)
	userFQN := "src/models/User.ts.User"
	assert.Equal(t, userFQN, importMaps["src/app.ts"]["User"])

	result := resolve.Run([]*model.ParsedFile{userFile, indexFile, appFile}, stdlib.NewProviders())
	call, found := findCall(result.CallsByFile["src/app.ts"], "User")
	require.True(t, found)
	assert.False(t, call.IsUnresolved)
	assert.True(t, call.IsConstruct)
	assert.Equal(t, userFQN, call.FQN)
}

// Scenario D — TypeScript ambient module augmentation.
func TestRun_ScenarioD_AmbientModuleAugmentation(t *testing.T) {
	express := &model.ParsedFile{
		FilePath: "types/express.d.ts", Language: model.LangTypeScript,
		Classes: []model.ParsedClass{{
			Name: "express", Kind: model.ClassKindInterface, IsAbstract: true,
			Annotations: []model.ParsedAnnotation{{Name: "ambient-module"}},
			NestedClasses: []model.ParsedClass{{
				Name: "Request", Kind: model.ClassKindInterface,
				Properties: []model.ParsedProperty{{Name: "user", Type: "string"}},
			}},
		}},
	}

	require.Len(t, express.Classes, 1)
	top := express.Classes[0]
	assert.Equal(t, "express", top.Name)
	assert.Equal(t, model.ClassKindInterface, top.Kind)
	require.Len(t, top.Annotations, 1)
	assert.Equal(t, "ambient-module", top.Annotations[0].Name)
	require.Len(t, top.NestedClasses, 1)
	nested := top.NestedClasses[0]
	assert.Equal(t, "Request", nested.Name)
	assert.Equal(t, model.ClassKindInterface, nested.Kind)
	require.Len(t, nested.Properties, 1)
	assert.Equal(t, "user", nested.Properties[0].Name)

	table := resolve.BuildSymbolTable([]*model.ParsedFile{express})
	assert.Contains(t, table.ByFQN, "types/express.d.ts.express")
	assert.Contains(t, table.ByFQN, "types/express.d.ts.express.Request")
}

// Scenario E — Kotlin extension function.
func TestRun_ScenarioE_ExtensionFunctionResolution(t *testing.T) {
	ext := &model.ParsedFile{
		FilePath: "pkg/Ext.kt", Language: model.LangKotlin, PackageName: "pkg",
		TopLevelFunctions: []model.ParsedFunction{
			{Name: "shout", IsExtension: true, ReceiverType: "String", ReturnType: "String"},
			{Name: "run", Calls: []model.ParsedCall{{Name: "shout", Receiver: "\"hi\"", ReceiverType: "String"}}},
		},
	}

	result := resolve.Run([]*model.ParsedFile{ext}, stdlib.NewProviders())
	call, found := findCall(result.CallsByFile["pkg/Ext.kt"], "shout")
	require.True(t, found)
	assert.False(t, call.IsUnresolved)
	assert.Equal(t, "pkg.shout", call.FQN)
}

// Scenario F — Java constructor vs method disambiguation.
func TestRun_ScenarioF_ConstructorVsMethodDisambiguation(t *testing.T) {
	pointFile := &model.ParsedFile{
		FilePath: "pkg/Point.java", Language: model.LangJava, PackageName: "pkg",
		Classes: []model.ParsedClass{{
			Name: "Point", Kind: model.ClassKindClass,
			SecondaryConstructors: []model.ParsedConstructor{{
				Parameters: []model.ParsedParameter{{Name: "x", Type: "int"}, {Name: "y", Type: "int"}},
			}},
		}},
	}
	appFile := &model.ParsedFile{
		FilePath: "pkg/App.java", Language: model.LangJava, PackageName: "pkg",
		Classes: []model.ParsedClass{{
			Name: "App", Kind: model.ClassKindClass,
			Functions: []model.ParsedFunction{{
				Name: "m",
				Calls: []model.ParsedCall{
					{Name: "Point", IsConstructorCall: true, HasArgumentCount: true, ArgumentCount: 2},
					{Name: "origin", Receiver: "Point"},
				},
			}},
		}},
	}

	result := resolve.Run([]*model.ParsedFile{pointFile, appFile}, stdlib.NewProviders())
	calls := result.CallsByFile["pkg/App.java"]

	ctor, found := findCall(calls, "Point")
	require.True(t, found)
	assert.False(t, ctor.IsUnresolved)
	assert.True(t, ctor.IsConstruct)
	assert.Equal(t, "pkg.Point", ctor.FQN)

	origin, found := findCall(calls, "origin")
	require.True(t, found)
	assert.True(t, origin.IsUnresolved)

	foundInUnresolved := false
	for _, u := range result.Unresolved {
		if u.Call.Name == "origin" {
			foundInUnresolved = true
		}
	}
	assert.True(t, foundInUnresolved)
}
