package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/codeindex/internal/extract"
	"github.com/graphlang/codeindex/internal/model"
	"github.com/graphlang/codeindex/internal/treesitter"
)

func TestKotlinExtractor_ClassWithPrimaryConstructorAndInterface(t *testing.T) {
	src := []byte(`package pkg

interface Repo { fun save(u: User): Long }

class UserRepo(val id: String) : Repo {
    override fun save(u: User): Long = 1L
}
`)
	e := extract.NewKotlinExtractor(treesitter.NewParsers())
	pf, err := e.Parse(src, "pkg/UserRepo.kt")
	require.NoError(t, err)
	assert.Equal(t, "pkg", pf.PackageName)
	require.Len(t, pf.Classes, 2)

	repo := pf.Classes[0]
	assert.Equal(t, "Repo", repo.Name)
	assert.Equal(t, model.ClassKindInterface, repo.Kind)

	userRepo := pf.Classes[1]
	assert.Equal(t, "UserRepo", userRepo.Name)
	assert.Equal(t, "Repo", userRepo.SuperClass)
	require.Len(t, userRepo.Properties, 1)
	assert.Equal(t, "id", userRepo.Properties[0].Name)
	require.Len(t, userRepo.Functions, 1)
	assert.Equal(t, "save", userRepo.Functions[0].Name)
}

func TestKotlinExtractor_ExtensionFunction(t *testing.T) {
	src := []byte(`package pkg

fun String.shout(): String = this.uppercase() + "!"
fun run() { "hi".shout() }
`)
	e := extract.NewKotlinExtractor(treesitter.NewParsers())
	pf, err := e.Parse(src, "pkg/Ext.kt")
	require.NoError(t, err)
	require.Len(t, pf.TopLevelFunctions, 2)

	shout := pf.TopLevelFunctions[0]
	assert.Equal(t, "shout", shout.Name)
	assert.True(t, shout.IsExtension)
	assert.Equal(t, "String", shout.ReceiverType)

	run := pf.TopLevelFunctions[1]
	require.Len(t, run.Calls, 1)
	assert.Equal(t, "shout", run.Calls[0].Name)
}

func TestJavaExtractor_OverloadsAndMultiDeclaratorField(t *testing.T) {
	src := []byte(`package pkg;

public class Calc {
    int a, b = 5, c;
    int add(int a){return a;}
    int add(int a,int b){return a+b;}
    int use(){ return add(1,2); }
}
`)
	e := extract.NewJavaExtractor(treesitter.NewParsers())
	pf, err := e.Parse(src, "pkg/Calc.java")
	require.NoError(t, err)
	assert.Equal(t, "pkg", pf.PackageName)
	require.Len(t, pf.Classes, 1)

	cls := pf.Classes[0]
	require.Len(t, cls.Properties, 3)
	assert.Equal(t, "a", cls.Properties[0].Name)
	assert.Equal(t, "b", cls.Properties[1].Name)
	assert.Equal(t, "5", cls.Properties[1].Initializer)
	assert.Equal(t, "c", cls.Properties[2].Name)

	require.Len(t, cls.Functions, 3)
	use := cls.Functions[2]
	require.Len(t, use.Calls, 1)
	assert.Equal(t, "add", use.Calls[0].Name)
	assert.Equal(t, 2, use.Calls[0].ArgumentCount)
}

func TestJavaExtractor_ConstructorVsMethodCall(t *testing.T) {
	src := []byte(`package pkg;

class Point { Point(int x, int y){} }
class App { void m() { new Point(1,2); Point.origin(); } }
`)
	e := extract.NewJavaExtractor(treesitter.NewParsers())
	pf, err := e.Parse(src, "pkg/App.java")
	require.NoError(t, err)
	require.Len(t, pf.Classes, 2)

	app := pf.Classes[1]
	require.Len(t, app.Functions, 1)
	calls := app.Functions[0].Calls
	require.Len(t, calls, 2)
	assert.True(t, calls[0].IsConstructorCall)
	assert.Equal(t, "Point", calls[0].Name)
	assert.False(t, calls[1].IsConstructorCall)
	assert.Equal(t, "Point", calls[1].Receiver)
	assert.Equal(t, "origin", calls[1].Name)
}

func TestTypeScriptExtractor_ReexportChain(t *testing.T) {
	src := []byte(`export { User } from './User';`)
	e := extract.NewTypeScriptExtractor(treesitter.NewParsers())
	pf, err := e.Parse(src, "src/models/index.ts")
	require.NoError(t, err)
	require.Len(t, pf.Reexports, 1)
	assert.Equal(t, "./User", pf.Reexports[0].SourcePath)
	assert.Equal(t, "User", pf.Reexports[0].OriginalName)
}

func TestTypeScriptExtractor_AmbientModuleAugmentation(t *testing.T) {
	src := []byte(`declare module 'express' {
  interface Request { user?: string }
}
`)
	e := extract.NewTypeScriptExtractor(treesitter.NewParsers())
	pf, err := e.Parse(src, "types/express.d.ts")
	require.NoError(t, err)
	require.Len(t, pf.Classes, 1)

	express := pf.Classes[0]
	assert.Equal(t, "express", express.Name)
	assert.Equal(t, model.ClassKindInterface, express.Kind)
	require.Len(t, express.Annotations, 1)
	assert.Equal(t, "ambient-module", express.Annotations[0].Name)

	require.Len(t, express.NestedClasses, 1)
	req := express.NestedClasses[0]
	assert.Equal(t, "Request", req.Name)
	require.Len(t, req.Properties, 1)
	assert.Equal(t, "user", req.Properties[0].Name)
}

func TestJavaScriptExtractor_StampsJavaScriptLanguage(t *testing.T) {
	src := []byte(`function hello() { return 1; }`)
	e := extract.NewJavaScriptExtractor(treesitter.NewParsers())
	pf, err := e.Parse(src, "src/hello.js")
	require.NoError(t, err)
	assert.Equal(t, model.LangJavaScript, pf.Language)
	require.Len(t, pf.TopLevelFunctions, 1)
	assert.Equal(t, "hello", pf.TopLevelFunctions[0].Name)
}
