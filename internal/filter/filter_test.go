package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphlang/codeindex/internal/filter"
)

func TestShouldScanDirectory_SkipsHardcodedDirs(t *testing.T) {
	for _, dir := range []string{"node_modules", ".git", "dist", "build", "target", ".gradle"} {
		assert.False(t, filter.ShouldScanDirectory(dir, "project/"+dir), dir)
	}
	assert.True(t, filter.ShouldScanDirectory("src", "project/src"))
}

func TestShouldScanDirectory_PublicUnderMobilePlatform(t *testing.T) {
	assert.False(t, filter.ShouldScanDirectory("public", "app/ios/public"))
	assert.False(t, filter.ShouldScanDirectory("public", "app/android/public"))
	assert.True(t, filter.ShouldScanDirectory("public", "app/web/public"))
}

func TestShouldScanDirectory_Angular(t *testing.T) {
	assert.False(t, filter.ShouldScanDirectory("cache", "project/.angular/cache"))
}

func TestShouldParseFile_RejectsVendoredSubtree(t *testing.T) {
	opts := filter.Options{}
	assert.False(t, filter.ShouldParseFile("project/node_modules/lib/index.ts", opts))
	assert.False(t, filter.ShouldParseFile("project/dist/bundle.js", opts))
}

func TestShouldParseFile_RejectsConfigFiles(t *testing.T) {
	opts := filter.Options{}
	assert.False(t, filter.ShouldParseFile("webpack.config.js", opts))
	assert.False(t, filter.ShouldParseFile("jest.config.ts", opts))
	assert.False(t, filter.ShouldParseFile("vite.config.mjs", opts))
	assert.False(t, filter.ShouldParseFile("styles.min.js", opts))
}

func TestShouldParseFile_DeclarationFilesToggle(t *testing.T) {
	assert.False(t, filter.ShouldParseFile("types/index.d.ts", filter.Options{}))
	assert.True(t, filter.ShouldParseFile("types/index.d.ts", filter.Options{IncludeDeclarationFiles: true}))
}

func TestShouldParseFile_TestFilesToggle(t *testing.T) {
	assert.False(t, filter.ShouldParseFile("src/foo.test.ts", filter.Options{}))
	assert.False(t, filter.ShouldParseFile("src/__tests__/foo.ts", filter.Options{}))
	assert.False(t, filter.ShouldParseFile("pkg/FooTest.java", filter.Options{}))
	assert.True(t, filter.ShouldParseFile("src/foo.test.ts", filter.Options{IncludeTestFiles: true}))
}

func TestShouldParseFile_AcceptsOrdinarySourceFiles(t *testing.T) {
	opts := filter.Options{}
	for _, p := range []string{
		"src/app.ts", "src/App.tsx", "lib/util.js", "lib/util.jsx",
		"cjs/index.cjs", "esm/index.mjs",
		"app/src/main/kotlin/Repo.kt", "app/Main.java",
	} {
		assert.True(t, filter.ShouldParseFile(p, opts), p)
	}
}

func TestShouldParseFile_CustomExcludePattern(t *testing.T) {
	opts := filter.Options{ExcludePatterns: []string{"**/legacy/**"}}
	assert.False(t, filter.ShouldParseFile("src/legacy/old.ts", opts))
	assert.True(t, filter.ShouldParseFile("src/modern/new.ts", opts))
}

func TestShouldParseFile_IdempotentUnderNormalization(t *testing.T) {
	opts := filter.Options{}
	unix := filter.ShouldParseFile("src/app.ts", opts)
	windows := filter.ShouldParseFile(`src\app.ts`, opts)
	assert.Equal(t, unix, windows)
}
