// Package filter decides whether a directory should be descended into and
// whether a file should be handed to a parser, from pattern rules alone.
// Both predicates are pure and perform no I/O so they can run in the hot
// scan loop ahead of any parsing work.
package filter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Options toggles the filter's optional behaviors.
type Options struct {
	IncludeDeclarationFiles bool // keep *.d.ts
	IncludeTestFiles        bool // keep *.test.*, *.spec.*, __tests__, etc.
	IncludeConfigFiles      bool // keep known config basenames/patterns
	ExcludePatterns         []string
}

// alwaysSkipDirs is the hard-coded set of directory basenames that are
// always pruned, regardless of options.
var alwaysSkipDirs = map[string]bool{
	"node_modules": true, ".git": true, "dist": true, "build": true,
	"out": true, "target": true, ".idea": true, ".vscode": true,
	".next": true, ".nuxt": true, ".angular": true, ".turbo": true,
	".vercel": true, ".output": true, ".svelte-kit": true, ".astro": true,
	"DerivedData": true, "Pods": true, ".xcbuild": true, "xcuserdata": true,
	".gradle": true, ".m2": true, "coverage": true, "__coverage__": true,
	".cache": true, ".tmp": true, ".temp": true, ".nx": true, ".pnpm": true,
	"__pycache__": true, ".venv": true, "venv": true, ".tox": true,
}

// configBasenames is the exact list of bundler/linter/formatter/test-runner/
// package-manager config files rejected by basename.
var configBasenames = map[string]bool{
	"webpack.config.js": true, "webpack.config.ts": true,
	"rollup.config.js": true, "rollup.config.ts": true,
	"vite.config.js": true, "vite.config.ts": true,
	"jest.config.js": true, "jest.config.ts": true,
	"babel.config.js": true, ".babelrc": true, ".babelrc.js": true,
	".eslintrc.js": true, ".eslintrc.json": true, ".eslintrc": true,
	".prettierrc": true, ".prettierrc.js": true, ".prettierrc.json": true,
	"tsconfig.json": true, "jsconfig.json": true,
	"package.json": true, "package-lock.json": true, "yarn.lock": true,
	"pnpm-lock.yaml": true, "tslint.json": true,
	"karma.conf.js": true, "gulpfile.js": true, "gruntfile.js": true,
	".npmrc": true, ".yarnrc": true,
}

// configGlobPatterns are matched with doublestar against the basename.
var configGlobPatterns = []string{
	"*.config.ts", "*.config.js", "*.config.mjs", "*.config.cjs",
	"*.setup.ts", "*.setup.js", "*.setup.mjs", "*.setup.cjs",
	"*.min.js", "*.min.css",
	"*.bundle.js", "*.chunk.js",
	"*.generated.ts", "*.generated.js",
	"*.g.dart",
	"*-lock.json",
}

var testGlobPatterns = []string{
	"*.test.*", "*.spec.*", "*Test.kt", "*Test.java",
}

var testDirSegments = map[string]bool{
	"__tests__": true, "test": true, "tests": true,
	"androidTest": true, "androidTestDebug": true, "UITests": true,
}

// ShouldScanDirectory reports whether a directory should be descended into.
// dirName is the directory's basename; fullPath (optional, may be empty) is
// its normalized path from the scan root, used for context-sensitive rules.
func ShouldScanDirectory(dirName string, fullPath string) bool {
	if alwaysSkipDirs[dirName] {
		return false
	}

	norm := normalize(fullPath)
	segments := strings.Split(norm, "/")
	for i, seg := range segments {
		if seg != "public" {
			continue
		}
		for j := 0; j < i; j++ {
			if segments[j] == "ios" || segments[j] == "android" {
				return false
			}
		}
	}
	if containsSegment(norm, ".angular") {
		return false
	}
	return true
}

// ShouldParseFile reports whether a file should be read and parsed.
func ShouldParseFile(filePath string, opts Options) bool {
	norm := normalize(filePath)
	segments := strings.Split(norm, "/")

	for _, seg := range segments[:max(0, len(segments)-1)] {
		if alwaysSkipDirs[seg] {
			return false
		}
	}

	base := segments[len(segments)-1]

	if !opts.IncludeConfigFiles {
		if configBasenames[base] {
			return false
		}
		for _, pat := range configGlobPatterns {
			if matched, _ := doublestar.Match(pat, base); matched {
				return false
			}
		}
	}

	if isDeclarationFile(base) && !opts.IncludeDeclarationFiles {
		return false
	}

	if !opts.IncludeTestFiles {
		for _, pat := range testGlobPatterns {
			if matched, _ := doublestar.Match(pat, base); matched {
				return false
			}
		}
		for _, seg := range segments[:max(0, len(segments)-1)] {
			if testDirSegments[seg] {
				return false
			}
		}
	}

	for _, pat := range opts.ExcludePatterns {
		if matched, _ := doublestar.Match(pat, norm); matched {
			return false
		}
		if matched, _ := doublestar.Match(pat, base); matched {
			return false
		}
	}

	return true
}

func isDeclarationFile(base string) bool {
	for _, suf := range []string{".d.ts", ".d.mts", ".d.cts"} {
		if strings.HasSuffix(base, suf) {
			return true
		}
	}
	return false
}

func containsSegment(normalizedPath, segment string) bool {
	for _, seg := range strings.Split(normalizedPath, "/") {
		if seg == segment {
			return true
		}
	}
	return false
}

// normalize forces forward slashes so the predicates commute with path
// normalization regardless of host OS, per the filter-idempotence law.
func normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
