package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/codeindex/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("CODEINDEX_SCAN_ROOTPATH")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Scan.RootPath)
	assert.True(t, cfg.Scan.ExcludeTests)
	assert.False(t, cfg.Scan.IncludeDeclarationFiles)
	assert.Equal(t, 2048, cfg.Indexer.ParseCacheCap)
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("CODEINDEX_SCAN_ROOTPATH", "/tmp/repo")
	defer os.Unsetenv("CODEINDEX_SCAN_ROOTPATH")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/repo", cfg.Scan.RootPath)
}

func TestValidate_RejectsEmptyRootPath(t *testing.T) {
	cfg := &config.Config{}
	assert.Error(t, cfg.Validate())
}
