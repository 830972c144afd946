package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphlang/codeindex/internal/config"
	"github.com/graphlang/codeindex/internal/extract"
	"github.com/graphlang/codeindex/internal/indexlog"
	"github.com/graphlang/codeindex/internal/pipeline"
	"github.com/graphlang/codeindex/internal/registry"
	"github.com/graphlang/codeindex/internal/stdlib"
)

// TestRun_EndToEnd mirrors the teacher's own integration style (real files
// on disk, a real parse pass) but drives this indexer's full pipeline:
// scan -> parse -> resolve -> graph batch, with no sink so the batch comes
// back for inspection instead of landing in Postgres.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Repo.kt"), []byte(`package pkg

interface Repo { fun save(u: String): Long }
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "UserRepo.kt"), []byte(`package pkg

class UserRepo : Repo {
    override fun save(u: String): Long = 1L
}

class Svc {
    val repo: Repo = UserRepo()
    fun run() {
        repo.save("x")
    }
}
`), 0o644))

	reg := registry.New()
	extract.RegisterBuiltins(reg)
	providers := stdlib.NewProviders()
	log := indexlog.NewSilent()

	cfg := &config.Config{
		Scan:    config.ScanConfig{RootPath: dir},
		Indexer: config.IndexerConfig{WorkerCount: 2, ParseCacheCap: 128},
	}

	stats, batch, err := pipeline.Run(context.Background(), cfg, log, reg, providers, nil)
	require.NoError(t, err)
	require.NotNil(t, batch)

	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 2, stats.FilesParsed)
	assert.Equal(t, 0, stats.FilesFailed)
	assert.Greater(t, stats.TotalCalls, 0)
	assert.Greater(t, stats.ResolvedCalls, 0)
	assert.Equal(t, stats.Nodes, len(batch.Nodes))
	assert.Equal(t, stats.Edges, len(batch.Edges))

	var foundSaveCall bool
	for _, e := range batch.Edges {
		if e.FromFQN == "pkg.Svc.run" && e.ToFQN == "pkg.Repo.save" {
			foundSaveCall = true
		}
	}
	assert.True(t, foundSaveCall, "expected a CALLS edge from pkg.Svc.run to pkg.Repo.save (interface method, not UserRepo.save)")
}

func TestRun_RepeatedRunIsStable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.kt"), []byte("package pkg\nclass A\n"), 0o644))

	reg := registry.New()
	extract.RegisterBuiltins(reg)
	providers := stdlib.NewProviders()
	log := indexlog.NewSilent()
	cfg := &config.Config{
		Scan:    config.ScanConfig{RootPath: dir},
		Indexer: config.IndexerConfig{WorkerCount: 1, ParseCacheCap: 16},
	}

	stats1, _, err := pipeline.Run(context.Background(), cfg, log, reg, providers, nil)
	require.NoError(t, err)
	stats2, _, err := pipeline.Run(context.Background(), cfg, log, reg, providers, nil)
	require.NoError(t, err)

	assert.Equal(t, stats1.FilesParsed, stats2.FilesParsed)
}
