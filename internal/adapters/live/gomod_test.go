package live_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/live"
	"go.trai.ch/retrial/internal/core/domain"
)

const testGoMod = `module example.com/app

go 1.25

require (
	github.com/BurntSushi/toml v1.5.0
	github.com/spf13/cobra v1.10.2
	golang.org/x/sync v0.19.0 // indirect
	rsc.io/quote v1.5.2
	example.com/local v0.0.0
)

replace rsc.io/quote v1.5.2 => rsc.io/quote v1.5.1

replace example.com/local => ../local
`

func TestGoModSource_Get(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(dir, "modcache")
	goMod := filepath.Join(dir, "go.mod")
	writeFile(t, goMod, testGoMod)

	deps, err := live.NewGoModSource(goMod, cache).Get(t.Context())
	require.NoError(t, err)

	download := filepath.Join(cache, "cache", "download")
	assert.Equal(t, []domain.LiveDependency{
		{
			Key:  domain.NewDependencyKey("github.com/BurntSushi", "toml", "v1.5.0", ""),
			File: filepath.Join(download, "github.com", "!burnt!sushi", "toml", "@v", "v1.5.0.zip"),
		},
		{
			Key:  domain.NewDependencyKey("github.com/spf13", "cobra", "v1.10.2", ""),
			File: filepath.Join(download, "github.com", "spf13", "cobra", "@v", "v1.10.2.zip"),
		},
		{
			Key:  domain.NewDependencyKey("golang.org/x", "sync", "v0.19.0", ""),
			File: filepath.Join(download, "golang.org", "x", "sync", "@v", "v0.19.0.zip"),
		},
		{
			Key:  domain.NewDependencyKey("rsc.io", "quote", "v1.5.1", ""),
			File: filepath.Join(download, "rsc.io", "quote", "@v", "v1.5.1.zip"),
		},
	}, deps)
}

func TestGoModSource_DefaultCache(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOMODCACHE", filepath.Join(dir, "gomodcache"))
	goMod := filepath.Join(dir, "go.mod")
	writeFile(t, goMod, "module example.com/app\n\nrequire rsc.io/sampler v1.3.0\n")

	deps, err := live.NewGoModSource(goMod, "").Get(t.Context())
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, filepath.Join(dir, "gomodcache", "cache", "download", "rsc.io", "sampler", "@v", "v1.3.0.zip"), deps[0].File)
	assert.Equal(t, "rsc.io:sampler:v1.3.0", deps[0].Key.String())
}

func TestGoModSource_Errors(t *testing.T) {
	t.Run("missing go.mod", func(t *testing.T) {
		_, err := live.NewGoModSource(filepath.Join(t.TempDir(), "go.mod"), "").Get(t.Context())
		require.ErrorContains(t, err, domain.ErrModuleFileReadFailed.Error())
	})

	t.Run("invalid go.mod", func(t *testing.T) {
		goMod := filepath.Join(t.TempDir(), "go.mod")
		writeFile(t, goMod, "module\nrequire (\n")

		_, err := live.NewGoModSource(goMod, "").Get(t.Context())
		require.ErrorContains(t, err, domain.ErrModuleFileParseFailed.Error())
	})
}
