package live_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/live"
	"go.trai.ch/retrial/internal/core/domain"
)

func TestParseArtifactName(t *testing.T) {
	tests := []struct {
		base                      string
		name, version, classifier string
		ok                        bool
	}{
		{base: "guava-31.1-jre.jar", name: "guava", version: "31.1-jre", ok: true},
		{base: "commons-lang3-3.14.0.jar", name: "commons-lang3", version: "3.14.0", ok: true},
		{base: "lib-1.0.0-sources.jar", name: "lib", version: "1.0.0", classifier: "sources", ok: true},
		{base: "tool-2.1.tar.gz", name: "tool", version: "2.1", ok: true},
		{base: "README", ok: false},
		{base: "no-version.jar", ok: false},
		{base: "-1.0.jar", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			name, version, classifier, ok := live.ParseArtifactName(tt.base)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.classifier, classifier)
		})
	}
}

func TestDirSource_Get(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a-1.0.jar"), "a")
	writeFile(t, filepath.Join(dir, "nested", "b-2.0-tests.jar"), "b")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored by pattern")
	writeFile(t, filepath.Join(dir, ".git", "c-3.0.jar"), "skipped")

	deps, err := live.NewDirSource(dir, "*.jar", "vendored").Get(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []domain.LiveDependency{
		{Key: domain.NewDependencyKey("vendored", "a", "1.0", ""), File: filepath.Join(dir, "a-1.0.jar")},
		{Key: domain.NewDependencyKey("vendored", "b", "2.0", "tests"), File: filepath.Join(dir, "nested", "b-2.0-tests.jar")},
	}, deps)
}

func TestDirSource_DefaultGroup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a-1.0.jar"), "a")

	deps, err := live.NewDirSource(dir, "", "").Get(t.Context())
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "local:a:1.0", deps[0].Key.String())
}

func TestDirSource_DefaultPatternSelectsJars(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib-1.0.jar"), "jar")
	writeFile(t, filepath.Join(dir, "lib-1.0.pom"), "pom")

	deps, err := live.NewDirSource(dir, "", "").Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.LiveDependency{
		{Key: domain.NewDependencyKey("local", "lib", "1.0", ""), File: filepath.Join(dir, "lib-1.0.jar")},
	}, deps)
}

func TestDirSource_GroupWithSeparator(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib-1.0.jar"), "jar")

	deps, err := live.NewDirSource(dir, "", "com.example:vendored").Get(t.Context())
	require.ErrorContains(t, err, domain.ErrInvalidDependencyKey.Error())
	assert.Nil(t, deps)
}

func TestDirSource_Errors(t *testing.T) {
	t.Run("unparseable name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "README"), "x")

		_, err := live.NewDirSource(dir, "*", "").Get(t.Context())
		require.ErrorContains(t, err, domain.ErrArtifactNameUnparseable.Error())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := live.NewDirSource(filepath.Join(t.TempDir(), "nope"), "", "").Get(t.Context())
		require.ErrorContains(t, err, domain.ErrArtifactDirReadFailed.Error())
	})

	t.Run("empty directory", func(t *testing.T) {
		deps, err := live.NewDirSource(t.TempDir(), "", "").Get(t.Context())
		require.NoError(t, err)
		assert.Empty(t, deps)
	})
}
