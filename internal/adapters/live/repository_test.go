package live_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/live"
	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRepository_Get_Merges(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockLiveDependenciesRepository(ctrl)
	second := mocks.NewMockLiveDependenciesRepository(ctrl)

	a := domain.LiveDependency{Key: domain.NewDependencyKey("g", "a", "1", ""), File: "/a.jar"}
	b := domain.LiveDependency{Key: domain.NewDependencyKey("g", "b", "1", ""), File: "/b.jar"}

	first.EXPECT().Get(gomock.Any()).Return([]domain.LiveDependency{a}, nil)
	second.EXPECT().Get(gomock.Any()).Return([]domain.LiveDependency{a, b}, nil)

	deps, err := live.NewRepository(first, second).Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.LiveDependency{a, b}, deps)
}

func TestRepository_Get_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockLiveDependenciesRepository(ctrl)
	second := mocks.NewMockLiveDependenciesRepository(ctrl)

	key := domain.NewDependencyKey("g", "a", "1", "")
	first.EXPECT().Get(gomock.Any()).Return([]domain.LiveDependency{{Key: key, File: "/a.jar"}}, nil)
	second.EXPECT().Get(gomock.Any()).Return([]domain.LiveDependency{{Key: key, File: "/other/a.jar"}}, nil)

	_, err := live.NewRepository(first, second).Get(t.Context())
	require.ErrorContains(t, err, domain.ErrDuplicateDependency.Error())
}

func TestRepository_Get_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ok := mocks.NewMockLiveDependenciesRepository(ctrl)
	failing := mocks.NewMockLiveDependenciesRepository(ctrl)
	boom := errors.New("boom")

	ok.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	failing.EXPECT().Get(gomock.Any()).Return(nil, boom)

	_, err := live.NewRepository(ok, failing).Get(t.Context())
	require.ErrorIs(t, err, boom)
}

func TestRepository_Get_NoSources(t *testing.T) {
	deps, err := live.NewRepository().Get(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, deps)
	assert.Empty(t, deps)
}

func TestFromConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "dependencies.yaml"), "dependencies:\n  - key: g:n:1\n    file: n-1.jar\n")
	writeFile(t, filepath.Join(root, "vendor", "x-2.0.jar"), "x")

	repo, err := live.FromConfig(&domain.Config{
		Root: root,
		Sources: []domain.SourceConfig{
			{Type: domain.SourceManifest},
			{Type: domain.SourceDir, Path: "vendor"},
		},
	})
	require.NoError(t, err)

	deps, err := repo.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.LiveDependency{
		{Key: domain.NewDependencyKey("g", "n", "1", ""), File: filepath.Join(root, "n-1.jar")},
		{Key: domain.NewDependencyKey("local", "x", "2.0", ""), File: filepath.Join(root, "vendor", "x-2.0.jar")},
	}, deps)
}

func TestFromConfig_UnknownType(t *testing.T) {
	_, err := live.FromConfig(&domain.Config{
		Root:    t.TempDir(),
		Sources: []domain.SourceConfig{{Type: "maven"}},
	})
	require.ErrorContains(t, err, domain.ErrUnknownSourceType.Error())
}
