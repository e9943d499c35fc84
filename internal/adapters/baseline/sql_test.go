package baseline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/retrial/internal/adapters/baseline"
	"go.trai.ch/retrial/internal/core/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLStore(t *testing.T) (*baseline.SQLStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "baseline.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := baseline.NewSQLStore(t.Context(), db, domain.DriverSQLite)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, db
}

func TestSQLStore_RoundTrip(t *testing.T) {
	store, _ := setupSQLStore(t)

	want := sampleBaseline(t)
	require.NoError(t, store.Set(t.Context(), want))

	got, err := store.Get(t.Context())
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
	assert.Equal(t, "sqlite:retrial_baseline", store.Describe())
}

func TestSQLStore_SetReplacesRows(t *testing.T) {
	store, db := setupSQLStore(t)
	require.NoError(t, store.Set(t.Context(), sampleBaseline(t)))
	require.NoError(t, store.Set(t.Context(), domain.Baseline{}))

	var count int64
	require.NoError(t, db.Model(&baseline.EntryModel{}).Count(&count).Error)
	assert.Zero(t, count)

	got, err := store.Get(t.Context())
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}

func TestSQLStore_SetRollsBackOnFailure(t *testing.T) {
	store, db := setupSQLStore(t)
	require.NoError(t, store.Set(t.Context(), sampleBaseline(t)))

	// A trigger rejecting inserts makes the transaction fail after the delete.
	require.NoError(t, db.Exec(`CREATE TRIGGER reject_insert BEFORE INSERT ON retrial_baseline
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`).Error)

	only, err := domain.NewBaseline(domain.SavedDependency{
		Key:      domain.NewDependencyKey("g", "n", "1", ""),
		Checksum: checksum(t, domain.SHA512, 1),
	})
	require.NoError(t, err)

	err = store.Set(t.Context(), only)
	require.ErrorContains(t, err, domain.ErrStoreWriteFailed.Error())

	got, err := store.Get(t.Context())
	require.NoError(t, err)
	assert.True(t, sampleBaseline(t).Equal(got))
}

func TestSQLStore_GetRejectsCorruptRow(t *testing.T) {
	store, db := setupSQLStore(t)
	require.NoError(t, db.Create(&baseline.EntryModel{Key: "g:n:1", Checksum: "sha512:zz"}).Error)

	_, err := store.Get(t.Context())
	require.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestOpenSQLStore_UnknownDriver(t *testing.T) {
	_, err := baseline.OpenSQLStore(t.Context(), "mysql", "dsn")
	require.ErrorContains(t, err, domain.ErrUnknownDriver.Error())
}
