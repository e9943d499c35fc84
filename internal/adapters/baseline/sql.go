package baseline

import (
	"context"

	"go.trai.ch/retrial/internal/core/domain"
	"go.trai.ch/retrial/internal/core/ports"
	"go.trai.ch/zerr"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ ports.SavedDependenciesRepository = (*SQLStore)(nil)

const insertBatchSize = 500

// EntryModel is one baseline row.
type EntryModel struct {
	Key      string `gorm:"primaryKey;type:varchar(512)"`
	Checksum string `gorm:"type:varchar(160);not null"`
}

// TableName pins the table name.
func (EntryModel) TableName() string {
	return "retrial_baseline"
}

// SQLStore keeps the baseline in a relational table. Set replaces all rows in one transaction.
type SQLStore struct {
	db     *gorm.DB
	driver string
}

// OpenSQLStore connects to the database and migrates the baseline table.
func OpenSQLStore(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case domain.DriverSQLite, "":
		driver = domain.DriverSQLite
		dialector = sqlite.Open(dsn)
	case domain.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, zerr.With(domain.ErrUnknownDriver, "driver", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreConnectFailed.Error()), "driver", driver)
	}

	return NewSQLStore(ctx, db, driver)
}

// NewSQLStore wraps an existing connection and migrates the baseline table.
func NewSQLStore(ctx context.Context, db *gorm.DB, driver string) (*SQLStore, error) {
	if err := db.WithContext(ctx).AutoMigrate(&EntryModel{}); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "driver", driver)
	}
	return &SQLStore{db: db, driver: driver}, nil
}

// Describe returns the driver and table.
func (s *SQLStore) Describe() string {
	return s.driver + ":" + EntryModel{}.TableName()
}

// Close releases the underlying connection pool.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Set deletes every row and inserts the new baseline in the same transaction.
func (s *SQLStore) Set(ctx context.Context, b domain.Baseline) error {
	entries := toEntries(b)
	rows := make([]EntryModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EntryModel(e))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&EntryModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "driver", s.driver)
	}
	return nil
}

// Get reads every row.
func (s *SQLStore) Get(ctx context.Context) (domain.Baseline, error) {
	var rows []EntryModel
	if err := s.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&rows).Error; err != nil {
		return domain.Baseline{}, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "driver", s.driver)
	}

	entries := make([]entryDTO, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, entryDTO(r))
	}

	b, err := fromEntries(entries)
	if err != nil {
		return domain.Baseline{}, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return b, nil
}
