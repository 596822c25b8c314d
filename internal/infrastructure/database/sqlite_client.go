package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	"arclean_orcamentos/internal/usecase/interfaces"

	"github.com/glebarez/sqlite"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// OpenSQLite opens (creating if needed) the local database file at path and
// applies pending schema migrations. Calling it again on a migrated file is a no-op.
//
// Failures to open or migrate the file are wrapped with interfaces.ErrStoreUnavailable.
func OpenSQLite(ctx context.Context, path string, log *logrus.Entry) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", interfaces.ErrStoreUnavailable, path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrStoreUnavailable, err)
	}
	// One connection: SQLite serialises writers anyway and this keeps
	// transactions from tripping over each other.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", interfaces.ErrStoreUnavailable, path, err)
	}

	if err := migrate(ctx, db, log); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: migrate: %v", interfaces.ErrStoreUnavailable, err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, log *logrus.Entry) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)
	goose.SetLogger(log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, "migrations")
}
