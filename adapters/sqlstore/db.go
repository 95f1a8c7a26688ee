package sqlstore

import (
	"context"
	"log"

	"drugdash/internal/errors"
	"drugdash/internal/migration"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the store and creates missing tables. sqlite3 is limited
// to a single connection so an in-memory database is shared by every query.
func Open(ctx context.Context, driver, url string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, errors.DatabaseError("failed to open store", err)
	}
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.DatabaseError("failed to ping store", err)
	}

	runner := migration.NewRunner(driver)
	if err := runner.Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "store migration failed")
	}
	log.Printf("[Store] %s schema at version %s", driver, runner.Version())
	return db, nil
}
