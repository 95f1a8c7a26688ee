package migration

import (
	"context"
	"fmt"
	"strings"

	"drugdash/domain/dataset"
	"drugdash/internal/errors"

	"github.com/jmoiron/sqlx"
)

// CredentialsTable holds bcrypt hashes of the export logins
const CredentialsTable = "credential_database"

// MigrationRunner creates the tables the dashboard reads from
type MigrationRunner struct {
	version string
	driver  string
}

// NewRunner creates a migration runner for the given database/sql driver name
func NewRunner(driver string) *MigrationRunner {
	return &MigrationRunner{version: "1.0.0", driver: driver}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run creates the records and credentials tables when they do not exist yet
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, RecordsTableDDL(r.driver, true)); err != nil {
		return errors.DatabaseError("failed to create records table", err)
	}
	if _, err := db.ExecContext(ctx, CredentialsTableDDL(true)); err != nil {
		return errors.DatabaseError("failed to create credentials table", err)
	}
	return nil
}

// QuoteIdent double-quotes a column or table name. Several source headers
// contain spaces and parentheses.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// columnType maps a record field to a SQL type for driver
func columnType(driver string, f dataset.Field) string {
	switch f {
	case dataset.FieldAge:
		return "INTEGER"
	case dataset.FieldDosage, dataset.FieldDuration, dataset.FieldRecoveryRate, dataset.FieldWeight:
		if driver == "postgres" {
			return "DOUBLE PRECISION"
		}
		return "REAL"
	default:
		return "TEXT"
	}
}

// RecordsTableDDL returns the CREATE TABLE statement mirroring the source
// columns verbatim. All columns are nullable; incomplete rows are stored too.
func RecordsTableDDL(driver string, ifNotExists bool) string {
	cols := make([]string, 0, len(dataset.Fields()))
	for _, f := range dataset.Fields() {
		cols = append(cols, fmt.Sprintf("%s %s", QuoteIdent(f.Column()), columnType(driver, f)))
	}
	return fmt.Sprintf("CREATE TABLE %s%s (\n\t%s\n)", existsClause(ifNotExists), QuoteIdent(dataset.TableName), strings.Join(cols, ",\n\t"))
}

// CredentialsTableDDL returns the CREATE TABLE statement for the credential table
func CredentialsTableDDL(ifNotExists bool) string {
	return fmt.Sprintf(`CREATE TABLE %s%s (
	username TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL
)`, existsClause(ifNotExists), QuoteIdent(CredentialsTable))
}

func existsClause(ifNotExists bool) string {
	if ifNotExists {
		return "IF NOT EXISTS "
	}
	return ""
}
