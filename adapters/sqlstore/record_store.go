package sqlstore

import (
	"context"
	"fmt"
	"log"
	"strings"

	"drugdash/domain/dataset"
	"drugdash/internal/errors"
	"drugdash/internal/migration"
	"drugdash/ports"

	"github.com/jmoiron/sqlx"
)

// recordRow is the scan target of a filter query. Columns are aliased to
// plain identifiers since several source headers contain spaces.
type recordRow struct {
	PatientID    string  `db:"patient_id"`
	Drug         string  `db:"drug"`
	Age          int     `db:"age"`
	Gender       string  `db:"gender"`
	Condition    string  `db:"medical_condition"`
	Dosage       float64 `db:"dosage"`
	Duration     float64 `db:"duration"`
	RecoveryRate float64 `db:"recovery_rate"`
	SideEffects  string  `db:"side_effects"`
	Weight       float64 `db:"weight"`
	BloodType    string  `db:"blood_type"`
}

var aliases = map[dataset.Field]string{
	dataset.FieldPatientID:    "patient_id",
	dataset.FieldDrug:         "drug",
	dataset.FieldAge:          "age",
	dataset.FieldGender:       "gender",
	dataset.FieldCondition:    "medical_condition",
	dataset.FieldDosage:       "dosage",
	dataset.FieldDuration:     "duration",
	dataset.FieldRecoveryRate: "recovery_rate",
	dataset.FieldSideEffects:  "side_effects",
	dataset.FieldWeight:       "weight",
	dataset.FieldBloodType:    "blood_type",
}

func (r recordRow) toRecord() dataset.Record {
	return dataset.Record{
		PatientID:    r.PatientID,
		Drug:         r.Drug,
		Age:          r.Age,
		Gender:       r.Gender,
		Condition:    r.Condition,
		Dosage:       r.Dosage,
		Duration:     r.Duration,
		RecoveryRate: r.RecoveryRate,
		SideEffects:  r.SideEffects,
		Weight:       r.Weight,
		BloodType:    r.BloodType,
	}
}

// recordStore implements ports.RecordStore on any sqlx driver
type recordStore struct {
	db     *sqlx.DB
	driver string
}

// NewRecordStore creates a record store over db. driver is the name db was opened with.
func NewRecordStore(db *sqlx.DB, driver string) ports.RecordStore {
	return &recordStore{db: db, driver: driver}
}

// Replace drops and recreates the table, then inserts records in one transaction
func (s *recordStore) Replace(ctx context.Context, records []dataset.Record) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("failed to begin replace", err)
	}
	defer tx.Rollback()

	table := migration.QuoteIdent(dataset.TableName)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return errors.DatabaseError("failed to drop records table", err)
	}
	if _, err := tx.ExecContext(ctx, migration.RecordsTableDDL(s.driver, false)); err != nil {
		return errors.DatabaseError("failed to create records table", err)
	}

	stmt, err := tx.PreparexContext(ctx, s.db.Rebind(insertQuery()))
	if err != nil {
		return errors.DatabaseError("failed to prepare insert", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, insertArgs(rec)...); err != nil {
			return errors.DatabaseError(fmt.Sprintf("failed to insert record %d", i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("failed to commit replace", err)
	}
	log.Printf("[RecordStore] Replaced %s with %d rows", dataset.TableName, len(records))
	return nil
}

// Filter runs the parameterized conjunction of the criteria plus a NOT NULL
// guard on every column
func (s *recordStore) Filter(ctx context.Context, criteria dataset.FilterCriteria) ([]dataset.Record, error) {
	if err := criteria.Validate(); err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err)
	}

	var rows []recordRow
	query := s.db.Rebind(s.filterQuery())
	err := s.db.SelectContext(ctx, &rows, query,
		criteria.Ages.Min, criteria.Ages.Max, criteria.Gender, criteria.Condition)
	if err != nil {
		return nil, errors.DatabaseError("filter query failed", err)
	}

	records := make([]dataset.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toRecord()
	}
	return records, nil
}

// Count returns the number of stored rows
func (s *recordStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+migration.QuoteIdent(dataset.TableName)); err != nil {
		return 0, errors.DatabaseError("count query failed", err)
	}
	return n, nil
}

func (s *recordStore) filterQuery() string {
	selects := make([]string, 0, len(dataset.Fields()))
	guards := make([]string, 0, len(dataset.Fields()))
	for _, f := range dataset.Fields() {
		col := migration.QuoteIdent(f.Column())
		selects = append(selects, fmt.Sprintf("%s AS %s", col, aliases[f]))
		guards = append(guards, col+" IS NOT NULL")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s\nFROM %s\n", strings.Join(selects, ", "), migration.QuoteIdent(dataset.TableName))
	fmt.Fprintf(&b, "WHERE %s BETWEEN ? AND ?\nAND %s = ?\nAND %s = ?\n",
		migration.QuoteIdent(dataset.FieldAge.Column()),
		migration.QuoteIdent(dataset.FieldGender.Column()),
		migration.QuoteIdent(dataset.FieldCondition.Column()))
	b.WriteString("AND " + strings.Join(guards, "\nAND "))
	if s.driver == "sqlite3" {
		b.WriteString("\nORDER BY rowid")
	}
	return b.String()
}

func insertQuery() string {
	cols := make([]string, 0, len(dataset.Fields()))
	marks := make([]string, 0, len(dataset.Fields()))
	for _, f := range dataset.Fields() {
		cols = append(cols, migration.QuoteIdent(f.Column()))
		marks = append(marks, "?")
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		migration.QuoteIdent(dataset.TableName), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

// insertArgs lists the column values of rec in field order, nil for missing fields
func insertArgs(rec dataset.Record) []interface{} {
	values := map[dataset.Field]interface{}{
		dataset.FieldPatientID:    rec.PatientID,
		dataset.FieldDrug:         rec.Drug,
		dataset.FieldAge:          rec.Age,
		dataset.FieldGender:       rec.Gender,
		dataset.FieldCondition:    rec.Condition,
		dataset.FieldDosage:       rec.Dosage,
		dataset.FieldDuration:     rec.Duration,
		dataset.FieldRecoveryRate: rec.RecoveryRate,
		dataset.FieldSideEffects:  rec.SideEffects,
		dataset.FieldWeight:       rec.Weight,
		dataset.FieldBloodType:    rec.BloodType,
	}
	args := make([]interface{}, 0, len(values))
	for _, f := range dataset.Fields() {
		if rec.Missing.Has(f) {
			args = append(args, nil)
			continue
		}
		args = append(args, values[f])
	}
	return args
}
