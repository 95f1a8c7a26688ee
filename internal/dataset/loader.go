package dataset

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"drugdash/adapters/excel"
	domain "drugdash/domain/dataset"
	"drugdash/internal/errors"
	"drugdash/ports"

	"github.com/spf13/cast"
)

// naValues are the cell texts read as missing, the default NA set of pandas'
// read_csv. Matching is exact: "NONE" or a blank of spaces is a value.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsMissing reports whether a raw cell counts as a missing value
func IsMissing(cell string) bool {
	return naValues[cell]
}

// Loader reads the tabular source and mirrors it into the record store
type Loader struct {
	store ports.RecordStore
}

// NewLoader creates a loader. store may be nil, in which case nothing is mirrored.
func NewLoader(store ports.RecordStore) *Loader {
	return &Loader{store: store}
}

// Load reads path, converts every row to a record and replaces the store
// contents with them. The returned dataset still contains incomplete records;
// pass it through Clean before analysis.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Dataset, error) {
	start := time.Now()

	reader := excel.NewDataReader(path)
	table, err := reader.ReadData()
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to read dataset %s", path), err)
	}

	records, err := ParseTable(table)
	if err != nil {
		return nil, err
	}

	if l.store != nil {
		if err := l.store.Replace(ctx, records); err != nil {
			return nil, errors.Wrap(err, "failed to mirror dataset into store")
		}
	}

	log.Printf("[Loader] Loaded %d records from %s file %s in %v", len(records), reader.FileType(), path, time.Since(start))
	return domain.NewDataset(records), nil
}

// ParseTable converts a raw table into records. Every required column must be
// present in the header; individual unparseable cells become missing fields.
func ParseTable(table *excel.RawTable) ([]domain.Record, error) {
	if missing := table.MissingColumns(domain.Columns()); len(missing) > 0 {
		return nil, errors.IOError(fmt.Sprintf("dataset is missing required columns: %s", strings.Join(missing, ", ")), nil)
	}

	records := make([]domain.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, parseRow(row))
	}
	return records, nil
}

func parseRow(row excel.RawRowData) domain.Record {
	var rec domain.Record

	text := func(f domain.Field) string {
		cell, ok := row[f.Column()]
		if !ok || IsMissing(cell) {
			rec.Missing = rec.Missing.With(f)
			return ""
		}
		return cell
	}
	number := func(f domain.Field) float64 {
		cell := text(f)
		if rec.Missing.Has(f) {
			return 0
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			rec.Missing = rec.Missing.With(f)
			return 0
		}
		v, err := cast.ToFloat64E(cell)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			rec.Missing = rec.Missing.With(f)
			return 0
		}
		return v
	}

	rec.PatientID = text(domain.FieldPatientID)
	rec.Drug = text(domain.FieldDrug)
	rec.Gender = text(domain.FieldGender)
	rec.Condition = text(domain.FieldCondition)
	rec.SideEffects = text(domain.FieldSideEffects)
	rec.BloodType = text(domain.FieldBloodType)

	age := number(domain.FieldAge)
	if !rec.Missing.Has(domain.FieldAge) {
		if age < 0 || age != math.Trunc(age) {
			rec.Missing = rec.Missing.With(domain.FieldAge)
		} else {
			rec.Age = int(age)
		}
	}

	rec.Dosage = number(domain.FieldDosage)
	rec.Duration = number(domain.FieldDuration)
	rec.RecoveryRate = number(domain.FieldRecoveryRate)
	rec.Weight = number(domain.FieldWeight)

	return rec
}
