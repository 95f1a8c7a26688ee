package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"drugdash/domain/dataset"
	"drugdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Format is an export encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Filename is the download name of the filtered set without extension
const Filename = "filtered_data"

// ParseFormat maps a file extension or format name to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", errors.InvalidInput(fmt.Sprintf("unsupported export format %q", s))
}

// FileName returns the download file name for f
func (f Format) FileName() string {
	return Filename + "." + string(f)
}

// ContentType returns the MIME type of f
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Write encodes records to w in format f
func Write(w io.Writer, f Format, records []dataset.Record) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, records)
	default:
		return WriteCSV(w, records)
	}
}

// WriteCSV writes the header row of canonical column names followed by one
// row per record
func WriteCSV(w io.Writer, records []dataset.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dataset.Columns()); err != nil {
		return errors.IOError("failed to write CSV header", err)
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return errors.IOError("failed to write CSV row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.IOError("failed to flush CSV", err)
	}
	return nil
}

// WriteXLSX writes the same table as WriteCSV to Sheet1 of a new workbook.
// Numeric columns are stored as numbers.
func WriteXLSX(w io.Writer, records []dataset.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := make([]interface{}, 0, len(dataset.Columns()))
	for _, c := range dataset.Columns() {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.IOError("failed to write XLSX header", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.IOError("failed to address XLSX row", err)
		}
		values := []interface{}{
			r.PatientID, r.Drug, r.Age, r.Gender, r.Condition,
			r.Dosage, r.Duration, r.RecoveryRate, r.SideEffects, r.Weight, r.BloodType,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.IOError(fmt.Sprintf("failed to write XLSX row %d", i), err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.IOError("failed to write XLSX workbook", err)
	}
	return nil
}

func row(r dataset.Record) []string {
	return []string{
		r.PatientID,
		r.Drug,
		strconv.Itoa(r.Age),
		r.Gender,
		r.Condition,
		formatFloat(r.Dosage),
		formatFloat(r.Duration),
		formatFloat(r.RecoveryRate),
		r.SideEffects,
		formatFloat(r.Weight),
		r.BloodType,
	}
}

// formatFloat writes whole numbers with a trailing ".0" and everything else
// with the fewest digits that round-trip
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		s += ".0"
	}
	return s
}
