package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// TableName is the fixed name of the relational mirror of the loaded source
const TableName = "drug_effectiveness_realistic_null_weight_data"

// Field identifies one column of a patient-treatment record
type Field int

const (
	FieldPatientID Field = iota
	FieldDrug
	FieldAge
	FieldGender
	FieldCondition
	FieldDosage
	FieldDuration
	FieldRecoveryRate
	FieldSideEffects
	FieldWeight
	FieldBloodType
	fieldCount
)

var columnNames = [fieldCount]string{
	FieldPatientID:    "PatientID",
	FieldDrug:         "Drug",
	FieldAge:          "Age",
	FieldGender:       "Gender",
	FieldCondition:    "Condition",
	FieldDosage:       "Dosage (mg)",
	FieldDuration:     "Treatment Duration (days)",
	FieldRecoveryRate: "Recovery Rate",
	FieldSideEffects:  "Side Effects",
	FieldWeight:       "Weight (kg)",
	FieldBloodType:    "Blood Type",
}

// Column returns the source header for the field
func (f Field) Column() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return columnNames[f]
}

func (f Field) String() string { return f.Column() }

// Fields returns every record field in source column order
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// Columns returns the required source headers in canonical order
func Columns() []string {
	out := make([]string, fieldCount)
	copy(out, columnNames[:])
	return out
}

// FieldSet is a bit set over Field
type FieldSet uint32

func (s FieldSet) Has(f Field) bool { return s&(1<<uint(f)) != 0 }

func (s FieldSet) With(f Field) FieldSet { return s | 1<<uint(f) }

func (s FieldSet) Empty() bool { return s == 0 }

// Fields lists the members of the set in column order
func (s FieldSet) Fields() []Field {
	var out []Field
	for _, f := range Fields() {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Record is one patient-treatment observation. Missing marks the fields that
// were absent in the source row; their typed values are left at zero.
type Record struct {
	PatientID    string  `json:"patient_id"`
	Drug         string  `json:"drug"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Condition    string  `json:"condition"`
	Dosage       float64 `json:"dosage_mg"`
	Duration     float64 `json:"treatment_duration_days"`
	RecoveryRate float64 `json:"recovery_rate"`
	SideEffects  string  `json:"side_effects"`
	Weight       float64 `json:"weight_kg"`
	BloodType    string  `json:"blood_type"`

	Missing FieldSet `json:"-"`
}

// Complete reports whether no field of the record is missing
func (r Record) Complete() bool {
	return r.Missing.Empty()
}

// AgeRange is an inclusive [Min, Max] interval of ages
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether age lies inside the range, bounds included
func (a AgeRange) Contains(age int) bool {
	return age >= a.Min && age <= a.Max
}

// Dataset is an ordered collection of records together with the options a
// filter form offers for it. It is not modified after cleaning.
type Dataset struct {
	Records    []Record `json:"records"`
	Ages       AgeRange `json:"ages"`
	Genders    []string `json:"genders"`
	Conditions []string `json:"conditions"`
}

// NewDataset builds a dataset and derives its observed options. Ages come from
// records whose age is present; genders and conditions keep first-appearance order.
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{Records: records}
	seenGender := make(map[string]bool)
	seenCondition := make(map[string]bool)
	haveAge := false

	for _, r := range records {
		if !r.Missing.Has(FieldAge) {
			if !haveAge {
				ds.Ages = AgeRange{Min: r.Age, Max: r.Age}
				haveAge = true
			}
			if r.Age < ds.Ages.Min {
				ds.Ages.Min = r.Age
			}
			if r.Age > ds.Ages.Max {
				ds.Ages.Max = r.Age
			}
		}
		if !r.Missing.Has(FieldGender) && !seenGender[r.Gender] {
			seenGender[r.Gender] = true
			ds.Genders = append(ds.Genders, r.Gender)
		}
		if !r.Missing.Has(FieldCondition) && !seenCondition[r.Condition] {
			seenCondition[r.Condition] = true
			ds.Conditions = append(ds.Conditions, r.Condition)
		}
	}
	return ds
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// DefaultCriteria selects the full observed age range with the first gender
// and first condition, the state the dashboard opens in.
func (d *Dataset) DefaultCriteria() FilterCriteria {
	c := FilterCriteria{Ages: d.Ages}
	if len(d.Genders) > 0 {
		c.Gender = d.Genders[0]
	}
	if len(d.Conditions) > 0 {
		c.Condition = d.Conditions[0]
	}
	return c
}

// Clamp pulls the age bounds of c into the dataset's observed range
func (d *Dataset) Clamp(c FilterCriteria) FilterCriteria {
	clamp := func(v int) int {
		if v < d.Ages.Min {
			return d.Ages.Min
		}
		if v > d.Ages.Max {
			return d.Ages.Max
		}
		return v
	}
	c.Ages = AgeRange{Min: clamp(c.Ages.Min), Max: clamp(c.Ages.Max)}
	return c
}

// FilterCriteria is the conjunction of predicates selected by the user. All
// three predicates always apply.
type FilterCriteria struct {
	Ages      AgeRange `json:"ages"`
	Gender    string   `json:"gender"`
	Condition string   `json:"condition"`
}

// Validate checks the invariants every filter implementation relies on
func (c FilterCriteria) Validate() error {
	var problems []string
	if c.Ages.Min > c.Ages.Max {
		problems = append(problems, fmt.Sprintf("min age %d is greater than max age %d", c.Ages.Min, c.Ages.Max))
	}
	if c.Gender == "" {
		problems = append(problems, "gender is required")
	}
	if c.Condition == "" {
		problems = append(problems, "condition is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid filter: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Matches evaluates the criteria against one record. Comparisons are exact
// and case-sensitive.
func (c FilterCriteria) Matches(r Record) bool {
	return c.Ages.Contains(r.Age) && r.Gender == c.Gender && r.Condition == c.Condition
}

// Value formats field f of the record for display
func (r Record) Value(f Field) string {
	switch f {
	case FieldPatientID:
		return r.PatientID
	case FieldDrug:
		return r.Drug
	case FieldAge:
		return strconv.Itoa(r.Age)
	case FieldGender:
		return r.Gender
	case FieldCondition:
		return r.Condition
	case FieldDosage:
		return strconv.FormatFloat(r.Dosage, 'f', -1, 64)
	case FieldDuration:
		return strconv.FormatFloat(r.Duration, 'f', -1, 64)
	case FieldRecoveryRate:
		return strconv.FormatFloat(r.RecoveryRate, 'f', -1, 64)
	case FieldSideEffects:
		return r.SideEffects
	case FieldWeight:
		return strconv.FormatFloat(r.Weight, 'f', -1, 64)
	case FieldBloodType:
		return r.BloodType
	}
	return ""
}
