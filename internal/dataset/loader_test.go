package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drugdash/adapters/excel"
	domain "drugdash/domain/dataset"
	"drugdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const header = "PatientID,Drug,Age,Gender,Condition,Dosage (mg),Treatment Duration (days),Recovery Rate,Side Effects,Weight (kg),Blood Type\n"

type mockRecordStore struct {
	mock.Mock
}

func (m *mockRecordStore) Replace(ctx context.Context, records []domain.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *mockRecordStore) Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Record, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *mockRecordStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parse(t *testing.T, body string) []domain.Record {
	t.Helper()
	table, err := excel.ReadCSV(strings.NewReader(header + body))
	require.NoError(t, err)
	records, err := ParseTable(table)
	require.NoError(t, err)
	return records
}

func TestIsMissing(t *testing.T) {
	for _, cell := range []string{"", "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "None", "#N/A", "<NA>"} {
		assert.True(t, IsMissing(cell), "%q", cell)
	}
	// matching is exact, as in pandas
	for _, cell := range []string{"0", "M", "No", "Asthma", "NONE", "none", "Na", "Null", "  ", " NA"} {
		assert.False(t, IsMissing(cell), "%q", cell)
	}
}

func TestParseTable_ExactNAMatch(t *testing.T) {
	records := parse(t, "1,DrugA,30,M,Asthma,100,10,80,NONE,70,O+\n"+
		"2,DrugA,30,M,Asthma,100,10,80,None,70,O+\n"+
		"3,DrugA,30,M,Asthma,100,10,80,Nausea,  ,O+\n")
	require.Len(t, records, 3)

	assert.True(t, records[0].Complete())
	assert.Equal(t, "NONE", records[0].SideEffects)
	assert.Equal(t, []domain.Field{domain.FieldSideEffects}, records[1].Missing.Fields())
	assert.Equal(t, []domain.Field{domain.FieldWeight}, records[2].Missing.Fields(), "blank numeric cell does not parse")
}

func TestParseTable(t *testing.T) {
	records := parse(t, "1,DrugA,30,M,Asthma,100,10,80.5,Nausea,70.2,O+\n"+
		"2,DrugB,41,F,Diabetes,250,14,65,Nausea,,A-\n"+
		"3,DrugC,abc,F,Diabetes,250,14,65,Nausea,60,A-\n"+
		"4,DrugC,30.5,F,Diabetes,250,14,65,Nausea,60,A-\n")
	require.Len(t, records, 4)

	first := records[0]
	assert.True(t, first.Complete())
	assert.Equal(t, domain.Record{
		PatientID:    "1",
		Drug:         "DrugA",
		Age:          30,
		Gender:       "M",
		Condition:    "Asthma",
		Dosage:       100,
		Duration:     10,
		RecoveryRate: 80.5,
		SideEffects:  "Nausea",
		Weight:       70.2,
		BloodType:    "O+",
	}, first)

	assert.Equal(t, []domain.Field{domain.FieldWeight}, records[1].Missing.Fields())
	assert.Equal(t, []domain.Field{domain.FieldAge}, records[2].Missing.Fields())
	assert.Equal(t, []domain.Field{domain.FieldAge}, records[3].Missing.Fields(), "fractional age")
}

func TestParseTable_MissingColumn(t *testing.T) {
	table, err := excel.ReadCSV(strings.NewReader("PatientID,Drug,Age\n1,A,30\n"))
	require.NoError(t, err)

	_, err = ParseTable(table)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeIOError))
	assert.Contains(t, err.Error(), "Recovery Rate")
}

func TestLoader_Load(t *testing.T) {
	path := writeFile(t, "data.csv", header+
		"1,DrugA,30,M,Asthma,100,10,80,Nausea,70,O+\n"+
		"2,DrugB,45,F,GERD,100,10,70,Nausea,NA,O+\n")

	store := &mockRecordStore{}
	store.On("Replace", mock.Anything, mock.MatchedBy(func(rs []domain.Record) bool {
		return len(rs) == 2 && !rs[1].Complete()
	})).Return(nil)

	ds, err := NewLoader(store).Load(context.Background(), path)
	require.NoError(t, err)
	store.AssertExpectations(t)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, domain.AgeRange{Min: 30, Max: 45}, ds.Ages)
	assert.Equal(t, []string{"M", "F"}, ds.Genders)
	assert.Equal(t, []string{"Asthma", "GERD"}, ds.Conditions)
}

func TestLoader_LoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(nil).Load(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeIOError))
	})

	t.Run("store failure", func(t *testing.T) {
		path := writeFile(t, "data.csv", header+"1,DrugA,30,M,Asthma,100,10,80,Nausea,70,O+\n")
		store := &mockRecordStore{}
		store.On("Replace", mock.Anything, mock.Anything).Return(errors.DatabaseError("boom", nil))

		_, err := NewLoader(store).Load(context.Background(), path)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeDatabaseError))
	})
}

func TestClean(t *testing.T) {
	records := parse(t, "1,DrugA,30,M,Asthma,100,10,80,Nausea,70,O+\n"+
		"2,DrugB,45,F,GERD,100,10,70,Nausea,,O+\n"+
		"3,DrugC,18,Other,Pain,100,10,70,Nausea,55,B+\n"+
		"4,,50,M,Asthma,100,10,70,Nausea,55,B+\n")

	cleaned := Clean(domain.NewDataset(records))
	require.Equal(t, 2, cleaned.Len())
	assert.Equal(t, "1", cleaned.Records[0].PatientID)
	assert.Equal(t, "3", cleaned.Records[1].PatientID)
	for _, r := range cleaned.Records {
		assert.True(t, r.Complete())
	}
	assert.Equal(t, domain.AgeRange{Min: 18, Max: 30}, cleaned.Ages)
	assert.Equal(t, []string{"M", "Other"}, cleaned.Genders)

	again := Clean(cleaned)
	assert.Equal(t, cleaned.Records, again.Records)

	assert.Equal(t, 0, Clean(nil).Len())
}
