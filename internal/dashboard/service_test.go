package dashboard

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/url"
	"testing"

	"drugdash/adapters/sqlstore"
	domainContent "drugdash/domain/content"
	"drugdash/domain/dataset"
	domainStats "drugdash/domain/stats"
	"drugdash/internal/auth"
	"drugdash/internal/errors"
	"drugdash/internal/export"
	"drugdash/internal/metrics"
	"drugdash/internal/session"
	"drugdash/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func rec(id int, drug string, age int, gender, condition string, recovery float64) dataset.Record {
	return dataset.Record{
		PatientID:    fmt.Sprint(id),
		Drug:         drug,
		Age:          age,
		Gender:       gender,
		Condition:    condition,
		Dosage:       100,
		Duration:     10,
		RecoveryRate: recovery,
		SideEffects:  "Rash",
		Weight:       60,
		BloodType:    "A+",
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	db, err := sqlstore.Open(ctx, "sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	records := []dataset.Record{
		rec(1, "A", 30, "M", "Asthma", 80),
		rec(2, "B", 30, "M", "Asthma", 80),
		rec(3, "C", 55, "F", "Diabetes", 60),
	}
	store := sqlstore.NewRecordStore(db, "sqlite3")
	require.NoError(t, store.Replace(ctx, records))

	creds := sqlstore.NewCredentialStore(db)
	hash, err := auth.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, creds.ReplaceCredentials(ctx, []ports.Credential{{Username: "alice", PasswordHash: hash}}))

	return NewService(dataset.NewDataset(records), store, auth.NewService(creds), session.NewManager(), metrics.New())
}

func TestService_ParseCriteria(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		query   string
		want    dataset.FilterCriteria
		wantErr bool
	}{
		{
			name:  "defaults",
			query: "",
			want:  dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 30, Max: 55}, Gender: "M", Condition: "Asthma"},
		},
		{
			name:  "explicit",
			query: "min_age=35&max_age=50&gender=F&condition=Diabetes",
			want:  dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 35, Max: 50}, Gender: "F", Condition: "Diabetes"},
		},
		{
			name:  "clamped",
			query: "min_age=1&max_age=200",
			want:  dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 30, Max: 55}, Gender: "M", Condition: "Asthma"},
		},
		{
			name:  "unparseable falls back",
			query: "min_age=abc",
			want:  dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 30, Max: 55}, Gender: "M", Condition: "Asthma"},
		},
		{
			name:  "leading zeros are decimal",
			query: "min_age=035&max_age=050",
			want:  dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 35, Max: 50}, Gender: "M", Condition: "Asthma"},
		},
		{
			name:  "zero-padded eight",
			query: "min_age=030&max_age=08",
			want:  dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 30, Max: 30}, Gender: "M", Condition: "Asthma"},
		},
		{
			name:  "whole float",
			query: "max_age=40.0",
			want:  dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 30, Max: 40}, Gender: "M", Condition: "Asthma"},
		},
		{
			name:    "inverted",
			query:   "min_age=50&max_age=40",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := svc.ParseCriteria(values)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "20", want: 20},
		{in: "010", want: 10},
		{in: "08", want: 8},
		{in: "12.0", want: 12},
		{in: "0", want: 0},
		{in: "000", want: 0},
		{in: " 42 ", want: 42},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0x10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAge(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_HomeTie(t *testing.T) {
	svc := newTestService(t)
	criteria := dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 20, Max: 40}, Gender: "M", Condition: "Asthma"}

	view, err := svc.Home(context.Background(), criteria)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, view.Aggregation.Effective)
	assert.Equal(t, "The most effective drug(s) for the selected conditions are: A, B", view.EffectiveText)
	assert.Len(t, view.Patients, 2)
	assert.Equal(t, "80.00", view.Summary.RecoveryRateText)
	assert.False(t, view.Charts.Recovery.NoData)
}

func TestService_HomeNoData(t *testing.T) {
	svc := newTestService(t)
	criteria := dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 20, Max: 40}, Gender: "F", Condition: "Asthma"}

	view, err := svc.Home(context.Background(), criteria)
	require.NoError(t, err)

	assert.Empty(t, view.Patients)
	assert.Equal(t, domainStats.NoDataEffectiveDrugs, view.EffectiveText)
	assert.True(t, view.Summary.NoData)
	assert.Equal(t, "No data to show summary statistics.", view.Summary.Message)
	assert.Equal(t, domainStats.NoDataRecoveryChart, view.Charts.Recovery.Message)
	assert.Equal(t, domainStats.NoDataSideEffects, view.Charts.SideEffects.Message)
	assert.Equal(t, domainStats.NoDataAgeRecovery, view.Charts.AgeRecovery.Message)
}

func TestService_HomeWithoutStore(t *testing.T) {
	ds := dataset.NewDataset([]dataset.Record{rec(1, "A", 30, "M", "Asthma", 80)})
	svc := NewService(ds, nil, nil, nil, nil)

	view, err := svc.Home(context.Background(), ds.DefaultCriteria())
	require.NoError(t, err)
	assert.Len(t, view.Patients, 1)
}

func TestService_ExportGate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	criteria := dataset.FilterCriteria{Ages: dataset.AgeRange{Min: 20, Max: 40}, Gender: "M", Condition: "Asthma"}

	st := svc.Sessions().Create()

	_, err := svc.Export(ctx, st.ID, criteria, export.FormatCSV)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnauthorized))

	st = svc.RequestDownload(st.ID)
	assert.True(t, st.AwaitingLogin)

	result, err := svc.Login(ctx, st.ID, "", "secret")
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, auth.MsgCredentialsRequired, result.Message)
	assert.True(t, result.Session.AwaitingLogin)

	result, err = svc.Login(ctx, st.ID, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, auth.MsgInvalidCredentials, result.Message)
	assert.False(t, result.Session.Authenticated)

	result, err = svc.Login(ctx, st.ID, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, auth.MsgLoginSuccessful, result.Message)
	assert.True(t, result.Session.Authenticated)

	data, err := svc.Export(ctx, st.ID, criteria, export.FormatCSV)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, dataset.Columns(), rows[0])

	other := svc.Sessions().Create()
	_, err = svc.Export(ctx, other.ID, criteria, export.FormatCSV)
	assert.True(t, errors.HasCode(err, errors.CodeUnauthorized))
}

func TestService_LoginStartsSessionOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, password := range []string{"", "wrong"} {
		result, err := svc.Login(ctx, "", "alice", password)
		require.NoError(t, err)
		assert.False(t, result.OK)
		assert.Empty(t, result.Session.ID)
	}
	assert.Equal(t, 0, svc.Sessions().Len())

	result, err := svc.Login(ctx, "unknown-token", "alice", "secret")
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.NotEqual(t, "unknown-token", result.Session.ID)
	assert.True(t, result.Session.Authenticated)
	assert.Equal(t, 1, svc.Sessions().Len())

	again, err := svc.Login(ctx, result.Session.ID, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, again.Session.ID)
	assert.Equal(t, 1, svc.Sessions().Len())
}

func TestService_Content(t *testing.T) {
	svc := newTestService(t)

	v := svc.Content(domainContent.PageSymptoms, "Asthma")
	assert.True(t, v.Found())

	v = svc.Content(domainContent.PagePrecautions, "Unknown")
	assert.Equal(t, domainContent.MsgNotAvailable, v.Message)

	assert.Equal(t, []string{"Asthma", "Diabetes"}, svc.ContentConditions())
}
