package ui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"drugdash/adapters/sqlstore"
	"drugdash/domain/dataset"
	"drugdash/internal/auth"
	"drugdash/internal/dashboard"
	"drugdash/internal/metrics"
	"drugdash/internal/session"
	"drugdash/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const cookieName = "drugdash_session"

func rec(id int, drug string, age int, gender, condition string, recovery float64) dataset.Record {
	return dataset.Record{
		PatientID: fmt.Sprint(id), Drug: drug, Age: age, Gender: gender, Condition: condition,
		Dosage: 100, Duration: 10, RecoveryRate: recovery, SideEffects: "Rash", Weight: 60, BloodType: "A+",
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
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

	m := metrics.New()
	svc := dashboard.NewService(dataset.NewDataset(records), store, auth.NewService(creds), session.NewManager(), m)
	srv, err := NewServer(svc, Options{SessionCookie: cookieName, Metrics: m})
	require.NoError(t, err)
	return srv
}

func do(t *testing.T, srv *Server, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", cookieName)
	return nil
}

func TestHome(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, "GET", "/?min_age=20&max_age=40&gender=M&condition=Asthma", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The most effective drug(s) for the selected conditions are: A, B")
	assert.Contains(t, body, "Average Recovery Rate")
	assert.Contains(t, body, "Download Filtered Data")
	assert.NotContains(t, body, `id="login"`)
	assert.Empty(t, w.Result().Cookies(), "browsing does not start a session")
}

func TestHome_NoData(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, "GET", "/?min_age=20&max_age=40&gender=F&condition=Asthma", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "No data available for the selected filters.")
	assert.Contains(t, body, "No data to show summary statistics.")
	assert.Contains(t, body, "No data to show recovery rate graph.")
	assert.Contains(t, body, "No data to show side effect graph.")
	assert.Contains(t, body, "No data to show Age vs Recovery graph.")
}

func TestHome_InvalidCriteria(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, "GET", "/?min_age=50&max_age=40", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadFlow(t *testing.T) {
	srv := newTestServer(t)
	query := "min_age=20&max_age=40&gender=M&condition=Asthma"

	w := do(t, srv, "GET", "/export/filtered_data.csv?"+query, nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `id="login"`)
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)

	w = do(t, srv, "POST", "/download?"+query, url.Values{}, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "gender=M")

	w = do(t, srv, "POST", "/login?"+query, url.Values{"username": {""}, "password": {"secret"}}, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter credentials and press submit.")

	w = do(t, srv, "POST", "/login?"+query, url.Values{"username": {"alice"}, "password": {"nope"}}, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials. Please try again.")

	w = do(t, srv, "POST", "/login?"+query, url.Values{"username": {"alice"}, "password": {"secret"}}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful.")
	assert.Contains(t, w.Body.String(), "/export/filtered_data.csv?")

	w = do(t, srv, "GET", "/export/filtered_data.csv?"+query, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "filtered_data.csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "PatientID,Drug,Age"))

	w = do(t, srv, "GET", "/export/filtered_data.xlsx?"+query, nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, srv, "GET", "/export/report.pdf", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionsStartOnlyWithTheExportFlow(t *testing.T) {
	srv := newTestServer(t)
	stale := &http.Cookie{Name: cookieName, Value: "stale"}

	for _, target := range []string{"/", "/?gender=F&condition=Diabetes", "/symptoms", "/precautions", "/healthz", "/metrics"} {
		do(t, srv, "GET", target, nil, nil)
		w := do(t, srv, "GET", target, nil, stale)
		assert.Empty(t, w.Result().Cookies(), target)
	}
	w := do(t, srv, "POST", "/login", url.Values{"username": {"alice"}, "password": {"nope"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, srv.svc.Sessions().Len())

	w = do(t, srv, "POST", "/download", url.Values{}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	cookie := sessionCookie(t, w)
	assert.Equal(t, 1, srv.svc.Sessions().Len())

	do(t, srv, "GET", "/", nil, cookie)
	do(t, srv, "POST", "/download", url.Values{}, cookie)
	assert.Equal(t, 1, srv.svc.Sessions().Len(), "a known cookie is reused")

	w = do(t, srv, "POST", "/login", url.Values{"username": {"alice"}, "password": {"secret"}}, stale)
	require.Equal(t, http.StatusOK, w.Code)
	fresh := sessionCookie(t, w)
	assert.NotEqual(t, "stale", fresh.Value)
	assert.Equal(t, 2, srv.svc.Sessions().Len())

	w = do(t, srv, "GET", "/export/filtered_data.csv", nil, fresh)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContentPages(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		target string
		want   string
	}{
		{"/symptoms?condition=Asthma", "asthma2.jpg"},
		{"/precautions?condition=Asthma", "https://www.cdc.gov/asthma/default.htm"},
		{"/precautions?condition=Gout", "Precautions for this condition are not yet available."},
		{"/symptoms?condition=Gout", "Precautions for this condition are not yet available."},
		{"/precautions?condition=", "Please select a condition to view precautions."},
		{"/symptoms", "asthma2.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := do(t, srv, "GET", tt.target, nil, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, "GET", "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"records":3`)

	do(t, srv, "GET", "/", nil, nil)
	w = do(t, srv, "GET", "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `drugdash_interactions_total{page="home"} 1`)
}
