package dashboard

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"

	domainContent "drugdash/domain/content"
	"drugdash/domain/dataset"
	domainStats "drugdash/domain/stats"
	"drugdash/internal"
	"drugdash/internal/analysis"
	"drugdash/internal/auth"
	"drugdash/internal/content"
	"drugdash/internal/errors"
	"drugdash/internal/export"
	"drugdash/internal/metrics"
	"drugdash/internal/session"
	"drugdash/ports"

	"github.com/spf13/cast"
)

// PatientColumns are the columns of the filtered patient table
var PatientColumns = []dataset.Field{
	dataset.FieldPatientID,
	dataset.FieldDrug,
	dataset.FieldAge,
	dataset.FieldGender,
	dataset.FieldCondition,
	dataset.FieldBloodType,
}

// HomeView is everything the home page shows for one set of criteria
type HomeView struct {
	Criteria   dataset.FilterCriteria `json:"criteria"`
	Ages       dataset.AgeRange       `json:"ages"`
	Genders    []string               `json:"genders"`
	Conditions []string               `json:"conditions"`

	// Patients comes from the record store; the statistics below are
	// computed over the in-memory filter
	Patients []dataset.Record `json:"patients"`
	Filtered []dataset.Record `json:"-"`

	Aggregation   domainStats.Aggregation `json:"aggregation"`
	EffectiveText string                  `json:"effective_text"`
	Summary       domainStats.Summary     `json:"summary"`
	Charts        domainStats.Charts      `json:"charts"`
}

// LoginResult is the outcome of a login attempt as shown to the user
type LoginResult struct {
	Session session.State `json:"session"`
	OK      bool          `json:"ok"`
	Message string        `json:"message"`
}

// Service runs the dashboard pipeline for each interaction. The dataset is
// read-only and shared between requests.
type Service struct {
	ds       *dataset.Dataset
	store    ports.RecordStore
	auth     *auth.Service
	sessions *session.Manager
	catalog  *content.Catalog
	metrics  *metrics.Metrics
	logger   *internal.Logger
}

// NewService wires the pipeline. store, authSvc and m may be nil; without a
// store the patient table uses the in-memory filter, and without authSvc every
// login fails.
func NewService(ds *dataset.Dataset, store ports.RecordStore, authSvc *auth.Service, sessions *session.Manager, m *metrics.Metrics) *Service {
	if ds == nil {
		ds = dataset.NewDataset(nil)
	}
	if sessions == nil {
		sessions = session.NewManager()
	}
	return &Service{
		ds:       ds,
		store:    store,
		auth:     authSvc,
		sessions: sessions,
		catalog:  content.NewCatalog(),
		metrics:  m,
		logger:   internal.NewLogger("Dashboard"),
	}
}

// Dataset returns the cleaned dataset the service filters
func (s *Service) Dataset() *dataset.Dataset { return s.ds }

// Sessions returns the session manager
func (s *Service) Sessions() *session.Manager { return s.sessions }

// ParseCriteria reads min_age, max_age, gender and condition from values.
// Absent or unparseable fields fall back to the dataset defaults and age
// bounds are clamped into the observed range.
func (s *Service) ParseCriteria(values url.Values) (dataset.FilterCriteria, error) {
	c := s.ds.DefaultCriteria()
	if n, err := parseAge(values.Get("min_age")); err == nil {
		c.Ages.Min = n
	}
	if n, err := parseAge(values.Get("max_age")); err == nil {
		c.Ages.Max = n
	}
	if v := values.Get("gender"); v != "" {
		c.Gender = v
	}
	if v := values.Get("condition"); v != "" {
		c.Condition = v
	}

	c = s.ds.Clamp(c)
	if err := c.Validate(); err != nil {
		return c, errors.WithCode(errors.CodeInvalidInput, err)
	}
	return c, nil
}

// parseAge reads a decimal age. Leading zeros are dropped first since cast
// would otherwise read "010" as octal.
func parseAge(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errors.InvalidInput("age is empty")
	}
	digits := strings.TrimLeft(v, "0")
	if digits == "" || strings.HasPrefix(digits, ".") {
		digits = "0" + digits
	}
	return cast.ToIntE(digits)
}

// Filter runs both filter paths. The store result is nil when no store is
// configured. A membership mismatch between the two is logged.
func (s *Service) Filter(ctx context.Context, criteria dataset.FilterCriteria) (memory, stored []dataset.Record, err error) {
	if err := criteria.Validate(); err != nil {
		return nil, nil, errors.WithCode(errors.CodeInvalidInput, err)
	}

	memory = analysis.FilterRecords(s.ds, criteria)
	if s.store == nil {
		return memory, nil, nil
	}

	stored, err = s.store.Filter(ctx, criteria)
	if err != nil {
		return nil, nil, errors.Wrap(err, "store filter failed")
	}
	if !analysis.SameMembers(memory, stored) {
		s.logger.Warn("filter paths disagree for %+v: memory=%d store=%d", criteria, len(memory), len(stored))
	}
	return memory, stored, nil
}

// Home computes the home page for criteria
func (s *Service) Home(ctx context.Context, criteria dataset.FilterCriteria) (*HomeView, error) {
	memory, stored, err := s.Filter(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = memory
	}

	agg := analysis.Aggregate(memory)
	view := &HomeView{
		Criteria:      criteria,
		Ages:          s.ds.Ages,
		Genders:       s.ds.Genders,
		Conditions:    s.ds.Conditions,
		Patients:      stored,
		Filtered:      memory,
		Aggregation:   agg,
		EffectiveText: EffectiveText(agg),
		Summary:       analysis.Summarize(memory),
		Charts:        analysis.BuildCharts(memory, agg),
	}

	s.metrics.ObserveInteraction("home", len(memory))
	s.logger.Debug("home %+v: %d records, effective=%v", criteria, len(memory), agg.Effective)
	return view, nil
}

// EffectiveText is the sentence announcing the most effective drugs
func EffectiveText(agg domainStats.Aggregation) string {
	if agg.NoData || len(agg.Effective) == 0 {
		return domainStats.NoDataEffectiveDrugs
	}
	return fmt.Sprintf("The most effective drug(s) for the selected conditions are: %s", strings.Join(agg.Effective, ", "))
}

// Content returns a static information page
func (s *Service) Content(page domainContent.Page, condition string) content.View {
	s.metrics.ObserveInteraction(string(page), -1)
	return s.catalog.Lookup(page, condition)
}

// ContentConditions lists the condition choices of the content pages, the
// dataset's conditions in order of appearance
func (s *Service) ContentConditions() []string {
	return s.ds.Conditions
}

// RequestDownload starts the export flow for a session
func (s *Service) RequestDownload(sessionID string) session.State {
	st, ok := s.sessions.RequestDownload(sessionID)
	if !ok {
		st = s.sessions.Create()
		st, _ = s.sessions.RequestDownload(st.ID)
	}
	return st
}

// Login checks credentials and authenticates the session on success,
// starting one when sessionID is unknown. Failed attempts leave a known
// session waiting for credentials and never start a new one.
func (s *Service) Login(ctx context.Context, sessionID, username, password string) (LoginResult, error) {
	st, known := s.sessions.Get(sessionID)
	if s.auth == nil {
		s.metrics.ObserveLogin("invalid")
		return LoginResult{Session: st, Message: auth.MsgInvalidCredentials}, nil
	}

	err := s.auth.Authenticate(ctx, username, password)
	switch {
	case err == nil:
		if !known {
			st = s.sessions.Create()
		}
		st, _ = s.sessions.MarkAuthenticated(st.ID)
		s.metrics.ObserveLogin("success")
		s.logger.Info("session %s authenticated as %s", st.ID, username)
		return LoginResult{Session: st, OK: true, Message: auth.MsgLoginSuccessful}, nil
	case errors.HasCode(err, errors.CodeUnauthorized):
		result := "invalid"
		if stderrors.Is(err, auth.ErrCredentialsRequired) {
			result = "empty"
		}
		s.metrics.ObserveLogin(result)
		if known {
			st, _ = s.sessions.RequestDownload(st.ID)
		}
		return LoginResult{Session: st, Message: err.Error()}, nil
	default:
		s.metrics.ObserveLogin("error")
		return LoginResult{Session: st}, err
	}
}

// Export encodes the in-memory filtered set for an authenticated session
func (s *Service) Export(ctx context.Context, sessionID string, criteria dataset.FilterCriteria, format export.Format) ([]byte, error) {
	st, ok := s.sessions.Get(sessionID)
	if !ok || !st.Authenticated {
		return nil, errors.Unauthorized("login required to download filtered data")
	}

	memory, _, err := s.Filter(ctx, criteria)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, memory); err != nil {
		return nil, err
	}
	s.metrics.ObserveExport(string(format))
	s.logger.Info("session %s exported %d records as %s", st.ID, len(memory), format)
	return buf.Bytes(), nil
}
