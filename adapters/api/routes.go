package api

import (
	"net/http"
	"strings"

	domainContent "drugdash/domain/content"
	"drugdash/internal/dashboard"
	"drugdash/internal/errors"
	"drugdash/internal/export"
	"drugdash/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

// TokenHeader carries the session token issued by /api/login
const TokenHeader = "X-Session-Token"

// Handler serves the JSON API over the dashboard pipeline
type Handler struct {
	svc *dashboard.Service
}

// NewRouter builds the chi router of the JSON API. m may be nil.
func NewRouter(svc *dashboard.Service, m *metrics.Metrics) *chi.Mux {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", TokenHeader},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(render.SetContentType(render.ContentTypeJSON))
			r.Get("/filters", h.filters)
			r.Get("/records", h.records)
			r.Get("/aggregate", h.aggregate)
			r.Get("/summary", h.summary)
			r.Get("/charts", h.charts)
			r.Get("/content/{page}/{condition}", h.content)
			r.Post("/login", h.login)
		})
		r.Get("/export.{format}", h.export)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		success(w, r, "ok", map[string]int{"records": svc.Dataset().Len()})
	})
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}

func (h *Handler) filters(w http.ResponseWriter, r *http.Request) {
	ds := h.svc.Dataset()
	success(w, r, "ok", map[string]interface{}{
		"ages":       ds.Ages,
		"genders":    ds.Genders,
		"conditions": ds.Conditions,
		"defaults":   ds.DefaultCriteria(),
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) (*dashboard.HomeView, bool) {
	criteria, err := h.svc.ParseCriteria(r.URL.Query())
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	view, err := h.svc.Home(r.Context(), criteria)
	if err != nil {
		fail(w, r, err)
		return nil, false
	}
	return view, true
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) {
	if view, ok := h.home(w, r); ok {
		success(w, r, "ok", map[string]interface{}{
			"criteria": view.Criteria,
			"count":    len(view.Patients),
			"records":  view.Patients,
		})
	}
}

func (h *Handler) aggregate(w http.ResponseWriter, r *http.Request) {
	if view, ok := h.home(w, r); ok {
		success(w, r, view.EffectiveText, view.Aggregation)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if view, ok := h.home(w, r); ok {
		msg := "ok"
		if view.Summary.NoData {
			msg = view.Summary.Message
		}
		success(w, r, msg, view.Summary)
	}
}

func (h *Handler) charts(w http.ResponseWriter, r *http.Request) {
	if view, ok := h.home(w, r); ok {
		success(w, r, "ok", view.Charts)
	}
}

func (h *Handler) content(w http.ResponseWriter, r *http.Request) {
	page, err := domainContent.ParsePage(chi.URLParam(r, "page"))
	if err != nil {
		fail(w, r, errors.NotFound("content page"))
		return
	}
	v := h.svc.Content(page, chi.URLParam(r, "condition"))
	msg := "ok"
	if !v.Found() {
		msg = v.Message
	}
	success(w, r, msg, v)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login authenticates a new token session; the token is the session id
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, errors.InvalidInput("malformed login request"))
		return
	}

	result, err := h.svc.Login(r.Context(), r.Header.Get(TokenHeader), req.Username, req.Password)
	if err != nil {
		fail(w, r, err)
		return
	}
	if !result.OK {
		fail(w, r, errors.Unauthorized(result.Message))
		return
	}
	success(w, r, result.Message, map[string]string{"token": result.Session.ID})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(strings.ToLower(chi.URLParam(r, "format")))
	if err != nil {
		fail(w, r, errors.NotFound("export format"))
		return
	}
	criteria, err := h.svc.ParseCriteria(r.URL.Query())
	if err != nil {
		fail(w, r, err)
		return
	}

	data, err := h.svc.Export(r.Context(), r.Header.Get(TokenHeader), criteria, format)
	if err != nil {
		if errors.HasCode(err, errors.CodeUnauthorized) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, Response{Status: http.StatusForbidden, Code: errors.CodeUnauthorized, Message: err.Error()})
			return
		}
		fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+format.FileName())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
