package ui

import (
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	domainContent "drugdash/domain/content"
	"drugdash/domain/dataset"
	"drugdash/internal/content"
	"drugdash/internal/dashboard"
	"drugdash/internal/errors"
	"drugdash/internal/export"
	"drugdash/internal/session"

	"github.com/gin-gonic/gin"
)

// homePage is the data of home.html
type homePage struct {
	Title          string
	Page           string
	View           *dashboard.HomeView
	PatientColumns []dataset.Field
	Session        session.State
	Query          template.URL
	LoginMessage   string
	LoginOK        bool
}

// contentPage is the data of content.html
type contentPage struct {
	Title      string
	Page       string
	View       content.View
	Conditions []string
}

func (s *Server) handleHome(c *gin.Context) {
	s.renderHome(c, http.StatusOK, "", false)
}

// handleDownload opens the login prompt for the current session
func (s *Server) handleDownload(c *gin.Context) {
	st := s.svc.RequestDownload(sessionID(c))
	s.bindSession(c, st.ID)
	c.Redirect(http.StatusSeeOther, "/?"+criteriaQuery(c))
}

func (s *Server) handleLogin(c *gin.Context) {
	result, err := s.svc.Login(c.Request.Context(), sessionID(c), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		log.Printf("[Login] Credential check failed: %v", err)
		s.renderError(c, err)
		return
	}
	s.bindSession(c, result.Session.ID)

	status := http.StatusOK
	if !result.OK {
		status = http.StatusUnauthorized
	}
	s.renderHome(c, status, result.Message, result.OK)
}

// handleExport serves filtered_data.csv or filtered_data.xlsx to authenticated sessions
func (s *Server) handleExport(c *gin.Context) {
	file := c.Param("file")
	name, ext, _ := strings.Cut(file, ".")
	format, err := export.ParseFormat(ext)
	if err != nil || name != export.Filename {
		c.String(http.StatusNotFound, "unknown export %q", file)
		return
	}

	criteria, err := s.svc.ParseCriteria(requestValues(c))
	if err != nil {
		s.renderError(c, err)
		return
	}

	data, err := s.svc.Export(c.Request.Context(), sessionID(c), criteria, format)
	if err != nil {
		if errors.HasCode(err, errors.CodeUnauthorized) {
			st := s.svc.RequestDownload(sessionID(c))
			s.bindSession(c, st.ID)
			s.renderHome(c, http.StatusForbidden, "", false)
			return
		}
		s.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+format.FileName())
	c.Data(http.StatusOK, format.ContentType(), data)
}

func (s *Server) handleSymptoms(c *gin.Context) {
	s.renderContent(c, domainContent.PageSymptoms)
}

func (s *Server) handlePrecautions(c *gin.Context) {
	s.renderContent(c, domainContent.PagePrecautions)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"records":  s.svc.Dataset().Len(),
		"sessions": s.svc.Sessions().Len(),
	})
}

func (s *Server) renderHome(c *gin.Context, status int, loginMessage string, loginOK bool) {
	criteria, err := s.svc.ParseCriteria(requestValues(c))
	if err != nil {
		s.renderError(c, err)
		return
	}

	view, err := s.svc.Home(c.Request.Context(), criteria)
	if err != nil {
		s.renderError(c, err)
		return
	}

	st, _ := s.svc.Sessions().Get(sessionID(c))
	s.renderTemplate(c, status, "home.html", homePage{
		Title:          "Drug Effectiveness Analysis Dashboard",
		Page:           "home",
		View:           view,
		PatientColumns: dashboard.PatientColumns,
		Session:        st,
		Query:          encodeCriteria(criteria),
		LoginMessage:   loginMessage,
		LoginOK:        loginOK,
	})
}

func (s *Server) renderContent(c *gin.Context, page domainContent.Page) {
	conditions := s.svc.ContentConditions()
	condition, ok := c.GetQuery("condition")
	if !ok && len(conditions) > 0 {
		condition = conditions[0]
	}

	s.renderTemplate(c, http.StatusOK, "content.html", contentPage{
		Title:      "Drug Effectiveness Analysis Dashboard",
		Page:       string(page),
		View:       s.svc.Content(page, condition),
		Conditions: conditions,
	})
}

// renderError maps an application error to a status and a plain message
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.HasCode(err, errors.CodeInvalidInput):
		status = http.StatusBadRequest
	case errors.HasCode(err, errors.CodeUnauthorized):
		status = http.StatusForbidden
	case errors.HasCode(err, errors.CodeNotFound):
		status = http.StatusNotFound
	default:
		log.Printf("[UI] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.String(status, "%s", err.Error())
}

// requestValues merges query and form values
func requestValues(c *gin.Context) url.Values {
	if err := c.Request.ParseForm(); err != nil {
		return c.Request.URL.Query()
	}
	return c.Request.Form
}

func criteriaQuery(c *gin.Context) string {
	values := requestValues(c)
	out := url.Values{}
	for _, key := range []string{"min_age", "max_age", "gender", "condition"} {
		if v := values.Get(key); v != "" {
			out.Set(key, v)
		}
	}
	return out.Encode()
}

func encodeCriteria(c dataset.FilterCriteria) template.URL {
	v := url.Values{}
	v.Set("min_age", strconv.Itoa(c.Ages.Min))
	v.Set("max_age", strconv.Itoa(c.Ages.Max))
	v.Set("gender", c.Gender)
	v.Set("condition", c.Condition)
	return template.URL(v.Encode())
}
