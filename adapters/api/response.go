package api

import (
	"log"
	"net/http"

	"drugdash/internal/errors"

	"github.com/go-chi/render"
)

// Response is the envelope of every JSON reply
type Response struct {
	Status  int         `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(w http.ResponseWriter, r *http.Request, message string, data interface{}) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, Response{Status: http.StatusOK, Message: message, Data: data})
}

// fail maps err to an HTTP status by its application code
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch code {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeUnauthorized:
		status = http.StatusUnauthorized
	case errors.CodeNotFound:
		status = http.StatusNotFound
	default:
		log.Printf("[API] %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	render.Status(r, status)
	render.JSON(w, r, Response{Status: status, Code: code, Message: err.Error()})
}
