// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can fail in one line. The log line gets the real error; the
// page gets a localized, non-technical message.
type ErrorLogger struct {
	log *zap.Logger
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogBadRequest logs a warning and renders a 400 page.
// userMsgKey is an i18n message key; unknown keys render as-is.
func (el *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsgKey, backURL string) {
	el.log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	renderError(w, r, http.StatusBadRequest, userMsgKey, backURL)
}

// LogServerError logs an error and renders a 500 page.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, backURL string) {
	el.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	renderError(w, r, http.StatusInternalServerError, "error.generic", backURL)
}

// LogNotFound renders a 404 page without logging; missing ids are
// routine (stale links, typed URLs) and would only add noise.
func (el *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, backURL string) {
	renderError(w, r, http.StatusNotFound, "error.notFound", backURL)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msgKey, backURL string) {
	base := viewdata.NewBaseVM(r, "", backURL)
	base.Title = base.L.T("error.title")
	if backURL != "" {
		base.BackURL = backURL
	}

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", pageData{
		BaseVM:  base,
		Message: base.L.T(msgKey),
	})
}
