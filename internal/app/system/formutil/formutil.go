// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form is re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// Example usage:
//
//	type eventFormData struct {
//		formutil.Base
//		TitleKO string
//		TitleEN string
//	}
//
//	// In your handler:
//	data := eventFormData{TitleKO: titleKO, TitleEN: titleEN}
//	formutil.SetBase(&data.Base, r, "Edit Event", "/admin/events")
//	data.SetError(data.L.T("form.required"))
//	templates.Render(w, r, "admin_event_form", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
)

// Base contains the common fields for form pages. It embeds the shared
// view model so forms get locale, user context, and the CSRF token like
// any other page, plus Error/Success slots for re-renders.
type Base struct {
	viewdata.BaseVM
	Error   template.HTML
	Success template.HTML
}

// SetBase populates the embedded view model from the request context.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(r, title, backDefault)
}

// SetError sets the error message shown above the form.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}

// SetSuccess sets the success message shown above the form.
func (b *Base) SetSuccess(msg string) {
	b.Success = template.HTML(msg)
}
