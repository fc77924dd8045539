package adminevents

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	eventstore "github.com/byuhkorea/alumnihub/internal/app/store/events"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/formutil"
	"github.com/byuhkorea/alumnihub/internal/app/system/i18n"
	"github.com/byuhkorea/alumnihub/internal/app/system/inputval"
	"github.com/byuhkorea/alumnihub/internal/app/system/navigation"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/upload"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// backFromForm resolves where a saved or deleted event returns to:
// the page the admin came from (e.g. the attendee list), but only
// within the events console and never another action page.
func backFromForm(r *http.Request) string {
	return navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/admin/events",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/events",
	})
}

type eventInput struct {
	Title       string `validate:"required,max=300" label:"form.title"`
	Date        string `validate:"required,datetime=2006-01-02" label:"form.date"`
	Time        string `validate:"max=50" label:"form.time"`
	Location    string `validate:"required,max=300" label:"form.location"`
	Description string `validate:"required,max=5000" label:"form.description"`
	// Questions arrive one per line from a textarea.
	Questions string `validate:"max=2000" label:"admin.rsvpQuestions"`
}

type eventFormData struct {
	formutil.Base
	Input    eventInput
	ImageURL string
	IsNew    bool
	EventID  string
}

// loadEvent resolves {id} to an event, rendering not-found on failure.
func (h *Handler) loadEvent(w http.ResponseWriter, r *http.Request) (*models.Event, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/admin/events")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	event, err := h.Events.Get(ctx, id)
	if err != nil {
		if err == eventstore.ErrNotFound {
			h.ErrLog.LogNotFound(w, r, "/admin/events")
		} else {
			h.ErrLog.LogServerError(w, r, "admin events: get failed", err, "/admin/events")
		}
		return nil, false
	}
	return event, true
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/events/new · GET /admin/events/{id}/edit                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := eventFormData{IsNew: true}
	formutil.SetBase(&data.Base, r, "New Event", "/admin/events")
	data.Title = data.L.T("admin.newEvent")
	templates.Render(w, r, "admin_event_form", data)
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	event, ok := h.loadEvent(w, r)
	if !ok {
		return
	}

	data := eventFormData{
		Input: eventInput{
			Title:       event.Title,
			Date:        event.Date.Format("2006-01-02"),
			Time:        event.Time,
			Location:    event.Location,
			Description: event.Description,
			Questions:   strings.Join(event.RSVPQuestions, "\n"),
		},
		ImageURL: event.ImageURL,
		EventID:  event.ID.Hex(),
	}
	formutil.SetBase(&data.Base, r, "Edit Event", "/admin/events")
	data.Title = data.L.T("admin.editEvent")
	templates.Render(w, r, "admin_event_form", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/events/new · POST /admin/events/{id}/edit                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleNewPost(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	input, img, errMsg := h.parseEventForm(r)
	if errMsg != "" {
		h.rerenderForm(w, r, input, img.URL, true, "", errMsg)
		return
	}

	date, _ := time.Parse("2006-01-02", input.Date)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	createdBy := ""
	if u != nil {
		createdBy = u.UID
	}

	_, err := h.Events.Create(ctx, models.Event{
		Title:         input.Title,
		Date:          date,
		Time:          input.Time,
		Location:      input.Location,
		Description:   input.Description,
		ImageURL:      img.URL,
		StoragePath:   img.StoragePath,
		RSVPQuestions: splitQuestions(input.Questions),
		CreatedBy:     createdBy,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin events: create failed", err, "/admin/events")
		return
	}
	h.Cache.Invalidate(cache.KeyEvents)

	http.Redirect(w, r, backFromForm(r), http.StatusSeeOther)
}

func (h *Handler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	event, ok := h.loadEvent(w, r)
	if !ok {
		return
	}

	input, img, errMsg := h.parseEventForm(r)
	if errMsg != "" {
		h.rerenderForm(w, r, input, event.ImageURL, false, event.ID.Hex(), errMsg)
		return
	}

	date, _ := time.Parse("2006-01-02", input.Date)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Events.Update(ctx, event.ID, eventstore.Update{
		Title:         input.Title,
		Date:          date,
		Time:          input.Time,
		Location:      input.Location,
		Description:   input.Description,
		ImageURL:      img.URL,
		StoragePath:   img.StoragePath,
		RSVPQuestions: splitQuestions(input.Questions),
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin events: update failed", err, "/admin/events")
		return
	}
	h.Cache.Invalidate(cache.KeyEvents)

	http.Redirect(w, r, backFromForm(r), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /admin/events/{id}/delete                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	event, ok := h.loadEvent(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Blob first, best effort; the record delete is unconditional.
	if event.StoragePath != "" {
		if err := h.Blob.Delete(ctx, event.StoragePath); err != nil {
			h.Log.Warn("admin events: image delete failed",
				zap.String("path", event.StoragePath), zap.Error(err))
		}
	}

	if err := h.Events.Delete(ctx, event.ID); err != nil && err != eventstore.ErrNotFound {
		h.ErrLog.LogServerError(w, r, "admin events: delete failed", err, "/admin/events")
		return
	}
	h.Cache.Invalidate(cache.KeyEvents)

	http.Redirect(w, r, backFromForm(r), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) parseEventForm(r *http.Request) (eventInput, upload.Result, string) {
	loc := i18n.FromRequest(r)

	if err := r.ParseMultipartForm(upload.MaxEventImage + 64<<10); err != nil {
		return eventInput{}, upload.Result{}, loc.T("error.generic")
	}

	input := eventInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Date:        strings.TrimSpace(r.FormValue("date")),
		Time:        strings.TrimSpace(r.FormValue("time")),
		Location:    strings.TrimSpace(r.FormValue("location")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Questions:   r.FormValue("questions"),
	}

	if res := inputval.Validate(input); res.HasErrors() {
		return input, upload.Result{}, res.First().Message(loc.T)
	}

	var img upload.Result
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
		defer cancel()

		img, err = upload.Image(ctx, h.Blob, "events", file, header, upload.MaxEventImage)
		if err != nil {
			if v, ok := upload.IsValidation(err); ok {
				return input, upload.Result{}, loc.T(v.MessageKey)
			}
			h.Log.Error("admin events: image upload failed", zap.Error(err))
			return input, upload.Result{}, loc.T("error.generic")
		}
	}

	return input, img, ""
}

func (h *Handler) rerenderForm(w http.ResponseWriter, r *http.Request, input eventInput, imageURL string, isNew bool, id, errMsg string) {
	data := eventFormData{Input: input, ImageURL: imageURL, IsNew: isNew, EventID: id}
	title := "Edit Event"
	if isNew {
		title = "New Event"
	}
	formutil.SetBase(&data.Base, r, title, "/admin/events")
	if isNew {
		data.Title = data.L.T("admin.newEvent")
	} else {
		data.Title = data.L.T("admin.editEvent")
	}
	data.SetError(errMsg)
	templates.Render(w, r, "admin_event_form", data)
}

// splitQuestions turns textarea lines into the question list, dropping
// blank lines.
func splitQuestions(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if q := strings.TrimSpace(line); q != "" {
			out = append(out, q)
		}
	}
	return out
}
