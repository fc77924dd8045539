package adminevents

import (
	"context"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	eventstore "github.com/byuhkorea/alumnihub/internal/app/store/events"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/blobstore"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler manages events from the admin console.
type Handler struct {
	Events *eventstore.Store
	Users  *userstore.Store
	Blob   blobstore.Store
	Cache  *cache.Cache
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, blob blobstore.Store, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Events: eventstore.New(db),
		Users:  userstore.New(db),
		Blob:   blob,
		Cache:  c,
		ErrLog: errLog,
		Log:    logger,
	}
}

// GET /admin/events
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin events: list failed", err, "/admin")
		return
	}

	data := struct {
		viewdata.BaseVM
		Events []models.Event
	}{
		BaseVM: viewdata.NewBaseVM(r, "Manage Events", "/admin"),
		Events: events,
	}
	data.Title = data.L.T("admin.events")

	templates.Render(w, r, "admin_events_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin/events/{id}/attendees                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// AttendeeRow pairs an attendee with their positional answers. Name
// and Email are blank when the profile no longer exists.
type AttendeeRow struct {
	UID     string
	Name    string
	Email   string
	Answers []string
}

func (h *Handler) ServeAttendees(w http.ResponseWriter, r *http.Request) {
	event, ok := h.loadEvent(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows := make([]AttendeeRow, 0, len(event.Attendees))
	for _, uid := range event.Attendees {
		row := AttendeeRow{UID: uid, Answers: event.RSVPResponses[uid]}
		if p, err := h.Users.Get(ctx, uid); err == nil {
			row.Name = p.Name
			row.Email = p.Email
		}
		rows = append(rows, row)
	}

	data := struct {
		viewdata.BaseVM
		Event     *models.Event
		Attendees []AttendeeRow
	}{
		BaseVM:    viewdata.NewBaseVM(r, "Attendees", "/admin/events"),
		Event:     event,
		Attendees: rows,
	}
	data.Title = data.L.T("admin.attendees")

	templates.Render(w, r, "admin_events_attendees", data)
}
