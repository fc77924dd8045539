package events

import (
	"context"
	"net/http"

	uierrors "github.com/byuhkorea/alumnihub/internal/app/features/errors"
	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	eventstore "github.com/byuhkorea/alumnihub/internal/app/store/events"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/viewdata"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public event pages and member RSVPs.
type Handler struct {
	Events *eventstore.Store
	Cache  *cache.Cache
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, c *cache.Cache, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Events: eventstore.New(db),
		Cache:  c,
		ErrLog: errLog,
		Log:    logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /events – list                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	events, err := cache.GetOrLoad(ctx, h.Cache, cache.KeyEvents, cache.TTLFrequent,
		func(ctx context.Context) ([]models.Event, error) { return h.Events.List(ctx) })
	if err != nil {
		h.ErrLog.LogServerError(w, r, "events: list failed", err, "/")
		return
	}

	data := struct {
		viewdata.BaseVM
		Events []models.Event
	}{
		BaseVM: viewdata.NewBaseVM(r, "Events", "/"),
		Events: events,
	}
	data.Title = data.L.T("nav.events")

	templates.Render(w, r, "events_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /events/{id} – detail                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/events")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// Detail reads go to the store directly: the attendee list must be
	// current for the viewer's own RSVP state, so the list cache is not
	// consulted here.
	event, err := h.Events.Get(ctx, id)
	if err != nil {
		if err == eventstore.ErrNotFound {
			h.ErrLog.LogNotFound(w, r, "/events")
			return
		}
		h.ErrLog.LogServerError(w, r, "events: get failed", err, "/events")
		return
	}

	attending := false
	var myAnswers []string
	if u, ok := auth.CurrentUser(r); ok {
		attending = event.HasAttendee(u.UID)
		myAnswers = event.RSVPResponses[u.UID]
	}

	data := struct {
		viewdata.BaseVM
		Event     *models.Event
		Attending bool
		MyAnswers []string
	}{
		BaseVM:    viewdata.NewBaseVM(r, event.Title, "/events"),
		Event:     event,
		Attending: attending,
		MyAnswers: myAnswers,
	}

	templates.Render(w, r, "events_detail", data)
}
