package events

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	eventstore "github.com/byuhkorea/alumnihub/internal/app/store/events"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /events/{id}/rsvp – attend (with optional answers)                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRSVP(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/events")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "rsvp: parse form failed", err, "error.generic", "/events")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	event, err := h.Events.Get(ctx, id)
	if err != nil {
		if err == eventstore.ErrNotFound {
			h.ErrLog.LogNotFound(w, r, "/events")
			return
		}
		h.ErrLog.LogServerError(w, r, "rsvp: get event failed", err, "/events")
		return
	}

	// Answers are positional: answer_0..answer_N match the event's
	// question list. Missing answers come through as empty strings so
	// positions stay aligned.
	var answers []string
	if event.HasQuestions() {
		answers = make([]string, len(event.RSVPQuestions))
		for i := range event.RSVPQuestions {
			answers[i] = strings.TrimSpace(r.FormValue(fmt.Sprintf("answer_%d", i)))
		}
	}

	if err := h.Events.SetRSVP(ctx, id, u.UID, answers); err != nil {
		h.ErrLog.LogServerError(w, r, "rsvp: save failed", err, "/events/"+id.Hex())
		return
	}
	h.Cache.Invalidate(cache.KeyEvents)

	http.Redirect(w, r, "/events/"+id.Hex(), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /events/{id}/rsvp/cancel                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCancelRSVP(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/events")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Events.CancelRSVP(ctx, id, u.UID); err != nil && err != eventstore.ErrNotFound {
		h.ErrLog.LogServerError(w, r, "rsvp: cancel failed", err, "/events/"+id.Hex())
		return
	}
	h.Cache.Invalidate(cache.KeyEvents)

	http.Redirect(w, r, "/events/"+id.Hex(), http.StatusSeeOther)
}
