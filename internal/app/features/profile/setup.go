package profile

import (
	"context"
	"net/http"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/formutil"
	"github.com/byuhkorea/alumnihub/internal/app/system/i18n"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

func localeOf(r *http.Request) *i18n.Locale {
	return i18n.FromRequest(r)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile/setup – first-run profile creation                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeSetup(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// A profile can only be created once; setup revisits just go home.
	if u.HasProfile {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	data := profileFormData{
		Input:    profileInput{Name: u.Name},
		PhotoURL: u.PhotoURL,
		IsSetup:  true,
	}
	formutil.SetBase(&data.Base, r, "Profile Setup", "/")
	data.Title = data.L.T("profile.setupTitle")

	templates.Render(w, r, "profile_form", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /profile/setup                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSetupPost(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if u.HasProfile {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	input, photoURL, errMsg := h.parseProfileForm(w, r)
	if errMsg != "" {
		data := profileFormData{Input: input, PhotoURL: u.PhotoURL, IsSetup: true}
		formutil.SetBase(&data.Base, r, "Profile Setup", "/")
		data.Title = data.L.T("profile.setupTitle")
		data.SetError(errMsg)
		templates.Render(w, r, "profile_form", data)
		return
	}

	if photoURL == "" {
		photoURL = u.PhotoURL
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Role comes out as "member" no matter what arrives in the form;
	// the store enforces it a second time.
	_, err := h.Users.Create(ctx, models.UserProfile{
		UID:             u.UID,
		Name:            input.Name,
		Email:           u.Email,
		Phone:           input.Phone,
		Company:         input.Company,
		Position:        input.Position,
		LinkedIn:        input.LinkedIn,
		GraduationYear:  input.GraduationYear,
		ProfileImageURL: photoURL,
	})
	if err != nil {
		if err == userstore.ErrExists {
			// Raced against another tab; the profile is there, move on.
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "profile setup: create failed", err, "/")
		return
	}
	h.Cache.Invalidate(cache.KeyDirectory)

	h.Log.Info("profile created", zap.String("uid", u.UID))
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
