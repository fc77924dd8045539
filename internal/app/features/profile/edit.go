package profile

import (
	"context"
	"net/http"
	"strings"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	userstore "github.com/byuhkorea/alumnihub/internal/app/store/users"
	"github.com/byuhkorea/alumnihub/internal/app/system/auth"
	"github.com/byuhkorea/alumnihub/internal/app/system/formutil"
	"github.com/byuhkorea/alumnihub/internal/app/system/inputval"
	"github.com/byuhkorea/alumnihub/internal/app/system/timeouts"
	"github.com/byuhkorea/alumnihub/internal/app/system/upload"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type profileInput struct {
	Name           string `validate:"required,max=200" label:"profile.name"`
	Phone          string `validate:"required,phone" label:"profile.phone"`
	Company        string `validate:"max=200" label:"profile.company"`
	Position       string `validate:"max=200" label:"profile.position"`
	LinkedIn       string `validate:"omitempty,http_url,max=500" label:"profile.linkedIn"`
	GraduationYear string `validate:"omitempty,len=4,numeric" label:"profile.graduationYear"`
}

type profileFormData struct {
	formutil.Base
	Input    profileInput
	PhotoURL string
	IsSetup  bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile/edit                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Users.Get(ctx, u.UID)
	if err != nil {
		if err == userstore.ErrNotFound {
			http.Redirect(w, r, "/profile/setup", http.StatusSeeOther)
			return
		}
		h.ErrLog.LogServerError(w, r, "profile edit: get failed", err, "/profile")
		return
	}

	data := profileFormData{
		Input: profileInput{
			Name:           p.Name,
			Phone:          p.Phone,
			Company:        p.Company,
			Position:       p.Position,
			LinkedIn:       p.LinkedIn,
			GraduationYear: p.GraduationYear,
		},
		PhotoURL: p.ProfileImageURL,
	}
	formutil.SetBase(&data.Base, r, "Edit Profile", "/profile")
	data.Title = data.L.T("profile.editTitle")

	templates.Render(w, r, "profile_form", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /profile/edit                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	input, photoURL, errMsg := h.parseProfileForm(w, r)
	if errMsg != "" {
		data := profileFormData{Input: input, PhotoURL: photoURL}
		formutil.SetBase(&data.Base, r, "Edit Profile", "/profile")
		data.Title = data.L.T("profile.editTitle")
		data.SetError(errMsg)
		templates.Render(w, r, "profile_form", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Users.Update(ctx, u.UID, userstore.ProfileUpdate{
		Name:            input.Name,
		Phone:           input.Phone,
		Company:         input.Company,
		Position:        input.Position,
		LinkedIn:        input.LinkedIn,
		GraduationYear:  input.GraduationYear,
		ProfileImageURL: photoURL,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "profile edit: update failed", err, "/profile")
		return
	}
	h.Cache.Invalidate(cache.KeyDirectory, cache.KeyLeadership)

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// parseProfileForm reads the shared profile form: text fields plus the
// optional photo upload. Returns the echoed input, the uploaded photo
// URL ("" when none was sent), and a user-facing error message.
func (h *Handler) parseProfileForm(w http.ResponseWriter, r *http.Request) (profileInput, string, string) {
	loc := localeOf(r)

	if err := r.ParseMultipartForm(upload.MaxProfileImage + 64<<10); err != nil {
		return profileInput{}, "", loc.T("error.generic")
	}

	input := profileInput{
		Name:           strings.TrimSpace(r.FormValue("name")),
		Phone:          strings.TrimSpace(r.FormValue("phone")),
		Company:        strings.TrimSpace(r.FormValue("company")),
		Position:       strings.TrimSpace(r.FormValue("position")),
		LinkedIn:       strings.TrimSpace(r.FormValue("linked_in")),
		GraduationYear: strings.TrimSpace(r.FormValue("graduation_year")),
	}

	if res := inputval.Validate(input); res.HasErrors() {
		return input, "", res.First().Message(loc.T)
	}

	photoURL := ""
	file, header, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
		defer cancel()

		result, upErr := upload.Image(ctx, h.Blob, "profile", file, header, upload.MaxProfileImage)
		if upErr != nil {
			if v, ok := upload.IsValidation(upErr); ok {
				return input, "", loc.T(v.MessageKey)
			}
			h.Log.Error("profile: photo upload failed", zap.Error(upErr))
			return input, "", loc.T("error.generic")
		}
		photoURL = result.URL
	}

	return input, photoURL, ""
}
