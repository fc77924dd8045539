package adminnews

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/store/cache"
	newsstore "github.com/byuhkorea/alumnihub/internal/app/store/news"
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

// backFromForm mirrors the events console: the return target must stay
// inside the news console and off the action pages.
func backFromForm(r *http.Request) string {
	return navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/admin/news",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/news",
	})
}

type newsInput struct {
	Title   string `validate:"required,max=300" label:"form.title"`
	Date    string `validate:"required,datetime=2006-01-02" label:"form.date"`
	Summary string `validate:"max=500" label:"admin.summary"`
	Content string `validate:"required,max=20000" label:"form.description"`
	Link    string `validate:"omitempty,http_url,max=500" label:"admin.externalLink"`
}

type newsFormData struct {
	formutil.Base
	Input    newsInput
	ImageURL string
	IsNew    bool
	NewsID   string
}

func (h *Handler) loadItem(w http.ResponseWriter, r *http.Request) (*models.NewsItem, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "/admin/news")
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.News.Get(ctx, id)
	if err != nil {
		if err == newsstore.ErrNotFound {
			h.ErrLog.LogNotFound(w, r, "/admin/news")
		} else {
			h.ErrLog.LogServerError(w, r, "admin news: get failed", err, "/admin/news")
		}
		return nil, false
	}
	return item, true
}

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := newsFormData{
		Input: newsInput{Date: time.Now().Format("2006-01-02")},
		IsNew: true,
	}
	formutil.SetBase(&data.Base, r, "New News Item", "/admin/news")
	data.Title = data.L.T("admin.newNews")
	templates.Render(w, r, "admin_news_form", data)
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	data := newsFormData{
		Input: newsInput{
			Title:   item.Title,
			Date:    item.Date.Format("2006-01-02"),
			Summary: item.Summary,
			Content: item.Content,
			Link:    item.Link,
		},
		ImageURL: item.ImageURL,
		NewsID:   item.ID.Hex(),
	}
	formutil.SetBase(&data.Base, r, "Edit News Item", "/admin/news")
	data.Title = data.L.T("admin.editNews")
	templates.Render(w, r, "admin_news_form", data)
}

func (h *Handler) HandleNewPost(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	input, img, errMsg := h.parseNewsForm(r)
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

	_, err := h.News.Create(ctx, models.NewsItem{
		Title:       input.Title,
		Date:        date,
		Summary:     input.Summary,
		Content:     input.Content,
		Link:        input.Link,
		ImageURL:    img.URL,
		StoragePath: img.StoragePath,
		CreatedBy:   createdBy,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin news: create failed", err, "/admin/news")
		return
	}
	h.Cache.Invalidate(cache.KeyNews)

	http.Redirect(w, r, backFromForm(r), http.StatusSeeOther)
}

func (h *Handler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	input, img, errMsg := h.parseNewsForm(r)
	if errMsg != "" {
		h.rerenderForm(w, r, input, item.ImageURL, false, item.ID.Hex(), errMsg)
		return
	}

	date, _ := time.Parse("2006-01-02", input.Date)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.News.Update(ctx, item.ID, newsstore.Update{
		Title:       input.Title,
		Date:        date,
		Summary:     input.Summary,
		Content:     input.Content,
		Link:        input.Link,
		ImageURL:    img.URL,
		StoragePath: img.StoragePath,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admin news: update failed", err, "/admin/news")
		return
	}
	h.Cache.Invalidate(cache.KeyNews)

	http.Redirect(w, r, backFromForm(r), http.StatusSeeOther)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if item.StoragePath != "" {
		if err := h.Blob.Delete(ctx, item.StoragePath); err != nil {
			h.Log.Warn("admin news: image delete failed",
				zap.String("path", item.StoragePath), zap.Error(err))
		}
	}

	if err := h.News.Delete(ctx, item.ID); err != nil && err != newsstore.ErrNotFound {
		h.ErrLog.LogServerError(w, r, "admin news: delete failed", err, "/admin/news")
		return
	}
	h.Cache.Invalidate(cache.KeyNews)

	http.Redirect(w, r, backFromForm(r), http.StatusSeeOther)
}

func (h *Handler) parseNewsForm(r *http.Request) (newsInput, upload.Result, string) {
	loc := i18n.FromRequest(r)

	if err := r.ParseMultipartForm(upload.MaxNewsImage + 64<<10); err != nil {
		return newsInput{}, upload.Result{}, loc.T("error.generic")
	}

	input := newsInput{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Date:    strings.TrimSpace(r.FormValue("date")),
		Summary: strings.TrimSpace(r.FormValue("summary")),
		Content: r.FormValue("content"),
		Link:    strings.TrimSpace(r.FormValue("link")),
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

		img, err = upload.Image(ctx, h.Blob, "news", file, header, upload.MaxNewsImage)
		if err != nil {
			if v, ok := upload.IsValidation(err); ok {
				return input, upload.Result{}, loc.T(v.MessageKey)
			}
			h.Log.Error("admin news: image upload failed", zap.Error(err))
			return input, upload.Result{}, loc.T("error.generic")
		}
	}

	return input, img, ""
}

func (h *Handler) rerenderForm(w http.ResponseWriter, r *http.Request, input newsInput, imageURL string, isNew bool, id, errMsg string) {
	data := newsFormData{Input: input, ImageURL: imageURL, IsNew: isNew, NewsID: id}
	title := "Edit News Item"
	if isNew {
		title = "New News Item"
	}
	formutil.SetBase(&data.Base, r, title, "/admin/news")
	if isNew {
		data.Title = data.L.T("admin.newNews")
	} else {
		data.Title = data.L.T("admin.editNews")
	}
	data.SetError(errMsg)
	templates.Render(w, r, "admin_news_form", data)
}
