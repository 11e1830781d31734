package handler

import (
	"errors"
	"net/http"

	"github.com/lamsa-decor/backend/internal/i18n"
	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/repository"
	"github.com/lamsa-decor/backend/internal/service"
	"github.com/lamsa-decor/backend/pkg/auth"
)

// BlogHandler handles the public blog listing and the admin blog CRUD.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

type blogListResponse struct {
	Blogs []*model.Blog `json:"blogs"`
}

// List handles GET /api/blogs. Supports ?q= (title search in both
// languages) and ?category= filters; without them it returns everything,
// newest first.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.BlogListOptions{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	blogs, err := h.blogService.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed", "")
		return
	}
	if blogs == nil {
		blogs = []*model.Blog{}
	}
	writeJSON(w, http.StatusOK, blogListResponse{Blogs: blogs})
}

// Get handles GET /api/blogs/{id}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)

	blog, err := h.blogService.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", i18n.T(lang).Errors.NotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get_failed", "")
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// Create handles POST /api/admin/blogs (multipart form).
// Text fields: title_ar, title_en, description_ar, description_en and an
// optional category. Image files under "images"; at least one is required.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)
	msgs := i18n.T(lang)

	if !auth.IsAdminFromContext(r.Context()) {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_form", "")
		return
	}

	in := service.CreateBlogInput{
		Title:         r.FormValue("title_ar"),
		TitleEn:       r.FormValue("title_en"),
		Description:   r.FormValue("description_ar"),
		DescriptionEn: r.FormValue("description_en"),
		Category:      r.FormValue("category"),
	}
	if in.Title == "" || in.TitleEn == "" || in.Description == "" || in.DescriptionEn == "" {
		writeError(w, http.StatusBadRequest, "text_fields_required", msgs.Errors.RequiredField)
		return
	}

	images, err := readImageFiles(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_image", msgs.Errors.UploadFailed)
		return
	}
	if len(images) == 0 {
		writeError(w, http.StatusBadRequest, "at_least_one_image", msgs.Errors.AtLeastOneImage)
		return
	}
	in.Images = images

	blog, report, err := h.blogService.Create(r.Context(), in)
	if errors.Is(err, service.ErrNoImages) {
		writeError(w, http.StatusBadRequest, "at_least_one_image", msgs.Errors.AtLeastOneImage)
		return
	}
	if errors.Is(err, service.ErrAllUploadsFailed) {
		writeError(w, http.StatusInternalServerError, "upload_failed", msgs.Errors.UploadFailed)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed", msgs.Errors.ConnectionFailed)
		return
	}

	writeJSON(w, http.StatusCreated, createItemResponse{
		Blog:         blog,
		UploadReport: report,
		Message:      msgs.Form.BlogPublished,
	})
}

// Delete handles DELETE /api/admin/blogs/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)
	msgs := i18n.T(lang)

	if !auth.IsAdminFromContext(r.Context()) {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	err := h.blogService.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", msgs.Errors.NotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed", msgs.Errors.DeleteFailed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
