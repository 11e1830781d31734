package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/lamsa-decor/backend/internal/i18n"
	"github.com/lamsa-decor/backend/internal/model"
	"github.com/lamsa-decor/backend/internal/repository"
	"github.com/lamsa-decor/backend/internal/service"
	"github.com/lamsa-decor/backend/pkg/auth"
	"github.com/lamsa-decor/backend/pkg/whatsapp"
)

const (
	// maxUploadSize bounds one multipart create request.
	maxUploadSize = 32 << 20
	// maxImageFileSize bounds a single selected image before compression.
	maxImageFileSize = 8 << 20
)

// ProjectHandler handles the public portfolio and the admin project CRUD.
type ProjectHandler struct {
	projectService service.ProjectService
	whatsappNumber string
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectService service.ProjectService, whatsappNumber string) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, whatsappNumber: whatsappNumber}
}

type projectListResponse struct {
	Projects []*model.Project `json:"projects"`
}

// List handles GET /api/projects. All projects, newest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed", "")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projectListResponse{Projects: projects})
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)

	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", i18n.T(lang).Errors.NotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get_failed", "")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// ConsultationLink handles GET /api/projects/{id}/consultation-link.
// Returns a wa.me URL pre-filled with a localized message naming the project.
func (h *ProjectHandler) ConsultationLink(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)
	msgs := i18n.T(lang)

	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", msgs.Errors.NotFound)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get_failed", "")
		return
	}

	text := fmt.Sprintf(msgs.Projects.ConsultationTemplate, project.LocalizedTitle(string(lang)))
	writeJSON(w, http.StatusOK, map[string]string{"url": whatsapp.Link(h.whatsappNumber, text)})
}

// createItemResponse reports the created record and the upload outcome.
type createItemResponse struct {
	Project *model.Project `json:"project,omitempty"`
	Blog    *model.Blog    `json:"blog,omitempty"`
	service.UploadReport
	Message string `json:"message"`
}

// Create handles POST /api/admin/projects (multipart form).
// Text fields: title_ar, title_en, description_ar, description_en.
// Image files under "images"; at least one is required.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	in := service.CreateProjectInput{
		Title:         r.FormValue("title_ar"),
		TitleEn:       r.FormValue("title_en"),
		Description:   r.FormValue("description_ar"),
		DescriptionEn: r.FormValue("description_en"),
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

	project, report, err := h.projectService.Create(r.Context(), in)
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
		Project:      project,
		UploadReport: report,
		Message:      msgs.Form.ProjectSaved,
	})
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	lang, _ := i18n.Resolve(r)
	msgs := i18n.T(lang)

	if !auth.IsAdminFromContext(r.Context()) {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	err := h.projectService.Delete(r.Context(), r.PathValue("id"))
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

// readImageFiles reads every "images" part into memory, bounding each file.
func readImageFiles(r *http.Request) ([]service.ImageFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var images []service.ImageFile
	for _, header := range r.MultipartForm.File["images"] {
		if header.Size > maxImageFileSize {
			return nil, fmt.Errorf("file %s too large", header.Filename)
		}
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(io.LimitReader(f, maxImageFileSize+1))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", header.Filename, err)
		}
		if len(data) > maxImageFileSize {
			return nil, fmt.Errorf("file %s too large", header.Filename)
		}
		images = append(images, service.ImageFile{Name: header.Filename, Data: data})
	}
	return images, nil
}
