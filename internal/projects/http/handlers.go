package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/domain"
	"github.com/harshkhandelwal17/tbes-company-website/internal/projects/service"
)

type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) create(c *gin.Context) {
	in, uploads, err := parseMutationForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in, uploads)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	in, uploads, err := parseMutationForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), in, uploads)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "id is required"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "success": true})
}

// parseMutationForm maps the admin panel's multipart form onto a service
// Input. File parts arrive as repeated "newImages" fields; "images" is the
// legacy alias and is merged after them, in part order.
func parseMutationForm(c *gin.Context) (service.Input, []service.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return service.Input{}, nil, err
	}

	in := service.Input{
		ID:             formValue(form, "id"),
		Title:          strings.TrimSpace(formValue(form, "title")),
		Description:    formValue(form, "description"),
		Location:       formValue(form, "location"),
		ProjectType:    formValue(form, "projectType"),
		SOW:            formValue(form, "sow"),
		LOD:            formValue(form, "lod"),
		Area:           formValue(form, "area"),
		ModelURL:       formValue(form, "modelUrl"),
		ModelType:      formValue(form, "modelType"),
		ExistingImages: formValue(form, "existingImages"),
	}

	files := append([]*multipart.FileHeader{}, form.File["newImages"]...)
	files = append(files, form.File["images"]...)

	uploads := make([]service.Upload, 0, len(files))
	for _, fh := range files {
		uploads = append(uploads, service.Upload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open:     func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	return in, uploads, nil
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func respondMutationError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
