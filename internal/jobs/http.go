package jobs

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
}

// RegisterPublic lists active postings for the careers page.
func RegisterPublic(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}
	rg.GET("", h.listActive)
}

// RegisterAdmin attaches the management routes.
func RegisterAdmin(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}
	rg.GET("", h.listAll)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

type jobReq struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (h *Handler) listActive(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "jobs": items})
}

func (h *Handler) listAll(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "jobs": items})
}

func (h *Handler) create(c *gin.Context) {
	var req jobReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	j, err := h.repo.Create(c.Request.Context(), &Job{
		Title:       strings.TrimSpace(req.Title),
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "job": j})
}

func (h *Handler) update(c *gin.Context) {
	var req jobReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	j, err := h.repo.Update(c.Request.Context(), &Job{
		ID:          c.Param("id"),
		Title:       strings.TrimSpace(req.Title),
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "job": j})
}

func (h *Handler) delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
