package inquiries

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type Handler struct {
	repo    *Repo
	limiter *ipLimiter
}

// RegisterPublic attaches the contact-form endpoint, rate limited per IP.
func RegisterPublic(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{
		repo: repo,
		// A human fills a contact form a few times at most; one sustained
		// submission per 20s with a small burst is plenty.
		limiter: newIPLimiter(rate.Every(20*time.Second), 3),
	}
	rg.POST("", h.create)
}

// RegisterAdmin attaches the inbox routes.
func RegisterAdmin(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}
	rg.GET("", h.list)
	rg.DELETE("", h.delete)
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) create(c *gin.Context) {
	if !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests"})
		return
	}

	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Message == "" || !looksLikeEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "name, email and message are required"})
		return
	}

	in, err := h.repo.Create(c.Request.Context(), &Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "inquiry": in})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "inquiries": items})
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "id is required"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// looksLikeEmail is a shape check, not RFC validation.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".") && !strings.ContainsAny(s, " \t")
}
