package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CookieName is the admin session cookie.
const CookieName = "tbes_admin"

type Handler struct {
	sessions     *Sessions
	passwordHash string
}

func NewHandler(sessions *Sessions, passwordHash string) *Handler {
	return &Handler{sessions: sessions, passwordHash: passwordHash}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// An unset hash means login is disabled, not open.
	if h.passwordHash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "login disabled"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
