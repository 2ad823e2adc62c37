package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Required rejects requests without a valid admin session cookie.
func Required(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			return
		}

		if err := sessions.Validate(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			return
		}

		c.Next()
	}
}
