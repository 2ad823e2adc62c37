package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only project routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

// RegisterAdmin attaches the mutation routes. The group is expected to carry
// the admin session middleware. DELETE takes ?id= rather than a path param to
// match the admin panel's existing requests.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("", h.update)
	rg.DELETE("", h.delete)
}
