package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers registration and login (no auth required).
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes registers routes behind the JWT middleware.
// Receptionist management requires role='owner'.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler, ownerOnly gin.HandlerFunc) {
	r.GET("/auth/me", h.Me)

	rec := r.Group("/receptionists", ownerOnly)
	{
		rec.GET("", h.ListReceptionists)
		rec.POST("", h.CreateReceptionist)
		rec.DELETE("/:id", h.DeleteReceptionist)
	}
}
