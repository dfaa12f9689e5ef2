package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers registration and login
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	g := r.Group("/auth")
	{
		g.POST("/register", handler.Register)
		g.POST("/login", handler.Login)
	}
}

// RegisterProtectedRoutes registers routes requiring authentication
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	g := r.Group("/auth")
	{
		g.GET("/me", handler.Me)
		g.POST("/password", handler.ChangePassword)
	}
}
