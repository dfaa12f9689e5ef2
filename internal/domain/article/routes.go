package article

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the public article endpoints
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/articles", handler.List)
	r.GET("/articles/:slug", handler.GetBySlug)
}

// RegisterAdminRoutes registers the authoring endpoints
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	articles := r.Group("/articles")
	{
		articles.GET("", handler.ListAll)
		articles.POST("", handler.Create)
		articles.PATCH("/:id", handler.Update)
		articles.DELETE("/:id", handler.Delete)
	}
}
