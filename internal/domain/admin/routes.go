package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the admin console endpoints; the caller
// mounts them behind auth and the admin role check
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/stats", handler.Stats)

	vendors := r.Group("/vendors")
	{
		vendors.GET("", handler.ListVendors)
		vendors.PATCH("/:id/tier", handler.SetTier)
		vendors.PATCH("/:id/status", handler.SetStatus)
		vendors.DELETE("/:id", handler.DeleteVendor)
	}
}
