package lead

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the quote-request submission
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/quotes", handler.SubmitQuote)
}

// RegisterVendorRoutes registers authenticated vendor lead routes
func RegisterVendorRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/vendor-leads")
	{
		leads.GET("/vendor/me", handler.ListMine)
		leads.GET("/:id", handler.GetLead)
		leads.PATCH("/:id/status", handler.UpdateStatus)
		leads.POST("/:id/notes", handler.AddNote)
	}
}
