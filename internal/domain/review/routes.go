package review

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers token redemption and public listings
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/reviews/submit/:token", handler.Submit)
	r.GET("/suppliers/:id/reviews", handler.ListForVendor)
}

// RegisterVendorRoutes registers the authenticated review-request route
func RegisterVendorRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/reviews/request", handler.RequestReview)
}

// RegisterAdminRoutes registers the moderation console routes
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/reviews", handler.ModerationQueue)
	r.PATCH("/reviews/:id", handler.Moderate)
}
