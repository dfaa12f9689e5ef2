package analytics

import (
	"tendorai/internal/domain/tier"

	"github.com/gin-gonic/gin"
)

// RegisterVendorRoutes registers the analytics endpoints. The advanced
// endpoint sits behind the tier gate; the summary is open to every tier.
func RegisterVendorRoutes(r *gin.RouterGroup, handler *Handler, lookup tier.TierLookup) {
	g := r.Group("/analytics")
	{
		g.GET("/summary", handler.Summary)
		g.GET("/advanced",
			tier.RequireLevel(lookup, tier.RawVisible, tier.FeatureAdvancedAnalytics),
			handler.Advanced)
	}
}
