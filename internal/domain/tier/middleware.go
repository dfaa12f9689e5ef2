package tier

import (
	"net/http"

	"tendorai/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TierLookup resolves the raw tier for the authenticated vendor user
type TierLookup func(c *gin.Context) (string, error)

// RequireLevel gates a whole endpoint behind a tier requirement.
// On insufficient tier it responds 403 UPGRADE_REQUIRED with the same
// Lock payload that field-level gating embeds in responses.
func RequireLevel(lookup TierLookup, requiredRaw string, feature Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, err := lookup(c)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Vendor profile not found")
			c.Abort()
			return
		}

		if lock := Gate(current, requiredRaw, feature); lock != nil {
			response.ErrorWithDetails(c, http.StatusForbidden, "UPGRADE_REQUIRED",
				"This feature requires the "+lock.RequiredName+" plan", lock)
			c.Abort()
			return
		}

		c.Next()
	}
}
