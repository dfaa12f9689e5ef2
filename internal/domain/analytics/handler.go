package analytics

import (
	"errors"
	"net/http"

	"tendorai/internal/domain/vendor"
	"tendorai/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Summary handles GET /api/v1/analytics/summary
// @Summary Dashboard overview: lead counts, conversion rate, profile views
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=SummaryResponse}
// @Router /analytics/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	userID := c.GetInt64("user_id")

	out, err := h.service.Summary(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Advanced handles GET /api/v1/analytics/advanced (tier-gated)
// @Summary Monthly lead trend, won value and pipeline rates
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=AdvancedResponse}
// @Failure 403 {object} response.Response
// @Router /analytics/advanced [get]
func (h *Handler) Advanced(c *gin.Context) {
	userID := c.GetInt64("user_id")

	out, err := h.service.Advanced(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, vendor.ErrVendorNotFound) {
		response.Error(c, http.StatusNotFound, "VENDOR_NOT_FOUND", "Vendor profile not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
