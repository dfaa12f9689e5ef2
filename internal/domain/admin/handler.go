package admin

import (
	"errors"
	"net/http"
	"strconv"

	"tendorai/internal/domain/vendor"
	"tendorai/internal/pkg/response"
	"tendorai/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListVendors handles GET /api/v1/admin/vendors
// @Summary List vendors with tier, status and name filters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param tier query string false "Raw tier filter"
// @Param status query string false "Status filter"
// @Param q query string false "Company name search"
// @Success 200 {object} response.Response{data=VendorListResponse}
// @Router /admin/vendors [get]
func (h *Handler) ListVendors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	vendors, total, err := h.service.ListVendors(c.Request.Context(), VendorFilters{
		Tier:   c.Query("tier"),
		Status: c.Query("status"),
		Query:  c.Query("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		if errors.Is(err, vendor.ErrInvalidTier) {
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_TIER", "Unknown tier")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, VendorListResponse{Vendors: vendors, Total: total})
}

// SetTier handles PATCH /api/v1/admin/vendors/:id/tier
// @Summary Change a vendor's subscription tier
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Param request body SetTierRequest true "Tier"
// @Success 200 {object} response.Response{data=vendor.Vendor}
// @Router /admin/vendors/{id}/tier [patch]
func (h *Handler) SetTier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	var req SetTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	v, err := h.service.SetVendorTier(c.Request.Context(), id, req.Tier)
	if err != nil {
		h.writeVendorError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// SetStatus handles PATCH /api/v1/admin/vendors/:id/status
// @Summary Activate or suspend a vendor
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Param request body SetStatusRequest true "Status"
// @Success 200 {object} response.Response{data=vendor.Vendor}
// @Router /admin/vendors/{id}/status [patch]
func (h *Handler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	v, err := h.service.SetVendorStatus(c.Request.Context(), id, vendor.Status(req.Status))
	if err != nil {
		h.writeVendorError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

// DeleteVendor handles DELETE /api/v1/admin/vendors/:id
// @Summary Soft-delete a vendor
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Success 200 {object} response.Response
// @Router /admin/vendors/{id} [delete]
func (h *Handler) DeleteVendor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	if err := h.service.DeleteVendor(c.Request.Context(), id); err != nil {
		h.writeVendorError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Stats handles GET /api/v1/admin/stats
// @Summary Platform-wide counts and MRR
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=PlatformStats}
// @Router /admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) writeVendorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vendor.ErrVendorNotFound):
		response.Error(c, http.StatusNotFound, "VENDOR_NOT_FOUND", "Vendor not found")
	case errors.Is(err, vendor.ErrInvalidTier):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_TIER", "Unknown tier")
	case errors.Is(err, ErrInvalidVendorStatus):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Invalid vendor status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
