package lead

import (
	"errors"
	"net/http"
	"strconv"

	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"
	"tendorai/internal/middleware"
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

// SubmitQuote handles POST /api/v1/quotes (public)
// @Summary Submit a quote request to a supplier
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body SubmitQuoteRequest true "Quote request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /quotes [post]
func (h *Handler) SubmitQuote(c *gin.Context) {
	var req SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, vendor.ErrVendorNotFound), errors.Is(err, vendor.ErrVendorInactive):
			response.Error(c, http.StatusNotFound, "VENDOR_NOT_FOUND", "Supplier not found")
		case errors.Is(err, vendor.ErrInvalidCategory):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_CATEGORY", "Unknown service category")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	middleware.RecordLeadCreated()

	response.Success(c, http.StatusCreated, gin.H{"lead_id": l.ID})
}

// ListMine handles GET /api/v1/vendor-leads/vendor/me
// @Summary List the authenticated vendor's leads with status counts
// @Tags Vendor Leads
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response{data=LeadListResponse}
// @Router /vendor-leads/vendor/me [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")

	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil {
			limit = v
		}
	}
	offset := 0
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil {
			offset = v
		}
	}

	leads, total, counts, v, err := h.service.ListForVendor(c.Request.Context(), userID, limit, offset)
	if err != nil {
		if errors.Is(err, vendor.ErrVendorNotFound) {
			response.Error(c, http.StatusNotFound, "VENDOR_NOT_FOUND", "Vendor profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	out := make([]LeadResponse, 0, len(leads))
	for i := range leads {
		out = append(out, ToResponse(&leads[i], v.Tier))
	}

	response.Success(c, http.StatusOK, LeadListResponse{Leads: out, Total: total, Counts: counts})
}

// GetLead handles GET /api/v1/vendor-leads/:id
// @Summary Get one lead; first open moves pending to viewed
// @Tags Vendor Leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} response.Response{data=LeadResponse}
// @Failure 404 {object} response.Response
// @Router /vendor-leads/{id} [get]
func (h *Handler) GetLead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	l, v, err := h.service.GetForVendor(c.Request.Context(), userID, id)
	if err != nil {
		h.writeLeadError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ToResponse(l, v.Tier))
}

// UpdateStatus handles PATCH /api/v1/vendor-leads/:id/status
// @Summary Move a lead through the pipeline or close it
// @Tags Vendor Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body UpdateStatusRequest true "Transition"
// @Success 200 {object} response.Response{data=LeadResponse}
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /vendor-leads/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, v, err := h.service.UpdateStatus(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.writeLeadError(c, err)
		return
	}

	middleware.RecordLeadTransition(string(l.Status))

	response.Success(c, http.StatusOK, ToResponse(l, v.Tier))
}

// AddNote handles POST /api/v1/vendor-leads/:id/notes
// @Summary Append a note to a lead
// @Tags Vendor Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body AddNoteRequest true "Note"
// @Success 201 {object} response.Response{data=Note}
// @Router /vendor-leads/{id}/notes [post]
func (h *Handler) AddNote(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	note, err := h.service.AddNote(c.Request.Context(), userID, id, req.Text)
	if err != nil {
		h.writeLeadError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, note)
}

// writeLeadError maps lead domain errors onto one consistent HTTP
// contract; every failure is surfaced, none are swallowed
func (h *Handler) writeLeadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLeadNotFound), errors.Is(err, ErrNotLeadOwner):
		// ownership failures read as not-found to avoid leaking lead ids
		response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
	case errors.Is(err, vendor.ErrVendorNotFound):
		response.Error(c, http.StatusNotFound, "VENDOR_NOT_FOUND", "Vendor profile not found")
	case errors.Is(err, ErrLeadClosed):
		response.Error(c, http.StatusConflict, "LEAD_CLOSED", "Lead is already won or lost")
	case errors.Is(err, ErrSameStatus):
		response.Error(c, http.StatusConflict, "SAME_STATUS", "Lead already in this status")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Invalid lead status")
	case errors.Is(err, ErrLostReasonMissing):
		response.Error(c, http.StatusUnprocessableEntity, "LOST_REASON_REQUIRED", "A lost reason must be selected")
	case errors.Is(err, ErrStatusConflict):
		response.Error(c, http.StatusConflict, "STATUS_CONFLICT", "Lead was updated concurrently, reload and retry")
	case errors.Is(err, ErrEmptyNote):
		response.Error(c, http.StatusUnprocessableEntity, "EMPTY_NOTE", "Note text is empty")
	case errors.Is(err, ErrTierRestricted):
		lock := tier.Gate(tier.RawFree, tier.RawVisible, tier.FeaturePipeline)
		response.ErrorWithDetails(c, http.StatusForbidden, "UPGRADE_REQUIRED",
			"Pipeline stages require the "+lock.RequiredName+" plan", lock)
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
