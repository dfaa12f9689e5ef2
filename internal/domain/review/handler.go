package review

import (
	"errors"
	"net/http"
	"strconv"

	"tendorai/internal/domain/lead"
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

// RequestReview handles POST /api/v1/reviews/request
// @Summary Invite the customer behind a won lead to leave a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RequestReviewRequest true "Lead"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /reviews/request [post]
func (h *Handler) RequestReview(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req RequestReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	created, err := h.service.RequestReview(c.Request.Context(), userID, req.LeadID)
	if err != nil {
		var tierErr *TierError
		switch {
		case errors.As(err, &tierErr):
			response.ErrorWithDetails(c, http.StatusForbidden, "UPGRADE_REQUIRED",
				"Review requests require the "+tierErr.Lock.RequiredName+" plan", tierErr.Lock)
		case errors.Is(err, vendor.ErrVendorNotFound):
			response.Error(c, http.StatusNotFound, "VENDOR_NOT_FOUND", "Vendor profile not found")
		case errors.Is(err, lead.ErrLeadNotFound), errors.Is(err, ErrNotLeadOwner):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrLeadNotWon):
			response.Error(c, http.StatusUnprocessableEntity, "LEAD_NOT_WON", "Reviews can only be requested for won leads")
		case errors.Is(err, ErrNoCustomerEmail):
			response.Error(c, http.StatusUnprocessableEntity, "NO_CUSTOMER_EMAIL", "Lead has no customer email")
		case errors.Is(err, ErrRequestExists):
			response.Error(c, http.StatusConflict, "REQUEST_EXISTS", "A review was already requested for this lead")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"request_id": created.ID,
		"expires_at": created.ExpiresAt,
	})
}

// Submit handles POST /api/v1/reviews/submit/:token (public)
// @Summary Redeem a review invitation
// @Tags Reviews
// @Accept json
// @Produce json
// @Param token path string true "Invitation token"
// @Param request body SubmitRequest true "Review"
// @Success 201 {object} response.Response{data=Review}
// @Failure 410 {object} response.Response
// @Router /reviews/submit/{token} [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	rev, err := h.service.SubmitWithToken(c.Request.Context(), c.Param("token"), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			response.Error(c, http.StatusNotFound, "REQUEST_NOT_FOUND", "Review invitation not found")
		case errors.Is(err, ErrTokenExpired):
			response.Error(c, http.StatusGone, "REQUEST_EXPIRED", "Review invitation has expired")
		case errors.Is(err, ErrTokenUsed):
			response.Error(c, http.StatusGone, "REQUEST_USED", "Review invitation was already used")
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_RATING", "Rating must be between 1 and 5")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, rev)
}

// ListForVendor handles GET /api/v1/suppliers/:id/reviews (public)
// @Summary List a supplier's approved reviews
// @Tags Reviews
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} response.Response{data=ListResponse}
// @Router /suppliers/{id}/reviews [get]
func (h *Handler) ListForVendor(c *gin.Context) {
	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, total, err := h.service.ListForVendor(c.Request.Context(), vendorID, limit, offset)
	if err != nil {
		if errors.Is(err, vendor.ErrVendorNotFound) {
			response.Error(c, http.StatusNotFound, "VENDOR_NOT_FOUND", "Supplier not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Reviews: reviews, Total: total})
}

// ModerationQueue handles GET /api/v1/admin/reviews
// @Summary List reviews by moderation status
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" default(pending)
// @Success 200 {object} response.Response{data=ListResponse}
// @Router /admin/reviews [get]
func (h *Handler) ModerationQueue(c *gin.Context) {
	status := Status(c.DefaultQuery("status", string(StatusPending)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, total, err := h.service.ModerationQueue(c.Request.Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Invalid review status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Reviews: reviews, Total: total})
}

// Moderate handles PATCH /api/v1/admin/reviews/:id
// @Summary Approve or hide a review
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body ModerateRequest true "Decision"
// @Success 200 {object} response.Response{data=Review}
// @Router /admin/reviews/{id} [patch]
func (h *Handler) Moderate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	rev, err := h.service.Moderate(c.Request.Context(), id, Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrReviewNotFound):
			response.Error(c, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Invalid review status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, rev)
}
