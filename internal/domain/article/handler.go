package article

import (
	"errors"
	"net/http"
	"strconv"

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

// List handles GET /api/v1/articles (public)
// @Summary List published articles
// @Tags Articles
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} response.Response{data=ListResponse}
// @Router /articles [get]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	articles, total, err := h.service.List(c.Request.Context(), c.Query("category"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Articles: articles, Total: total})
}

// GetBySlug handles GET /api/v1/articles/:slug (public)
// @Summary Get one published article
// @Tags Articles
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} response.Response{data=Article}
// @Failure 404 {object} response.Response
// @Router /articles/{slug} [get]
func (h *Handler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "ARTICLE_NOT_FOUND", "Article not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Create handles POST /api/v1/admin/articles
// @Summary Create an article
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Article"
// @Success 201 {object} response.Response{data=Article}
// @Failure 409 {object} response.Response
// @Router /admin/articles [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "An article with this slug already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, a)
}

// Update handles PATCH /api/v1/admin/articles/:id
// @Summary Edit or publish an article
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body UpdateRequest true "Changes"
// @Success 200 {object} response.Response{data=Article}
// @Router /admin/articles/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid article ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "ARTICLE_NOT_FOUND", "Article not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, a)
}

// ListAll handles GET /api/v1/admin/articles
// @Summary List all articles including drafts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=ListResponse}
// @Router /admin/articles [get]
func (h *Handler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	articles, total, err := h.service.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Articles: articles, Total: total})
}

// Delete handles DELETE /api/v1/admin/articles/:id
// @Summary Delete an article
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} response.Response
// @Router /admin/articles/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid article ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			response.Error(c, http.StatusNotFound, "ARTICLE_NOT_FOUND", "Article not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
