package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/service"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
	"github.com/habitara-dev/habitara-api/pkg/response"
)

type blogGateway interface {
	ToggleFeatured(ctx context.Context, actor *models.JWTClaims, req service.ToggleBlogRequest, meta models.RequestMeta) (*models.BlogPost, error)
	TogglePublished(ctx context.Context, actor *models.JWTClaims, req service.ToggleBlogRequest, meta models.RequestMeta) (*models.BlogPost, error)
}

// BlogHandler handles blog post mutation endpoints.
type BlogHandler struct {
	service blogGateway
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(svc blogGateway) *BlogHandler {
	return &BlogHandler{service: svc}
}

// ToggleFeatured godoc
// @Summary Toggle blog post featured flag
// @Tags Blog
// @Accept json
// @Produce json
// @Param payload body service.ToggleBlogRequest true "Target post"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /blog/featured [post]
func (h *BlogHandler) ToggleFeatured(c *gin.Context) {
	var req service.ToggleBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	post, err := h.service.ToggleFeatured(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, post)
}

// TogglePublished godoc
// @Summary Toggle blog post publication
// @Tags Blog
// @Accept json
// @Produce json
// @Param payload body service.ToggleBlogRequest true "Target post"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /blog/published [post]
func (h *BlogHandler) TogglePublished(c *gin.Context) {
	var req service.ToggleBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	post, err := h.service.TogglePublished(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, post)
}
