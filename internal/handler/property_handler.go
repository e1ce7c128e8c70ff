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

type propertyGateway interface {
	Approve(ctx context.Context, actor *models.JWTClaims, req service.ApprovePropertyRequest, meta models.RequestMeta) (*models.Property, error)
	Reject(ctx context.Context, actor *models.JWTClaims, req service.RejectPropertyRequest, meta models.RequestMeta) (*models.Property, error)
	SetActive(ctx context.Context, actor *models.JWTClaims, req service.SetPropertyActiveRequest, meta models.RequestMeta) (*models.Property, error)
	SetFeatured(ctx context.Context, actor *models.JWTClaims, req service.SetPropertyFeaturedRequest, meta models.RequestMeta) (*models.Property, error)
	PendingCount(ctx context.Context, actor *models.JWTClaims) (int, error)
	GenerateEmbedURL(ctx context.Context, actor *models.JWTClaims, propertyID string) (*models.EmbedURL, error)
}

// PropertyHandler handles property moderation endpoints.
type PropertyHandler struct {
	service propertyGateway
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(svc propertyGateway) *PropertyHandler {
	return &PropertyHandler{service: svc}
}

// Approve godoc
// @Summary Approve a pending listing
// @Tags Properties
// @Accept json
// @Produce json
// @Param payload body service.ApprovePropertyRequest true "Target listing"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /properties/approve [post]
func (h *PropertyHandler) Approve(c *gin.Context) {
	var req service.ApprovePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	property, err := h.service.Approve(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, property, "Propiedad aprobada")
}

// Reject godoc
// @Summary Reject a pending listing
// @Tags Properties
// @Accept json
// @Produce json
// @Param payload body service.RejectPropertyRequest true "Target listing and reason"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /properties/reject [post]
func (h *PropertyHandler) Reject(c *gin.Context) {
	var req service.RejectPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	property, err := h.service.Reject(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, property, "Propiedad rechazada")
}

// SetActive godoc
// @Summary Set the active flag on a listing
// @Tags Properties
// @Accept json
// @Produce json
// @Param payload body service.SetPropertyActiveRequest true "Target listing and flag"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /properties/active [post]
func (h *PropertyHandler) SetActive(c *gin.Context) {
	var req service.SetPropertyActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "El estado activo debe ser booleano"))
		return
	}

	property, err := h.service.SetActive(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, property)
}

// SetFeatured godoc
// @Summary Set the featured flag on a listing
// @Tags Properties
// @Accept json
// @Produce json
// @Param payload body service.SetPropertyFeaturedRequest true "Target listing and flag"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /properties/featured [post]
func (h *PropertyHandler) SetFeatured(c *gin.Context) {
	var req service.SetPropertyFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "El estado destacado debe ser booleano"))
		return
	}

	property, err := h.service.SetFeatured(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, property)
}

// PendingCount godoc
// @Summary Pending moderation count
// @Tags Properties
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /properties/pending-count [get]
func (h *PropertyHandler) PendingCount(c *gin.Context) {
	count, err := h.service.PendingCount(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"count": count})
}

// GenerateEmbedURL godoc
// @Summary Issue a signed public embed link
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /properties/{id}/embed-url [post]
func (h *PropertyHandler) GenerateEmbedURL(c *gin.Context) {
	result, err := h.service.GenerateEmbedURL(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
