package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/service"
	"github.com/habitara-dev/habitara-api/pkg/cms"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
	"github.com/habitara-dev/habitara-api/pkg/response"
)

// TenantHeader identifies the marketing site a public request came from.
const TenantHeader = "X-Tenant-ID"

type contactCapture interface {
	SubmitContact(ctx context.Context, tenantID string, req service.ContactRequest, propertyID *string) (*models.Submission, error)
}

type embedResolver interface {
	ResolveEmbed(ctx context.Context, token string) (*models.PropertyEmbed, error)
}

type contentReader interface {
	Get(ctx context.Context, tenantID, slug string) (*cms.Entry, error)
}

// PublicHandler handles the unauthenticated surface: contact capture, signed
// property embeds and marketing content.
type PublicHandler struct {
	contacts contactCapture
	embeds   embedResolver
	content  contentReader
	metrics  *service.MetricsService
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(contacts contactCapture, embeds embedResolver, content contentReader, metrics *service.MetricsService) *PublicHandler {
	return &PublicHandler{contacts: contacts, embeds: embeds, content: content, metrics: metrics}
}

// SubmitContact godoc
// @Summary Capture a contact form lead
// @Tags Public
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param payload body service.ContactRequest true "Contact details"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /public/contact [post]
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req struct {
		service.ContactRequest
		PropertyID *string `json:"propertyId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	submission, err := h.contacts.SubmitContact(c.Request.Context(), c.GetHeader(TenantHeader), req.ContactRequest, req.PropertyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CountLeadCapture()
	}

	response.JSON(c, http.StatusCreated, submission, "Gracias por tu consulta")
}

// EmbedProperty godoc
// @Summary Resolve a signed property embed
// @Tags Public
// @Produce json
// @Param token path string true "Signed embed token"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /public/properties/embed/{token} [get]
func (h *PublicHandler) EmbedProperty(c *gin.Context) {
	property, err := h.embeds.ResolveEmbed(c.Request.Context(), c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, property)
}

// Content godoc
// @Summary Fetch marketing content
// @Tags Public
// @Produce json
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param slug path string true "Content slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /public/content/{slug} [get]
func (h *PublicHandler) Content(c *gin.Context) {
	entry, err := h.content.Get(c.Request.Context(), c.GetHeader(TenantHeader), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, entry)
}
