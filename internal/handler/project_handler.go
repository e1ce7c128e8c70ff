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

type projectGateway interface {
	ToggleActive(ctx context.Context, actor *models.JWTClaims, req service.ToggleProjectRequest, meta models.RequestMeta) (*models.Project, error)
	ToggleFeatured(ctx context.Context, actor *models.JWTClaims, req service.ToggleProjectRequest, meta models.RequestMeta) (*models.Project, error)
	Delete(ctx context.Context, actor *models.JWTClaims, projectID string, meta models.RequestMeta) error
}

// ProjectHandler handles project mutation endpoints.
type ProjectHandler struct {
	service projectGateway
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(svc projectGateway) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// ToggleActive godoc
// @Summary Toggle project visibility
// @Tags Projects
// @Accept json
// @Produce json
// @Param payload body service.ToggleProjectRequest true "Target project"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /projects/active [post]
func (h *ProjectHandler) ToggleActive(c *gin.Context) {
	var req service.ToggleProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	project, err := h.service.ToggleActive(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, project)
}

// ToggleFeatured godoc
// @Summary Toggle project featured flag
// @Tags Projects
// @Accept json
// @Produce json
// @Param payload body service.ToggleProjectRequest true "Target project"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /projects/featured [post]
func (h *ProjectHandler) ToggleFeatured(c *gin.Context) {
	var req service.ToggleProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	project, err := h.service.ToggleFeatured(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, project)
}

// Delete godoc
// @Summary Delete a project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), claimsFromContext(c), c.Param("id"), requestMeta(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true}, "Proyecto eliminado")
}
