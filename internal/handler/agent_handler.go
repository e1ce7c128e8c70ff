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

type agentGateway interface {
	SetActive(ctx context.Context, actor *models.JWTClaims, req service.SetAgentActiveRequest, meta models.RequestMeta) (*models.Agent, error)
}

// AgentHandler handles agent card mutation endpoints.
type AgentHandler struct {
	service agentGateway
}

// NewAgentHandler creates a new agent handler.
func NewAgentHandler(svc agentGateway) *AgentHandler {
	return &AgentHandler{service: svc}
}

// SetActive godoc
// @Summary Toggle an agent card
// @Tags Agents
// @Accept json
// @Produce json
// @Param payload body service.SetAgentActiveRequest true "Target agent and flag"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /agents/active [post]
func (h *AgentHandler) SetActive(c *gin.Context) {
	var req service.SetAgentActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "El estado activo debe ser booleano"))
		return
	}

	agent, err := h.service.SetActive(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, agent)
}
