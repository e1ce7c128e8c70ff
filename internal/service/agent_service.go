package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type agentRepository interface {
	SetActive(ctx context.Context, tenantID, id string, active bool) (*models.Agent, error)
}

// SetAgentActiveRequest writes an explicit active flag on an agent card.
type SetAgentActiveRequest struct {
	AgentID  string `json:"agentId" validate:"required"`
	IsActive *bool  `json:"isActive" validate:"required"`
}

// AgentService implements the agent card mutation gateway. There is no
// self-protection rule here: an admin hiding the agent card tied to its own
// profile is allowed, matching the account-level asymmetry.
type AgentService struct {
	repo      agentRepository
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAgentService creates an instance of AgentService.
func NewAgentService(repo agentRepository, audit auditWriter, validate *validator.Validate, logger *zap.Logger) *AgentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AgentService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// SetActive writes the explicit active flag and returns the updated card.
func (s *AgentService) SetActive(ctx context.Context, actor *models.JWTClaims, req SetAgentActiveRequest, meta models.RequestMeta) (*models.Agent, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador y estado activo son obligatorios")
	}

	agent, err := s.repo.SetActive(ctx, actor.TenantID, req.AgentID, *req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Agente no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	payload, _ := json.Marshal(map[string]interface{}{"active": agent.Active})
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		TenantID:   actor.TenantID,
		ProfileID:  &actor.UserID,
		Action:     models.AuditActionAgentToggle,
		Resource:   "agents",
		ResourceID: &agent.ID,
		NewValues:  payload,
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to record agent audit log", zap.Error(err))
	}

	return agent, nil
}
