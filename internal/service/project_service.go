package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type projectRepository interface {
	ToggleActive(ctx context.Context, tenantID, id string) (*models.Project, error)
	ToggleFeatured(ctx context.Context, tenantID, id string) (*models.Project, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// ToggleProjectRequest targets a project for a storage-level flag negation.
type ToggleProjectRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

// ProjectService implements the project mutation gateways.
type ProjectService struct {
	repo      projectRepository
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProjectService creates an instance of ProjectService.
func NewProjectService(repo projectRepository, audit auditWriter, validate *validator.Validate, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProjectService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// ToggleActive flips the active flag and returns the resulting record.
func (s *ProjectService) ToggleActive(ctx context.Context, actor *models.JWTClaims, req ToggleProjectRequest, meta models.RequestMeta) (*models.Project, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "El identificador del proyecto es obligatorio")
	}

	project, err := s.repo.ToggleActive(ctx, actor.TenantID, req.ProjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Proyecto no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionProjectToggle, project.ID, map[string]interface{}{"active": project.Active}, meta)
	return project, nil
}

// ToggleFeatured flips the featured flag and returns the resulting record.
func (s *ProjectService) ToggleFeatured(ctx context.Context, actor *models.JWTClaims, req ToggleProjectRequest, meta models.RequestMeta) (*models.Project, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "El identificador del proyecto es obligatorio")
	}

	project, err := s.repo.ToggleFeatured(ctx, actor.TenantID, req.ProjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Proyecto no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionProjectToggle, project.ID, map[string]interface{}{"featured": project.Featured}, meta)
	return project, nil
}

// Delete removes a project within the caller's tenant.
func (s *ProjectService) Delete(ctx context.Context, actor *models.JWTClaims, projectID string, meta models.RequestMeta) error {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return err
	}
	if strings.TrimSpace(projectID) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "El identificador del proyecto es obligatorio")
	}

	if err := s.repo.Delete(ctx, actor.TenantID, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Proyecto no encontrado")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionProjectDelete, projectID, map[string]interface{}{"deleted": true}, meta)
	return nil
}

func (s *ProjectService) recordAudit(ctx context.Context, actor *models.JWTClaims, action, resourceID string, values map[string]interface{}, meta models.RequestMeta) {
	payload, _ := json.Marshal(values)
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		TenantID:   actor.TenantID,
		ProfileID:  &actor.UserID,
		Action:     action,
		Resource:   "projects",
		ResourceID: &resourceID,
		NewValues:  payload,
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to record project audit log", zap.Error(err))
	}
}
