package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type submissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	UpdateStatus(ctx context.Context, tenantID, id string, status models.SubmissionStatus, notes *string, agentID *string) (*models.Submission, error)
	List(ctx context.Context, tenantID string, filter models.SubmissionFilter) ([]models.Submission, error)
}

// UpdateLeadStatusRequest transitions a lead through the follow-up lifecycle.
type UpdateLeadStatusRequest struct {
	SubmissionID string  `json:"submissionId" validate:"required"`
	Status       string  `json:"status" validate:"required,oneof=new contacted following-up converted discarded"`
	Notes        *string `json:"notes"`
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// SubmissionService implements the lead gateways: the role-gated status
// transition and the public capture path.
type SubmissionService struct {
	repo      submissionRepository
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubmissionService creates an instance of SubmissionService.
func NewSubmissionService(repo submissionRepository, audit auditWriter, validate *validator.Validate, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SubmissionService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// UpdateStatus transitions a lead. Admins and agents may call it; an agent
// transition also claims the lead for that agent.
func (s *SubmissionService) UpdateStatus(ctx context.Context, actor *models.JWTClaims, req UpdateLeadStatusRequest, meta models.RequestMeta) (*models.Submission, error) {
	if err := authorize(actor, models.RoleAdmin, models.RoleAgent); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador y estado válido son obligatorios")
	}

	var claimedBy *string
	if actor.Role == models.RoleAgent {
		claimedBy = &actor.UserID
	}

	submission, err := s.repo.UpdateStatus(ctx, actor.TenantID, req.SubmissionID, models.SubmissionStatus(req.Status), req.Notes, claimedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Consulta no encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	payload, _ := json.Marshal(map[string]interface{}{"status": submission.Status})
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		TenantID:   actor.TenantID,
		ProfileID:  &actor.UserID,
		Action:     models.AuditActionLeadStatusChange,
		Resource:   "submissions",
		ResourceID: &submission.ID,
		NewValues:  payload,
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to record lead audit log", zap.Error(err))
	}

	return submission, nil
}

// SubmitContact captures a public contact form entry as a new lead. The
// tenant comes from the public site routing, not from a principal.
func (s *SubmissionService) SubmitContact(ctx context.Context, tenantID string, req ContactRequest, propertyID *string) (*models.Submission, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Portal no identificado")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Todos los campos del formulario son obligatorios")
	}

	submission := &models.Submission{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		PropertyID: propertyID,
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    strings.TrimSpace(req.Message),
		Status:     models.SubmissionStatusNew,
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	return submission, nil
}

// List returns the tenant's leads for back-office views and exports.
func (s *SubmissionService) List(ctx context.Context, actor *models.JWTClaims, filter models.SubmissionFilter) ([]models.Submission, error) {
	if err := authorize(actor, models.RoleAdmin, models.RoleAgent); err != nil {
		return nil, err
	}

	submissions, err := s.repo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return submissions, nil
}
