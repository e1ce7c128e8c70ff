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

type userProfileRepository interface {
	FindByID(ctx context.Context, tenantID, id string) (*models.Profile, error)
	UpdateRole(ctx context.Context, tenantID, id string, role models.Role) (*models.Profile, error)
	SetActive(ctx context.Context, tenantID, id string, active bool) (*models.Profile, error)
	UpdateContact(ctx context.Context, tenantID, id, fullName, phone string) (*models.Profile, error)
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// ChangeUserRoleRequest carries the numeric role code used by the back
// office UI (1=user, 2=agent, 3=admin).
type ChangeUserRoleRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   int    `json:"role" validate:"required,oneof=1 2 3"`
}

// SetUserActiveRequest writes an explicit account active flag.
type SetUserActiveRequest struct {
	UserID   string `json:"userId" validate:"required"`
	IsActive *bool  `json:"isActive" validate:"required"`
}

// UpdateProfileRequest lets callers edit their own display fields.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// UserService implements the user/profile mutation gateways.
type UserService struct {
	repo      userProfileRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userProfileRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// ChangeRole reassigns a user's role. An admin may not change its own role;
// that check runs before any persistence and yields a 400, not a 403.
func (s *UserService) ChangeRole(ctx context.Context, actor *models.JWTClaims, req ChangeUserRoleRequest, meta models.RequestMeta) (*models.Profile, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador y rol son obligatorios")
	}
	if req.UserID == actor.UserID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No puedes cambiar tu propio rol")
	}

	role, ok := models.RoleFromCode(req.Role)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Rol inválido")
	}

	profile, err := s.repo.UpdateRole(ctx, actor.TenantID, req.UserID, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Usuario no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionUserRoleChange, profile.ID, map[string]interface{}{"role": profile.Role}, meta)
	return profile, nil
}

// SetActive writes an explicit account active flag. An admin may not
// deactivate its own account.
func (s *UserService) SetActive(ctx context.Context, actor *models.JWTClaims, req SetUserActiveRequest, meta models.RequestMeta) (*models.Profile, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador y estado activo son obligatorios")
	}
	if req.UserID == actor.UserID && !*req.IsActive {
		return nil, appErrors.Clone(appErrors.ErrValidation, "No puedes desactivar tu propia cuenta")
	}

	profile, err := s.repo.SetActive(ctx, actor.TenantID, req.UserID, *req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Usuario no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionUserToggle, profile.ID, map[string]interface{}{"active": profile.Active}, meta)
	return profile, nil
}

// UpdateOwnProfile updates the caller's own display fields. Any authenticated
// role may call it; the target is always the caller itself.
func (s *UserService) UpdateOwnProfile(ctx context.Context, actor *models.JWTClaims, req UpdateProfileRequest, meta models.RequestMeta) (*models.Profile, error) {
	if err := authorize(actor, models.RoleUser, models.RoleAgent, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Nombre y teléfono son obligatorios")
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "El nombre no puede estar vacío")
	}

	profile, err := s.repo.UpdateContact(ctx, actor.TenantID, actor.UserID, fullName, strings.TrimSpace(req.Phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Usuario no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionProfileUpdate, profile.ID, map[string]interface{}{"full_name": profile.FullName, "phone": profile.Phone}, meta)
	return profile, nil
}

func (s *UserService) recordAudit(ctx context.Context, actor *models.JWTClaims, action, resourceID string, values map[string]interface{}, meta models.RequestMeta) {
	payload, _ := json.Marshal(values)
	if err := s.repo.CreateAuditLog(ctx, &models.AuditLog{
		TenantID:   actor.TenantID,
		ProfileID:  &actor.UserID,
		Action:     action,
		Resource:   "profiles",
		ResourceID: &resourceID,
		NewValues:  payload,
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to record profile audit log", zap.Error(err))
	}
}
