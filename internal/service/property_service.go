package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/pkg/embed"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type propertyRepository interface {
	FindByID(ctx context.Context, tenantID, id string) (*models.Property, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status models.PropertyStatus, reason *string) (*models.Property, error)
	SetActive(ctx context.Context, tenantID, id string, active bool) (*models.Property, error)
	SetFeatured(ctx context.Context, tenantID, id string, featured bool) (*models.Property, error)
	CountPending(ctx context.Context, tenantID string) (int, error)
	FindEmbeddable(ctx context.Context, tenantID, id string) (*models.Property, error)
}

type auditWriter interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// ApprovePropertyRequest approves a pending listing.
type ApprovePropertyRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
}

// RejectPropertyRequest rejects a pending listing with a mandatory reason.
type RejectPropertyRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

// SetPropertyActiveRequest writes an explicit active flag. The pointer keeps
// the boolean strict: a JSON string is a binding failure, not a coercion.
type SetPropertyActiveRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	IsActive   *bool  `json:"isActive" validate:"required"`
}

// SetPropertyFeaturedRequest writes an explicit featured flag.
type SetPropertyFeaturedRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	IsFeatured *bool  `json:"isFeatured" validate:"required"`
}

// PropertyService implements the property mutation gateways.
type PropertyService struct {
	repo      propertyRepository
	audit     auditWriter
	signer    *embed.TokenSigner
	embedBase string
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPropertyService creates an instance of PropertyService.
func NewPropertyService(repo propertyRepository, audit auditWriter, signer *embed.TokenSigner, embedBase string, validate *validator.Validate, logger *zap.Logger) *PropertyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PropertyService{repo: repo, audit: audit, signer: signer, embedBase: strings.TrimRight(embedBase, "/"), validator: validate, logger: logger}
}

// Approve transitions a listing to approved.
func (s *PropertyService) Approve(ctx context.Context, actor *models.JWTClaims, req ApprovePropertyRequest, meta models.RequestMeta) (*models.Property, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "El identificador de la propiedad es obligatorio")
	}

	property, err := s.repo.UpdateStatus(ctx, actor.TenantID, req.PropertyID, models.PropertyStatusApproved, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Propiedad no encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionPropertyApprove, property.ID, map[string]interface{}{"status": property.Status}, meta)
	return property, nil
}

// Reject transitions a listing to rejected. The reason must be non-blank
// after trimming.
func (s *PropertyService) Reject(ctx context.Context, actor *models.JWTClaims, req RejectPropertyRequest, meta models.RequestMeta) (*models.Property, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador y motivo de rechazo son obligatorios")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "El motivo de rechazo no puede estar vacío")
	}

	property, err := s.repo.UpdateStatus(ctx, actor.TenantID, req.PropertyID, models.PropertyStatusRejected, &reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Propiedad no encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionPropertyReject, property.ID, map[string]interface{}{"status": property.Status, "reason": reason}, meta)
	return property, nil
}

// SetActive writes the explicit active flag; supplying the same value twice
// is a no-op by construction.
func (s *PropertyService) SetActive(ctx context.Context, actor *models.JWTClaims, req SetPropertyActiveRequest, meta models.RequestMeta) (*models.Property, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador y estado activo son obligatorios")
	}

	property, err := s.repo.SetActive(ctx, actor.TenantID, req.PropertyID, *req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Propiedad no encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionPropertyToggle, property.ID, map[string]interface{}{"active": property.Active}, meta)
	return property, nil
}

// SetFeatured writes the explicit featured flag.
func (s *PropertyService) SetFeatured(ctx context.Context, actor *models.JWTClaims, req SetPropertyFeaturedRequest, meta models.RequestMeta) (*models.Property, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Identificador y estado destacado son obligatorios")
	}

	property, err := s.repo.SetFeatured(ctx, actor.TenantID, req.PropertyID, *req.IsFeatured)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Propiedad no encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, models.AuditActionPropertyToggle, property.ID, map[string]interface{}{"featured": property.Featured}, meta)
	return property, nil
}

// PendingCount returns the moderation queue size for admins. Any other
// authenticated caller gets zero rather than a rejection.
func (s *PropertyService) PendingCount(ctx context.Context, actor *models.JWTClaims) (int, error) {
	if actor == nil {
		return 0, appErrors.ErrUnauthorized
	}
	if actor.Role != models.RoleAdmin {
		return 0, nil
	}

	count, err := s.repo.CountPending(ctx, actor.TenantID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return count, nil
}

// GenerateEmbedURL issues a signed public embed link for a listing that is
// approved and active within the caller's tenant.
func (s *PropertyService) GenerateEmbedURL(ctx context.Context, actor *models.JWTClaims, propertyID string) (*models.EmbedURL, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if strings.TrimSpace(propertyID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "El identificador de la propiedad es obligatorio")
	}

	property, err := s.repo.FindEmbeddable(ctx, actor.TenantID, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Propiedad no encontrada o no publicable")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	token, expiresAt, err := s.signer.Generate(actor.TenantID, property.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	return &models.EmbedURL{
		URL:       fmt.Sprintf("%s/public/properties/embed/%s", s.embedBase, token),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveEmbed validates a signed token and returns the public view of the
// listing. No principal is involved; the token carries the tenant scope.
func (s *PropertyService) ResolveEmbed(ctx context.Context, token string) (*models.PropertyEmbed, error) {
	propertyID, tenantID, expiresAt, err := s.signer.Parse(token)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Enlace inválido o expirado")
	}

	property, err := s.repo.FindEmbeddable(ctx, tenantID, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Propiedad no encontrada")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	return &models.PropertyEmbed{
		ID:          property.ID,
		Title:       property.Title,
		Slug:        property.Slug,
		Description: property.Description,
		Price:       property.Price,
		Currency:    property.Currency,
		City:        property.City,
		Featured:    property.Featured,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *PropertyService) recordAudit(ctx context.Context, actor *models.JWTClaims, action, resourceID string, values map[string]interface{}, meta models.RequestMeta) {
	payload, _ := json.Marshal(values)
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		TenantID:   actor.TenantID,
		ProfileID:  &actor.UserID,
		Action:     action,
		Resource:   "properties",
		ResourceID: &resourceID,
		NewValues:  payload,
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to record property audit log", zap.Error(err))
	}
}
