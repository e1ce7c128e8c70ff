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

type blogRepository interface {
	ToggleFeatured(ctx context.Context, tenantID, id string) (*models.BlogPost, error)
	TogglePublished(ctx context.Context, tenantID, id string) (*models.BlogPost, error)
}

// ToggleBlogRequest targets a post for a storage-level flag negation.
type ToggleBlogRequest struct {
	PostID string `json:"postId" validate:"required"`
}

// BlogService implements the blog post mutation gateways.
type BlogService struct {
	repo      blogRepository
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBlogService creates an instance of BlogService.
func NewBlogService(repo blogRepository, audit auditWriter, validate *validator.Validate, logger *zap.Logger) *BlogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &BlogService{repo: repo, audit: audit, validator: validate, logger: logger}
}

// ToggleFeatured flips the featured flag and returns the resulting record.
func (s *BlogService) ToggleFeatured(ctx context.Context, actor *models.JWTClaims, req ToggleBlogRequest, meta models.RequestMeta) (*models.BlogPost, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "El identificador del artículo es obligatorio")
	}

	post, err := s.repo.ToggleFeatured(ctx, actor.TenantID, req.PostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Artículo no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, post.ID, map[string]interface{}{"featured": post.Featured}, meta)
	return post, nil
}

// TogglePublished flips the published flag; the repository stamps or clears
// published_at in the same statement.
func (s *BlogService) TogglePublished(ctx context.Context, actor *models.JWTClaims, req ToggleBlogRequest, meta models.RequestMeta) (*models.BlogPost, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "El identificador del artículo es obligatorio")
	}

	post, err := s.repo.TogglePublished(ctx, actor.TenantID, req.PostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Artículo no encontrado")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.recordAudit(ctx, actor, post.ID, map[string]interface{}{"published": post.Published}, meta)
	return post, nil
}

func (s *BlogService) recordAudit(ctx context.Context, actor *models.JWTClaims, resourceID string, values map[string]interface{}, meta models.RequestMeta) {
	payload, _ := json.Marshal(values)
	if err := s.audit.CreateAuditLog(ctx, &models.AuditLog{
		TenantID:   actor.TenantID,
		ProfileID:  &actor.UserID,
		Action:     models.AuditActionBlogToggle,
		Resource:   "blog_posts",
		ResourceID: &resourceID,
		NewValues:  payload,
		IPAddress:  meta.IP,
		UserAgent:  meta.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to record blog audit log", zap.Error(err))
	}
}
