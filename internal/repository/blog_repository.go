package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habitara-dev/habitara-api/internal/models"
)

const blogColumns = `id, tenant_id, author_id, title, slug, excerpt, featured, published, published_at, created_at, updated_at`

// BlogRepository provides database access for blog posts.
type BlogRepository struct {
	db *sqlx.DB
}

// NewBlogRepository creates a new instance of BlogRepository.
func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// ToggleFeatured negates the featured flag and returns the updated record.
func (r *BlogRepository) ToggleFeatured(ctx context.Context, tenantID, id string) (*models.BlogPost, error) {
	query := fmt.Sprintf(`UPDATE blog_posts SET featured = NOT featured, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, blogColumns)
	var post models.BlogPost
	if err := r.db.GetContext(ctx, &post, query, tenantID, id, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("toggle blog featured: %w", err)
	}
	return &post, nil
}

// TogglePublished negates the published flag in a single statement. The
// publication timestamp is stamped when the post becomes published and
// cleared when it is withdrawn; the CASE reads the pre-update value.
func (r *BlogRepository) TogglePublished(ctx context.Context, tenantID, id string) (*models.BlogPost, error) {
	query := fmt.Sprintf(`UPDATE blog_posts SET published = NOT published, published_at = CASE WHEN published THEN NULL ELSE $3 END, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, blogColumns)
	var post models.BlogPost
	if err := r.db.GetContext(ctx, &post, query, tenantID, id, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("toggle blog published: %w", err)
	}
	return &post, nil
}
