package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogRows(id string, featured, published bool, publishedAt *time.Time) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "author_id", "title", "slug", "excerpt", "featured", "published", "published_at", "created_at", "updated_at",
	}).AddRow(id, "tenant-1", nil, "Guía de hipotecas", "guia-hipotecas", "Todo sobre hipotecas", featured, published, publishedAt, now, now)
}

func TestBlogRepositoryToggleFeatured(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBlogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE blog_posts SET featured = NOT featured, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING")).
		WithArgs("tenant-1", "post-1", sqlmock.AnyArg()).
		WillReturnRows(blogRows("post-1", true, false, nil))

	post, err := repo.ToggleFeatured(context.Background(), "tenant-1", "post-1")
	require.NoError(t, err)
	assert.True(t, post.Featured)
}

func TestBlogRepositoryTogglePublishedStampsTimestamp(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBlogRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE blog_posts SET published = NOT published, published_at = CASE WHEN published THEN NULL ELSE $3 END, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING")).
		WithArgs("tenant-1", "post-1", sqlmock.AnyArg()).
		WillReturnRows(blogRows("post-1", false, true, &now))

	post, err := repo.TogglePublished(context.Background(), "tenant-1", "post-1")
	require.NoError(t, err)
	assert.True(t, post.Published)
	require.NotNil(t, post.PublishedAt)
}

func TestBlogRepositoryToggleUnknownPost(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBlogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE blog_posts SET featured = NOT featured")).
		WithArgs("tenant-1", "post-404", sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ToggleFeatured(context.Background(), "tenant-1", "post-404")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
