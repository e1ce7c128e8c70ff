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

func projectRows(id string, active, featured bool) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "name", "slug", "description", "city", "active", "featured", "created_at", "updated_at",
	}).AddRow(id, "tenant-1", "Residencial Norte", "residencial-norte", "Obra nueva", "Valencia", active, featured, now, now)
}

func TestProjectRepositoryToggleActiveNegatesInStorage(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE projects SET active = NOT active, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING")).
		WithArgs("tenant-1", "proj-1", sqlmock.AnyArg()).
		WillReturnRows(projectRows("proj-1", false, false))

	project, err := repo.ToggleActive(context.Background(), "tenant-1", "proj-1")
	require.NoError(t, err)
	assert.False(t, project.Active)
}

func TestProjectRepositoryToggleFeatured(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE projects SET featured = NOT featured, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING")).
		WithArgs("tenant-1", "proj-1", sqlmock.AnyArg()).
		WillReturnRows(projectRows("proj-1", true, true))

	project, err := repo.ToggleFeatured(context.Background(), "tenant-1", "proj-1")
	require.NoError(t, err)
	assert.True(t, project.Featured)
}

func TestProjectRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE tenant_id = $1 AND id = $2")).
		WithArgs("tenant-1", "proj-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "tenant-1", "proj-1")
	require.NoError(t, err)
}

func TestProjectRepositoryDeleteCrossTenant(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE tenant_id = $1 AND id = $2")).
		WithArgs("tenant-2", "proj-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "tenant-2", "proj-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
