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

	"github.com/habitara-dev/habitara-api/internal/models"
)

func submissionRows(id string, status models.SubmissionStatus) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "tenant_id", "property_id", "first_name", "last_name", "email", "phone",
		"message", "status", "notes", "agent_id", "created_at", "updated_at",
	}).AddRow(id, "tenant-1", nil, "Laura", "Pérez", "laura@example.com", "611222333",
		"Quiero visitar el piso", string(status), nil, nil, now, now)
}

func TestSubmissionRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO submissions")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	submission := &models.Submission{
		TenantID:  "tenant-1",
		FirstName: "Laura",
		LastName:  "Pérez",
		Email:     "laura@example.com",
		Phone:     "611222333",
		Message:   "Quiero visitar el piso",
		Status:    models.SubmissionStatusNew,
	}
	err := repo.Create(context.Background(), submission)
	require.NoError(t, err)
	assert.NotEmpty(t, submission.ID)
	assert.False(t, submission.CreatedAt.IsZero())
}

func TestSubmissionRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	agentID := "agent-1"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE submissions SET status = $3, notes = COALESCE($4, notes), agent_id = COALESCE($5, agent_id), updated_at = $6 WHERE tenant_id = $1 AND id = $2 RETURNING")).
		WithArgs("tenant-1", "lead-1", models.SubmissionStatusContacted, nil, &agentID, sqlmock.AnyArg()).
		WillReturnRows(submissionRows("lead-1", models.SubmissionStatusContacted))

	submission, err := repo.UpdateStatus(context.Background(), "tenant-1", "lead-1", models.SubmissionStatusContacted, nil, &agentID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusContacted, submission.Status)
}

func TestSubmissionRepositoryUpdateStatusCrossTenant(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE submissions SET status = $3")).
		WithArgs("tenant-2", "lead-1", models.SubmissionStatusDiscarded, nil, nil, sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "tenant-2", "lead-1", models.SubmissionStatusDiscarded, nil, nil)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSubmissionRepositoryListWithStatusFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE tenant_id = $1 AND status = $2 ORDER BY created_at DESC")).
		WithArgs("tenant-1", models.SubmissionStatusNew).
		WillReturnRows(submissionRows("lead-1", models.SubmissionStatusNew))

	status := models.SubmissionStatusNew
	items, err := repo.List(context.Background(), "tenant-1", models.SubmissionFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "lead-1", items[0].ID)
}
