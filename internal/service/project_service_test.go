package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type projectRepoStub struct {
	project       *models.Project
	err           error
	activeCalls   int
	featuredCalls int
	deleteCalls   int
	lastTenant    string
}

func (s *projectRepoStub) ToggleActive(ctx context.Context, tenantID, id string) (*models.Project, error) {
	s.activeCalls++
	s.lastTenant = tenantID
	return s.project, s.err
}

func (s *projectRepoStub) ToggleFeatured(ctx context.Context, tenantID, id string) (*models.Project, error) {
	s.featuredCalls++
	s.lastTenant = tenantID
	return s.project, s.err
}

func (s *projectRepoStub) Delete(ctx context.Context, tenantID, id string) error {
	s.deleteCalls++
	s.lastTenant = tenantID
	return s.err
}

func TestProjectServiceToggleActive(t *testing.T) {
	repo := &projectRepoStub{project: &models.Project{ID: "proj-1", Active: false}}
	audit := &auditLogStub{}
	svc := NewProjectService(repo, audit, nil, zap.NewNop())

	project, err := svc.ToggleActive(context.Background(), adminClaims(), ToggleProjectRequest{ProjectID: "proj-1"}, models.RequestMeta{})
	require.NoError(t, err)
	assert.False(t, project.Active)
	assert.Equal(t, 1, repo.activeCalls)
	assert.Equal(t, "tenant-1", repo.lastTenant)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionProjectToggle, audit.logs[0].Action)
}

func TestProjectServiceToggleActiveForbidden(t *testing.T) {
	repo := &projectRepoStub{}
	svc := NewProjectService(repo, &auditLogStub{}, nil, zap.NewNop())

	_, err := svc.ToggleActive(context.Background(), agentClaims(), ToggleProjectRequest{ProjectID: "proj-1"}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.activeCalls)
}

func TestProjectServiceToggleMissingID(t *testing.T) {
	repo := &projectRepoStub{}
	svc := NewProjectService(repo, &auditLogStub{}, nil, zap.NewNop())

	_, err := svc.ToggleFeatured(context.Background(), adminClaims(), ToggleProjectRequest{}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.featuredCalls)
}

func TestProjectServiceDelete(t *testing.T) {
	repo := &projectRepoStub{}
	audit := &auditLogStub{}
	svc := NewProjectService(repo, audit, nil, zap.NewNop())

	err := svc.Delete(context.Background(), adminClaims(), "proj-1", models.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionProjectDelete, audit.logs[0].Action)
}

func TestProjectServiceDeleteUnknownProject(t *testing.T) {
	repo := &projectRepoStub{err: sql.ErrNoRows}
	svc := NewProjectService(repo, &auditLogStub{}, nil, zap.NewNop())

	err := svc.Delete(context.Background(), adminClaims(), "proj-404", models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
