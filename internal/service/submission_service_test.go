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

type submissionRepoStub struct {
	submission  *models.Submission
	items       []models.Submission
	err         error
	created     []*models.Submission
	statusCalls int
	lastStatus  models.SubmissionStatus
	lastAgent   *string
}

func (s *submissionRepoStub) Create(ctx context.Context, submission *models.Submission) error {
	s.created = append(s.created, submission)
	return s.err
}

func (s *submissionRepoStub) UpdateStatus(ctx context.Context, tenantID, id string, status models.SubmissionStatus, notes *string, agentID *string) (*models.Submission, error) {
	s.statusCalls++
	s.lastStatus = status
	s.lastAgent = agentID
	return s.submission, s.err
}

func (s *submissionRepoStub) List(ctx context.Context, tenantID string, filter models.SubmissionFilter) ([]models.Submission, error) {
	return s.items, s.err
}

func validContact() ContactRequest {
	return ContactRequest{
		FirstName: "Laura",
		LastName:  "Pérez",
		Email:     " Laura.Perez@Example.com ",
		Phone:     "611222333",
		Message:   "Quiero visitar el piso",
	}
}

func TestSubmissionServiceUpdateStatusAdmin(t *testing.T) {
	repo := &submissionRepoStub{submission: &models.Submission{ID: "lead-1", Status: models.SubmissionStatusContacted}}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	submission, err := svc.UpdateStatus(context.Background(), adminClaims(), UpdateLeadStatusRequest{SubmissionID: "lead-1", Status: "contacted"}, models.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusContacted, submission.Status)
	assert.Nil(t, repo.lastAgent)
}

func TestSubmissionServiceAgentClaimsLead(t *testing.T) {
	repo := &submissionRepoStub{submission: &models.Submission{ID: "lead-1", Status: models.SubmissionStatusFollowingUp}}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), agentClaims(), UpdateLeadStatusRequest{SubmissionID: "lead-1", Status: "following-up"}, models.RequestMeta{})
	require.NoError(t, err)
	require.NotNil(t, repo.lastAgent)
	assert.Equal(t, "agent-1", *repo.lastAgent)
}

func TestSubmissionServiceBogusStatus(t *testing.T) {
	repo := &submissionRepoStub{}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), adminClaims(), UpdateLeadStatusRequest{SubmissionID: "lead-1", Status: "archived"}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.statusCalls)
}

func TestSubmissionServiceUpdateStatusForbiddenForUser(t *testing.T) {
	repo := &submissionRepoStub{}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	claims := &models.JWTClaims{UserID: "user-1", TenantID: "tenant-1", Role: models.RoleUser}
	_, err := svc.UpdateStatus(context.Background(), claims, UpdateLeadStatusRequest{SubmissionID: "lead-1", Status: "contacted"}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.statusCalls)
}

func TestSubmissionServiceUpdateStatusUnknownLead(t *testing.T) {
	repo := &submissionRepoStub{err: sql.ErrNoRows}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), adminClaims(), UpdateLeadStatusRequest{SubmissionID: "lead-404", Status: "discarded"}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSubmissionServiceSubmitContact(t *testing.T) {
	repo := &submissionRepoStub{}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	submission, err := svc.SubmitContact(context.Background(), "tenant-1", validContact(), nil)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusNew, submission.Status)
	assert.Equal(t, "tenant-1", submission.TenantID)
	assert.Equal(t, "laura.perez@example.com", submission.Email)
	assert.NotEmpty(t, submission.ID)
	require.Len(t, repo.created, 1)
}

func TestSubmissionServiceSubmitContactMissingTenant(t *testing.T) {
	repo := &submissionRepoStub{}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	_, err := svc.SubmitContact(context.Background(), "  ", validContact(), nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestSubmissionServiceSubmitContactMissingFields(t *testing.T) {
	repo := &submissionRepoStub{}
	svc := NewSubmissionService(repo, &auditLogStub{}, nil, zap.NewNop())

	contact := validContact()
	contact.Phone = ""
	_, err := svc.SubmitContact(context.Background(), "tenant-1", contact, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}
