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

type agentRepoStub struct {
	agent      *models.Agent
	err        error
	calls      int
	lastActive bool
}

func (s *agentRepoStub) SetActive(ctx context.Context, tenantID, id string, active bool) (*models.Agent, error) {
	s.calls++
	s.lastActive = active
	return s.agent, s.err
}

func TestAgentServiceSetActive(t *testing.T) {
	repo := &agentRepoStub{agent: &models.Agent{ID: "agent-card-1", Active: false}}
	audit := &auditLogStub{}
	svc := NewAgentService(repo, audit, nil, zap.NewNop())

	inactive := false
	agent, err := svc.SetActive(context.Background(), adminClaims(), SetAgentActiveRequest{AgentID: "agent-card-1", IsActive: &inactive}, models.RequestMeta{})
	require.NoError(t, err)
	assert.False(t, agent.Active)
	assert.False(t, repo.lastActive)
	require.Len(t, audit.logs, 1)
	assert.Equal(t, models.AuditActionAgentToggle, audit.logs[0].Action)
}

func TestAgentServiceSetActiveOwnCardAllowed(t *testing.T) {
	repo := &agentRepoStub{agent: &models.Agent{ID: "agent-card-1", ProfileID: "admin-1", Active: false}}
	svc := NewAgentService(repo, &auditLogStub{}, nil, zap.NewNop())

	inactive := false
	_, err := svc.SetActive(context.Background(), adminClaims(), SetAgentActiveRequest{AgentID: "agent-card-1", IsActive: &inactive}, models.RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestAgentServiceSetActiveMissingFlag(t *testing.T) {
	repo := &agentRepoStub{}
	svc := NewAgentService(repo, &auditLogStub{}, nil, zap.NewNop())

	_, err := svc.SetActive(context.Background(), adminClaims(), SetAgentActiveRequest{AgentID: "agent-card-1"}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.calls)
}

func TestAgentServiceSetActiveForbiddenForAgent(t *testing.T) {
	repo := &agentRepoStub{}
	svc := NewAgentService(repo, &auditLogStub{}, nil, zap.NewNop())

	active := true
	_, err := svc.SetActive(context.Background(), agentClaims(), SetAgentActiveRequest{AgentID: "agent-card-1", IsActive: &active}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.calls)
}

func TestAgentServiceSetActiveUnknownAgent(t *testing.T) {
	repo := &agentRepoStub{err: sql.ErrNoRows}
	svc := NewAgentService(repo, &auditLogStub{}, nil, zap.NewNop())

	active := true
	_, err := svc.SetActive(context.Background(), adminClaims(), SetAgentActiveRequest{AgentID: "agent-404", IsActive: &active}, models.RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
