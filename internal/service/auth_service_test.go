package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type authRepoStub struct {
	profile      *models.Profile
	emailErr     error
	stored       *models.RefreshToken
	findTokenErr error
	created      []*models.RefreshToken
	revoked      []string
	logs         []*models.AuditLog
	lastLogin    *time.Time
}

func (s *authRepoStub) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if s.emailErr != nil {
		return nil, s.emailErr
	}
	return s.profile, nil
}

func (s *authRepoStub) FindByIDUnscoped(ctx context.Context, id string) (*models.Profile, error) {
	if s.profile == nil {
		return nil, sql.ErrNoRows
	}
	return s.profile, nil
}

func (s *authRepoStub) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	s.lastLogin = &ts
	return nil
}

func (s *authRepoStub) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	s.created = append(s.created, token)
	return nil
}

func (s *authRepoStub) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	if s.findTokenErr != nil {
		return nil, s.findTokenErr
	}
	return s.stored, nil
}

func (s *authRepoStub) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) error {
	s.revoked = append(s.revoked, id)
	return nil
}

func (s *authRepoStub) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	s.logs = append(s.logs, log)
	return nil
}

func testAuthConfig() AuthConfig {
	return AuthConfig{
		AccessTokenSecret:  "test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "habitara-api",
	}
}

func activeProfile(t *testing.T) *models.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Profile{
		ID:           "admin-1",
		TenantID:     "tenant-1",
		Email:        "admin@habitara.test",
		PasswordHash: string(hash),
		FullName:     "Admin Uno",
		Role:         models.RoleAdmin,
		Active:       true,
	}
}

func TestAuthServiceLogin(t *testing.T) {
	repo := &authRepoStub{profile: activeProfile(t)}
	svc := NewAuthService(repo, nil, zap.NewNop(), testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@habitara.test", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "tenant-1", resp.Profile.TenantID)
	require.Len(t, repo.created, 1)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, models.AuditActionLogin, repo.logs[0].Action)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := &authRepoStub{profile: activeProfile(t)}
	svc := NewAuthService(repo, nil, zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@habitara.test", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	repo := &authRepoStub{emailErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@habitara.test", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	profile := activeProfile(t)
	profile.Active = false
	repo := &authRepoStub{profile: profile}
	svc := NewAuthService(repo, nil, zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "admin@habitara.test", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRefreshRotatesToken(t *testing.T) {
	repo := &authRepoStub{
		profile: activeProfile(t),
		stored: &models.RefreshToken{
			ID:        "rt-1",
			ProfileID: "admin-1",
			Token:     "old-token",
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		},
	}
	svc := NewAuthService(repo, nil, zap.NewNop(), testAuthConfig())

	resp, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: "old-token"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, "old-token", resp.RefreshToken)
	require.Len(t, repo.revoked, 1)
	assert.Equal(t, "rt-1", repo.revoked[0])
	require.Len(t, repo.created, 1)
}

func TestAuthServiceRefreshExpiredToken(t *testing.T) {
	repo := &authRepoStub{
		profile: activeProfile(t),
		stored: &models.RefreshToken{
			ID:        "rt-1",
			ProfileID: "admin-1",
			Token:     "old-token",
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		},
	}
	svc := NewAuthService(repo, nil, zap.NewNop(), testAuthConfig())

	_, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: "old-token"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestAuthServiceRefreshUnknownToken(t *testing.T) {
	repo := &authRepoStub{findTokenErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, zap.NewNop(), testAuthConfig())

	_, err := svc.RefreshToken(context.Background(), models.RefreshTokenRequest{RefreshToken: "missing"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(&authRepoStub{}, nil, zap.NewNop(), testAuthConfig())

	_, err := svc.ValidateToken("not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
