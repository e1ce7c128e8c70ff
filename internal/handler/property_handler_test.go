package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitara-dev/habitara-api/internal/middleware"
	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/service"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
	"github.com/habitara-dev/habitara-api/pkg/response"
)

type propertyGatewayMock struct {
	property       *models.Property
	err            error
	approveCalls   int
	setActiveCalls int
	lastActive     *bool
}

func (m *propertyGatewayMock) Approve(ctx context.Context, actor *models.JWTClaims, req service.ApprovePropertyRequest, meta models.RequestMeta) (*models.Property, error) {
	m.approveCalls++
	return m.property, m.err
}

func (m *propertyGatewayMock) Reject(ctx context.Context, actor *models.JWTClaims, req service.RejectPropertyRequest, meta models.RequestMeta) (*models.Property, error) {
	return m.property, m.err
}

func (m *propertyGatewayMock) SetActive(ctx context.Context, actor *models.JWTClaims, req service.SetPropertyActiveRequest, meta models.RequestMeta) (*models.Property, error) {
	m.setActiveCalls++
	m.lastActive = req.IsActive
	return m.property, m.err
}

func (m *propertyGatewayMock) SetFeatured(ctx context.Context, actor *models.JWTClaims, req service.SetPropertyFeaturedRequest, meta models.RequestMeta) (*models.Property, error) {
	return m.property, m.err
}

func (m *propertyGatewayMock) PendingCount(ctx context.Context, actor *models.JWTClaims) (int, error) {
	return 3, m.err
}

func (m *propertyGatewayMock) GenerateEmbedURL(ctx context.Context, actor *models.JWTClaims, propertyID string) (*models.EmbedURL, error) {
	return &models.EmbedURL{URL: "https://portal.test/public/properties/embed/tok", Token: "tok"}, m.err
}

func adminContext(t *testing.T, w *httptest.ResponseRecorder, method, path string, body []byte) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", TenantID: "tenant-1", Role: models.RoleAdmin})
	return c
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestPropertyHandlerApprove(t *testing.T) {
	mock := &propertyGatewayMock{property: &models.Property{ID: "prop-1", Status: models.PropertyStatusApproved}}
	handler := NewPropertyHandler(mock)

	w := httptest.NewRecorder()
	body, _ := json.Marshal(service.ApprovePropertyRequest{PropertyID: "prop-1"})
	c := adminContext(t, w, http.MethodPost, "/properties/approve", body)

	handler.Approve(c)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
	assert.Equal(t, 1, mock.approveCalls)
}

func TestPropertyHandlerApproveForbidden(t *testing.T) {
	mock := &propertyGatewayMock{err: appErrors.ErrForbidden}
	handler := NewPropertyHandler(mock)

	w := httptest.NewRecorder()
	body, _ := json.Marshal(service.ApprovePropertyRequest{PropertyID: "prop-1"})
	c := adminContext(t, w, http.MethodPost, "/properties/approve", body)

	handler.Approve(c)
	require.Equal(t, http.StatusForbidden, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	assert.Equal(t, "No tienes permisos para esta acción", envelope.Error)
}

func TestPropertyHandlerSetActiveRejectsStringBoolean(t *testing.T) {
	mock := &propertyGatewayMock{}
	handler := NewPropertyHandler(mock)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/properties/active", []byte(`{"propertyId":"prop-1","isActive":"true"}`))

	handler.SetActive(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mock.setActiveCalls)
}

func TestPropertyHandlerSetActiveExplicitFalse(t *testing.T) {
	mock := &propertyGatewayMock{property: &models.Property{ID: "prop-1", Active: false}}
	handler := NewPropertyHandler(mock)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/properties/active", []byte(`{"propertyId":"prop-1","isActive":false}`))

	handler.SetActive(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mock.lastActive)
	assert.False(t, *mock.lastActive)
}

func TestPropertyHandlerPendingCount(t *testing.T) {
	handler := NewPropertyHandler(&propertyGatewayMock{})

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/properties/pending-count", nil)

	handler.PendingCount(c)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
}
