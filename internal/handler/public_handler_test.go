package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/service"
	"github.com/habitara-dev/habitara-api/pkg/cms"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
)

type contactCaptureMock struct {
	submission *models.Submission
	err        error
	lastTenant string
	lastProp   *string
}

func (m *contactCaptureMock) SubmitContact(ctx context.Context, tenantID string, req service.ContactRequest, propertyID *string) (*models.Submission, error) {
	m.lastTenant = tenantID
	m.lastProp = propertyID
	return m.submission, m.err
}

type embedResolverMock struct {
	view *models.PropertyEmbed
	err  error
}

func (m *embedResolverMock) ResolveEmbed(ctx context.Context, token string) (*models.PropertyEmbed, error) {
	return m.view, m.err
}

type contentReaderMock struct {
	entry *cms.Entry
	err   error
}

func (m *contentReaderMock) Get(ctx context.Context, tenantID, slug string) (*cms.Entry, error) {
	return m.entry, m.err
}

func publicContext(t *testing.T, w *httptest.ResponseRecorder, method, path string, body []byte) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TenantHeader, "tenant-1")
	c.Request = req
	return c
}

func TestPublicHandlerSubmitContact(t *testing.T) {
	capture := &contactCaptureMock{submission: &models.Submission{ID: "lead-1", Status: models.SubmissionStatusNew}}
	handler := NewPublicHandler(capture, &embedResolverMock{}, &contentReaderMock{}, service.NewMetricsService())

	w := httptest.NewRecorder()
	body := []byte(`{"firstName":"Laura","lastName":"Pérez","email":"laura@example.com","phone":"611222333","message":"Quiero visitar","propertyId":"prop-1"}`)
	c := publicContext(t, w, http.MethodPost, "/public/contact", body)

	handler.SubmitContact(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "tenant-1", capture.lastTenant)
	require.NotNil(t, capture.lastProp)
	assert.Equal(t, "prop-1", *capture.lastProp)
}

func TestPublicHandlerSubmitContactInvalidBody(t *testing.T) {
	capture := &contactCaptureMock{}
	handler := NewPublicHandler(capture, &embedResolverMock{}, &contentReaderMock{}, nil)

	w := httptest.NewRecorder()
	c := publicContext(t, w, http.MethodPost, "/public/contact", []byte(`not-json`))

	handler.SubmitContact(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, capture.lastTenant)
}

func TestPublicHandlerEmbedProperty(t *testing.T) {
	handler := NewPublicHandler(&contactCaptureMock{}, &embedResolverMock{view: &models.PropertyEmbed{ID: "prop-1", Title: "Casa centro"}}, &contentReaderMock{}, nil)

	w := httptest.NewRecorder()
	c := publicContext(t, w, http.MethodGet, "/public/properties/embed/tok", nil)
	c.Params = gin.Params{{Key: "token", Value: "tok"}}

	handler.EmbedProperty(c)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
}

func TestPublicHandlerContentNotFound(t *testing.T) {
	handler := NewPublicHandler(&contactCaptureMock{}, &embedResolverMock{}, &contentReaderMock{err: appErrors.Clone(appErrors.ErrNotFound, "Contenido no encontrado")}, nil)

	w := httptest.NewRecorder()
	c := publicContext(t, w, http.MethodGet, "/public/content/nosotros", nil)
	c.Params = gin.Params{{Key: "slug", Value: "nosotros"}}

	handler.Content(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Contenido no encontrado", envelope.Error)
}
