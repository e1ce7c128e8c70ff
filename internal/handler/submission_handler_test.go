package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/service"
)

type submissionGatewayMock struct {
	submission *models.Submission
	items      []models.Submission
	err        error
	calls      int
}

func (m *submissionGatewayMock) UpdateStatus(ctx context.Context, actor *models.JWTClaims, req service.UpdateLeadStatusRequest, meta models.RequestMeta) (*models.Submission, error) {
	m.calls++
	return m.submission, m.err
}

func (m *submissionGatewayMock) List(ctx context.Context, actor *models.JWTClaims, filter models.SubmissionFilter) ([]models.Submission, error) {
	return m.items, m.err
}

type leadExporterMock struct {
	result *service.ExportResult
	err    error
}

func (m *leadExporterMock) ExportLeads(ctx context.Context, actor *models.JWTClaims, format service.ExportFormat, filter models.SubmissionFilter) (*service.ExportResult, error) {
	return m.result, m.err
}

func TestSubmissionHandlerUpdateStatus(t *testing.T) {
	mock := &submissionGatewayMock{submission: &models.Submission{ID: "lead-1", Status: models.SubmissionStatusContacted}}
	handler := NewSubmissionHandler(mock, &leadExporterMock{})

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/leads/status", []byte(`{"submissionId":"lead-1","status":"contacted"}`))

	handler.UpdateStatus(c)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.True(t, envelope.Success)
	assert.Equal(t, 1, mock.calls)
}

func TestSubmissionHandlerListRejectsBogusStatus(t *testing.T) {
	mock := &submissionGatewayMock{}
	handler := NewSubmissionHandler(mock, &leadExporterMock{})

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/leads?status=archived", nil)

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.False(t, envelope.Success)
}

func TestSubmissionHandlerExportSetsDisposition(t *testing.T) {
	exporter := &leadExporterMock{result: &service.ExportResult{
		FileName:    "consultas-20250310.csv",
		ContentType: "text/csv",
		Data:        []byte("ID,Nombre\n"),
	}}
	handler := NewSubmissionHandler(&submissionGatewayMock{}, exporter)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/leads/export?format=csv", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "consultas-20250310.csv")
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
}
