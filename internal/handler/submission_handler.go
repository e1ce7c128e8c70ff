package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/service"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
	"github.com/habitara-dev/habitara-api/pkg/response"
)

type submissionGateway interface {
	UpdateStatus(ctx context.Context, actor *models.JWTClaims, req service.UpdateLeadStatusRequest, meta models.RequestMeta) (*models.Submission, error)
	List(ctx context.Context, actor *models.JWTClaims, filter models.SubmissionFilter) ([]models.Submission, error)
}

type leadExporter interface {
	ExportLeads(ctx context.Context, actor *models.JWTClaims, format service.ExportFormat, filter models.SubmissionFilter) (*service.ExportResult, error)
}

// SubmissionHandler handles back-office lead endpoints.
type SubmissionHandler struct {
	service  submissionGateway
	exporter leadExporter
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(svc submissionGateway, exporter leadExporter) *SubmissionHandler {
	return &SubmissionHandler{service: svc, exporter: exporter}
}

// UpdateStatus godoc
// @Summary Update lead status
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body service.UpdateLeadStatusRequest true "Target lead, status and notes"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /leads/status [post]
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	submission, err := h.service.UpdateStatus(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, submission, "Consulta actualizada")
}

// List godoc
// @Summary List tenant leads
// @Tags Leads
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {object} response.Envelope
// @Router /leads [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	var filter models.SubmissionFilter
	if status := c.Query("status"); status != "" {
		if !models.ValidSubmissionStatus(status) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Estado de consulta inválido"))
			return
		}
		s := models.SubmissionStatus(status)
		filter.Status = &s
	}

	submissions, err := h.service.List(c.Request.Context(), claimsFromContext(c), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, submissions)
}

// Export godoc
// @Summary Export tenant leads
// @Tags Leads
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Success 200 {file} binary
// @Failure 403 {object} response.Envelope
// @Router /leads/export [get]
func (h *SubmissionHandler) Export(c *gin.Context) {
	format := service.ParseExportFormat(c.Query("format"))

	result, err := h.exporter.ExportLeads(c.Request.Context(), claimsFromContext(c), format, models.SubmissionFilter{})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
