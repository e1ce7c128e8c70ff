package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/habitara-dev/habitara-api/internal/models"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
	"github.com/habitara-dev/habitara-api/pkg/export"
)

// ExportFormat identifies the rendering target for a lead export.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

var leadExportHeaders = []string{"ID", "Nombre", "Email", "Teléfono", "Estado", "Propiedad", "Fecha"}

type submissionLister interface {
	List(ctx context.Context, tenantID string, filter models.SubmissionFilter) ([]models.Submission, error)
}

// ExportResult carries rendered bytes plus response metadata.
type ExportResult struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService renders tenant leads into downloadable files. Rendering is
// synchronous; there is no job queue behind it.
type ExportService struct {
	repo   submissionLister
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService creates an instance of ExportService.
func NewExportService(repo submissionLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:   repo,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// ExportLeads renders the tenant's leads in the requested format.
func (s *ExportService) ExportLeads(ctx context.Context, actor *models.JWTClaims, format ExportFormat, filter models.SubmissionFilter) (*ExportResult, error) {
	if err := authorize(actor, models.RoleAdmin); err != nil {
		return nil, err
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Formato de exportación inválido")
	}

	submissions, err := s.repo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	dataset := buildLeadDataset(submissions)
	stamp := time.Now().UTC().Format("20060102")

	switch format {
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, "Consultas")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("consultas-%s.pdf", stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("consultas-%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

func buildLeadDataset(submissions []models.Submission) export.Dataset {
	rows := make([]map[string]string, 0, len(submissions))
	for _, sub := range submissions {
		propertyID := ""
		if sub.PropertyID != nil {
			propertyID = *sub.PropertyID
		}
		rows = append(rows, map[string]string{
			"ID":        sub.ID,
			"Nombre":    sub.FirstName + " " + sub.LastName,
			"Email":     sub.Email,
			"Teléfono":  sub.Phone,
			"Estado":    string(sub.Status),
			"Propiedad": propertyID,
			"Fecha":     sub.CreatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}
	return export.Dataset{Headers: leadExportHeaders, Rows: rows}
}

// ParseExportFormat normalises the query value, defaulting to CSV.
func ParseExportFormat(raw string) ExportFormat {
	switch raw {
	case string(ExportFormatPDF):
		return ExportFormatPDF
	case string(ExportFormatCSV), "":
		return ExportFormatCSV
	default:
		return ExportFormat(raw)
	}
}
