package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amm-colonia/inscripciones-api/internal/models"
	"github.com/amm-colonia/inscripciones-api/internal/render"
	appErrors "github.com/amm-colonia/inscripciones-api/pkg/errors"
	"github.com/amm-colonia/inscripciones-api/pkg/export"
)

// Export formats.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

var contentTypes = map[string]string{
	FormatXLSX: export.XLSXContentType,
	FormatCSV:  "text/csv; charset=utf-8",
	FormatPDF:  "application/pdf",
}

type registrationLister interface {
	List(ctx context.Context) ([]models.Registration, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	Rows        int
}

// ExportService renders every registration into a downloadable file.
type ExportService struct {
	registrations  registrationLister
	csv            *export.CSVExporter
	pdf            *export.PDFExporter
	options        render.Options
	filenamePrefix string
	metrics        *MetricsService
	logger         *zap.Logger
	now            func() time.Time
}

// NewExportService constructs an export service.
func NewExportService(registrations registrationLister, opts render.Options, filenamePrefix string, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if filenamePrefix == "" {
		filenamePrefix = "Registros"
	}
	return &ExportService{
		registrations:  registrations,
		csv:            export.NewCSVExporter(),
		pdf:            export.NewPDFExporter(),
		options:        opts,
		filenamePrefix: filenamePrefix,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

// Export renders all registrations, newest first, in format. An empty format means xlsx.
func (s *ExportService) Export(ctx context.Context, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXLSX
	}
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("formato de exportación no soportado: %s", format))
	}

	regs, err := s.registrations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al exportar registros")
	}

	var content []byte
	switch format {
	case FormatXLSX:
		content, err = render.Spreadsheet(regs, s.options)
	case FormatCSV:
		content, err = s.csv.Render(render.SpreadsheetDataset(regs, s.options))
	case FormatPDF:
		content, err = s.pdf.Render(render.SpreadsheetDataset(regs, s.options), s.options.SheetName)
	}
	if err != nil {
		s.logger.Error("failed to render export", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al exportar registros")
	}

	s.metrics.RecordExport(format)
	return &ExportFile{
		Filename:    s.Filename(format),
		ContentType: contentType,
		Content:     content,
		Rows:        len(regs),
	}, nil
}

// Filename returns "<prefix>_<YYYY-MM-DD>.<format>" using the current UTC date.
func (s *ExportService) Filename(format string) string {
	return fmt.Sprintf("%s_%s.%s", s.filenamePrefix, s.now().UTC().Format("2006-01-02"), format)
}
