package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gds-saude/gds-api/internal/dto"
	"github.com/gds-saude/gds-api/pkg/export"
)

type summaryProvider interface {
	CurrentSummary(ctx context.Context) (*dto.CurrentSummaryResponse, bool, error)
}

// ExportService renders the current summary as a downloadable document.
type ExportService struct {
	summary summaryProvider
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
}

// NewExportService constructs an ExportService.
func NewExportService(summary summaryProvider) *ExportService {
	return &ExportService{
		summary: summary,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
	}
}

const exportTitle = "Mapa semanal de salas por especialidade"

// SummaryCSV renders the per-specialty summary as CSV.
func (s *ExportService) SummaryCSV(ctx context.Context) ([]byte, error) {
	resp, _, err := s.summary.CurrentSummary(ctx)
	if err != nil {
		return nil, err
	}
	return s.csv.Render(summaryDataset(resp.Summary))
}

// SummaryPDF renders the per-specialty summary as a landscape PDF.
func (s *ExportService) SummaryPDF(ctx context.Context) ([]byte, error) {
	resp, _, err := s.summary.CurrentSummary(ctx)
	if err != nil {
		return nil, err
	}
	return s.pdf.Render(summaryDataset(resp.Summary), exportTitle)
}

func summaryDataset(groups []dto.SummaryGroup) export.Dataset {
	headers := []string{"Especialidade", "Salas", "Nomes das salas", "Localizações", "Profissionais"}
	rows := make([]map[string]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, map[string]string{
			headers[0]: g.Specialty,
			headers[1]: fmt.Sprintf("%d", g.RoomCount),
			headers[2]: strings.Join(g.Rooms, ", "),
			headers[3]: strings.Join(g.Locations, "; "),
			headers[4]: fmt.Sprintf("%d", g.Professionals),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
