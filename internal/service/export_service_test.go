package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/dto"
)

type summaryProviderStub struct {
	resp *dto.CurrentSummaryResponse
}

func (s summaryProviderStub) CurrentSummary(ctx context.Context) (*dto.CurrentSummaryResponse, bool, error) {
	return s.resp, false, nil
}

func summaryResponseFixture() *dto.CurrentSummaryResponse {
	return &dto.CurrentSummaryResponse{
		Summary: []dto.SummaryGroup{
			{
				Specialty:     "Cardiologia",
				RoomCount:     2,
				Rooms:         []string{"E2-1", "E2-2"},
				Locations:     []string{"Bloco E - 2"},
				Professionals: 3,
			},
			{
				Specialty:     "Pediatria",
				RoomCount:     1,
				Rooms:         []string{"B1-4"},
				Locations:     []string{"Bloco B - 1"},
				Professionals: 1,
			},
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func TestSummaryCSV(t *testing.T) {
	svc := NewExportService(summaryProviderStub{resp: summaryResponseFixture()})

	payload, err := svc.SummaryCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Especialidade", "Salas", "Nomes das salas", "Localizações", "Profissionais"}, records[0])
	assert.Equal(t, []string{"Cardiologia", "2", "E2-1, E2-2", "Bloco E - 2", "3"}, records[1])
	assert.Equal(t, []string{"Pediatria", "1", "B1-4", "Bloco B - 1", "1"}, records[2])
}

func TestSummaryPDF(t *testing.T) {
	svc := NewExportService(summaryProviderStub{resp: summaryResponseFixture()})

	payload, err := svc.SummaryPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")), "output must be a PDF document")
}
