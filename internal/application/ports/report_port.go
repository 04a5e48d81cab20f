package ports

import (
	"context"
	"time"

	"github.com/jhoicas/settlement-admin/internal/domain/entity"
	"github.com/jhoicas/settlement-admin/internal/domain/settlement"
)

// StatisticsReport datos de un reporte de estadísticas ya aplanado.
type StatisticsReport struct {
	Title       string
	StartDate   string
	EndDate     string
	GeneratedBy string
	GeneratedAt time.Time
	Rows        []settlement.Row
	Total       entity.StatSummary
}

// StatisticsRenderer genera el archivo de un reporte (PDF, XLSX).
type StatisticsRenderer interface {
	Render(ctx context.Context, report StatisticsReport) ([]byte, error)
	ContentType() string
	Extension() string
}

// QRGenerator genera un código QR en PNG.
type QRGenerator interface {
	PNG(content string, size int) ([]byte, error)
}
