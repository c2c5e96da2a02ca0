package ports

import (
	"context"

	"github.com/jhoicas/validador-ec/internal/application/dto"
)

// ReportGenerator genera el reporte PDF de una validación por lote.
type ReportGenerator interface {
	GenerateBatchReport(ctx context.Context, batch *dto.BatchResponse) ([]byte, error)
}
