package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SnapshotReportUseCase genera el reporte PDF de existencias.
type SnapshotReportUseCase struct {
	stockRepo repository.StockItemRepository
	pdf       SnapshotPDFGenerator
}

// NewSnapshotReportUseCase construye el caso de uso.
func NewSnapshotReportUseCase(stockRepo repository.StockItemRepository, pdf SnapshotPDFGenerator) *SnapshotReportUseCase {
	return &SnapshotReportUseCase{stockRepo: stockRepo, pdf: pdf}
}

// GeneratePDF arma las filas del snapshot (con SKU y código de
// ubicación) y delega el render al generador.
func (uc *SnapshotReportUseCase) GeneratePDF(ctx context.Context, q dto.SnapshotQuery) ([]byte, error) {
	details, err := uc.stockRepo.ListDetailed(q.ProductID, q.LocationID)
	if err != nil {
		return nil, err
	}
	rows := make([]SnapshotReportRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, SnapshotReportRow{
			SKU:          d.SKU,
			ProductName:  d.ProductName,
			LocationCode: d.LocationCode,
			OnHand:       d.Item.OnHand,
			Reserved:     d.Item.Reserved,
			Available:    d.Item.Available(),
		})
	}
	return uc.pdf.GenerateSnapshotPDF(ctx, rows)
}
