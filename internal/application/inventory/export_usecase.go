package inventory

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// ExportUseCase genera el historial de movimientos como libro XLSX.
type ExportUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(movementRepo repository.StockMovementRepository) *ExportUseCase {
	return &ExportUseCase{movementRepo: movementRepo}
}

// ExportMovements devuelve los bytes de un XLSX con una fila por movimiento,
// más reciente primero (mismo orden que el listado).
func (uc *ExportUseCase) ExportMovements() ([]byte, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id",
		"product_id",
		"product_name",
		"type",
		"quantity",
		"quantity_before",
		"quantity_after",
		"reason",
		"created_at",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: cabecera: %w", err)
	}

	row := 2
	for _, m := range movements {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("export: celda fila %d: %w", row, err)
		}
		values := []interface{}{
			m.ID,
			m.ProductID,
			m.ProductName,
			m.Type,
			m.Quantity,
			m.QuantityBefore,
			m.QuantityAfter,
			m.Reason,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("export: fila %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
