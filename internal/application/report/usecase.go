package report

import (
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// LowStockPDFGenerator puerto de generación del PDF del reporte de stock bajo.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(products []*entity.Product) ([]byte, error)
}

// LowStockReportUseCase arma el reporte de productos activos con stock en o
// por debajo del mínimo y lo entrega como PDF.
type LowStockReportUseCase struct {
	productRepo repository.ProductRepository
	generator   LowStockPDFGenerator
}

// NewLowStockReportUseCase construye el caso de uso.
func NewLowStockReportUseCase(productRepo repository.ProductRepository, generator LowStockPDFGenerator) *LowStockReportUseCase {
	return &LowStockReportUseCase{productRepo: productRepo, generator: generator}
}

// GeneratePDF devuelve los bytes del reporte.
func (uc *LowStockReportUseCase) GeneratePDF() ([]byte, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateLowStockPDF(products)
}
