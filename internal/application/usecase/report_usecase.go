package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/southgenetics/inventario/internal/domain/entity"
	"github.com/southgenetics/inventario/internal/domain/repository"
)

// InventoryPDFGenerator puerto para la generación del reporte PDF de inventario.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, products []*entity.Product,
		totals []repository.CurrencyValue, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase arma el reporte de inventario completo.
type ReportUseCase struct {
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
	generator     InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
	generator InventoryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
		generator:     generator,
	}
}

// reportFetchLimit cota superior de productos incluidos en el reporte.
const reportFetchLimit = 5000

// InventoryPDF genera el reporte PDF con todos los productos y los totales
// de valor de inventario por moneda.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List(ctx, repository.ListProductsParams{Limit: reportFetchLimit})
	if err != nil {
		return nil, fmt.Errorf("listar productos para reporte: %w", err)
	}
	totals, err := uc.analyticsRepo.InventoryValueByCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("valor de inventario para reporte: %w", err)
	}
	return uc.generator.GenerateInventoryPDF(ctx, products, totals, time.Now())
}
