package usecase

import (
	"context"

	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

// Límite de filas para el reporte: el export es un volcado operativo, no
// un data warehouse.
const reportMaxOrders = 10000

// ReportUseCase exportes administrativos.
type ReportUseCase struct {
	orderRepo repository.OrderRepository
	generator OrdersReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orderRepo repository.OrderRepository, generator OrdersReportGenerator) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo, generator: generator}
}

// OrdersXLSX genera el reporte de órdenes en formato XLSX.
func (uc *ReportUseCase) OrdersXLSX(ctx context.Context) ([]byte, error) {
	orders, err := uc.orderRepo.ListAll(reportMaxOrders, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(ctx, orders)
}
