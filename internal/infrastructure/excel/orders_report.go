// Package excel genera el reporte administrativo de órdenes en formato XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/printhub-api/internal/application/usecase"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

var _ usecase.OrdersReportGenerator = (*OrdersReport)(nil)

const sheetName = "Órdenes"

var headers = []string{
	"ID", "Usuario", "Archivo", "Páginas", "Rango", "Color", "Caras",
	"Páginas/Hoja", "Copias", "Encuadernación", "Hojas", "Precio/Hoja",
	"Subtotal impresión", "Subtotal encuadernación", "Total", "Estado", "Fecha",
}

// OrdersReport genera el XLSX de órdenes con excelize.
type OrdersReport struct{}

// NewOrdersReport construye el generador.
func NewOrdersReport() *OrdersReport {
	return &OrdersReport{}
}

// Generate produce el libro con una fila por orden, más recientes primero.
func (g *OrdersReport) Generate(_ context.Context, orders []*entity.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for i, o := range orders {
		values := []any{
			o.ID, o.UserID, o.FileName, o.TotalPages, o.PageRange, o.ColorType, o.SideType,
			o.PagesPerSheet, o.Copies, o.BindingName, o.SheetsNeeded,
			o.PricePerSheet.Round(2).InexactFloat64(),
			o.PrintSubtotal.Round(2).InexactFloat64(),
			o.BindingSubtotal.Round(2).InexactFloat64(),
			o.GrandTotal.Round(2).InexactFloat64(),
			o.Status, o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
