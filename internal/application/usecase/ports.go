package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

// FileStore puerto de almacenamiento de documentos subidos.
type FileStore interface {
	// Save persiste el contenido y devuelve la ruta interna asignada.
	Save(ctx context.Context, originalName string, r io.Reader) (storedPath string, err error)
	Open(ctx context.Context, storedPath string) (io.ReadCloser, error)
}

// PageInspector puerto de inspección de documentos: extrae el total de
// páginas de un archivo soportado.
type PageInspector interface {
	PageCount(ctx context.Context, storedPath string) (int, error)
}

// ReceiptGenerator puerto de generación del comprobante PDF de una orden.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, user *entity.User) ([]byte, error)
}

// OrdersReportGenerator puerto de exportación del reporte de órdenes (XLSX).
type OrdersReportGenerator interface {
	Generate(ctx context.Context, orders []*entity.Order) ([]byte, error)
}
