package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order. Una orden nace en pending y avanza hasta
// completed o cancelled; las transiciones las maneja el admin.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusReady      = "ready"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus indica si s es un estado de orden reconocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa una orden de impresión: el documento subido, la configuración
// elegida y la cotización calculada en el servidor al momento de crearla.
// Los montos se congelan al crear la orden; cambios posteriores del catálogo
// de precios no la afectan.
type Order struct {
	ID            string
	UserID        string
	FileName      string // nombre original del documento
	StoredPath    string // ruta dentro del almacenamiento de archivos
	TotalPages    int
	PageRange     string // expresión tal como la escribió el usuario
	ColorType     string // bw | color
	SideType      string // single | double
	PagesPerSheet int    // 1, 2, 4, 6, 9, 16
	Copies        int
	BindingTypeID string // vacío si no hay encuadernación
	BindingName   string // denormalizado para mostrar en listados

	// Desglose de la cotización congelada.
	ActivePages     int
	SheetsNeeded    int
	PricePerSheet   decimal.Decimal
	PrintSubtotal   decimal.Decimal
	BindingSubtotal decimal.Decimal
	PerCopySubtotal decimal.Decimal
	GrandTotal      decimal.Decimal

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
