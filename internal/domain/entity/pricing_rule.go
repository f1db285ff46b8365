package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores válidos para ColorType (tipo de impresión).
const (
	ColorBW   = "bw"    // blanco y negro
	ColorFull = "color" // color
)

// Valores válidos para SideType (caras por hoja).
const (
	SideSingle = "single" // una cara
	SideDouble = "double" // doble cara
)

// PricingRule representa una regla de precio de impresión administrada por el admin.
// Aplica cuando ColorType y SideType coinciden exactamente y el número de páginas
// activas cae dentro del rango inclusivo [FromPage, ToPage].
// Todos los precios son obligatorios (se inicializan en 0 al construir, nunca nil).
type PricingRule struct {
	ID             string
	ColorType      string // bw | color
	SideType       string // single | double
	FromPage       int
	ToPage         int
	StudentPrice   decimal.Decimal
	InstitutePrice decimal.Decimal
	RegularPrice   decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Span devuelve el ancho del rango (ToPage - FromPage). Rangos más angostos
// son más específicos y ganan en la selección de reglas.
func (r *PricingRule) Span() int { return r.ToPage - r.FromPage }

// Contains indica si el número de páginas cae dentro del rango inclusivo.
func (r *PricingRule) Contains(pages int) bool {
	return pages >= r.FromPage && pages <= r.ToPage
}
