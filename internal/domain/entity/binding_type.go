package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BindingPriceRange precio de encuadernación para un rango inclusivo de páginas.
// Estructuralmente idéntico a los campos de precio de PricingRule.
type BindingPriceRange struct {
	FromPage       int             `json:"fromPage"`
	ToPage         int             `json:"toPage"`
	StudentPrice   decimal.Decimal `json:"studentPrice"`
	InstitutePrice decimal.Decimal `json:"institutePrice"`
	RegularPrice   decimal.Decimal `json:"regularPrice"`
}

// Span devuelve el ancho del rango (ToPage - FromPage).
func (p BindingPriceRange) Span() int { return p.ToPage - p.FromPage }

// Contains indica si el número de páginas cae dentro del rango inclusivo.
func (p BindingPriceRange) Contains(pages int) bool {
	return pages >= p.FromPage && pages <= p.ToPage
}

// BindingType representa un tipo de encuadernación opcional (espiral, tapa dura, etc).
// Un BindingType inactivo nunca contribuye costo, aunque esté seleccionado.
type BindingType struct {
	ID        string
	Name      string
	IsActive  bool
	Prices    []BindingPriceRange // colección ordenada; el orden del catálogo desempata
	CreatedAt time.Time
	UpdatedAt time.Time
}
