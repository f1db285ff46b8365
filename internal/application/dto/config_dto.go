package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

// PricingRuleRequest alta o edición de una regla de precio. Los precios
// ausentes se tratan como 0 al construir la entidad, nunca al leerla.
type PricingRuleRequest struct {
	ColorType      string          `json:"colorType"` // bw | color
	SideType       string          `json:"sideType"`  // single | double
	FromPage       int             `json:"fromPage"`
	ToPage         int             `json:"toPage"`
	StudentPrice   decimal.Decimal `json:"studentPrice"`
	InstitutePrice decimal.Decimal `json:"institutePrice"`
	RegularPrice   decimal.Decimal `json:"regularPrice"`
}

// PricingRuleResponse una regla de precio del catálogo.
type PricingRuleResponse struct {
	ID             string          `json:"id"`
	ColorType      string          `json:"colorType"`
	SideType       string          `json:"sideType"`
	FromPage       int             `json:"fromPage"`
	ToPage         int             `json:"toPage"`
	StudentPrice   decimal.Decimal `json:"studentPrice"`
	InstitutePrice decimal.Decimal `json:"institutePrice"`
	RegularPrice   decimal.Decimal `json:"regularPrice"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// BindingTypeRequest alta o edición de un tipo de encuadernación.
type BindingTypeRequest struct {
	Name     string                     `json:"name"`
	IsActive *bool                      `json:"isActive,omitempty"` // nil = true en alta, sin cambio en edición
	Prices   []entity.BindingPriceRange `json:"prices"`
}

// BindingTypeResponse un tipo de encuadernación con sus rangos de precio.
type BindingTypeResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	IsActive  bool                       `json:"isActive"`
	Prices    []entity.BindingPriceRange `json:"prices"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}
