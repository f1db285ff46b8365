package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

// MatchPrintRule selecciona la regla de impresión aplicable: mismo ColorType y
// SideType que la solicitud, y activePages dentro del rango [FromPage, ToPage].
// Entre varias candidatas gana la de rango más angosto (la más específica).
// Con empate de ancho gana la primera en orden del catálogo; ese desempate
// preserva el comportamiento histórico y depende del orden de inserción del
// catálogo, así que no debe tratarse como una garantía de producto.
// Devuelve nil si ninguna regla aplica.
func MatchPrintRule(rules []*entity.PricingRule, colorType, sideType string, activePages int) *entity.PricingRule {
	var best *entity.PricingRule
	for _, rule := range rules {
		if rule == nil || rule.ColorType != colorType || rule.SideType != sideType {
			continue
		}
		if !rule.Contains(activePages) {
			continue
		}
		if best == nil || rule.Span() < best.Span() {
			best = rule
		}
	}
	return best
}

// BindingPrice devuelve el costo de encuadernación para el tier dado.
// Un binding nil o inactivo nunca contribuye costo. La selección entre rangos
// usa el mismo criterio de rango-más-angosto que MatchPrintRule; sin rango
// aplicable el costo es 0, nunca un error.
func BindingPrice(binding *entity.BindingType, activePages int, tier Tier) decimal.Decimal {
	if binding == nil || !binding.IsActive {
		return decimal.Zero
	}

	bestIdx := -1
	for i, pr := range binding.Prices {
		if !pr.Contains(activePages) {
			continue
		}
		if bestIdx < 0 || pr.Span() < binding.Prices[bestIdx].Span() {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return decimal.Zero
	}
	return rangePrice(binding.Prices[bestIdx], tier)
}
