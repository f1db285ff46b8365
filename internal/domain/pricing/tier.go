package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

// Tier perfil de precio del cliente (enumeración cerrada).
type Tier string

const (
	TierStudent   Tier = "student"
	TierInstitute Tier = "institute"
	TierRegular   Tier = "regular"
)

// NormalizeTier convierte un perfil libre (como viene del usuario o de la DB)
// a la enumeración cerrada. Cualquier valor no reconocido, incluido el vacío,
// mapea a TierRegular: una cotización nunca falla por un perfil desconocido,
// simplemente cobra la tarifa regular.
func NormalizeTier(profileType string) Tier {
	switch strings.ToLower(strings.TrimSpace(profileType)) {
	case "student":
		return TierStudent
	case "institute":
		return TierInstitute
	default:
		return TierRegular
	}
}

// RulePrice devuelve el precio por hoja de la regla según el tier.
func RulePrice(rule *entity.PricingRule, tier Tier) decimal.Decimal {
	if rule == nil {
		return decimal.Zero
	}
	switch tier {
	case TierStudent:
		return rule.StudentPrice
	case TierInstitute:
		return rule.InstitutePrice
	default:
		return rule.RegularPrice
	}
}

// rangePrice devuelve el precio del rango de encuadernación según el tier.
func rangePrice(p entity.BindingPriceRange, tier Tier) decimal.Decimal {
	switch tier {
	case TierStudent:
		return p.StudentPrice
	case TierInstitute:
		return p.InstitutePrice
	default:
		return p.RegularPrice
	}
}
