package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

// DefaultPricingRules catálogo de respaldo cuando el admin todavía no configuró
// reglas: una regla amplia (1-9999) por cada combinación color/caras.
func DefaultPricingRules() []*entity.PricingRule {
	return []*entity.PricingRule{
		defaultRule("default-bw-single", entity.ColorBW, entity.SideSingle, 1.0, 0.8, 1.5),
		defaultRule("default-bw-double", entity.ColorBW, entity.SideDouble, 1.5, 1.2, 2.0),
		defaultRule("default-color-single", entity.ColorFull, entity.SideSingle, 5.0, 4.0, 7.0),
		defaultRule("default-color-double", entity.ColorFull, entity.SideDouble, 8.0, 6.5, 10.0),
	}
}

func defaultRule(id, colorType, sideType string, student, institute, regular float64) *entity.PricingRule {
	return &entity.PricingRule{
		ID:             id,
		ColorType:      colorType,
		SideType:       sideType,
		FromPage:       1,
		ToPage:         9999,
		StudentPrice:   decimal.NewFromFloat(student),
		InstitutePrice: decimal.NewFromFloat(institute),
		RegularPrice:   decimal.NewFromFloat(regular),
	}
}
