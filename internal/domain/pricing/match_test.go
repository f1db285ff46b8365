package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/pricing"
)

func rule(id, colorType, sideType string, from, to int, student, institute, regular float64) *entity.PricingRule {
	return &entity.PricingRule{
		ID:             id,
		ColorType:      colorType,
		SideType:       sideType,
		FromPage:       from,
		ToPage:         to,
		StudentPrice:   decimal.NewFromFloat(student),
		InstitutePrice: decimal.NewFromFloat(institute),
		RegularPrice:   decimal.NewFromFloat(regular),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MatchPrintRule
// ──────────────────────────────────────────────────────────────────────────────

// Con dos reglas solapadas para la misma combinación gana la de rango más angosto.
func TestMatchPrintRule_RangoMasAngostoGana(t *testing.T) {
	rules := []*entity.PricingRule{
		rule("amplia", entity.ColorBW, entity.SideSingle, 1, 9999, 1.0, 0.8, 1.5),
		rule("angosta", entity.ColorBW, entity.SideSingle, 1, 50, 0.9, 0.7, 1.2),
	}

	got := pricing.MatchPrintRule(rules, entity.ColorBW, entity.SideSingle, 20)
	require.NotNil(t, got)
	assert.Equal(t, "angosta", got.ID)
}

// El orden del catálogo no cambia el resultado cuando los anchos difieren.
func TestMatchPrintRule_AngostaGanaSinImportarOrden(t *testing.T) {
	rules := []*entity.PricingRule{
		rule("angosta", entity.ColorBW, entity.SideSingle, 1, 50, 0.9, 0.7, 1.2),
		rule("amplia", entity.ColorBW, entity.SideSingle, 1, 9999, 1.0, 0.8, 1.5),
	}

	got := pricing.MatchPrintRule(rules, entity.ColorBW, entity.SideSingle, 20)
	require.NotNil(t, got)
	assert.Equal(t, "angosta", got.ID)
}

// Con empate de ancho gana la primera en orden del catálogo (comportamiento
// histórico: estable pero sin significado de producto).
func TestMatchPrintRule_EmpateGanaPrimeraDelCatalogo(t *testing.T) {
	rules := []*entity.PricingRule{
		rule("primera", entity.ColorBW, entity.SideSingle, 1, 100, 1.0, 0.8, 1.5),
		rule("segunda", entity.ColorBW, entity.SideSingle, 10, 109, 0.5, 0.4, 0.6),
	}

	got := pricing.MatchPrintRule(rules, entity.ColorBW, entity.SideSingle, 50)
	require.NotNil(t, got)
	assert.Equal(t, "primera", got.ID)
}

// Color y caras deben coincidir exactamente; de lo contrario no hay match.
func TestMatchPrintRule_FiltraPorColorYCaras(t *testing.T) {
	rules := []*entity.PricingRule{
		rule("bw-single", entity.ColorBW, entity.SideSingle, 1, 9999, 1.0, 0.8, 1.5),
		rule("color-double", entity.ColorFull, entity.SideDouble, 1, 9999, 8.0, 6.5, 10.0),
	}

	assert.Nil(t, pricing.MatchPrintRule(rules, entity.ColorFull, entity.SideSingle, 10))
	got := pricing.MatchPrintRule(rules, entity.ColorFull, entity.SideDouble, 10)
	require.NotNil(t, got)
	assert.Equal(t, "color-double", got.ID)
}

// Fuera de todos los rangos no hay regla: el llamador degrada a costo cero.
func TestMatchPrintRule_SinMatchDevuelveNil(t *testing.T) {
	rules := []*entity.PricingRule{
		rule("r", entity.ColorBW, entity.SideSingle, 10, 50, 1.0, 0.8, 1.5),
	}
	assert.Nil(t, pricing.MatchPrintRule(rules, entity.ColorBW, entity.SideSingle, 5))
	assert.Nil(t, pricing.MatchPrintRule(nil, entity.ColorBW, entity.SideSingle, 5))
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección de precio por tier
// ──────────────────────────────────────────────────────────────────────────────

func TestRulePrice_PorTier(t *testing.T) {
	r := rule("r", entity.ColorBW, entity.SideSingle, 1, 9999, 1.0, 0.8, 1.5)

	assert.True(t, decimal.NewFromFloat(1.0).Equal(pricing.RulePrice(r, pricing.TierStudent)))
	assert.True(t, decimal.NewFromFloat(0.8).Equal(pricing.RulePrice(r, pricing.TierInstitute)))
	assert.True(t, decimal.NewFromFloat(1.5).Equal(pricing.RulePrice(r, pricing.TierRegular)))
	assert.True(t, pricing.RulePrice(nil, pricing.TierStudent).IsZero())
}

func TestNormalizeTier(t *testing.T) {
	assert.Equal(t, pricing.TierStudent, pricing.NormalizeTier("Student"))
	assert.Equal(t, pricing.TierStudent, pricing.NormalizeTier("STUDENT"))
	assert.Equal(t, pricing.TierInstitute, pricing.NormalizeTier("institute"))
	assert.Equal(t, pricing.TierRegular, pricing.NormalizeTier("Regular"))
	// Perfil desconocido o vacío cae a regular: el lookup de precio nunca falla.
	assert.Equal(t, pricing.TierRegular, pricing.NormalizeTier("premium"))
	assert.Equal(t, pricing.TierRegular, pricing.NormalizeTier(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// BindingPrice
// ──────────────────────────────────────────────────────────────────────────────

func binding(active bool, prices ...entity.BindingPriceRange) *entity.BindingType {
	return &entity.BindingType{ID: "b1", Name: "Espiral", IsActive: active, Prices: prices}
}

func bindingRange(from, to int, student, institute, regular float64) entity.BindingPriceRange {
	return entity.BindingPriceRange{
		FromPage:       from,
		ToPage:         to,
		StudentPrice:   decimal.NewFromFloat(student),
		InstitutePrice: decimal.NewFromFloat(institute),
		RegularPrice:   decimal.NewFromFloat(regular),
	}
}

func TestBindingPrice_NilOInactivoEsCero(t *testing.T) {
	assert.True(t, pricing.BindingPrice(nil, 10, pricing.TierRegular).IsZero())

	b := binding(false, bindingRange(1, 9999, 10, 12, 15))
	assert.True(t, pricing.BindingPrice(b, 10, pricing.TierRegular).IsZero())
}

func TestBindingPrice_RangoMasAngostoYTier(t *testing.T) {
	b := binding(true,
		bindingRange(1, 9999, 20, 22, 25),
		bindingRange(1, 50, 10, 12, 15),
	)

	got := pricing.BindingPrice(b, 30, pricing.TierStudent)
	assert.True(t, decimal.NewFromFloat(10).Equal(got), "debe usar el rango 1-50 y el precio student, obtuvo %s", got)

	got = pricing.BindingPrice(b, 500, pricing.TierRegular)
	assert.True(t, decimal.NewFromFloat(25).Equal(got), "fuera del rango angosto aplica el amplio, obtuvo %s", got)
}

func TestBindingPrice_SinRangoAplicableEsCero(t *testing.T) {
	b := binding(true, bindingRange(100, 200, 10, 12, 15))
	assert.True(t, pricing.BindingPrice(b, 10, pricing.TierRegular).IsZero())
}
