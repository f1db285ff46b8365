package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/pricing"
)

func TestSheetsNeeded(t *testing.T) {
	tests := []struct {
		name          string
		activePages   int
		pagesPerSheet int
		want          int
	}{
		{"una página por hoja", 10, 1, 10},
		{"redondeo hacia arriba", 10, 4, 3},
		{"división exacta", 16, 4, 4},
		{"cero páginas cero hojas", 0, 4, 0},
		{"pagesPerSheet inválido se trata como 1", 7, 0, 7},
		{"dieciséis por hoja", 17, 16, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.SheetsNeeded(tt.activePages, tt.pagesPerSheet))
		})
	}
}

func TestValidPagesPerSheet(t *testing.T) {
	for _, n := range []int{1, 2, 4, 6, 9, 16} {
		assert.True(t, pricing.ValidPagesPerSheet(n))
	}
	for _, n := range []int{0, -1, 3, 8, 32} {
		assert.False(t, pricing.ValidPagesPerSheet(n))
	}
}

// Cotización de punta a punta: regla única bw/single 1-9999, 10 páginas, "all",
// tier student, 2 copias, sin encuadernación.
func TestCalculate_EndToEnd(t *testing.T) {
	rules := []*entity.PricingRule{
		rule("r", entity.ColorBW, entity.SideSingle, 1, 9999, 1.0, 0.8, 1.5),
	}
	cfg := pricing.JobConfig{
		TotalPages:    10,
		PageRange:     "all",
		ColorType:     entity.ColorBW,
		SideType:      entity.SideSingle,
		PagesPerSheet: 1,
		Copies:        2,
		Tier:          pricing.TierStudent,
	}

	q := pricing.Calculate(cfg, rules)

	assert.Equal(t, 10, q.ActivePages)
	assert.Equal(t, 10, q.SheetsNeeded)
	assert.True(t, decimal.NewFromFloat(1.0).Equal(q.PricePerSheet))
	assert.True(t, decimal.NewFromFloat(10.0).Equal(q.PrintSubtotal))
	assert.True(t, q.BindingSubtotal.IsZero())
	assert.True(t, decimal.NewFromFloat(10.0).Equal(q.PerCopySubtotal))
	assert.True(t, decimal.NewFromFloat(20.0).Equal(q.GrandTotal))
}

// Igual que el anterior pero tier regular y con encuadernación activa 1-9999 a 15.0.
func TestCalculate_EndToEndConBinding(t *testing.T) {
	rules := []*entity.PricingRule{
		rule("r", entity.ColorBW, entity.SideSingle, 1, 9999, 1.0, 0.8, 1.5),
	}
	cfg := pricing.JobConfig{
		TotalPages:    10,
		PageRange:     "all",
		ColorType:     entity.ColorBW,
		SideType:      entity.SideSingle,
		PagesPerSheet: 1,
		Copies:        2,
		Binding:       binding(true, bindingRange(1, 9999, 12, 13, 15)),
		Tier:          pricing.TierRegular,
	}

	q := pricing.Calculate(cfg, rules)

	assert.True(t, decimal.NewFromFloat(15.0).Equal(q.PrintSubtotal), "impresión a tarifa regular: 1.5 × 10")
	assert.True(t, decimal.NewFromFloat(15.0).Equal(q.BindingSubtotal))
	assert.True(t, decimal.NewFromFloat(30.0).Equal(q.PerCopySubtotal))
	assert.True(t, decimal.NewFromFloat(60.0).Equal(q.GrandTotal))
}

// Una expresión que no resuelve ninguna página es entrada válida: cero hojas,
// total cero, sin errores de división.
func TestCalculate_CeroPaginasActivas(t *testing.T) {
	rules := pricing.DefaultPricingRules()
	cfg := pricing.JobConfig{
		TotalPages:    10,
		PageRange:     "abc",
		ColorType:     entity.ColorBW,
		SideType:      entity.SideSingle,
		PagesPerSheet: 4,
		Copies:        3,
		Tier:          pricing.TierStudent,
	}

	q := pricing.Calculate(cfg, rules)

	assert.Equal(t, 0, q.ActivePages)
	assert.Equal(t, 0, q.SheetsNeeded)
	assert.True(t, q.GrandTotal.IsZero())
}

// Sin regla aplicable la cotización degrada a cero, no falla.
func TestCalculate_SinReglaAplicableEsCero(t *testing.T) {
	cfg := pricing.JobConfig{
		TotalPages:    10,
		PageRange:     "all",
		ColorType:     entity.ColorFull,
		SideType:      entity.SideDouble,
		PagesPerSheet: 1,
		Copies:        1,
		Tier:          pricing.TierRegular,
	}

	q := pricing.Calculate(cfg, nil)

	assert.Equal(t, 10, q.ActivePages)
	assert.True(t, q.PricePerSheet.IsZero())
	assert.True(t, q.GrandTotal.IsZero())
}

// Copias inválidas (<= 0) se tratan como 1.
func TestCalculate_CopiasInvalidasSonUna(t *testing.T) {
	rules := pricing.DefaultPricingRules()
	cfg := pricing.JobConfig{
		TotalPages:    4,
		PageRange:     "all",
		ColorType:     entity.ColorBW,
		SideType:      entity.SideSingle,
		PagesPerSheet: 1,
		Copies:        0,
		Tier:          pricing.TierRegular,
	}

	q := pricing.Calculate(cfg, rules)
	assert.True(t, q.GrandTotal.Equal(q.PerCopySubtotal))
}

// El cálculo es puro: dos llamadas con el mismo input producen el mismo Quote
// y no modifican el catálogo.
func TestCalculate_Idempotente(t *testing.T) {
	rules := pricing.DefaultPricingRules()
	cfg := pricing.JobConfig{
		TotalPages:    25,
		PageRange:     "1-10,20-25",
		ColorType:     entity.ColorFull,
		SideType:      entity.SideSingle,
		PagesPerSheet: 2,
		Copies:        3,
		Binding:       binding(true, bindingRange(1, 9999, 12, 13, 15)),
		Tier:          pricing.TierInstitute,
	}

	q1 := pricing.Calculate(cfg, rules)
	q2 := pricing.Calculate(cfg, rules)

	assert.Equal(t, q1.ActivePages, q2.ActivePages)
	assert.Equal(t, q1.SheetsNeeded, q2.SheetsNeeded)
	assert.True(t, q1.GrandTotal.Equal(q2.GrandTotal))
	assert.True(t, q1.PerCopySubtotal.Equal(q2.PerCopySubtotal))
}

// El catálogo por defecto cubre las cuatro combinaciones color/caras.
func TestDefaultPricingRules_CubreTodasLasCombinaciones(t *testing.T) {
	rules := pricing.DefaultPricingRules()
	assert.Len(t, rules, 4)

	for _, colorType := range []string{entity.ColorBW, entity.ColorFull} {
		for _, sideType := range []string{entity.SideSingle, entity.SideDouble} {
			r := pricing.MatchPrintRule(rules, colorType, sideType, 100)
			assert.NotNil(t, r, "falta regla por defecto para %s/%s", colorType, sideType)
		}
	}
}
