package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
)

// JobConfig configuración transitoria de un trabajo de impresión. Se construye
// por cada cotización y se descarta después; no es una entidad persistida.
type JobConfig struct {
	TotalPages    int    // páginas del documento (inspección del archivo)
	PageRange     string // expresión libre del usuario; vacío o "all" = todas
	ColorType     string // bw | color
	SideType      string // single | double
	PagesPerSheet int    // 1, 2, 4, 6, 9, 16
	Copies        int
	Binding       *entity.BindingType // nil si no hay encuadernación
	Tier          Tier
}

// Quote resultado inmutable de una cotización. Se recalcula completo ante
// cualquier cambio de entrada; nunca se muta después de construido.
type Quote struct {
	ActivePages     int
	SheetsNeeded    int
	PricePerSheet   decimal.Decimal
	PrintSubtotal   decimal.Decimal
	BindingSubtotal decimal.Decimal
	PerCopySubtotal decimal.Decimal
	GrandTotal      decimal.Decimal
}

// PagesPerSheetOptions valores admitidos para PagesPerSheet.
var PagesPerSheetOptions = []int{1, 2, 4, 6, 9, 16}

// ValidPagesPerSheet indica si n es una opción admitida de páginas por hoja.
func ValidPagesPerSheet(n int) bool {
	for _, opt := range PagesPerSheetOptions {
		if n == opt {
			return true
		}
	}
	return false
}

// SheetsNeeded devuelve las hojas físicas necesarias: ceil(activePages / pagesPerSheet).
// Un pagesPerSheet inválido (<= 0) se trata como 1; cero páginas activas son cero hojas.
func SheetsNeeded(activePages, pagesPerSheet int) int {
	if pagesPerSheet <= 0 {
		pagesPerSheet = 1
	}
	if activePages <= 0 {
		return 0
	}
	return (activePages + pagesPerSheet - 1) / pagesPerSheet
}

// Calculate cotiza un trabajo de impresión contra el catálogo de reglas dado.
//
// Pasos: resolver páginas activas → hojas necesarias → regla de impresión más
// específica → subtotal de impresión → costo de encuadernación → subtotal por
// copia → total por copias. Ninguna entrada bien tipada produce error: la
// ausencia de regla aplicable degrada a contribución cero y es el llamador
// quien decide si un total en cero por falta de configuración debe bloquear
// el checkout. No se aplica redondeo monetario; eso es asunto de presentación.
func Calculate(cfg JobConfig, rules []*entity.PricingRule) Quote {
	activePages := len(ResolvePageRange(cfg.PageRange, cfg.TotalPages))
	sheets := SheetsNeeded(activePages, cfg.PagesPerSheet)

	rule := MatchPrintRule(rules, cfg.ColorType, cfg.SideType, activePages)
	pricePerSheet := RulePrice(rule, cfg.Tier)

	printSubtotal := pricePerSheet.Mul(decimal.NewFromInt(int64(sheets)))
	bindingSubtotal := BindingPrice(cfg.Binding, activePages, cfg.Tier)
	perCopy := printSubtotal.Add(bindingSubtotal)

	copies := cfg.Copies
	if copies <= 0 {
		copies = 1
	}

	return Quote{
		ActivePages:     activePages,
		SheetsNeeded:    sheets,
		PricePerSheet:   pricePerSheet,
		PrintSubtotal:   printSubtotal,
		BindingSubtotal: bindingSubtotal,
		PerCopySubtotal: perCopy,
		GrandTotal:      perCopy.Mul(decimal.NewFromInt(int64(copies))),
	}
}
