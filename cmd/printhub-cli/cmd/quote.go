package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/pricing"
)

var (
	quotePages         int
	quoteRange         string
	quoteColor         string
	quoteSide          string
	quotePagesPerSheet int
	quoteCopies        int
	quoteTier          string
	quoteBinding       string
	quoteCatalogFile   string
	quoteJSON          bool
)

// quoteCmd cotiza un trabajo de impresión sin servidor ni base de datos.
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Cotiza un trabajo de impresión",
	Long: `Cotiza un trabajo de impresión con el motor de precios de la imprenta.

Sin --catalog usa las reglas de respaldo incorporadas. Con --catalog lee un
JSON con "pricingRules" y "bindingTypes" (el mismo formato que exporta el
panel de admin). El empaste se elige por nombre con --binding.`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().IntVarP(&quotePages, "pages", "p", 0, "páginas totales del documento (requerido)")
	quoteCmd.Flags().StringVarP(&quoteRange, "range", "r", "", `rango de páginas, ej. "1-10,15" (vacío = todas)`)
	quoteCmd.Flags().StringVar(&quoteColor, "color", entity.ColorBW, "tipo de impresión (bw, color)")
	quoteCmd.Flags().StringVar(&quoteSide, "side", entity.SideSingle, "caras por hoja (single, double)")
	quoteCmd.Flags().IntVar(&quotePagesPerSheet, "pages-per-sheet", 1, "páginas por hoja (1, 2, 4, 6, 9, 16)")
	quoteCmd.Flags().IntVarP(&quoteCopies, "copies", "c", 1, "número de copias")
	quoteCmd.Flags().StringVarP(&quoteTier, "tier", "t", "Regular", "perfil de precio (Student, Institute, Regular)")
	quoteCmd.Flags().StringVarP(&quoteBinding, "binding", "b", "", "nombre del empaste del catálogo")
	quoteCmd.Flags().StringVar(&quoteCatalogFile, "catalog", "", "archivo JSON con el catálogo de precios")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "salida en JSON")
	_ = quoteCmd.MarkFlagRequired("pages")
}

// catalogFile formato del catálogo JSON exportado del panel de admin.
type catalogFile struct {
	PricingRules []catalogRule    `json:"pricingRules"`
	BindingTypes []catalogBinding `json:"bindingTypes"`
}

type catalogRule struct {
	ColorType      string          `json:"colorType"`
	SideType       string          `json:"sideType"`
	FromPage       int             `json:"fromPage"`
	ToPage         int             `json:"toPage"`
	StudentPrice   decimal.Decimal `json:"studentPrice"`
	InstitutePrice decimal.Decimal `json:"institutePrice"`
	RegularPrice   decimal.Decimal `json:"regularPrice"`
}

type catalogBinding struct {
	Name     string                     `json:"name"`
	IsActive *bool                      `json:"isActive,omitempty"`
	Prices   []entity.BindingPriceRange `json:"prices"`
}

func runQuote(cmd *cobra.Command, args []string) error {
	if quotePages < 1 {
		return fmt.Errorf("--pages debe ser al menos 1")
	}
	if quoteColor != entity.ColorBW && quoteColor != entity.ColorFull {
		return fmt.Errorf("--color debe ser %q o %q", entity.ColorBW, entity.ColorFull)
	}
	if quoteSide != entity.SideSingle && quoteSide != entity.SideDouble {
		return fmt.Errorf("--side debe ser %q o %q", entity.SideSingle, entity.SideDouble)
	}
	if !pricing.ValidPagesPerSheet(quotePagesPerSheet) {
		return fmt.Errorf("--pages-per-sheet debe ser uno de %v", pricing.PagesPerSheetOptions)
	}

	rules := pricing.DefaultPricingRules()
	var bindings []*entity.BindingType
	if quoteCatalogFile != "" {
		var err error
		rules, bindings, err = loadCatalog(quoteCatalogFile)
		if err != nil {
			return err
		}
		if len(rules) == 0 {
			rules = pricing.DefaultPricingRules()
		}
	}

	var binding *entity.BindingType
	if quoteBinding != "" {
		for _, b := range bindings {
			if b.Name == quoteBinding {
				binding = b
				break
			}
		}
		if binding == nil {
			return fmt.Errorf("empaste %q no está en el catálogo", quoteBinding)
		}
	}

	cfg := pricing.JobConfig{
		TotalPages:    quotePages,
		PageRange:     quoteRange,
		ColorType:     quoteColor,
		SideType:      quoteSide,
		PagesPerSheet: quotePagesPerSheet,
		Copies:        quoteCopies,
		Binding:       binding,
		Tier:          pricing.NormalizeTier(quoteTier),
	}
	q := pricing.Calculate(cfg, rules)

	if quoteJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(quoteOutput{
			ActivePages:     q.ActivePages,
			SheetsNeeded:    q.SheetsNeeded,
			PricePerSheet:   q.PricePerSheet.Round(2),
			PrintSubtotal:   q.PrintSubtotal.Round(2),
			BindingSubtotal: q.BindingSubtotal.Round(2),
			PerCopySubtotal: q.PerCopySubtotal.Round(2),
			GrandTotal:      q.GrandTotal.Round(2),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Páginas activas:      %d\n", q.ActivePages)
	fmt.Fprintf(out, "Hojas necesarias:     %d\n", q.SheetsNeeded)
	fmt.Fprintf(out, "Precio por hoja:      %s\n", q.PricePerSheet.Round(2))
	fmt.Fprintf(out, "Subtotal impresión:   %s\n", q.PrintSubtotal.Round(2))
	if binding != nil {
		fmt.Fprintf(out, "Empaste (%s): %s\n", binding.Name, q.BindingSubtotal.Round(2))
	}
	fmt.Fprintf(out, "Subtotal por copia:   %s\n", q.PerCopySubtotal.Round(2))
	fmt.Fprintf(out, "Copias:               %d\n", maxCopies(quoteCopies))
	fmt.Fprintf(out, "TOTAL:                %s\n", q.GrandTotal.Round(2))
	return nil
}

type quoteOutput struct {
	ActivePages     int             `json:"activePages"`
	SheetsNeeded    int             `json:"sheetsNeeded"`
	PricePerSheet   decimal.Decimal `json:"pricePerSheet"`
	PrintSubtotal   decimal.Decimal `json:"printSubtotal"`
	BindingSubtotal decimal.Decimal `json:"bindingSubtotal"`
	PerCopySubtotal decimal.Decimal `json:"perCopySubtotal"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
}

// loadCatalog lee y traduce el catálogo JSON a entidades del dominio.
// El orden del archivo se respeta: es el orden de desempate del matcher.
func loadCatalog(path string) ([]*entity.PricingRule, []*entity.BindingType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("leer catálogo: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("catálogo inválido: %w", err)
	}

	rules := make([]*entity.PricingRule, 0, len(file.PricingRules))
	for _, r := range file.PricingRules {
		rules = append(rules, &entity.PricingRule{
			ColorType:      r.ColorType,
			SideType:       r.SideType,
			FromPage:       r.FromPage,
			ToPage:         r.ToPage,
			StudentPrice:   r.StudentPrice,
			InstitutePrice: r.InstitutePrice,
			RegularPrice:   r.RegularPrice,
		})
	}
	bindings := make([]*entity.BindingType, 0, len(file.BindingTypes))
	for _, b := range file.BindingTypes {
		active := true
		if b.IsActive != nil {
			active = *b.IsActive
		}
		bindings = append(bindings, &entity.BindingType{
			Name:     b.Name,
			IsActive: active,
			Prices:   b.Prices,
		})
	}
	return rules, bindings, nil
}

func maxCopies(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
