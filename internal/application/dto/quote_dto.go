package dto

import "github.com/shopspring/decimal"

// QuoteRequest configuración de un trabajo de impresión a cotizar.
// El tier NO viene en el request: se toma del usuario autenticado.
type QuoteRequest struct {
	TotalPages    int    `json:"totalPages"`
	PageRange     string `json:"pageRange"`     // vacío o "all" = todas
	ColorType     string `json:"colorType"`     // bw | color
	SideType      string `json:"sideType"`      // single | double
	PagesPerSheet int    `json:"pagesPerSheet"` // 1, 2, 4, 6, 9, 16
	Copies        int    `json:"copies"`
	BindingTypeID string `json:"bindingTypeId,omitempty"`
}

// QuoteResponse desglose de la cotización. Los montos se redondean a dos
// decimales solo aquí, en el borde de presentación; el núcleo calcula exacto.
type QuoteResponse struct {
	ActivePages     int             `json:"activePages"`
	SheetsNeeded    int             `json:"sheetsNeeded"`
	PricePerSheet   decimal.Decimal `json:"pricePerSheet"`
	PrintSubtotal   decimal.Decimal `json:"printSubtotal"`
	BindingSubtotal decimal.Decimal `json:"bindingSubtotal"`
	PerCopySubtotal decimal.Decimal `json:"perCopySubtotal"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`
}
