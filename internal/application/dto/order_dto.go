package dto

import "time"

// CreateOrderRequest creación de una orden: metadatos del documento subido
// más la configuración de impresión. La cotización se recalcula en el
// servidor; cualquier monto enviado por el cliente se ignora.
type CreateOrderRequest struct {
	FileName      string `json:"fileName"`
	StoredPath    string `json:"storedPath"`
	TotalPages    int    `json:"totalPages"`
	PageRange     string `json:"pageRange"`
	ColorType     string `json:"colorType"`
	SideType      string `json:"sideType"`
	PagesPerSheet int    `json:"pagesPerSheet"`
	Copies        int    `json:"copies"`
	BindingTypeID string `json:"bindingTypeId,omitempty"`
}

// UpdateOrderStatusRequest cambio de estado por parte del admin.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse una orden con su cotización congelada.
type OrderResponse struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	FileName      string        `json:"fileName"`
	TotalPages    int           `json:"totalPages"`
	PageRange     string        `json:"pageRange"`
	ColorType     string        `json:"colorType"`
	SideType      string        `json:"sideType"`
	PagesPerSheet int           `json:"pagesPerSheet"`
	Copies        int           `json:"copies"`
	BindingTypeID string        `json:"bindingTypeId,omitempty"`
	BindingName   string        `json:"bindingName,omitempty"`
	Quote         QuoteResponse `json:"quote"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
