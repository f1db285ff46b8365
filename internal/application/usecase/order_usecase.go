package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

// OrderUseCase creación y gestión de órdenes de impresión. La cotización se
// recalcula siempre en el servidor al crear la orden y queda congelada en ella.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	quoteUC   *QuoteUseCase
	receipts  ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, userRepo repository.UserRepository, quoteUC *QuoteUseCase, receipts ReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, userRepo: userRepo, quoteUC: quoteUC, receipts: receipts}
}

// Create cotiza la configuración con el perfil del usuario y persiste la orden
// en estado pending. Un total en cero por falta de reglas configuradas no pasa
// al checkout: se rechaza con ErrZeroPricedOrder para que el cliente contacte
// al negocio en lugar de ordenar una impresión "gratis" por accidente.
func (uc *OrderUseCase) Create(userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.FileName == "" || in.StoredPath == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	quoteReq := dto.QuoteRequest{
		TotalPages:    in.TotalPages,
		PageRange:     in.PageRange,
		ColorType:     in.ColorType,
		SideType:      in.SideType,
		PagesPerSheet: in.PagesPerSheet,
		Copies:        in.Copies,
		BindingTypeID: in.BindingTypeID,
	}
	q, binding, err := uc.quoteUC.compute(quoteReq, user.ProfileType)
	if err != nil {
		return nil, err
	}
	if q.ActivePages == 0 {
		// El rango no seleccionó ninguna página: no hay nada que imprimir.
		return nil, domain.ErrInvalidInput
	}
	if q.GrandTotal.IsZero() {
		return nil, domain.ErrZeroPricedOrder
	}

	copies := in.Copies
	if copies <= 0 {
		copies = 1
	}
	bindingName := ""
	if binding != nil {
		bindingName = binding.Name
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		FileName:      in.FileName,
		StoredPath:    in.StoredPath,
		TotalPages:    in.TotalPages,
		PageRange:     in.PageRange,
		ColorType:     in.ColorType,
		SideType:      in.SideType,
		PagesPerSheet: in.PagesPerSheet,
		Copies:        copies,
		BindingTypeID: in.BindingTypeID,
		BindingName:   bindingName,

		ActivePages:     q.ActivePages,
		SheetsNeeded:    q.SheetsNeeded,
		PricePerSheet:   q.PricePerSheet,
		PrintSubtotal:   q.PrintSubtotal,
		BindingSubtotal: q.BindingSubtotal,
		PerCopySubtotal: q.PerCopySubtotal,
		GrandTotal:      q.GrandTotal,

		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Estadísticas del usuario; best effort, no bloquea la orden.
	user.Orders++
	user.TotalSpent = user.TotalSpent.Add(q.GrandTotal)
	user.LastActive = now
	_ = uc.userRepo.Update(user)

	return toOrderResponse(order), nil
}

// GetByID obtiene una orden. Un usuario solo ve las propias; un admin todas.
func (uc *OrderUseCase) GetByID(id, requesterID string, isAdmin bool) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// List lista órdenes: las propias para un usuario, todas para un admin.
func (uc *OrderUseCase) List(requesterID string, isAdmin bool, limit, offset int) (*dto.OrderListResponse, error) {
	var (
		orders []*entity.Order
		err    error
	)
	if isAdmin {
		orders, err = uc.orderRepo.ListAll(limit, offset)
	} else {
		orders, err = uc.orderRepo.ListByUser(requesterID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de una orden (solo admin).
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.orderRepo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	return toOrderResponse(order), nil
}

// ReceiptPDF genera el comprobante PDF de una orden (dueño o admin).
func (uc *OrderUseCase) ReceiptPDF(ctx context.Context, id, requesterID string, isAdmin bool) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceipt(ctx, order, user)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		FileName:      o.FileName,
		TotalPages:    o.TotalPages,
		PageRange:     o.PageRange,
		ColorType:     o.ColorType,
		SideType:      o.SideType,
		PagesPerSheet: o.PagesPerSheet,
		Copies:        o.Copies,
		BindingTypeID: o.BindingTypeID,
		BindingName:   o.BindingName,
		Quote: dto.QuoteResponse{
			ActivePages:     o.ActivePages,
			SheetsNeeded:    o.SheetsNeeded,
			PricePerSheet:   o.PricePerSheet.Round(2),
			PrintSubtotal:   o.PrintSubtotal.Round(2),
			BindingSubtotal: o.BindingSubtotal.Round(2),
			PerCopySubtotal: o.PerCopySubtotal.Round(2),
			GrandTotal:      o.GrandTotal.Round(2),
		},
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
