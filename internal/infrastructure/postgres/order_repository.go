package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, user_id, file_name, stored_path, total_pages, page_range,
	color_type, side_type, pages_per_sheet, copies, binding_type_id, binding_name,
	active_pages, sheets_needed, price_per_sheet, print_subtotal, binding_subtotal,
	per_copy_subtotal, grand_total, status, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create persiste una orden con su cotización congelada.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.UserID, order.FileName, order.StoredPath, order.TotalPages, order.PageRange,
		order.ColorType, order.SideType, order.PagesPerSheet, order.Copies, order.BindingTypeID, order.BindingName,
		order.ActivePages, order.SheetsNeeded, order.PricePerSheet, order.PrintSubtotal, order.BindingSubtotal,
		order.PerCopySubtotal, order.GrandTotal, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return order, nil
}

// ListByUser lista órdenes de un usuario, más recientes primero.
func (r *OrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, userID, limit, offset)
}

// ListAll lista todas las órdenes, más recientes primero (admin).
func (r *OrderRepo) ListAll(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una orden.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.FileName, &o.StoredPath, &o.TotalPages, &o.PageRange,
		&o.ColorType, &o.SideType, &o.PagesPerSheet, &o.Copies, &o.BindingTypeID, &o.BindingName,
		&o.ActivePages, &o.SheetsNeeded, &o.PricePerSheet, &o.PrintSubtotal, &o.BindingSubtotal,
		&o.PerCopySubtotal, &o.GrandTotal, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
