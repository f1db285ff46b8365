package repository

import "github.com/jhoicas/printhub-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	ListAll(limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
