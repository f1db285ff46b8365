package repository

import "github.com/jhoicas/printhub-api/internal/domain/entity"

// BindingTypeRepository define el puerto de persistencia para tipos de
// encuadernación. Los rangos de precio viajan embebidos en la entidad.
type BindingTypeRepository interface {
	Create(binding *entity.BindingType) error
	GetByID(id string) (*entity.BindingType, error)
	ListAll() ([]*entity.BindingType, error)
	Update(binding *entity.BindingType) error
	Delete(id string) error
}
