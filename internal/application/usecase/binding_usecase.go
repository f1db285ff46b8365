package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

// BindingTypeUseCase CRUD de tipos de encuadernación (solo admin).
type BindingTypeUseCase struct {
	repo repository.BindingTypeRepository
}

// NewBindingTypeUseCase construye el caso de uso.
func NewBindingTypeUseCase(repo repository.BindingTypeRepository) *BindingTypeUseCase {
	return &BindingTypeUseCase{repo: repo}
}

// Create valida y persiste un tipo de encuadernación. IsActive ausente = activo.
func (uc *BindingTypeUseCase) Create(in dto.BindingTypeRequest) (*dto.BindingTypeResponse, error) {
	if err := validateBinding(in); err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	binding := &entity.BindingType{
		ID:        uuid.New().String(),
		Name:      in.Name,
		IsActive:  active,
		Prices:    in.Prices,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(binding); err != nil {
		return nil, err
	}
	return toBindingTypeResponse(binding), nil
}

// List devuelve todos los tipos de encuadernación, activos o no: el admin
// necesita ver los inactivos para reactivarlos.
func (uc *BindingTypeUseCase) List() ([]dto.BindingTypeResponse, error) {
	bindings, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BindingTypeResponse, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, *toBindingTypeResponse(b))
	}
	return items, nil
}

// Update edita nombre, estado y rangos de precio de un tipo existente.
func (uc *BindingTypeUseCase) Update(id string, in dto.BindingTypeRequest) (*dto.BindingTypeResponse, error) {
	if err := validateBinding(in); err != nil {
		return nil, err
	}
	binding, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if binding == nil {
		return nil, domain.ErrNotFound
	}
	binding.Name = in.Name
	if in.IsActive != nil {
		binding.IsActive = *in.IsActive
	}
	binding.Prices = in.Prices
	binding.UpdatedAt = time.Now()
	if err := uc.repo.Update(binding); err != nil {
		return nil, err
	}
	return toBindingTypeResponse(binding), nil
}

// Delete elimina un tipo de encuadernación por ID.
func (uc *BindingTypeUseCase) Delete(id string) error {
	binding, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if binding == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validateBinding(in dto.BindingTypeRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	for _, p := range in.Prices {
		if p.FromPage < 1 || p.ToPage < p.FromPage {
			return domain.ErrInvalidInput
		}
		if p.StudentPrice.IsNegative() || p.InstitutePrice.IsNegative() || p.RegularPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toBindingTypeResponse(b *entity.BindingType) *dto.BindingTypeResponse {
	if b == nil {
		return nil
	}
	return &dto.BindingTypeResponse{
		ID:        b.ID,
		Name:      b.Name,
		IsActive:  b.IsActive,
		Prices:    b.Prices,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
