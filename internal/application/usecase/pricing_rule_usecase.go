package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

// PricingRuleUseCase CRUD del catálogo de reglas de precio (solo admin).
// El núcleo de pricing lee este catálogo como snapshot de solo lectura.
type PricingRuleUseCase struct {
	repo repository.PricingRuleRepository
}

// NewPricingRuleUseCase construye el caso de uso.
func NewPricingRuleUseCase(repo repository.PricingRuleRepository) *PricingRuleUseCase {
	return &PricingRuleUseCase{repo: repo}
}

// Create valida y persiste una regla nueva.
func (uc *PricingRuleUseCase) Create(in dto.PricingRuleRequest) (*dto.PricingRuleResponse, error) {
	if err := validateRule(in); err != nil {
		return nil, err
	}
	now := time.Now()
	rule := &entity.PricingRule{
		ID:             uuid.New().String(),
		ColorType:      in.ColorType,
		SideType:       in.SideType,
		FromPage:       in.FromPage,
		ToPage:         in.ToPage,
		StudentPrice:   in.StudentPrice,
		InstitutePrice: in.InstitutePrice,
		RegularPrice:   in.RegularPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	return toPricingRuleResponse(rule), nil
}

// List devuelve el catálogo completo en orden de creación.
func (uc *PricingRuleUseCase) List() ([]dto.PricingRuleResponse, error) {
	rules, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PricingRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, *toPricingRuleResponse(r))
	}
	return items, nil
}

// Update reemplaza los campos de una regla existente.
func (uc *PricingRuleUseCase) Update(id string, in dto.PricingRuleRequest) (*dto.PricingRuleResponse, error) {
	if err := validateRule(in); err != nil {
		return nil, err
	}
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	rule.ColorType = in.ColorType
	rule.SideType = in.SideType
	rule.FromPage = in.FromPage
	rule.ToPage = in.ToPage
	rule.StudentPrice = in.StudentPrice
	rule.InstitutePrice = in.InstitutePrice
	rule.RegularPrice = in.RegularPrice
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toPricingRuleResponse(rule), nil
}

// Delete elimina una regla por ID.
func (uc *PricingRuleUseCase) Delete(id string) error {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateRule exige color/caras válidos, rango inclusivo bien formado y
// precios no negativos.
func validateRule(in dto.PricingRuleRequest) error {
	if in.ColorType != entity.ColorBW && in.ColorType != entity.ColorFull {
		return domain.ErrInvalidInput
	}
	if in.SideType != entity.SideSingle && in.SideType != entity.SideDouble {
		return domain.ErrInvalidInput
	}
	if in.FromPage < 1 || in.ToPage < in.FromPage {
		return domain.ErrInvalidInput
	}
	if in.StudentPrice.IsNegative() || in.InstitutePrice.IsNegative() || in.RegularPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toPricingRuleResponse(r *entity.PricingRule) *dto.PricingRuleResponse {
	if r == nil {
		return nil
	}
	return &dto.PricingRuleResponse{
		ID:             r.ID,
		ColorType:      r.ColorType,
		SideType:       r.SideType,
		FromPage:       r.FromPage,
		ToPage:         r.ToPage,
		StudentPrice:   r.StudentPrice,
		InstitutePrice: r.InstitutePrice,
		RegularPrice:   r.RegularPrice,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
