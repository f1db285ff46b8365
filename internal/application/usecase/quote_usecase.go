package usecase

import (
	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/pricing"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

// QuoteUseCase cotiza trabajos de impresión contra el catálogo vigente.
// El catálogo se lee fresco en cada cotización y se pasa explícito al núcleo
// de pricing, que es puro y sin estado.
type QuoteUseCase struct {
	ruleRepo    repository.PricingRuleRepository
	bindingRepo repository.BindingTypeRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(ruleRepo repository.PricingRuleRepository, bindingRepo repository.BindingTypeRepository) *QuoteUseCase {
	return &QuoteUseCase{ruleRepo: ruleRepo, bindingRepo: bindingRepo}
}

// Quote valida la configuración, resuelve el catálogo y devuelve el desglose
// redondeado a dos decimales (el redondeo es solo de presentación).
func (uc *QuoteUseCase) Quote(in dto.QuoteRequest, profileType string) (*dto.QuoteResponse, error) {
	q, _, err := uc.compute(in, profileType)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(q), nil
}

// compute valida y cotiza, devolviendo el Quote exacto (sin redondear) para
// que OrderUseCase congele montos precisos en la orden.
func (uc *QuoteUseCase) compute(in dto.QuoteRequest, profileType string) (pricing.Quote, *entity.BindingType, error) {
	if err := validateJob(in); err != nil {
		return pricing.Quote{}, nil, err
	}

	var binding *entity.BindingType
	if in.BindingTypeID != "" {
		b, err := uc.bindingRepo.GetByID(in.BindingTypeID)
		if err != nil {
			return pricing.Quote{}, nil, err
		}
		if b == nil {
			return pricing.Quote{}, nil, domain.ErrNotFound
		}
		binding = b
	}

	rules, err := uc.ruleRepo.ListAll()
	if err != nil {
		return pricing.Quote{}, nil, err
	}
	if len(rules) == 0 {
		// Catálogo sin configurar: usar las reglas de respaldo.
		rules = pricing.DefaultPricingRules()
	}

	cfg := pricing.JobConfig{
		TotalPages:    in.TotalPages,
		PageRange:     in.PageRange,
		ColorType:     in.ColorType,
		SideType:      in.SideType,
		PagesPerSheet: in.PagesPerSheet,
		Copies:        in.Copies,
		Binding:       binding,
		Tier:          pricing.NormalizeTier(profileType),
	}
	return pricing.Calculate(cfg, rules), binding, nil
}

// validateJob valida la configuración en el borde: el núcleo de pricing es
// deliberadamente permisivo, así que las enumeraciones se controlan aquí.
func validateJob(in dto.QuoteRequest) error {
	if in.TotalPages < 1 {
		return domain.ErrInvalidInput
	}
	if in.ColorType != entity.ColorBW && in.ColorType != entity.ColorFull {
		return domain.ErrInvalidInput
	}
	if in.SideType != entity.SideSingle && in.SideType != entity.SideDouble {
		return domain.ErrInvalidInput
	}
	if !pricing.ValidPagesPerSheet(in.PagesPerSheet) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toQuoteResponse(q pricing.Quote) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		ActivePages:     q.ActivePages,
		SheetsNeeded:    q.SheetsNeeded,
		PricePerSheet:   q.PricePerSheet.Round(2),
		PrintSubtotal:   q.PrintSubtotal.Round(2),
		BindingSubtotal: q.BindingSubtotal.Round(2),
		PerCopySubtotal: q.PerCopySubtotal.Round(2),
		GrandTotal:      q.GrandTotal.Round(2),
	}
}
