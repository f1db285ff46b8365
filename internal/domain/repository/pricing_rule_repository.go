package repository

import "github.com/jhoicas/printhub-api/internal/domain/entity"

// PricingRuleRepository define el puerto de persistencia para el catálogo de
// reglas de precio. ListAll devuelve el catálogo completo en orden de creación:
// ese orden es el desempate del matcher, así que debe ser estable.
type PricingRuleRepository interface {
	Create(rule *entity.PricingRule) error
	GetByID(id string) (*entity.PricingRule, error)
	ListAll() ([]*entity.PricingRule, error)
	Update(rule *entity.PricingRule) error
	Delete(id string) error
}
