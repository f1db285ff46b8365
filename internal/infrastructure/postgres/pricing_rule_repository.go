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

var _ repository.PricingRuleRepository = (*PricingRuleRepo)(nil)

const pricingRuleColumns = `id, color_type, side_type, from_page, to_page,
	student_price, institute_price, regular_price, created_at, updated_at`

// PricingRuleRepo implementación del puerto PricingRuleRepository sobre PostgreSQL.
type PricingRuleRepo struct {
	pool *pgxpool.Pool
}

// NewPricingRuleRepository construye el adaptador de persistencia para reglas de precio.
func NewPricingRuleRepository(pool *pgxpool.Pool) *PricingRuleRepo {
	return &PricingRuleRepo{pool: pool}
}

// Create persiste una regla nueva.
func (r *PricingRuleRepo) Create(rule *entity.PricingRule) error {
	query := `
		INSERT INTO pricing_rules (` + pricingRuleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		rule.ID, rule.ColorType, rule.SideType, rule.FromPage, rule.ToPage,
		rule.StudentPrice, rule.InstitutePrice, rule.RegularPrice,
		rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pricing rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *PricingRuleRepo) GetByID(id string) (*entity.PricingRule, error) {
	query := `SELECT ` + pricingRuleColumns + ` FROM pricing_rules WHERE id = $1`
	var rule entity.PricingRule
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&rule.ID, &rule.ColorType, &rule.SideType, &rule.FromPage, &rule.ToPage,
		&rule.StudentPrice, &rule.InstitutePrice, &rule.RegularPrice,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pricing rule: %w", err)
	}
	return &rule, nil
}

// ListAll devuelve el catálogo completo en orden de creación. El orden importa:
// es el desempate entre reglas solapadas de igual ancho.
func (r *PricingRuleRepo) ListAll() ([]*entity.PricingRule, error) {
	query := `SELECT ` + pricingRuleColumns + ` FROM pricing_rules ORDER BY created_at, id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pricing rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.PricingRule
	for rows.Next() {
		var rule entity.PricingRule
		if err := rows.Scan(
			&rule.ID, &rule.ColorType, &rule.SideType, &rule.FromPage, &rule.ToPage,
			&rule.StudentPrice, &rule.InstitutePrice, &rule.RegularPrice,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pricing rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Update actualiza una regla existente.
func (r *PricingRuleRepo) Update(rule *entity.PricingRule) error {
	query := `
		UPDATE pricing_rules SET color_type = $2, side_type = $3, from_page = $4, to_page = $5,
			student_price = $6, institute_price = $7, regular_price = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		rule.ID, rule.ColorType, rule.SideType, rule.FromPage, rule.ToPage,
		rule.StudentPrice, rule.InstitutePrice, rule.RegularPrice, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pricing rule: %w", err)
	}
	return nil
}

// Delete elimina una regla por ID.
func (r *PricingRuleRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM pricing_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pricing rule: %w", err)
	}
	return nil
}
