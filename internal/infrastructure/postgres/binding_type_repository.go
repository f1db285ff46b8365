package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/printhub-api/internal/domain/entity"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

var _ repository.BindingTypeRepository = (*BindingTypeRepo)(nil)

// BindingTypeRepo implementación del puerto BindingTypeRepository sobre PostgreSQL.
// Los rangos de precio se guardan como JSONB: se leen y escriben siempre como
// colección completa y su orden de documento es el desempate del matcher.
type BindingTypeRepo struct {
	pool *pgxpool.Pool
}

// NewBindingTypeRepository construye el adaptador de persistencia para encuadernaciones.
func NewBindingTypeRepository(pool *pgxpool.Pool) *BindingTypeRepo {
	return &BindingTypeRepo{pool: pool}
}

// Create persiste un tipo de encuadernación.
func (r *BindingTypeRepo) Create(binding *entity.BindingType) error {
	prices, err := json.Marshal(binding.Prices)
	if err != nil {
		return fmt.Errorf("marshal prices: %w", err)
	}
	query := `
		INSERT INTO binding_types (id, name, is_active, prices, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.pool.Exec(context.Background(), query,
		binding.ID, binding.Name, binding.IsActive, prices, binding.CreatedAt, binding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert binding type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de encuadernación por ID.
func (r *BindingTypeRepo) GetByID(id string) (*entity.BindingType, error) {
	query := `SELECT id, name, is_active, prices, created_at, updated_at FROM binding_types WHERE id = $1`
	binding, err := scanBindingType(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get binding type: %w", err)
	}
	return binding, nil
}

// ListAll devuelve todos los tipos de encuadernación en orden de creación.
func (r *BindingTypeRepo) ListAll() ([]*entity.BindingType, error) {
	query := `SELECT id, name, is_active, prices, created_at, updated_at FROM binding_types ORDER BY created_at, id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list binding types: %w", err)
	}
	defer rows.Close()
	var list []*entity.BindingType
	for rows.Next() {
		binding, err := scanBindingType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan binding type: %w", err)
		}
		list = append(list, binding)
	}
	return list, rows.Err()
}

// Update actualiza un tipo de encuadernación completo, rangos incluidos.
func (r *BindingTypeRepo) Update(binding *entity.BindingType) error {
	prices, err := json.Marshal(binding.Prices)
	if err != nil {
		return fmt.Errorf("marshal prices: %w", err)
	}
	query := `
		UPDATE binding_types SET name = $2, is_active = $3, prices = $4, updated_at = $5
		WHERE id = $1`
	_, err = r.pool.Exec(context.Background(), query,
		binding.ID, binding.Name, binding.IsActive, prices, binding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update binding type: %w", err)
	}
	return nil
}

// Delete elimina un tipo de encuadernación por ID.
func (r *BindingTypeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM binding_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete binding type: %w", err)
	}
	return nil
}

func scanBindingType(row pgx.Row) (*entity.BindingType, error) {
	var (
		b      entity.BindingType
		prices []byte
	)
	if err := row.Scan(&b.ID, &b.Name, &b.IsActive, &prices, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if len(prices) > 0 {
		if err := json.Unmarshal(prices, &b.Prices); err != nil {
			return nil, fmt.Errorf("unmarshal prices: %w", err)
		}
	}
	return &b, nil
}
