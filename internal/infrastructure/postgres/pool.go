package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/printhub-api/pkg/config"
	"github.com/jhoicas/printhub-api/pkg/logger"
)

// NewPool crea un pool de conexiones PostgreSQL con reintentos exponenciales:
// en despliegues con docker-compose la DB suele tardar unos segundos más que
// la API en estar lista.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	var pool *pgxpool.Pool

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	err = backoff.RetryNotify(
		func() error {
			pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
			if err != nil {
				return fmt.Errorf("crear pool: %w", err)
			}
			if err = pool.Ping(ctx); err != nil {
				pool.Close()
				return fmt.Errorf("ping DB: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("next_attempt_in", next).Msg("conexión a PostgreSQL falló, reintentando")
		},
	)
	if err != nil {
		return nil, fmt.Errorf("conectar a PostgreSQL: %w", err)
	}
	return pool, nil
}
