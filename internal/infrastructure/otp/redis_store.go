// Package otp implementa los almacenes temporales de códigos OTP: Redis con
// TTL nativo para producción y un mapa en memoria para desarrollo.
package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/printhub-api/internal/application/auth"
	"github.com/jhoicas/printhub-api/internal/domain"
)

var _ auth.OTPStore = (*RedisStore)(nil)

// RedisStore almacén de OTPs sobre Redis. La expiración la maneja el TTL de la
// clave, así que un código vencido simplemente desaparece.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore construye el almacén y verifica la conexión.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MinIdleConns: 2,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Close cierra la conexión a Redis.
func (s *RedisStore) Close() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

// Set guarda el código con el TTL indicado.
func (s *RedisStore) Set(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKey(phone), code, ttl).Err(); err != nil {
		return fmt.Errorf("set otp: %w", err)
	}
	return nil
}

// Get devuelve el código vigente. Con TTL de Redis un código expirado es
// indistinguible de uno inexistente, así que ambos casos son ErrOTPNotFound.
func (s *RedisStore) Get(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, otpKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrOTPNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get otp: %w", err)
	}
	return code, nil
}

// Delete consume el código.
func (s *RedisStore) Delete(ctx context.Context, phone string) error {
	return s.client.Del(ctx, otpKey(phone)).Err()
}

func otpKey(phone string) string {
	return "otp:" + phone
}
