package auth

import (
	"context"
	"time"
)

// OTPStore puerto para el almacén temporal de códigos OTP (Redis en
// producción, memoria en desarrollo). La expiración la maneja el almacén.
type OTPStore interface {
	Set(ctx context.Context, phone, code string, ttl time.Duration) error
	// Get devuelve el código vigente para el teléfono. Retorna
	// domain.ErrOTPNotFound si no existe y domain.ErrOTPExpired si venció.
	Get(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
}
