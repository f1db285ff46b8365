package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrPhoneAlreadyExists = errors.New("el teléfono ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrOTPNotFound        = errors.New("OTP no encontrado, solicite uno nuevo")
	ErrOTPExpired         = errors.New("OTP expirado, solicite uno nuevo")
	ErrOTPMismatch        = errors.New("OTP inválido")
	ErrZeroPricedOrder    = errors.New("la cotización da total cero: no hay precio configurado para esta combinación")
)
