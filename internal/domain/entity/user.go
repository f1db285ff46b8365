package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Perfiles de precio (tier) válidos. Un perfil no reconocido se trata como Regular
// al momento de cotizar (ver internal/domain/pricing.NormalizeTier).
const (
	ProfileStudent   = "Student"
	ProfileInstitute = "Institute"
	ProfileRegular   = "Regular"
)

// User representa un cliente o administrador de la tienda de impresión.
// El login de clientes es por teléfono + OTP; los admins además tienen password (bcrypt).
type User struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	PasswordHash string // bcrypt, solo para admins; vacío para clientes OTP
	ProfileType  string // Student | Institute | Regular
	Role         string // user | admin
	Status       string // active, inactive
	Orders       int
	TotalSpent   decimal.Decimal
	CreatedAt    time.Time
	LastActive   time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
