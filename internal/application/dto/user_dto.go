package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	ProfileType string          `json:"profileType"`
	Role        string          `json:"role"`
	Status      string          `json:"status"`
	Orders      int             `json:"orders"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	CreatedAt   time.Time       `json:"createdAt"`
	LastActive  time.Time       `json:"lastActive"`
}

// UpdateUserRequest campos editables de un usuario. El perfil de precio solo
// puede cambiarlo un admin; el handler descarta ProfileType para no-admins.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	ProfileType *string `json:"profileType,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
