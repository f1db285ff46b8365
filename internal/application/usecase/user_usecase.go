package usecase

import (
	"time"

	"github.com/jhoicas/printhub-api/internal/application/auth"
	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
	"github.com/jhoicas/printhub-api/internal/domain/repository"
)

// UserUseCase consulta y edición de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update edita un usuario. ProfileType y Status solo los cambia un admin:
// el perfil determina la tarifa, dejarlo editable al propio usuario sería
// dejarlo elegirse el descuento.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest, byAdmin bool) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if byAdmin {
		if in.ProfileType != nil {
			user.ProfileType = auth.CanonicalProfile(*in.ProfileType)
		}
		if in.Status != nil {
			user.Status = *in.Status
		}
	}
	user.LastActive = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación (solo admin).
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
