package usecase

import (
	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// UserUseCase lecturas de usuarios. Hay dos listados con contratos
// distintos: el completo (solo admin) y el público reducido a id + email.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// GetByID devuelve un usuario o ErrNotFound.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return userToResponse(user), nil
}

// List devuelve el listado completo (el handler lo restringe a admins).
func (uc *UserUseCase) List(page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.users.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

// PublicList devuelve el listado reducido a id + email, sin restricción.
func (uc *UserUseCase) PublicList(page dto.PageRequest) ([]*dto.PublicUserResponse, error) {
	page.DefaultPage()
	users, err := uc.users.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PublicUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, &dto.PublicUserResponse{ID: u.ID, Email: u.Email})
	}
	return out, nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		IsStaff:   u.IsStaff,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
