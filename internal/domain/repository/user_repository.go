package repository

import "github.com/tu-usuario/inventory-track/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}

// ProfileRepository puerto del perfil 1:1. Create se invoca dentro de la
// misma transacción que inserta el usuario.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
}

// TokenRepository puerto de los tokens opacos de /api/token/.
type TokenRepository interface {
	Create(token *entity.AuthToken) error
	GetByKey(key string) (*entity.AuthToken, error)
	GetByUser(userID string) (*entity.AuthToken, error)
}
