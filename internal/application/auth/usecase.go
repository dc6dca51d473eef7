package auth

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	"github.com/tu-usuario/inventory-track/pkg/jwt"
)

// TxRunner ejecuta el alta de usuario + perfil dentro de una sola transacción:
// si el insert del perfil falla, el usuario no queda a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, profiles repository.ProfileRepository) error) error
}

// JWTConfig configuración para generación del par refresh/access.
type JWTConfig struct {
	Secret       string
	ExpMinutes   int
	RefreshHours int
	Issuer       string
}

// AuthUseCase casos de uso de identidad: registro, login (par JWT),
// token opaco y actualización de perfil.
type AuthUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   repository.TokenRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, profiles repository.ProfileRepository, tokens repository.TokenRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, profiles: profiles, tokens: tokens, tx: tx, jwtCfg: jwtCfg}
}

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Register crea el usuario (password hasheado con bcrypt) y su Profile en la
// misma transacción. Devuelve ErrEmailAlreadyExists si el email ya existe.
// La respuesta nunca incluye el hash.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !emailRx.MatchString(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		ID:     uuid.New().String(),
		UserID: user.ID,
	}
	err = uc.tx.Run(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return profiles.Create(profile)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite el par refresh/access.
// Email desconocido y password incorrecto fallan con el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.verifyCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	access, refresh, err := jwt.GeneratePair(
		uc.jwtCfg.Secret, user.ID, user.Email, user.IsAdmin, user.IsStaff,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, uc.jwtCfg.RefreshHours,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Refresh: refresh, Access: access}, nil
}

// ObtainToken verifica credenciales y devuelve el token opaco del usuario,
// creándolo si aún no existe (una sola fila por usuario).
func (uc *AuthUseCase) ObtainToken(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.verifyCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := uc.tokens.GetByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		token = &entity.AuthToken{
			Key:       uuid.New().String(),
			UserID:    user.ID,
			CreatedAt: time.Now(),
		}
		if err := uc.tokens.Create(token); err != nil {
			return nil, err
		}
	}
	return &dto.TokenResponse{Token: token.Key}, nil
}

// UpdateProfile actualización parcial de los campos mutables del usuario
// autenticado. Email malformado o campo provisto vacío fallan la petición.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil {
		if !emailRx.MatchString(*in.Email) {
			return nil, domain.ErrInvalidInput
		}
		if *in.Email != user.Email {
			existing, err := uc.users.GetByEmail(*in.Email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *in.Name
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) verifyCredentials(email, password string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
