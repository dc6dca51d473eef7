package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse par refresh/access emitido por /login/.
type LoginResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// TokenResponse token opaco emitido por /api/token/.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest actualización parcial de los campos mutables del perfil.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// UserResponse salida de un usuario (nunca incluye el hash del password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	IsStaff   bool      `json:"is_staff"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUserResponse versión reducida que expone /api/users/ (solo id y email).
type PublicUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
