package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo. Email repetido -> ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, is_active, is_staff, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, user.PasswordHash,
		user.IsActive, user.IsStaff, user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, email, name, password_hash, is_active, is_staff, is_admin, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user")
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, name, password_hash, is_active, is_staff, is_admin, created_at, updated_at
		FROM users WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get user by email")
}

// Update actualiza los campos mutables del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, name = $3, password_hash = $4, is_active = $5, is_staff = $6, is_admin = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, user.PasswordHash,
		user.IsActive, user.IsStaff, user.IsAdmin, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, email, name, password_hash, is_active, is_staff, is_admin, created_at, updated_at
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash,
			&u.IsActive, &u.IsStaff, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash,
		&u.IsActive, &u.IsStaff, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create inserta el perfil 1:1 (normalmente dentro de la tx de registro).
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `INSERT INTO profiles (id, user_id, is_admin) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, profile.ID, profile.UserID, profile.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de un usuario.
func (r *ProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	query := `SELECT id, user_id, is_admin FROM profiles WHERE user_id = $1`
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&p.ID, &p.UserID, &p.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update actualiza el flag admin del perfil.
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `UPDATE profiles SET is_admin = $2 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, profile.ID, profile.IsAdmin); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador de tokens opacos. Pasar pool o tx (Querier).
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Create inserta un token opaco (una fila por usuario).
func (r *TokenRepo) Create(token *entity.AuthToken) error {
	query := `INSERT INTO auth_tokens (key, user_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, token.Key, token.UserID, token.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// GetByKey busca un token por su llave (autenticación por header `Token <key>`).
func (r *TokenRepo) GetByKey(key string) (*entity.AuthToken, error) {
	query := `SELECT key, user_id, created_at FROM auth_tokens WHERE key = $1`
	var t entity.AuthToken
	err := r.q.QueryRow(context.Background(), query, key).Scan(&t.Key, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}

// GetByUser busca el token existente de un usuario (get-or-create en el use case).
func (r *TokenRepo) GetByUser(userID string) (*entity.AuthToken, error) {
	query := `SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = $1`
	var t entity.AuthToken
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&t.Key, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token by user: %w", err)
	}
	return &t, nil
}
