package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/application/auth"
	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/inventory-track/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byID map[string]*entity.User
}

func (m *memUserRepo) Create(u *entity.User) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.byID[u.ID] = u
	return nil
}
func (m *memUserRepo) GetByID(id string) (*entity.User, error) { return m.byID[id], nil }
func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) Update(u *entity.User) error { m.byID[u.ID] = u; return nil }
func (m *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

type memProfileRepo struct {
	byUserID map[string]*entity.Profile
}

func (m *memProfileRepo) Create(p *entity.Profile) error { m.byUserID[p.UserID] = p; return nil }
func (m *memProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	return m.byUserID[userID], nil
}
func (m *memProfileRepo) Update(p *entity.Profile) error { m.byUserID[p.UserID] = p; return nil }

type memTokenRepo struct {
	byKey map[string]*entity.AuthToken
}

func (m *memTokenRepo) Create(t *entity.AuthToken) error { m.byKey[t.Key] = t; return nil }
func (m *memTokenRepo) GetByKey(key string) (*entity.AuthToken, error) {
	return m.byKey[key], nil
}
func (m *memTokenRepo) GetByUser(userID string) (*entity.AuthToken, error) {
	for _, t := range m.byKey {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, nil
}

// memTxRunner ejecuta el callback directo contra los repos en memoria; acá
// no hay transacción real que revertir.
type memTxRunner struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

func (m *memTxRunner) Run(ctx context.Context, fn func(users repository.UserRepository, profiles repository.ProfileRepository) error) error {
	return fn(m.users, m.profiles)
}

func buildAuthUC(t *testing.T) (*auth.AuthUseCase, *memUserRepo, *memProfileRepo, *memTokenRepo) {
	t.Helper()
	users := &memUserRepo{byID: map[string]*entity.User{}}
	profiles := &memProfileRepo{byUserID: map[string]*entity.Profile{}}
	tokens := &memTokenRepo{byKey: map[string]*entity.AuthToken{}}
	uc := auth.NewAuthUseCase(users, profiles, tokens, &memTxRunner{users: users, profiles: profiles}, auth.JWTConfig{
		Secret:       "secreto-de-test",
		ExpMinutes:   60,
		RefreshHours: 24,
		Issuer:       "inventory-track-test",
	})
	return uc, users, profiles, tokens
}

func registerUser(t *testing.T, uc *auth.AuthUseCase, email, password string) *dto.UserResponse {
	t.Helper()
	user, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    email,
		Name:     "Usuario Test",
		Password: password,
	})
	require.NoError(t, err)
	return user
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYPerfil(t *testing.T) {
	uc, users, profiles, _ := buildAuthUC(t)

	user := registerUser(t, uc, "nuevo@test.local", "clave1234")

	assert.Equal(t, "nuevo@test.local", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)

	stored, err := users.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave1234", stored.PasswordHash, "el password nunca se guarda en claro")

	profile, err := profiles.GetByUserID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile, "el registro debe crear el perfil en la misma transacción")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := buildAuthUC(t)
	registerUser(t, uc, "dup@test.local", "clave1234")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "dup@test.local",
		Name:     "Otro",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmailMalformado(t *testing.T) {
	uc, _, _, _ := buildAuthUC(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "esto-no-es-un-email",
		Name:     "Usuario",
		Password: "clave1234",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteParValido(t *testing.T) {
	uc, _, _, _ := buildAuthUC(t)
	registered := registerUser(t, uc, "login@test.local", "clave1234")

	out, err := uc.Login(dto.LoginRequest{Email: "login@test.local", Password: "clave1234"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Access)
	require.NotEmpty(t, out.Refresh)

	claims, err := pkgjwt.Parse("secreto-de-test", out.Access)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, pkgjwt.TypeAccess, claims.TokenType)

	refreshClaims, err := pkgjwt.Parse("secreto-de-test", out.Refresh)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.TypeRefresh, refreshClaims.TokenType)
}

// Email desconocido y password incorrecto devuelven el mismo error: la
// respuesta no debe revelar cuál de los dos falló.
func TestLogin_ErrorUniforme(t *testing.T) {
	uc, _, _, _ := buildAuthUC(t)
	registerUser(t, uc, "login@test.local", "clave1234")

	_, errPassword := uc.Login(dto.LoginRequest{Email: "login@test.local", Password: "equivocada"})
	_, errEmail := uc.Login(dto.LoginRequest{Email: "fantasma@test.local", Password: "clave1234"})

	assert.ErrorIs(t, errPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, errPassword.Error(), errEmail.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ObtainToken
// ──────────────────────────────────────────────────────────────────────────────

func TestObtainToken_GetOrCreate(t *testing.T) {
	uc, _, _, tokens := buildAuthUC(t)
	registerUser(t, uc, "token@test.local", "clave1234")

	first, err := uc.ObtainToken(dto.LoginRequest{Email: "token@test.local", Password: "clave1234"})
	require.NoError(t, err)
	second, err := uc.ObtainToken(dto.LoginRequest{Email: "token@test.local", Password: "clave1234"})
	require.NoError(t, err)

	assert.Equal(t, first.Token, second.Token, "logins repetidos reutilizan la misma llave")
	assert.Len(t, tokens.byKey, 1)
}

func TestObtainToken_CredencialesInvalidas(t *testing.T) {
	uc, _, _, _ := buildAuthUC(t)
	_, err := uc.ObtainToken(dto.LoginRequest{Email: "nadie@test.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateProfile
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProfile_Parcial(t *testing.T) {
	uc, _, _, _ := buildAuthUC(t)
	user := registerUser(t, uc, "perfil@test.local", "clave1234")

	name := "Nombre Nuevo"
	updated, err := uc.UpdateProfile(user.ID, dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Nombre Nuevo", updated.Name)
	assert.Equal(t, "perfil@test.local", updated.Email, "el email no provisto se conserva")
}

func TestUpdateProfile_EmailTomado(t *testing.T) {
	uc, _, _, _ := buildAuthUC(t)
	registerUser(t, uc, "a@test.local", "clave1234")
	b := registerUser(t, uc, "b@test.local", "clave1234")

	taken := "a@test.local"
	_, err := uc.UpdateProfile(b.ID, dto.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
