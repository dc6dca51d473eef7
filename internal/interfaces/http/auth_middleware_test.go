package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	apphttp "github.com/tu-usuario/inventory-track/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/inventory-track/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "user@test.local"
	testIssuer    = "inventory-track-test"
)

// fakeTokenRepo repo de tokens opacos en memoria.
type fakeTokenRepo struct {
	byKey map[string]*entity.AuthToken
}

func (f *fakeTokenRepo) Create(t *entity.AuthToken) error { f.byKey[t.Key] = t; return nil }
func (f *fakeTokenRepo) GetByKey(key string) (*entity.AuthToken, error) {
	return f.byKey[key], nil
}
func (f *fakeTokenRepo) GetByUser(userID string) (*entity.AuthToken, error) {
	for _, t := range f.byKey {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, nil
}

// fakeUserRepo repo de usuarios en memoria.
type fakeUserRepo struct {
	byID map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.byID[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.byID[u.ID] = u; return nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func testDeps(tokens *fakeTokenRepo, users *fakeUserRepo) apphttp.AuthDeps {
	return apphttp.AuthDeps{JWTSecret: testJWTSecret, Tokens: tokens, Users: users}
}

// buildProtectedApp monta /protected detrás de AuthRequired.
func buildProtectedApp(deps apphttp.AuthDeps) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthRequired(deps), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"email":    apphttp.GetEmail(c),
			"is_admin": apphttp.IsAdmin(c),
		})
	})
	return app
}

func accessToken(t *testing.T, isAdmin bool) string {
	t.Helper()
	access, _, err := pkgjwt.GeneratePair(testJWTSecret, testUserID, testEmail, isAdmin, false, testIssuer, 60, 24)
	require.NoError(t, err)
	return access
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthRequired — esquema Bearer
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRequired_BearerValido(t *testing.T) {
	app := buildProtectedApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/protected", "Bearer "+accessToken(t, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
}

// El refresh no sirve para autenticar peticiones, solo para reemitir el par.
func TestAuthRequired_RefreshRechazado(t *testing.T) {
	_, refresh, err := pkgjwt.GeneratePair(testJWTSecret, testUserID, testEmail, false, false, testIssuer, 60, 24)
	require.NoError(t, err)

	app := buildProtectedApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/protected", "Bearer "+refresh)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_SinHeader(t *testing.T) {
	app := buildProtectedApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_TokenMalformado(t *testing.T) {
	app := buildProtectedApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthRequired — esquema Token (opaco, lookup en DB)
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRequired_TokenOpacoValido(t *testing.T) {
	users := &fakeUserRepo{byID: map[string]*entity.User{
		testUserID: {ID: testUserID, Email: testEmail, IsActive: true},
	}}
	tokens := &fakeTokenRepo{byKey: map[string]*entity.AuthToken{
		"llave-opaca": {Key: "llave-opaca", UserID: testUserID},
	}}

	app := buildProtectedApp(testDeps(tokens, users))
	resp := doGet(t, app, "/protected", "Token llave-opaca")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
}

func TestAuthRequired_TokenOpacoDesconocido(t *testing.T) {
	app := buildProtectedApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/protected", "Token no-existe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token opaco de un usuario desactivado no autentica.
func TestAuthRequired_TokenOpacoUsuarioInactivo(t *testing.T) {
	users := &fakeUserRepo{byID: map[string]*entity.User{
		testUserID: {ID: testUserID, Email: testEmail, IsActive: false},
	}}
	tokens := &fakeTokenRepo{byKey: map[string]*entity.AuthToken{
		"llave-opaca": {Key: "llave-opaca", UserID: testUserID},
	}}

	app := buildProtectedApp(testDeps(tokens, users))
	resp := doGet(t, app, "/protected", "Token llave-opaca")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin — 401 anónimo, 403 autenticado sin rol
// ──────────────────────────────────────────────────────────────────────────────

func buildAdminApp(deps apphttp.AuthDeps) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only", apphttp.AuthOptional(deps), apphttp.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestRequireAdmin_AdminPasa(t *testing.T) {
	app := buildAdminApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/admin-only", "Bearer "+accessToken(t, true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_AutenticadoSinRol_403(t *testing.T) {
	app := buildAdminApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/admin-only", "Bearer "+accessToken(t, false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireAdmin_Anonimo_401(t *testing.T) {
	app := buildAdminApp(testDeps(&fakeTokenRepo{byKey: map[string]*entity.AuthToken{}}, &fakeUserRepo{byID: map[string]*entity.User{}}))
	resp := doGet(t, app, "/admin-only", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
