package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	"github.com/tu-usuario/inventory-track/pkg/jwt"
)

// Locals keys para la identidad en Fiber.
const (
	LocalUserID  = "user_id"
	LocalEmail   = "email"
	LocalIsAdmin = "is_admin"
	LocalIsStaff = "is_staff"
)

// AuthDeps dependencias del middleware: secreto para JWT y repos para
// resolver tokens opacos (`Token <key>`).
type AuthDeps struct {
	JWTSecret string
	Tokens    repository.TokenRepository
	Users     repository.UserRepository
}

// authenticate intenta resolver la identidad desde el header Authorization.
// Acepta dos esquemas: `Bearer <jwt-access>` y `Token <key-opaca>`.
// Devuelve true si quedó identidad en c.Locals.
func authenticate(c *fiber.Ctx, deps AuthDeps) bool {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return false
	}
	credential := strings.TrimSpace(parts[1])
	if credential == "" {
		return false
	}

	switch {
	case strings.EqualFold(parts[0], "Bearer"):
		claims, err := jwt.Parse(deps.JWTSecret, credential)
		if err != nil || claims.TokenType != jwt.TypeAccess {
			// el refresh no autentica peticiones
			return false
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalIsAdmin, claims.IsAdmin)
		c.Locals(LocalIsStaff, claims.IsStaff)
		return true

	case strings.EqualFold(parts[0], "Token"):
		token, err := deps.Tokens.GetByKey(credential)
		if err != nil || token == nil {
			return false
		}
		user, err := deps.Users.GetByID(token.UserID)
		if err != nil || user == nil || !user.IsActive {
			return false
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalEmail, user.Email)
		c.Locals(LocalIsAdmin, user.IsAdmin)
		c.Locals(LocalIsStaff, user.IsStaff)
		return true
	}
	return false
}

// AuthRequired exige identidad válida (Bearer JWT o Token opaco).
func AuthRequired(deps AuthDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authenticate(c, deps) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales requeridas"})
		}
		return c.Next()
	}
}

// AuthOptional resuelve la identidad si viene, pero no la exige;
// el handler decide qué hacer con una petición anónima.
func AuthOptional(deps AuthDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authenticate(c, deps)
		return c.Next()
	}
}

// RequireAdmin corta con 401 si no hay identidad y con 403 si el
// usuario autenticado no es admin. Montar después de AuthOptional.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales requeridas"})
		}
		if !IsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email del contexto.
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsAdmin indica si el usuario autenticado es admin.
func IsAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalIsAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IsStaff indica si el usuario autenticado es staff.
func IsStaff(c *fiber.Ctx) bool {
	v := c.Locals(LocalIsStaff)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

// IsRegularUser indica si hay identidad sin rol staff ni admin.
func IsRegularUser(c *fiber.Ctx) bool {
	return GetUserID(c) != "" && !IsAdmin(c) && !IsStaff(c)
}
