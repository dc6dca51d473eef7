package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos por /login/: el access autentica peticiones,
// el refresh solo sirve para reemitir el par.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añaden los flags de rol para que el middleware pueda autorizar sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	IsStaff   bool   `json:"is_staff"`
	TokenType string `json:"token_type"` // access | refresh
}

// GeneratePair genera el par refresh/access firmado para un usuario.
func GeneratePair(secret, userID, email string, isAdmin, isStaff bool, issuer string, accessMinutes, refreshHours int) (access, refresh string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	access, err = generate(secret, userID, email, isAdmin, isStaff, issuer, TypeAccess, time.Duration(accessMinutes)*time.Minute)
	if err != nil {
		return "", "", err
	}
	refresh, err = generate(secret, userID, email, isAdmin, isStaff, issuer, TypeRefresh, time.Duration(refreshHours)*time.Hour)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func generate(secret, userID, email string, isAdmin, isStaff bool, issuer, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Email:     email,
		IsAdmin:   isAdmin,
		IsStaff:   isStaff,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
