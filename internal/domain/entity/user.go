package entity

import "time"

// User representa una cuenta del sistema. El email es la llave de identidad.
// Nunca se borra por endpoint; el flujo normal solo crea y actualiza.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive     bool
	IsStaff      bool
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile acompaña 1:1 a cada User y se inserta en la misma transacción
// que lo crea. Cae en cascada al borrar el usuario.
type Profile struct {
	ID      string
	UserID  string
	IsAdmin bool
}

// AuthToken token opaco emitido por /api/token/: una fila por usuario,
// la llave se busca directamente contra la tabla.
type AuthToken struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}
