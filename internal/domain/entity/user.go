package entity

import "time"

// User representa un pasajero registrado.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}

// Admin representa un administrador de la flota. APIKey es el segundo factor exigido
// en las rutas de administración y se puede rotar en cualquier momento.
type Admin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	APIKey       string // 9 dígitos, único entre administradores
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal identidad autenticada resuelta a partir de un token (y API key para admins).
type Principal struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	APIKey string // solo para RoleAdmin
}

// Principal devuelve la identidad autenticada del usuario.
func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: RoleUser}
}

// Principal devuelve la identidad autenticada del administrador.
func (a *Admin) Principal() *Principal {
	return &Principal{ID: a.ID, Name: a.Name, Email: a.Email, Role: RoleAdmin, APIKey: a.APIKey}
}
