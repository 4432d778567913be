package entity

import "fmt"

// Role es cerrado: solo existen RoleUser y RoleAdmin. El valor cero no es un rol válido.
type Role uint8

const (
	RoleUser Role = iota + 1
	RoleAdmin
)

// String devuelve el nombre usado en el claim "role" del token.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Valid indica si r es uno de los dos roles conocidos.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole convierte el claim del token en Role. Cualquier otro valor se rechaza.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "user":
		return RoleUser, true
	case "admin":
		return RoleAdmin, true
	default:
		return 0, false
	}
}
