package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrAccountNotFound     = errors.New("email no registrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrWeakCredential      = errors.New("la contraseña debe tener al menos 6 caracteres")
	ErrInvalidCredential   = errors.New("credenciales inválidas")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInvalidToken        = errors.New("token inválido o expirado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrCapacityExceeded    = errors.New("no hay suficientes asientos disponibles")
	ErrCapacityBelowBooked = errors.New("la capacidad no puede ser menor que los asientos reservados")
)
