package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kartheek0410/Bus-Management-API/internal/domain"
)

// Códigos SQLSTATE que tratamos explícitamente.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Nombres de constraints únicos del esquema (migrations/001_init.sql).
const (
	constraintUsersEmail     = "users_email_key"
	constraintAdminsEmail    = "admins_email_key"
	constraintAdminsAPIKey   = "admins_api_key_key"
	constraintBookingsCodeID = "bookings_booking_id_key"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	_, ok := uniqueConstraint(err)
	return ok
}

// uniqueConstraint devuelve el constraint violado cuando err es un 23505.
func uniqueConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// isRetryable errores de concurrencia tras los que basta con repetir la transacción.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	}
	return false
}

// classifyTxError traduce fallos de la transacción de reserva: los de concurrencia y el
// vencimiento del plazo pasan a domain.ErrConflict; los errores de dominio se conservan.
func classifyTxError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrConflict) {
		return err
	}
	if isRetryable(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}
