package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

var errInvalidBody = errors.New("cuerpo inválido")

type errorMapping struct {
	target error
	status int
	code   string
}

// errorTable orden de resolución: el primero que cumpla errors.Is gana.
var errorTable = []errorMapping{
	{errInvalidBody, fiber.StatusBadRequest, "INVALID_BODY"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "DUPLICATE_EMAIL"},
	{domain.ErrWeakCredential, fiber.StatusBadRequest, "WEAK_CREDENTIAL"},
	{domain.ErrInvalidCredential, fiber.StatusBadRequest, "INVALID_CREDENTIAL"},
	{domain.ErrAccountNotFound, fiber.StatusBadRequest, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrCapacityExceeded, fiber.StatusNotFound, "CAPACITY_EXCEEDED"},
	{domain.ErrCapacityBelowBooked, fiber.StatusBadRequest, "CAPACITY_BELOW_BOOKED"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrInvalidToken, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// statusOverride cambia el status de un error concreto en una ruta.
type statusOverride struct {
	target error
	status int
}

func withStatus(target error, status int) statusOverride {
	return statusOverride{target: target, status: status}
}

// respondError traduce err a {code, message}. Lo que no está en la tabla es INTERNAL:
// se registra con el request id y el cliente recibe un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, overrides ...statusOverride) error {
	for _, m := range errorTable {
		if !errors.Is(err, m.target) {
			continue
		}
		status := m.status
		for _, o := range overrides {
			if o.target == m.target {
				status = o.status
			}
		}
		msg := m.target.Error()
		var fe *fieldsError
		if errors.As(err, &fe) {
			msg = fe.Error()
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
	}

	log.Error().Err(err).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// ErrorHandler manejador de errores de fiber (rutas inexistentes, métodos no permitidos, panics
// recuperados). Mantiene el mismo cuerpo {code, message} que el resto de la API.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			if fe.Code == fiber.StatusNotFound {
				code = "NOT_FOUND"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return respondError(c, log, err)
	}
}
