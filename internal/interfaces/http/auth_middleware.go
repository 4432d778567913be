package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kartheek0410/Bus-Management-API/internal/application/auth"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

// LocalPrincipal clave en c.Locals de la identidad autenticada.
const LocalPrincipal = "principal"

// HeaderAPIKey alternativa al query param ?apikey= para rutas de admin.
const HeaderAPIKey = "X-API-Key"

// RequireUser valida el token de sesión (cookie o Bearer) de un pasajero.
func RequireUser(uc *auth.AuthUseCase, cookieName string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := uc.RequireUser(c.UserContext(), sessionToken(c, cookieName))
		if err != nil {
			return respondError(c, log, err)
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// RequireAdmin exige token de admin y su API key vigente. Los rechazos responden 400.
func RequireAdmin(uc *auth.AuthUseCase, cookieName string, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Query("apikey")
		if apiKey == "" {
			apiKey = c.Get(HeaderAPIKey)
		}
		p, err := uc.RequireAdmin(c.UserContext(), sessionToken(c, cookieName), strings.TrimSpace(apiKey))
		if err != nil {
			return respondError(c, log, err, adminGateOverrides...)
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

var adminGateOverrides = []statusOverride{
	withStatus(domain.ErrUnauthorized, fiber.StatusBadRequest),
	withStatus(domain.ErrInvalidToken, fiber.StatusBadRequest),
	withStatus(domain.ErrForbidden, fiber.StatusBadRequest),
}

// sessionToken lee la cookie de sesión; si no está, acepta Authorization: Bearer <token>.
func sessionToken(c *fiber.Ctx, cookieName string) string {
	if v := c.Cookies(cookieName); v != "" {
		return v
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// GetPrincipal devuelve la identidad del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *entity.Principal {
	p, _ := c.Locals(LocalPrincipal).(*entity.Principal)
	return p
}
