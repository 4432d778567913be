package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kartheek0410/Bus-Management-API/internal/application/auth"
	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/internal/domain/entity"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

// SessionCookie atributos de la cookie que transporta el token de sesión.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler maneja registro, login y logout de pasajeros y administradores.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookie
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookie, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, log: log}
}

// UserSignup godoc
// @Summary      Registrar pasajero
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user/signup [post]
func (h *AuthHandler) UserSignup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	p, err := h.uc.RegisterUser(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.startSession(c, p); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toUserResponse(p))
}

// UserLogin godoc
// @Summary      Iniciar sesión de pasajero
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user/login [post]
func (h *AuthHandler) UserLogin(c *fiber.Ctx) error {
	return h.login(c, entity.RoleUser)
}

// UserCheckAuth devuelve el pasajero de la sesión actual.
func (h *AuthHandler) UserCheckAuth(c *fiber.Ctx) error {
	return c.JSON(toUserResponse(GetPrincipal(c)))
}

// AdminSignup godoc
// @Summary      Registrar administrador
// @Description  Devuelve la API key inicial, necesaria junto con la sesión en las rutas de admin.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email, password"
// @Success      201   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/signup [post]
func (h *AuthHandler) AdminSignup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	p, err := h.uc.RegisterAdmin(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.startSession(c, p); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAdminResponse(p))
}

// AdminLogin godoc
// @Summary      Iniciar sesión de administrador
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      201   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, entity.RoleAdmin)
}

// AdminCheckAuth devuelve el admin de la sesión actual con su API key.
func (h *AuthHandler) AdminCheckAuth(c *fiber.Ctx) error {
	return c.JSON(toAdminResponse(GetPrincipal(c)))
}

// GenerateAPIKey godoc
// @Summary      Rotar API key
// @Description  La key anterior deja de ser válida inmediatamente.
// @Tags         admin
// @Produce      json
// @Param        apikey  query  string  true  "API key vigente"
// @Success      200   {object}  dto.APIKeyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/generateApiKey [post]
func (h *AuthHandler) GenerateAPIKey(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	key, err := h.uc.RotateAPIKey(c.UserContext(), p.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.APIKeyResponse{APIKey: key, Name: p.Name})
}

// Logout borra la cookie de sesión. Idempotente: no exige sesión.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

func (h *AuthHandler) login(c *fiber.Ctx, role entity.Role) error {
	var in dto.LoginRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	p, err := h.uc.VerifyCredential(c.UserContext(), in.Email, in.Password, role)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.startSession(c, p); err != nil {
		return respondError(c, h.log, err)
	}
	if role == entity.RoleAdmin {
		return c.Status(fiber.StatusCreated).JSON(toAdminResponse(p))
	}
	return c.Status(fiber.StatusCreated).JSON(toUserResponse(p))
}

func (h *AuthHandler) startSession(c *fiber.Ctx, p *entity.Principal) error {
	token, exp, err := h.uc.IssueSession(p)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return nil
}
