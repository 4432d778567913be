package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartheek0410/Bus-Management-API/internal/application/auth"
	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/application/inventory"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	LedgerUC   *inventory.LedgerUseCase
	EngineUC   *booking.EngineUseCase
	RegistryUC *booking.RegistryUseCase
	Cookie     SessionCookie
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	requireUser := RequireUser(deps.AuthUC, deps.Cookie.Name, log)
	requireAdmin := RequireAdmin(deps.AuthUC, deps.Cookie.Name, log)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, log)
	busHandler := NewBusHandler(deps.LedgerUC, log)
	bookingHandler := NewBookingHandler(deps.EngineUC, deps.RegistryUC, log)

	// Pasajeros
	user := api.Group("/user")
	user.Post("/signup", authHandler.UserSignup)
	user.Post("/login", authHandler.UserLogin)
	user.Post("/logout", authHandler.Logout)
	user.Get("/checkAuth", requireUser, authHandler.UserCheckAuth)

	// Administradores (sesión + API key)
	admin := api.Group("/admin")
	admin.Post("/signup", authHandler.AdminSignup)
	admin.Post("/login", authHandler.AdminLogin)
	admin.Post("/logout", authHandler.Logout)
	admin.Get("/checkAuth", requireAdmin, authHandler.AdminCheckAuth)
	admin.Post("/generateApiKey", requireAdmin, authHandler.GenerateAPIKey)

	// Inventario de buses (admin)
	buses := api.Group("/buses", requireAdmin)
	buses.Post("/addBus", busHandler.AddBus)
	buses.Post("/modifyAvailability", busHandler.ModifyAvailability)

	// Reservas (pasajero)
	bookings := api.Group("/bookings", requireUser)
	bookings.Post("/checkBuses", busHandler.CheckBuses)
	bookings.Post("/checkSeatsAvailability", busHandler.CheckSeatsAvailability)
	bookings.Post("/bookTickets", bookingHandler.BookTickets)
	bookings.Post("/getBookingDetails", bookingHandler.GetBookingDetails)
	bookings.Get("/myBookings", bookingHandler.MyBookings)
	bookings.Get("/ticket/:bookingId", bookingHandler.Ticket)
}
