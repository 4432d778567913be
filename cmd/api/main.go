package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/pflag"

	"github.com/kartheek0410/Bus-Management-API/internal/application/auth"
	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/application/inventory"
	infrapdf "github.com/kartheek0410/Bus-Management-API/internal/infrastructure/pdf"
	httpRouter "github.com/kartheek0410/Bus-Management-API/internal/interfaces/http"
	"github.com/kartheek0410/Bus-Management-API/pkg/config"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	fs := config.Flags("api")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		panic("flags: " + err.Error())
	}

	cfg, err := config.Load(fs)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.close()

	tokens := auth.NewTokenService(auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL(),
		Issuer: cfg.JWT.Issuer,
	})
	authUC := auth.NewAuthUseCase(st.users, st.admins, tokens, auth.Options{
		BcryptCost: cfg.Auth.BcryptCost,
	})
	ledgerUC := inventory.NewLedgerUseCase(st.buses)
	engineUC := booking.NewEngineUseCase(st.tx, nil, booking.EngineConfig{
		MaxAttempts:       cfg.Booking.MaxAttempts,
		TxTimeout:         cfg.Booking.TxTimeout,
		BookingIDAttempts: cfg.Booking.BookingIDAttempts,
	}, log)
	registryUC := booking.NewRegistryUseCase(st.bookings, infrapdf.NewTicketGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Bus Management API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		LedgerUC:   ledgerUC,
		EngineUC:   engineUC,
		RegistryUC: registryUC,
		Cookie: httpRouter.SessionCookie{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		},
		Logger: log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
