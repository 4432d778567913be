package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartheek0410/Bus-Management-API/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TTL(), "las sesiones duran 7 días")
	assert.Equal(t, "jwt", cfg.Auth.CookieName)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, 3, cfg.Booking.MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.Booking.TxTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvSobreescribe(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("BOOKING_MAX_ATTEMPTS", "5")
	t.Setenv("AUTH_COOKIE_SECURE", "true")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 5, cfg.Booking.MaxAttempts)
	assert.True(t, cfg.Auth.CookieSecure)
}

func TestLoad_FlagsSobreescribenEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("HTTP_PORT", "9000")

	fs := config.Flags("test")
	require.NoError(t, fs.Parse([]string{"--store=memory", "--port=7070", "--migrate"}))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.True(t, cfg.Store.Migrate)
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load(nil)
	assert.Error(t, err)
}

func TestLoad_DriverDesconocidoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := config.Load(nil)
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "buses", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/buses?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
