package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kartheek0410/Bus-Management-API/internal/application/auth"
	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/internal/application/inventory"
	"github.com/kartheek0410/Bus-Management-API/internal/infrastructure/memory"
	"github.com/kartheek0410/Bus-Management-API/internal/infrastructure/pdf"
	apphttp "github.com/kartheek0410/Bus-Management-API/internal/interfaces/http"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "bus-management-test"
	testCookie    = "jwt"
)

type testEnv struct {
	app    *fiber.App
	store  *memory.Store
	tokens *auth.TokenService
}

// newTestEnv construye la API completa sobre el almacén en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s := memory.New()
	tokens := auth.NewTokenService(auth.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: testIssuer})
	authUC := auth.NewAuthUseCase(s.Users(), s.Admins(), tokens, auth.Options{BcryptCost: bcrypt.MinCost})
	log := logger.Nop()

	app := fiber.New()
	app.Use(requestid.New())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		LedgerUC:   inventory.NewLedgerUseCase(s.Buses()),
		EngineUC:   booking.NewEngineUseCase(s, nil, booking.EngineConfig{MaxAttempts: 3, BookingIDAttempts: 10}, log),
		RegistryUC: booking.NewRegistryUseCase(s.Bookings(), pdf.NewTicketGenerator(testIssuer)),
		Cookie:     apphttp.SessionCookie{Name: testCookie},
		Logger:     log,
	})
	return &testEnv{app: app, store: s, tokens: tokens}
}

type reqOpts struct {
	session string
	bearer  string
	apiKey  string
	header  map[string]string
}

// do lanza la petición y devuelve la respuesta con el cuerpo ya leído.
func (e *testEnv) do(t *testing.T, method, path string, body any, o reqOpts) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			rdr = bytes.NewBufferString(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			rdr = bytes.NewReader(b)
		}
	}
	if o.apiKey != "" {
		path += "?apikey=" + o.apiKey
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if o.session != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: o.session})
	}
	if o.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+o.bearer)
	}
	for k, v := range o.header {
		req.Header.Set(k, v)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// signupUser registra un pasajero y devuelve su token de sesión.
func (e *testEnv) signupUser(t *testing.T, name, email string) string {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/api/user/signup", dto.SignupRequest{Name: name, Email: email, Password: "secreto1"}, reqOpts{})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	c := sessionCookie(resp)
	require.NotNil(t, c)
	return c.Value
}

// signupAdmin registra un admin y devuelve token y API key.
func (e *testEnv) signupAdmin(t *testing.T, email string) (string, string) {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/api/admin/signup", dto.SignupRequest{Name: "Root", Email: email, Password: "secreto1"}, reqOpts{})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	out := decode[dto.AdminResponse](t, body)
	c := sessionCookie(resp)
	require.NotNil(t, c)
	return c.Value, out.APIKey
}

// addBus registra un bus como admin y devuelve su ID.
func (e *testEnv) addBus(t *testing.T, token, key, start, end string, seats int) string {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/api/buses/addBus",
		dto.AddBusRequest{StartStation: start, EndStation: end, SeatsAvailable: seats},
		reqOpts{session: token, apiKey: key})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	return decode[dto.BusResponse](t, body).ID
}
