package http_test

import (
	"bytes"
	"net/http"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/pkg/numcode"
)

func TestBusAdministration(t *testing.T) {
	env := newTestEnv(t)
	adminToken, key := env.signupAdmin(t, "root@x.co")
	userToken := env.signupUser(t, "Ana", "ana@x.co")
	busID := env.addBus(t, adminToken, key, "Cali", "Pasto", 10)

	resp, body := env.do(t, http.MethodPost, "/api/buses/addBus",
		dto.AddBusRequest{StartStation: "Cali", EndStation: "Pasto", SeatsAvailable: 0},
		reqOpts{session: adminToken, apiKey: key})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/bookTickets",
		dto.BookTicketsRequest{BusID: busID, Seats: 6}, reqOpts{session: userToken})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	resp, body = env.do(t, http.MethodPost, "/api/buses/modifyAvailability",
		dto.ModifyAvailabilityRequest{ID: busID, SeatsAvailable: 5}, reqOpts{session: adminToken, apiKey: key})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CAPACITY_BELOW_BOOKED", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/buses/modifyAvailability",
		dto.ModifyAvailabilityRequest{ID: "no-existe", SeatsAvailable: 5}, reqOpts{session: adminToken, apiKey: key})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/buses/modifyAvailability",
		dto.ModifyAvailabilityRequest{ID: busID, SeatsAvailable: 20}, reqOpts{session: adminToken, apiKey: key})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	bus := decode[dto.BusResponse](t, body)
	assert.Equal(t, 20, bus.SeatsAvailable)
	assert.Equal(t, 6, bus.SeatsFilled)
}

func TestBookingFlow(t *testing.T) {
	env := newTestEnv(t)
	adminToken, key := env.signupAdmin(t, "root@x.co")
	userToken := env.signupUser(t, "Ana", "ana@x.co")
	busID := env.addBus(t, adminToken, key, "Cali", "Pasto", 10)
	user := reqOpts{session: userToken}

	// Mis reservas vacías es éxito.
	resp, body := env.do(t, http.MethodGet, "/api/bookings/myBookings", nil, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"total":0,"bookings":[]}`, string(body))

	resp, body = env.do(t, http.MethodPost, "/api/bookings/checkBuses", dto.CheckBusesRequest{StartStation: "Cali", EndStation: "Pasto"}, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	buses := decode[[]dto.BusResponse](t, body)
	require.Len(t, buses, 1)
	assert.Equal(t, busID, buses[0].ID)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/checkBuses", dto.CheckBusesRequest{StartStation: "Cali", EndStation: "Bogotá"}, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	resp, body = env.do(t, http.MethodPost, "/api/bookings/bookTickets", dto.BookTicketsRequest{BusID: busID, Seats: 3}, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	booked := decode[dto.BookingResponse](t, body)
	assert.True(t, numcode.Valid(booked.BookingID))
	assert.Equal(t, "Ana", booked.UserName)
	assert.Equal(t, "ana@x.co", booked.UserEmail)
	assert.Equal(t, "Cali", booked.StartStation)
	assert.Equal(t, 3, booked.SeatsBooked)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/checkSeatsAvailability", dto.SeatsAvailabilityRequest{ID: busID}, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"seats_available":10,"seats_filled":3}`, string(body))

	resp, body = env.do(t, http.MethodPost, "/api/bookings/getBookingDetails", dto.BookingDetailsRequest{BookingID: booked.BookingID}, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, booked.ID, decode[dto.BookingResponse](t, body).ID)

	resp, body = env.do(t, http.MethodGet, "/api/bookings/myBookings", nil, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	mine := decode[dto.MyBookingsResponse](t, body)
	assert.Equal(t, 1, mine.Total)
	assert.Equal(t, booked.BookingID, mine.Bookings[0].BookingID)
}

func TestBookTickets_Errores(t *testing.T) {
	env := newTestEnv(t)
	adminToken, key := env.signupAdmin(t, "root@x.co")
	user := reqOpts{session: env.signupUser(t, "Ana", "ana@x.co")}
	busID := env.addBus(t, adminToken, key, "Cali", "Pasto", 4)

	resp, body := env.do(t, http.MethodPost, "/api/bookings/bookTickets", dto.BookTicketsRequest{BusID: busID, Seats: 5}, user)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CAPACITY_EXCEEDED", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/bookTickets", dto.BookTicketsRequest{BusID: "no-existe", Seats: 1}, user)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/bookTickets", dto.BookTicketsRequest{BusID: busID, Seats: 0}, user)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	resp, _ = env.do(t, http.MethodPost, "/api/bookings/getBookingDetails", dto.BookingDetailsRequest{BookingID: "123456789"}, user)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/getBookingDetails", dto.BookingDetailsRequest{BookingID: "abc"}, user)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	resp, _ = env.do(t, http.MethodPost, "/api/bookings/checkSeatsAvailability", dto.SeatsAvailabilityRequest{ID: "no-existe"}, user)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBookTickets_ConcurrenciaNoSobrevende(t *testing.T) {
	env := newTestEnv(t)
	adminToken, key := env.signupAdmin(t, "root@x.co")
	user := reqOpts{session: env.signupUser(t, "Ana", "ana@x.co")}
	busID := env.addBus(t, adminToken, key, "Cali", "Pasto", 10)

	statuses := make([]int, 2)
	var wg sync.WaitGroup
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, _ := env.do(t, http.MethodPost, "/api/bookings/bookTickets", dto.BookTicketsRequest{BusID: busID, Seats: 6}, user)
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{fiber.StatusOK, fiber.StatusNotFound}, statuses)
	resp, body := env.do(t, http.MethodPost, "/api/bookings/checkSeatsAvailability", dto.SeatsAvailabilityRequest{ID: busID}, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"seats_available":10,"seats_filled":6}`, string(body))
}

func TestTicketPDF(t *testing.T) {
	env := newTestEnv(t)
	adminToken, key := env.signupAdmin(t, "root@x.co")
	ana := reqOpts{session: env.signupUser(t, "Ana", "ana@x.co")}
	bea := reqOpts{session: env.signupUser(t, "Bea", "bea@x.co")}
	busID := env.addBus(t, adminToken, key, "Cali", "Pasto", 10)

	resp, body := env.do(t, http.MethodPost, "/api/bookings/bookTickets", dto.BookTicketsRequest{BusID: busID, Seats: 1}, ana)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	booked := decode[dto.BookingResponse](t, body)

	resp, body = env.do(t, http.MethodGet, "/api/bookings/ticket/"+booked.BookingID, nil, ana)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "boleto-"+booked.BookingID+".pdf")
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, _ = env.do(t, http.MethodGet, "/api/bookings/ticket/"+booked.BookingID, nil, bea)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/bookings/ticket/999999999", nil, ana)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	for _, id := range []string{"12345", "abcdefghi", "1234567890"} {
		resp, body = env.do(t, http.MethodGet, "/api/bookings/ticket/"+id, nil, ana)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, id)
		assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code, id)
	}
}

func TestOversizedSeatCountsAreValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	adminToken, key := env.signupAdmin(t, "root@x.co")
	admin := reqOpts{session: adminToken, apiKey: key}
	user := reqOpts{session: env.signupUser(t, "Ana", "ana@x.co")}
	busID := env.addBus(t, adminToken, key, "Cali", "Pasto", 10)
	const huge = 3_000_000_000

	resp, body := env.do(t, http.MethodPost, "/api/buses/addBus",
		dto.AddBusRequest{StartStation: "Cali", EndStation: "Pasto", SeatsAvailable: huge}, admin)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/buses/modifyAvailability",
		dto.ModifyAvailabilityRequest{ID: busID, SeatsAvailable: huge}, admin)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/bookTickets",
		dto.BookTicketsRequest{BusID: busID, Seats: huge}, user)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodPost, "/api/bookings/checkSeatsAvailability", dto.SeatsAvailabilityRequest{ID: busID}, user)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"seats_available":10,"seats_filled":0}`, string(body))
}
