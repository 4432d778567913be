package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kartheek0410/Bus-Management-API/internal/application/booking"
	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
	"github.com/kartheek0410/Bus-Management-API/pkg/numcode"
)

// BookingHandler rutas de reservas del pasajero.
type BookingHandler struct {
	engine   *booking.EngineUseCase
	registry *booking.RegistryUseCase
	log      *logger.Logger
}

// NewBookingHandler construye el handler.
func NewBookingHandler(engine *booking.EngineUseCase, registry *booking.RegistryUseCase, log *logger.Logger) *BookingHandler {
	return &BookingHandler{engine: engine, registry: registry, log: log}
}

// BookTickets godoc
// @Summary      Reservar asientos
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BookTicketsRequest  true  "busId, seats"
// @Success      200   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings/bookTickets [post]
func (h *BookingHandler) BookTickets(c *fiber.Ctx) error {
	var in dto.BookTicketsRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	b, err := h.engine.Book(c.UserContext(), booking.BookInput{
		BusID: in.BusID,
		Seats: in.Seats,
		Rider: GetPrincipal(c),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(toBookingResponse(b))
}

// GetBookingDetails godoc
// @Summary      Consultar reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BookingDetailsRequest  true  "booking_id"
// @Success      200   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings/getBookingDetails [post]
func (h *BookingHandler) GetBookingDetails(c *fiber.Ctx) error {
	var in dto.BookingDetailsRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	b, err := h.registry.FindByBookingID(c.UserContext(), in.BookingID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(toBookingResponse(b))
}

// MyBookings godoc
// @Summary      Mis reservas
// @Tags         bookings
// @Produce      json
// @Success      200   {object}  dto.MyBookingsResponse
// @Router       /api/bookings/myBookings [get]
func (h *BookingHandler) MyBookings(c *fiber.Ctx) error {
	list, err := h.registry.ListByRider(c.UserContext(), GetPrincipal(c).Email)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := dto.MyBookingsResponse{Total: len(list), Bookings: make([]dto.BookingResponse, 0, len(list))}
	for _, b := range list {
		out.Bookings = append(out.Bookings, toBookingResponse(b))
	}
	return c.JSON(out)
}

// Ticket godoc
// @Summary      Descargar boleto en PDF
// @Tags         bookings
// @Produce      application/pdf
// @Param        bookingId  path  string  true  "booking_id"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings/ticket/{bookingId} [get]
func (h *BookingHandler) Ticket(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")
	if !numcode.Valid(bookingID) {
		return respondError(c, h.log, domain.ErrInvalidInput)
	}
	pdf, filename, err := h.registry.TicketPDF(c.UserContext(), bookingID, GetPrincipal(c).Email)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
