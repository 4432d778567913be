package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartheek0410/Bus-Management-API/internal/application/dto"
	"github.com/kartheek0410/Bus-Management-API/internal/application/inventory"
	"github.com/kartheek0410/Bus-Management-API/internal/domain"
	"github.com/kartheek0410/Bus-Management-API/pkg/logger"
)

// BusHandler rutas del inventario de buses.
type BusHandler struct {
	ledger *inventory.LedgerUseCase
	log    *logger.Logger
}

// NewBusHandler construye el handler.
func NewBusHandler(ledger *inventory.LedgerUseCase, log *logger.Logger) *BusHandler {
	return &BusHandler{ledger: ledger, log: log}
}

// AddBus godoc
// @Summary      Registrar bus
// @Tags         buses
// @Accept       json
// @Produce      json
// @Param        apikey  query  string  true  "API key del admin"
// @Param        body  body  dto.AddBusRequest  true  "start_station, end_station, seats_available"
// @Success      201   {object}  dto.BusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/buses/addBus [post]
func (h *BusHandler) AddBus(c *fiber.Ctx) error {
	var in dto.AddBusRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	bus, err := h.ledger.CreateBus(c.UserContext(), in.StartStation, in.EndStation, in.SeatsAvailable)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBusResponse(bus))
}

// ModifyAvailability godoc
// @Summary      Cambiar capacidad de un bus
// @Tags         buses
// @Accept       json
// @Produce      json
// @Param        apikey  query  string  true  "API key del admin"
// @Param        body  body  dto.ModifyAvailabilityRequest  true  "id, seats_available"
// @Success      200   {object}  dto.BusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/buses/modifyAvailability [post]
func (h *BusHandler) ModifyAvailability(c *fiber.Ctx) error {
	var in dto.ModifyAvailabilityRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	bus, err := h.ledger.SetCapacity(c.UserContext(), in.ID, in.SeatsAvailable)
	if err != nil {
		return respondError(c, h.log, err, withStatus(domain.ErrNotFound, fiber.StatusBadRequest))
	}
	return c.JSON(toBusResponse(bus))
}

// CheckBuses godoc
// @Summary      Buscar buses por ruta
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckBusesRequest  true  "start_station, end_station"
// @Success      200   {array}   dto.BusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bookings/checkBuses [post]
func (h *BusHandler) CheckBuses(c *fiber.Ctx) error {
	var in dto.CheckBusesRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	buses, err := h.ledger.QueryRoutes(c.UserContext(), in.StartStation, in.EndStation)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.BusResponse, 0, len(buses))
	for _, b := range buses {
		out = append(out, toBusResponse(b))
	}
	return c.JSON(out)
}

// CheckSeatsAvailability godoc
// @Summary      Disponibilidad de un bus
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SeatsAvailabilityRequest  true  "id"
// @Success      200   {object}  dto.AvailabilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings/checkSeatsAvailability [post]
func (h *BusHandler) CheckSeatsAvailability(c *fiber.Ctx) error {
	var in dto.SeatsAvailabilityRequest
	if err := bindJSON(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	av, err := h.ledger.GetAvailability(c.UserContext(), in.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.AvailabilityResponse{SeatsAvailable: av.SeatsAvailable, SeatsFilled: av.SeatsFilled})
}
