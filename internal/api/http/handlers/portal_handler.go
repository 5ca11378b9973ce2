package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/petcarex/console/internal/api/dto"
	"github.com/petcarex/console/internal/gateway"
	"github.com/petcarex/console/internal/guard"
	"github.com/petcarex/console/internal/service"
)

// PortalHandler serves the customer self-service portal. The customer id is
// always the session's subject claim.
type PortalHandler struct {
	portal  *service.PortalService
	gateway *gateway.CustomerClient
}

// NewPortalHandler constructs handler.
func NewPortalHandler(portal *service.PortalService, gw *gateway.CustomerClient) *PortalHandler {
	return &PortalHandler{portal: portal, gateway: gw}
}

// Overview handles GET /portal.
func (h *PortalHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.portal.Overview(c.UserContext(), customerID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview})
}

// Pets handles GET /portal/pets.
func (h *PortalHandler) Pets(c *fiber.Ctx) error {
	rows, err := h.gateway.Pets(c.UserContext(), customerID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// CreatePet handles POST /portal/pets.
func (h *PortalHandler) CreatePet(c *fiber.Ctx) error {
	var req dto.CreatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	row, err := h.gateway.CreatePet(c.UserContext(), customerID(c), req.Name, req.Species, req.Breed)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": row})
}

// DeletePet handles DELETE /portal/pets/:id.
func (h *PortalHandler) DeletePet(c *fiber.Ctx) error {
	if err := h.gateway.DeletePet(c.UserContext(), c.Params("id"), customerID(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"ok": true}})
}

// VaccinationHistory handles GET /portal/pets/:id/vaccinations.
func (h *PortalHandler) VaccinationHistory(c *fiber.Ctx) error {
	rows, err := h.gateway.VaccinationHistory(c.UserContext(), c.Params("id"), customerID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Packages handles GET /portal/packages.
func (h *PortalHandler) Packages(c *fiber.Ctx) error {
	rows, err := h.gateway.Packages(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Services handles GET /portal/services.
func (h *PortalHandler) Services(c *fiber.Ctx) error {
	rows, err := h.gateway.Services(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// CreateBooking handles POST /portal/bookings: the first step of the cart
// workflow, opening the session and its invoice.
func (h *PortalHandler) CreateBooking(c *fiber.Ctx) error {
	var req dto.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.PetID == "" || req.ServiceID == "" {
		return fiber.NewError(http.StatusBadRequest, "pet_id and service_id required")
	}

	row, err := h.gateway.CreateBooking(c.UserContext(), customerID(c), req.PetID, req.ServiceID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": row})
}

// ConfirmBooking handles POST /portal/bookings/:id/confirm: payment
// confirmation, the last step of the cart workflow.
func (h *PortalHandler) ConfirmBooking(c *fiber.Ctx) error {
	var req dto.ConfirmBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.PaymentMethod == "" {
		return fiber.NewError(http.StatusBadRequest, "payment_method required")
	}

	row, err := h.gateway.ConfirmAppointment(c.UserContext(), c.Params("id"), req.PaymentMethod)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": row})
}

// CancelBooking handles DELETE /portal/bookings/:id.
func (h *PortalHandler) CancelBooking(c *fiber.Ctx) error {
	if err := h.gateway.CancelBooking(c.UserContext(), c.Params("id"), customerID(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"ok": true}})
}

// Bookings handles GET /portal/bookings.
func (h *PortalHandler) Bookings(c *fiber.Ctx) error {
	rows, err := h.gateway.Bookings(c.UserContext(), customerID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Appointments handles GET /portal/appointments.
func (h *PortalHandler) Appointments(c *fiber.Ctx) error {
	rows, err := h.gateway.Appointments(c.UserContext(), customerID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Purchases handles GET /portal/purchases.
func (h *PortalHandler) Purchases(c *fiber.Ctx) error {
	rows, err := h.gateway.Purchases(c.UserContext(), customerID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

func customerID(c *fiber.Ctx) string {
	state := guard.StateFrom(c)
	if state.Claims == nil {
		return ""
	}
	return state.Claims.Subject
}
