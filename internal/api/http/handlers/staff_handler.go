package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/petcarex/console/internal/api/dto"
	"github.com/petcarex/console/internal/gateway"
	"github.com/petcarex/console/internal/guard"
	"github.com/petcarex/console/internal/service"
)

// StaffHandler serves the staff console desks. Branch and staff identifiers
// come from the session claims, never from the request, mirroring how the
// token pre-fills the staff forms.
type StaffHandler struct {
	staff   *service.StaffService
	gateway *gateway.StaffClient
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *service.StaffService, gw *gateway.StaffClient) *StaffHandler {
	return &StaffHandler{staff: staff, gateway: gw}
}

// Desks handles GET /staff: which desks this role may open.
func (h *StaffHandler) Desks(c *fiber.Ctx) error {
	state := guard.StateFrom(c)
	role := state.Claims.Role

	desk, _ := guard.DeskFor(role)
	return c.JSON(dto.DesksResponse{
		Default: desk,
		Visible: guard.VisibleDesks(role),
	})
}

// SalesDesk handles GET /staff/sales.
func (h *StaffHandler) SalesDesk(c *fiber.Ctx) error {
	desk, err := h.staff.SalesDesk(c.UserContext(), workDate(c), branchCode(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": desk})
}

// ReceptionDesk handles GET /staff/reception.
func (h *StaffHandler) ReceptionDesk(c *fiber.Ctx) error {
	desk, err := h.staff.ReceptionDesk(c.UserContext(), workDate(c), branchCode(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": desk})
}

// ClinicalDesk handles GET /staff/clinical.
func (h *StaffHandler) ClinicalDesk(c *fiber.Ctx) error {
	desk, err := h.staff.ClinicalDesk(c.UserContext(), workDate(c), branchCode(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": desk})
}

// CreateInvoice handles POST /staff/sales/invoices.
func (h *StaffHandler) CreateInvoice(c *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.InvoiceID == "" || req.CustomerID == "" || req.Method == "" {
		return fiber.NewError(http.StatusBadRequest, "invoice_id, customer_id, method required")
	}

	state := guard.StateFrom(c)
	row, err := h.gateway.CreateInvoice(c.UserContext(), req.InvoiceID, req.CustomerID, req.Method, state.Claims.Subject)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": row})
}

// SearchInvoices handles GET /staff/sales/invoices.
func (h *StaffHandler) SearchInvoices(c *fiber.Ctx) error {
	from := c.Query("from", workDate(c))
	to := c.Query("to", workDate(c))
	rows, err := h.gateway.SearchInvoices(c.UserContext(), from, to, branchCode(c), c.Query("customer_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// ImportStock handles POST /staff/sales/inventory/import.
func (h *StaffHandler) ImportStock(c *fiber.Ctx) error {
	var req dto.ImportStockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProductID == "" || req.Quantity <= 0 {
		return fiber.NewError(http.StatusBadRequest, "product_id and positive quantity required")
	}

	row, err := h.gateway.ImportProductStock(c.UserContext(), branchCode(c), req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": row})
}

// StartExamination handles POST /staff/clinical/examinations/start.
func (h *StaffHandler) StartExamination(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return fiber.NewError(http.StatusBadRequest, "session_id required")
	}

	state := guard.StateFrom(c)
	row, err := h.gateway.StartExamination(c.UserContext(), sessionID, state.Claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": row})
}

// CompleteExamination handles POST /staff/clinical/examinations/complete.
func (h *StaffHandler) CompleteExamination(c *fiber.Ctx) error {
	var req dto.CompleteExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.SessionID == "" {
		return fiber.NewError(http.StatusBadRequest, "session_id required")
	}

	row, err := h.gateway.CompleteExamination(c.UserContext(), req.SessionID, req.Diagnosis)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": row})
}

// CompleteVaccination handles POST /staff/clinical/vaccinations/complete.
func (h *StaffHandler) CompleteVaccination(c *fiber.Ctx) error {
	var req dto.CompleteVaccinationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.SessionID == "" || req.VaccineID == "" {
		return fiber.NewError(http.StatusBadRequest, "session_id and vaccine_id required")
	}

	row, err := h.gateway.CompleteVaccination(c.UserContext(), req.SessionID, req.VaccineID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": row})
}

func workDate(c *fiber.Ctx) string {
	return c.Query("date", time.Now().Format("2006-01-02"))
}

func branchCode(c *fiber.Ctx) string {
	state := guard.StateFrom(c)
	if state.Claims == nil {
		return ""
	}
	return state.Claims.BranchCode
}
