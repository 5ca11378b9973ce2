package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/petcarex/console/internal/gateway"
)

// BranchHandler serves the branch manager's own-branch views. The branch
// code always comes from the session claims; a manager cannot read another
// branch.
type BranchHandler struct {
	branch *gateway.BranchClient
}

// NewBranchHandler constructs handler.
func NewBranchHandler(branch *gateway.BranchClient) *BranchHandler {
	return &BranchHandler{branch: branch}
}

// Revenue handles GET /dashboard/branch/revenue.
func (h *BranchHandler) Revenue(c *fiber.Ctx) error {
	granularity := c.Query("granularity", "day")
	switch granularity {
	case "day", "month", "year":
	default:
		return fiber.NewError(http.StatusBadRequest, "granularity must be day, month or year")
	}

	rows, err := h.branch.Revenue(c.UserContext(), branchCode(c), granularity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// ProductInventory handles GET /dashboard/branch/inventory/products.
func (h *BranchHandler) ProductInventory(c *fiber.Ctx) error {
	rows, err := h.branch.ProductInventory(c.UserContext(), branchCode(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// VaccineInventory handles GET /dashboard/branch/inventory/vaccines.
func (h *BranchHandler) VaccineInventory(c *fiber.Ctx) error {
	rows, err := h.branch.VaccineInventory(c.UserContext(), branchCode(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// Vaccinations handles GET /dashboard/branch/vaccinations.
func (h *BranchHandler) Vaccinations(c *fiber.Ctx) error {
	from := c.Query("from", workDate(c))
	to := c.Query("to", workDate(c))
	rows, err := h.branch.Vaccinations(c.UserContext(), branchCode(c), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}
