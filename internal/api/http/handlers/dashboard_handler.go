package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petcarex/console/internal/gateway"
	"github.com/petcarex/console/internal/service"
)

// DashboardHandler serves the company dashboard view-models.
type DashboardHandler struct {
	dashboard *service.DashboardService
	company   *gateway.CompanyClient
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService, company *gateway.CompanyClient) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, company: company}
}

// Overview handles GET /dashboard: all six KPI reads in one screen.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.dashboard.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview})
}

// RevenueTotal handles GET /dashboard/revenue/total.
func (h *DashboardHandler) RevenueTotal(c *fiber.Ctx) error {
	total, err := h.company.RevenueTotal(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": total})
}

// RevenueByBranch handles GET /dashboard/revenue/by-branch.
func (h *DashboardHandler) RevenueByBranch(c *fiber.Ctx) error {
	rows, err := h.company.RevenueByBranch(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// TopServices handles GET /dashboard/services/top.
func (h *DashboardHandler) TopServices(c *fiber.Ctx) error {
	months := c.QueryInt("months", 6)
	rows, err := h.company.TopServices(c.UserContext(), months)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// MembershipStats handles GET /dashboard/memberships.
func (h *DashboardHandler) MembershipStats(c *fiber.Ctx) error {
	rows, err := h.company.MembershipStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// CustomersByBranch handles GET /dashboard/customers.
func (h *DashboardHandler) CustomersByBranch(c *fiber.Ctx) error {
	rows, err := h.company.CustomersByBranch(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PetStats handles GET /dashboard/pets.
func (h *DashboardHandler) PetStats(c *fiber.Ctx) error {
	rows, err := h.company.PetStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rows})
}
