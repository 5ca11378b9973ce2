package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/petcarex/console/internal/api/http/handlers"
	"github.com/petcarex/console/internal/config"
	"github.com/petcarex/console/internal/domain"
	"github.com/petcarex/console/internal/guard"
	"github.com/petcarex/console/internal/service"
	"github.com/petcarex/console/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Branch    *handlers.BranchHandler
	Staff     *handlers.StaffHandler
	Portal    *handlers.PortalHandler

	SessionCfg config.SessionConfig
	Manager    *session.Manager
	Sessions   *service.SessionService
}

// RegisterRoutes wires HTTP routes. Every protected group consumes the same
// guard tables; no page re-derives the role mapping.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(guard.SessionMiddleware(cfg.SessionCfg, cfg.Manager))

	app.Get("/", cfg.Auth.Entry)
	app.Post("/login/customer", cfg.Auth.LoginCustomer)
	app.Post("/login/staff", cfg.Auth.LoginStaff)
	app.Post("/logout", cfg.Auth.Logout)
	app.Get("/session", cfg.Auth.Session)

	dashboard := app.Group(guard.RouteDashboard,
		guard.RequireRoles(cfg.Sessions, domain.RoleBranchManager, domain.RoleStaff))
	dashboard.Get("/", cfg.Dashboard.Overview)
	dashboard.Get("/revenue/total", cfg.Dashboard.RevenueTotal)
	dashboard.Get("/revenue/by-branch", cfg.Dashboard.RevenueByBranch)
	dashboard.Get("/services/top", cfg.Dashboard.TopServices)
	dashboard.Get("/memberships", cfg.Dashboard.MembershipStats)
	dashboard.Get("/customers", cfg.Dashboard.CustomersByBranch)
	dashboard.Get("/pets", cfg.Dashboard.PetStats)

	branch := dashboard.Group("/branch",
		guard.RequireRoles(cfg.Sessions, domain.RoleBranchManager))
	branch.Get("/revenue", cfg.Branch.Revenue)
	branch.Get("/inventory/products", cfg.Branch.ProductInventory)
	branch.Get("/inventory/vaccines", cfg.Branch.VaccineInventory)
	branch.Get("/vaccinations", cfg.Branch.Vaccinations)

	staff := app.Group(guard.RouteStaff,
		guard.RequireRoles(cfg.Sessions,
			domain.RoleStaff, domain.RoleBranchManager,
			domain.RoleSalesStaff, domain.RoleVetStaff, domain.RoleReceptionist))
	staff.Get("/", cfg.Staff.Desks)

	sales := staff.Group("/sales",
		guard.RequireRoles(cfg.Sessions, domain.RoleSalesStaff, domain.RoleStaff, domain.RoleBranchManager))
	sales.Get("/", cfg.Staff.SalesDesk)
	sales.Get("/invoices", cfg.Staff.SearchInvoices)
	sales.Post("/invoices", cfg.Staff.CreateInvoice)
	sales.Post("/inventory/import", cfg.Staff.ImportStock)

	reception := staff.Group("/reception",
		guard.RequireRoles(cfg.Sessions, domain.RoleReceptionist, domain.RoleStaff, domain.RoleBranchManager))
	reception.Get("/", cfg.Staff.ReceptionDesk)

	clinical := staff.Group("/clinical",
		guard.RequireRoles(cfg.Sessions, domain.RoleVetStaff, domain.RoleStaff, domain.RoleBranchManager))
	clinical.Get("/", cfg.Staff.ClinicalDesk)
	clinical.Post("/examinations/start", cfg.Staff.StartExamination)
	clinical.Post("/examinations/complete", cfg.Staff.CompleteExamination)
	clinical.Post("/vaccinations/complete", cfg.Staff.CompleteVaccination)

	portal := app.Group(guard.RoutePortal,
		guard.RequireRoles(cfg.Sessions, domain.RoleCustomer, domain.RoleStaff, domain.RoleBranchManager))
	portal.Get("/", cfg.Portal.Overview)
	portal.Get("/pets", cfg.Portal.Pets)
	portal.Post("/pets", cfg.Portal.CreatePet)
	portal.Delete("/pets/:id", cfg.Portal.DeletePet)
	portal.Get("/pets/:id/vaccinations", cfg.Portal.VaccinationHistory)
	portal.Get("/packages", cfg.Portal.Packages)
	portal.Get("/services", cfg.Portal.Services)
	portal.Get("/bookings", cfg.Portal.Bookings)
	portal.Post("/bookings", cfg.Portal.CreateBooking)
	portal.Post("/bookings/:id/confirm", cfg.Portal.ConfirmBooking)
	portal.Delete("/bookings/:id", cfg.Portal.CancelBooking)
	portal.Get("/appointments", cfg.Portal.Appointments)
	portal.Get("/purchases", cfg.Portal.Purchases)
}
