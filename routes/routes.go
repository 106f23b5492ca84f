package routes

import (
	"github.com/gofiber/fiber/v2"

	"wrapshop-backend/controllers"
	"wrapshop-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction (commits/rolls back)
	protected.Use(middlewares.Tx())

	// Catalogs (static, read-only)
	protected.Get("/materials", controllers.GetMaterials)
	protected.Get("/install-tiers", controllers.GetInstallTiers)
	protected.Get("/ppf-packages", controllers.GetPPFPackages)
	protected.Get("/deck-zones", controllers.GetDeckZones)
	protected.Get("/lead-sources", controllers.GetLeadSources)
	protected.Get("/schedule-templates", controllers.GetScheduleTemplates)

	// Prospects
	protected.Post("/prospect", controllers.CreateProspect)
	protected.Get("/prospects", controllers.GetProspects)
	protected.Get("/prospect/:id", controllers.GetProspect)
	protected.Put("/prospect/:id", controllers.UpdateProspect)

	// Estimating (pure compute, no persistence)
	protected.Post("/estimate", controllers.Estimate)
	protected.Post("/estimate/price", controllers.AutoPrice)

	// Sales orders
	protected.Post("/order", controllers.CreateOrder)
	protected.Get("/orders", controllers.GetOrders)
	protected.Get("/order/:id", controllers.GetOrder)
	protected.Put("/orders/:id", controllers.UpdateOrder)
	protected.Put("/orders/:id/approve", controllers.ApproveOrder)
	protected.Get("/orders/:id/rollup", controllers.GetOrderRollup)

	// Payment schedules (live-resolved against the order total)
	protected.Put("/orders/:id/schedule", controllers.ApplySchedule)
	protected.Get("/orders/:id/schedule", controllers.GetSchedule)
	protected.Put("/milestones/:id/invoice", controllers.InvoiceMilestone)
	protected.Put("/milestones/:id/pay", controllers.PayMilestone)
	protected.Put("/milestones/:id/overdue", controllers.OverdueMilestone)
}
