package routes

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/handlers"
	"FoodBridge/internal/middleware"
	"FoodBridge/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	DonationHandler  handlers.DonationHandler
	RouteHandler     handlers.RouteHandler
	InventoryHandler handlers.InventoryHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Routes()
	c.Inventory()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Get("/drivers", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.RequireRoles(domain.RoleAdmin), c.UserHandler.GetDrivers)
		user.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.RequireRoles(domain.RoleAdmin), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		donations.Post("", c.DonationHandler.CreateDonation)
		donations.Get("", c.DonationHandler.GetDonations)
		donations.Get("/statistics", c.Middleware.RequireRoles(domain.RoleAdmin), c.DonationHandler.GetDonationStatistics)
		donations.Get("/:id", c.DonationHandler.GetDonationByID)
		donations.Patch("/:id", c.DonationHandler.UpdateDonation)
		donations.Delete("/:id", c.DonationHandler.DeleteDonation)

		// Lifecycle transitions
		donations.Post("/:id/claim", c.Middleware.RequireRoles(domain.RoleReceptor), c.RouteHandler.ClaimDonation)
		donations.Post("/:id/route", c.Middleware.RequireRoles(domain.RoleAdmin, domain.RoleReceptor), c.RouteHandler.ComputeRoute)
	}
}

func (c *Config) Routes() {
	routes := c.App.Group("/api/v1/routes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		routes.Get("", c.RouteHandler.GetRoutes)
		routes.Get("/dashboard", c.Middleware.RequireRoles(domain.RoleAdmin), c.RouteHandler.GetDashboardStats)
		routes.Get("/:id", c.RouteHandler.GetRouteByID)
		routes.Post("/:id/driver", c.Middleware.RequireRoles(domain.RoleAdmin), c.RouteHandler.AssignDriver)
		routes.Patch("/:id/status", c.Middleware.RequireRoles(domain.RoleAdmin, domain.RoleDriver), c.RouteHandler.MarkRouteStatus)
	}

	drivers := c.App.Group("/api/v1/drivers", c.Middleware.AuthMiddleware(c.JWTService))
	{
		drivers.Get("/:id/availability", c.RouteHandler.GetDriverAvailability)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.RequireRoles(domain.RoleReceptor, domain.RoleAdmin))
	{
		inventory.Get("", c.InventoryHandler.GetInventory)
		inventory.Get("/:id", c.InventoryHandler.GetInventoryItem)
		inventory.Post("/accrue", c.InventoryHandler.Accrue)
		inventory.Post("/:id/decrement", c.InventoryHandler.Decrement)
		inventory.Patch("/:id/quantity", c.InventoryHandler.AdjustQuantity)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
