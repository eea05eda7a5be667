package routes

import (
	"gracebites-backend/internal/api/handlers"
	"gracebites-backend/internal/middleware"
	"gracebites-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                  *fiber.App
	UserHandler          handlers.UserHandler
	DonationHandler      handlers.DonationHandler
	RequestHandler       handlers.RequestHandler
	CollaborationHandler handlers.CollaborationHandler
	ProfileHandler       handlers.ProfileHandler
	DashboardHandler     handlers.DashboardHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Requests()
	c.Collaborations()
	c.Profile()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Delete("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteAccount)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetUserDonations)
	donations.Get("/available", c.DonationHandler.GetAvailableDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationByID)
	donations.Put("/:id", c.DonationHandler.UpdateDonation)
	donations.Delete("/:id", c.DonationHandler.DeleteDonation)
}

func (c *Config) Requests() {
	requests := c.App.Group("/api/v1/requests", c.Middleware.AuthMiddleware(c.JWTService))

	requests.Post("", c.RequestHandler.CreateRequest)
	requests.Get("", c.RequestHandler.GetUserRequests)
	requests.Get("/pending", c.RequestHandler.GetPendingRequests)
	requests.Put("/:id", c.RequestHandler.UpdateRequest)
	requests.Delete("/:id", c.RequestHandler.DeleteRequest)
}

func (c *Config) Collaborations() {
	collaborations := c.App.Group("/api/v1/collaborations", c.Middleware.AuthMiddleware(c.JWTService))

	collaborations.Post("/request-food", c.CollaborationHandler.RequestFromDonation)
	collaborations.Post("/fulfill-request", c.CollaborationHandler.FulfillRequest)
	collaborations.Post("/:id/accept", c.CollaborationHandler.Accept)
	collaborations.Post("/:id/reject", c.CollaborationHandler.Reject)
	collaborations.Post("/:id/complete", c.CollaborationHandler.Complete)
	collaborations.Get("/donor", c.CollaborationHandler.GetDonorCollaborations)
	collaborations.Get("/ngo", c.CollaborationHandler.GetNgoCollaborations)
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.AuthMiddleware(c.JWTService))

	profile.Get("", c.ProfileHandler.GetMyProfile)
	profile.Patch("", c.ProfileHandler.UpdateMyProfile)

	directory := c.App.Group("/api/v1/directory", c.Middleware.AuthMiddleware(c.JWTService))
	directory.Get("/ngos", c.ProfileHandler.GetNgoDirectory)
	directory.Get("/restaurants", c.ProfileHandler.GetRestaurantDirectory)
	directory.Get("/event-planners", c.ProfileHandler.GetEventPlannerDirectory)
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService))

	dashboard.Get("/donor", c.DashboardHandler.DonorDashboard)
	dashboard.Get("/ngo", c.DashboardHandler.NgoDashboard)
	dashboard.Get("/ngos/:id", c.DashboardHandler.NgoDetails)
	dashboard.Get("/restaurants/:id", c.DashboardHandler.RestaurantDetails)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
