package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	controller "leadhub/controllers"
	"leadhub/middleware"
	"leadhub/utils"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authLogger := utils.NewLogger("AUTH")

	// Auth routes group with logging middleware
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Public auth endpoints, throttled per client IP
	credentials := auth.Group("", middleware.LoginRateLimiter())
	credentials.Post("/register", controller.Register)
	credentials.Post("/login", controller.Login)
	auth.Post("/refresh", controller.RefreshToken)

	// Google OAuth routes
	auth.Get("/google", controller.GoogleOAuth)
	auth.Get("/google/callback", controller.GoogleOAuthCallback)

	// Protected auth endpoints (require valid JWT)
	protectedAuth := auth.Group("", middleware.Protected())
	protectedAuth.Post("/logout", controller.Logout)
	protectedAuth.Get("/me", controller.GetCurrentUser)

	authLogger.Info("authentication routes initialized")
}

func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	leadController := controller.NewLeadController(db, utils.NewLogger("LEAD"))
	categoryController := controller.NewCategoryController(db, utils.NewLogger("CATEGORY"))
	agentController := controller.NewAgentController(db, utils.NewLogger("AGENT"))
	dashboardController := controller.NewDashboardController(db, utils.NewLogger("DASHBOARD"))

	// API group with versioning and protection
	api := app.Group("/api/v1", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Dashboard routes
	api.Get("/dashboard/stats", dashboardController.GetDashboardStats)

	// Lead routes
	lead := api.Group("/leads")
	lead.Get("/", leadController.GetLeads)
	lead.Post("/", leadController.CreateLead)
	lead.Get("/:id", leadController.GetLead)
	lead.Put("/:id", leadController.UpdateLead)
	lead.Delete("/:id", leadController.DeleteLead)
	lead.Put("/:id/assign-agent", leadController.AssignAgent)
	lead.Put("/:id/category", leadController.UpdateLeadCategory)

	// Category routes
	category := api.Group("/categories")
	category.Get("/", categoryController.GetCategories)
	category.Post("/", categoryController.CreateCategory)
	category.Get("/:id", categoryController.GetCategory)
	category.Put("/:id", categoryController.UpdateCategory)
	category.Delete("/:id", categoryController.DeleteCategory)

	// Agent routes (organiser-only, enforced inside the handlers)
	agent := api.Group("/agents")
	agent.Get("/", agentController.GetAgents)
	agent.Post("/", agentController.CreateAgent)
	agent.Get("/:id", agentController.GetAgent)
	agent.Put("/:id", agentController.UpdateAgent)
	agent.Delete("/:id", agentController.DeleteAgent)

	utils.NewLogger("API").Info("API routes initialized")
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize Google OAuth now that configuration is loaded
	controller.InitGoogleOAuth()

	// Setup health check and metrics endpoints
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", middleware.MetricsHandler())

	SetupAuthRoutes(app, db)
	SetupAPIRoutes(app, db)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
