package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"inmosalta_backend/internal/catalog"
	"inmosalta_backend/internal/controller"
	"inmosalta_backend/internal/handoff"
	"inmosalta_backend/internal/middleware"
	"inmosalta_backend/internal/report"
	"inmosalta_backend/pkg/config"
	"inmosalta_backend/pkg/cron"
	"inmosalta_backend/pkg/logger"
	"inmosalta_backend/pkg/slot"
	"inmosalta_backend/pkg/utils/jwt"
)

type controllers struct {
	auth     *controller.AuthController
	property *controller.PropertyController
	form     *controller.FormController
	client   *controller.ClientController
	stats    *controller.StatsController
}

func setupRoutes(app *fiber.App, ctrl controllers) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", ctrl.auth.Login)
	auth.Post("/logout", middleware.AuthMiddleware(), ctrl.auth.Logout)

	// Public Property Routes
	api.Get("/properties", ctrl.property.ListProperties)
	api.Get("/properties/:id", ctrl.property.GetProperty)
	api.Get("/p/:property_slug", ctrl.property.GetPropertyBySlug)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", ctrl.auth.GetMe)

	// Admin catalog
	properties := protected.Group("/properties")
	properties.Post("/", ctrl.property.CreateProperty)
	properties.Put("/:id", ctrl.property.UpdateProperty)
	properties.Delete("/:id", ctrl.property.DeleteProperty)

	// Edit handoff: list view intent, form view mount and submit
	admin := protected.Group("/admin")
	admin.Post("/properties/:id/edit-intent", ctrl.form.EditIntent)
	admin.Get("/property-form", ctrl.form.MountForm)
	admin.Post("/property-form", ctrl.form.SubmitForm)

	// Image inlining for the property form
	protected.Post("/images/inline", controller.InlineImage)

	// CRM
	clients := protected.Group("/clients")
	clients.Get("/", ctrl.client.ListClients)
	clients.Post("/", ctrl.client.CreateClient)
	clients.Put("/:id", ctrl.client.UpdateClient)
	clients.Put("/:id/status", ctrl.client.UpdateClientStatus)
	clients.Put("/:id/contact", ctrl.client.RecordContact)
	clients.Put("/:id/interests", ctrl.client.AddInterest)
	clients.Delete("/:id", ctrl.client.DeleteClient)

	// Dashboard and reports
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", ctrl.stats.GetDashboardStats)
	protected.Get("/reports/sales", ctrl.stats.GetSalesReport)
}

func main() {
	cfg := config.Load()
	logger.Init()
	jwt.Init(cfg.JWT.Secret)

	slots, err := slot.Open(cfg.Slots.Path)
	if err != nil {
		logger.Log.Fatalf("Could not open slot store: %v", err)
	}

	properties := catalog.NewPropertyCollection(slots)
	clients := catalog.NewClientCollection(slots)

	// Seed the collections up front so the first request does not pay
	// for it.
	if _, err := properties.LoadAll(); err != nil {
		logger.Log.Fatalf("Could not initialize property catalog: %v", err)
	}
	if _, err := clients.LoadAll(); err != nil {
		logger.Log.Fatalf("Could not initialize client catalog: %v", err)
	}

	authController, err := controller.NewAuthController(slots, cfg.Admin)
	if err != nil {
		logger.Log.Fatalf("Could not initialize auth controller: %v", err)
	}

	ctrl := controllers{
		auth:     authController,
		property: controller.NewPropertyController(properties),
		form:     controller.NewFormController(properties, handoff.New(slots)),
		client:   controller.NewClientController(clients),
		stats: controller.NewStatsController(
			properties,
			clients,
			report.NewSimulatedSales(time.Now().UnixNano()),
		),
	}

	if _, err := cron.InitCatalogSummaryCron(properties, clients); err != nil {
		logger.Log.Warnf("Could not initialize catalog summary cron: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	setupRoutes(app, ctrl)

	logger.Log.Infof("Server is running on port %s", cfg.Server.Port)
	logger.Log.Fatal(app.Listen(":" + cfg.Server.Port))
}
