package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/Ananth-NQI/scam-honeypot/internal/config"
	"github.com/Ananth-NQI/scam-honeypot/internal/handlers"
	"github.com/Ananth-NQI/scam-honeypot/internal/middleware"
	"github.com/Ananth-NQI/scam-honeypot/internal/services"
	"github.com/Ananth-NQI/scam-honeypot/internal/storage"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// NewApp creates the fiber app with the shared error handler and middleware
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Scam Honeypot v" + Version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-api-key",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	return app
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, auth config.Auth, store storage.SessionStore, honeypot *services.HoneypotService) {
	health := handlers.NewHealthHandler(Version, store)
	app.Get("/", health.Root)
	app.Get("/health", health.Check)

	h := handlers.NewHoneypotHandler(honeypot, store)

	requireKey := middleware.RequireAPIKey(auth)
	app.Post("/honeypot", requireKey, h.HandleMessage)
	app.Get("/honeypot/sessions/:id", requireKey, h.GetSession)
}
