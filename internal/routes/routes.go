package routes

import (
	"time"

	"github.com/Amitkumarsahu1/Task-Management-System/internal/config"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/handlers"
	"github.com/Amitkumarsahu1/Task-Management-System/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Uploaded profile images are served statically.
	app.Static("/uploads", cfg.UploadDir)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/sign-up", authHandler.SignUp)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/profile", middleware.JWTProtected(cfg), authHandler.Profile)
	api.Post("/auth/upload-image", middleware.JWTProtected(cfg), uploadHandler.UploadImage)

	// Tasks
	tasks := api.Group("/tasks", middleware.JWTProtected(cfg))
	admin := middleware.AdminRequired(db, cfg)

	tasks.Get("/", taskHandler.List)
	tasks.Get("/dashboard-data", admin, taskHandler.DashboardData)
	tasks.Get("/user-dashboard-data", taskHandler.UserDashboardData)
	tasks.Post("/create", admin, taskHandler.Create)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id/todo", taskHandler.UpdateChecklist)
	tasks.Put("/:id", admin, taskHandler.Update)
	tasks.Delete("/:id", admin, taskHandler.Delete)

	// Users
	users := api.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/get-users", admin, userHandler.List)
	users.Put("/profile-image", userHandler.UpdateProfileImage)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/delete-user/:id", admin, userHandler.Delete)
}
