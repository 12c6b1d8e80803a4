package api

import (
	"billed/docs"
	"billed/internal/api/handlers"
	"billed/pkg/auth"
	"billed/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	billHandler *handlers.BillHandler,
	jwtManager *auth.JWTManager,
	uploadDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
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

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger document through its init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Stored receipts.
	app.Static("/uploads", uploadDir)

	// Public routes.
	app.Post("/auth/login", authHandler.Login)
	app.Post("/users", authHandler.CreateUser)

	// Protected routes.
	bills := app.Group("/bills", middleware.AuthMiddleware(jwtManager, appLogger))
	bills.Post("", billHandler.CreateBill)
	bills.Get("", billHandler.ListBills)
	bills.Put("/:id", billHandler.UpdateBill)

	return app
}
