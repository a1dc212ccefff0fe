package authRoutes

import (
	authController "github.com/sadang101/MalkarsMarketing/controllers/auth"
	"github.com/sadang101/MalkarsMarketing/middleware"
	authValidator "github.com/sadang101/MalkarsMarketing/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and profile routes
func SetupAuthRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Post("/register", authValidator.Register(), authController.Register)
	userGroup.Post("/login", authValidator.Login(), authController.Login)
	userGroup.Get("/profile", middleware.JWTMiddleware, authController.GetProfile)
}
