package paymentRoutes

import (
	paymentController "github.com/sadang101/MalkarsMarketing/controllers/payment"
	"github.com/sadang101/MalkarsMarketing/middleware"
	paymentValidator "github.com/sadang101/MalkarsMarketing/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the order lifecycle routes. History must be
// registered before the :id route so it is not swallowed by the parameter.
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")

	paymentGroup.Post("/orders", middleware.JWTMiddleware, paymentValidator.CreateOrder(), paymentController.CreateOrder)
	paymentGroup.Post("/verify", middleware.JWTMiddleware, paymentValidator.VerifyPayment(), paymentController.VerifyPayment)
	paymentGroup.Get("/history", middleware.JWTMiddleware, paymentController.GetHistory)
	paymentGroup.Get("/:id", middleware.JWTMiddleware, paymentController.GetOrder)
	paymentGroup.Post("/:id/refund", middleware.JWTMiddleware, middleware.AdminOnly, paymentValidator.RefundOrder(), paymentController.RefundOrder)
}
