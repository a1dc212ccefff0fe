package paymentValidator

import (
	"strings"

	"github.com/sadang101/MalkarsMarketing/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateOrderRequest is the validated order creation payload
type CreateOrderRequest struct {
	CourseID uint `json:"courseId"`
}

// CreateOrder validator middleware
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOrder", reqData)
		return c.Next()
	}
}

// VerifyPaymentRequest is the validated payment verification payload
type VerifyPaymentRequest struct {
	OrderID   uint   `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// VerifyPayment validator middleware
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OrderID == 0 {
			errors["orderId"] = "Order id is required!"
		}
		if strings.TrimSpace(reqData.PaymentID) == "" {
			errors["paymentId"] = "Payment id is required!"
		}
		if strings.TrimSpace(reqData.Signature) == "" {
			errors["signature"] = "Signature is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerify", reqData)
		return c.Next()
	}
}

// RefundOrderRequest is the validated refund payload
type RefundOrderRequest struct {
	Reason string `json:"reason"`
}

// RefundOrder validator middleware
func RefundOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RefundOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedRefund", reqData)
		return c.Next()
	}
}
