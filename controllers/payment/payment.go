package paymentController

import (
	"log"

	"github.com/sadang101/MalkarsMarketing/config"
	"github.com/sadang101/MalkarsMarketing/database"
	"github.com/sadang101/MalkarsMarketing/middleware"
	"github.com/sadang101/MalkarsMarketing/models"
	"github.com/sadang101/MalkarsMarketing/utils"
	paymentValidator "github.com/sadang101/MalkarsMarketing/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gateway is the Razorpay client, set at startup. When nil (or configured
// without a key id) orders are created locally only, which is how the test
// environment runs.
var Gateway *utils.RazorpayClient

// CreateOrder creates a payment order for a course. The amount is fixed at
// creation time as the course price converted to paise and never changes
// afterwards.
func CreateOrder(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedOrder").(*paymentValidator.CreateOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.CourseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	amount := course.Price * 100 // convert to paise
	receipt := "rcpt_" + uuid.NewString()

	razorpayOrderID := "order_" + uuid.NewString()
	if Gateway != nil && Gateway.KeyID != "" {
		gatewayOrderID, err := Gateway.CreateOrder(amount, "INR", receipt)
		if err != nil {
			log.Printf("Gateway order creation failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment gateway unavailable!", nil)
		}
		razorpayOrderID = gatewayOrderID
	}

	order := models.Order{
		UserID:          user.ID,
		CourseID:        course.ID,
		Amount:          amount,
		Currency:        "INR",
		Status:          models.OrderStatusCreated,
		Receipt:         receipt,
		RazorpayOrderID: razorpayOrderID,
	}

	if err := database.Database.Db.Create(&order).Error; err != nil {
		log.Printf("Error saving order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully.", fiber.Map{
		"id":              order.ID,
		"amount":          order.Amount,
		"currency":        order.Currency,
		"razorpayOrderId": order.RazorpayOrderID,
		"key":             config.AppConfig.RazorpayKeyID,
	})
}

// VerifyPayment validates the gateway signature for an order. A valid
// signature marks the order paid and enrolls the owning user in the course;
// both writes happen in one transaction so the order can never read paid
// without the enrollment existing. An invalid signature leaves the order
// state untouched.
func VerifyPayment(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(*models.User); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVerify").(*paymentValidator.VerifyPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var order models.Order
	if err := database.Database.Db.Where("id = ?", reqData.OrderID).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	// Refunded and failed are terminal: a replayed gateway signature must
	// not move the order back to paid or re-grant the enrollment
	if order.Status == models.OrderStatusRefunded || order.Status == models.OrderStatusFailed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order can no longer be paid!", nil)
	}

	if !utils.VerifyRazorpaySignature(order.RazorpayOrderID, reqData.PaymentID, reqData.Signature, config.AppConfig.RazorpayKeySecret) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment signature!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderStatusPaid
		order.RazorpayPaymentID = reqData.PaymentID
		order.RazorpaySignature = reqData.Signature
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		// Enrollment is a set: re-verifying the same order finds the
		// existing row instead of duplicating it
		enrollment := models.Enrollment{UserID: order.UserID, CourseID: order.CourseID}
		return tx.Where("user_id = ? AND course_id = ?", order.UserID, order.CourseID).
			FirstOrCreate(&enrollment).Error
	})
	if err != nil {
		log.Printf("Error completing payment for order %d: %v", order.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete payment!", nil)
	}

	// Confirmation mail is best effort
	if config.AppConfig.EmailSender != "" && config.AppConfig.EmailSender != "defaultSecret" {
		var owner models.User
		var course models.Course
		if database.Database.Db.First(&owner, order.UserID).Error == nil &&
			database.Database.Db.First(&course, order.CourseID).Error == nil {
			go func() {
				if err := utils.SendEnrollmentConfirmation(owner.Email, owner.FullName, course.Title, order.Amount); err != nil {
					log.Printf("Error sending enrollment confirmation: %v", err)
				}
			}()
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified and course enrolled successfully.", fiber.Map{
		"orderId": order.ID,
		"status":  order.Status,
	})
}

// GetHistory lists the caller's orders, newest first, with a title/price
// projection of each course
func GetHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.Order
	if err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	history := make([]fiber.Map, 0, len(orders))
	for _, order := range orders {
		history = append(history, fiber.Map{
			"id":         order.ID,
			"amount":     order.Amount,
			"currency":   order.Currency,
			"status":     order.Status,
			"receipt":    order.Receipt,
			"created_at": order.CreatedAt,
			"course": fiber.Map{
				"id":    order.CourseID,
				"title": order.Course.Title,
				"price": order.Course.Price,
			},
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order history fetched successfully.", fiber.Map{
		"orders": history,
	})
}

// GetOrder fetches one order with course and user projections. Only the
// order's owner or an admin may read it.
func GetOrder(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	var order models.Order
	if err := database.Database.Db.Preload("Course").Preload("User").First(&order, orderID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.UserID != user.ID && !user.IsAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to view this order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched successfully.", fiber.Map{
		"id":                  order.ID,
		"amount":              order.Amount,
		"currency":            order.Currency,
		"status":              order.Status,
		"receipt":             order.Receipt,
		"payment_method":      order.PaymentMethod,
		"razorpay_order_id":   order.RazorpayOrderID,
		"razorpay_payment_id": order.RazorpayPaymentID,
		"created_at":          order.CreatedAt,
		"course": fiber.Map{
			"id":    order.CourseID,
			"title": order.Course.Title,
			"price": order.Course.Price,
		},
		"user": fiber.Map{
			"id":       order.UserID,
			"fullName": order.User.FullName,
			"email":    order.User.Email,
		},
	})
}

// RefundOrder transitions a paid order to refunded and withdraws the
// enrollment it granted. Admin only; no other state may be refunded.
func RefundOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	var order models.Order
	if err := database.Database.Db.First(&order, orderID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.Status != models.OrderStatusPaid {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only paid orders can be refunded!", nil)
	}

	reqData, _ := c.Locals("validatedRefund").(*paymentValidator.RefundOrderRequest)

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderStatusRefunded
		order.ErrorStep = "refund"
		order.ErrorSource = "admin"
		if reqData != nil {
			order.ErrorReason = reqData.Reason
		}
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND course_id = ?", order.UserID, order.CourseID).
			Delete(&models.Enrollment{}).Error
	})
	if err != nil {
		log.Printf("Error refunding order %d: %v", order.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refund order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order refunded successfully.", fiber.Map{
		"orderId": order.ID,
		"status":  order.Status,
	})
}
