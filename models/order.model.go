package models

import "gorm.io/gorm"

// Order lifecycle states. Refunded is reachable only from paid.
const (
	OrderStatusCreated   = "created"
	OrderStatusAttempted = "attempted"
	OrderStatusPaid      = "paid"
	OrderStatusFailed    = "failed"
	OrderStatusRefunded  = "refunded"
)

// Order records one payment attempt for one course by one user.
// Amount and CourseID are fixed at creation; only Status and the gateway
// fields change afterwards.
type Order struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	User          User   `json:"-"`
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Course        Course `json:"-"`
	Amount        uint   `json:"amount" gorm:"not null"` // paise (minor units)
	Currency      string `json:"currency" gorm:"default:'INR'"`
	Status        string `json:"status" gorm:"index;default:'created'"`
	PaymentMethod string `json:"payment_method" gorm:"default:'online'"`
	Receipt       string `json:"receipt"`

	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"-"`

	// Structured gateway error, populated on failure or refund
	ErrorCode        string `json:"error_code,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorSource      string `json:"error_source,omitempty"`
	ErrorStep        string `json:"error_step,omitempty"`
	ErrorReason      string `json:"error_reason,omitempty"`
}
