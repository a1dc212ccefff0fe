package authValidator

import (
	"regexp"
	"strings"

	"github.com/sadang101/MalkarsMarketing/middleware"
	"github.com/sadang101/MalkarsMarketing/models"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate phone number format
func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(phone)
}

// RegisterRequest is the validated registration payload
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Age             int    `json:"age"`
	UserType        string `json:"userType"`
	Program         string `json:"program"`
	Designation     string `json:"designation"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Full Name
		if len(strings.TrimSpace(reqData.FullName)) < 3 {
			errors["fullName"] = "Full name must be at least 3 characters long!"
		}

		// Validate Email
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		// Validate Phone
		if reqData.Phone == "" || !isValidPhone(reqData.Phone) {
			errors["phone"] = "Invalid 10-digit phone number!"
		}

		// Validate Age
		if reqData.Age < 16 || reqData.Age > 100 {
			errors["age"] = "Age must be between 16 and 100!"
		}

		// Validate user type and its companion field
		switch reqData.UserType {
		case models.UserTypeStudent:
			if strings.TrimSpace(reqData.Program) == "" {
				errors["program"] = "Program is required for students!"
			}
		case models.UserTypeProfessional:
			if strings.TrimSpace(reqData.Designation) == "" {
				errors["designation"] = "Designation is required for professionals!"
			}
		default:
			errors["userType"] = "User type must be student or professional!"
		}

		// Validate Password
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		} else if reqData.Password != reqData.ConfirmPassword {
			errors["confirmPassword"] = "Passwords do not match!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// LoginRequest is the validated login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}

		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
