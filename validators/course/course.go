package courseValidator

import (
	"strings"

	"github.com/sadang101/MalkarsMarketing/middleware"
	"github.com/sadang101/MalkarsMarketing/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the validated course creation payload
type CreateCourseRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Price            *uint    `json:"price"`
	Duration         int      `json:"duration"`
	Credits          int      `json:"credits"`
	ImageURL         string   `json:"image_url"`
	Instructor       string   `json:"instructor"`
	Category         string   `json:"category"`
	Prerequisites    []string `json:"prerequisites"`
	LearningOutcomes []string `json:"learning_outcomes"`
	TargetAudience   []string `json:"target_audience"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}
		if reqData.Price == nil {
			errors["price"] = "Price is required!"
		}
		if reqData.Duration < 1 {
			errors["duration"] = "Duration must be at least 1 week!"
		}
		if reqData.Credits < 1 {
			errors["credits"] = "Credits must be at least 1!"
		}
		if reqData.Category == "" || !models.ValidCategory(reqData.Category) {
			errors["category"] = "Category must be one of: sales, marketing, business, other!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseRequest carries a partial course update. Pointer fields
// distinguish "absent from the request" from an explicit zero value, so a
// client can set price to 0 without clobbering fields it never sent.
type UpdateCourseRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Price            *uint     `json:"price"`
	Duration         *int      `json:"duration"`
	Credits          *int      `json:"credits"`
	ImageURL         *string   `json:"image_url"`
	Instructor       *string   `json:"instructor"`
	Category         *string   `json:"category"`
	Prerequisites    *[]string `json:"prerequisites"`
	LearningOutcomes *[]string `json:"learning_outcomes"`
	TargetAudience   *[]string `json:"target_audience"`
	IsActive         *bool     `json:"is_active"`
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Description != nil && len(strings.TrimSpace(*reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}
		if reqData.Category != nil && !models.ValidCategory(*reqData.Category) {
			errors["category"] = "Category must be one of: sales, marketing, business, other!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateModuleRequest is the validated module creation payload
type CreateModuleRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Content      string `json:"content"`
	VideoURL     string `json:"video_url"`
	Duration     int    `json:"duration"`
	PassingScore *int   `json:"passing_score"`
}

// CreateModule validator middleware
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Module title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Module description is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Module content is required!"
		}
		if reqData.Duration < 1 {
			errors["duration"] = "Module duration is required!"
		}
		if reqData.PassingScore != nil && (*reqData.PassingScore < 0 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModuleRequest carries a partial module update with pointer presence
type UpdateModuleRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Content      *string `json:"content"`
	VideoURL     *string `json:"video_url"`
	Duration     *int    `json:"duration"`
	PassingScore *int    `json:"passing_score"`
	IsPublished  *bool   `json:"is_published"`
}

// UpdateModule validator middleware
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Module title cannot be empty!"
		}
		if reqData.Duration != nil && *reqData.Duration < 1 {
			errors["duration"] = "Module duration must be positive!"
		}
		if reqData.PassingScore != nil && (*reqData.PassingScore < 0 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// QuizQuestionRequest is the validated quiz question payload
type QuizQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correct_answer"`
	Marks         int      `json:"marks"`
}

// AddQuizQuestion validator middleware
func AddQuizQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizQuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Question) == "" {
			errors["question"] = "Question is required!"
		}
		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}
		if reqData.CorrectAnswer == nil {
			errors["correct_answer"] = "Correct answer index is required!"
		} else if *reqData.CorrectAnswer < 0 || *reqData.CorrectAnswer >= len(reqData.Options) {
			errors["correct_answer"] = "Correct answer index is out of range!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizQuestion", reqData)
		return c.Next()
	}
}
