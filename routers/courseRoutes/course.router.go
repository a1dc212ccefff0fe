package courseRoutes

import (
	courseController "github.com/sadang101/MalkarsMarketing/controllers/course"
	"github.com/sadang101/MalkarsMarketing/middleware"
	courseValidator "github.com/sadang101/MalkarsMarketing/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and admin course management
// routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Public catalog
	courseGroup.Get("/", courseController.GetAllCourses)
	courseGroup.Get("/:id", courseController.GetCourseDetails)

	// Course CRUD (admin)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CreateCourse(), courseController.AdminCreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.UpdateCourse(), courseController.AdminUpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, courseController.AdminDeleteCourse)

	// Module management (admin)
	courseGroup.Post("/:id/modules", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.CreateModule(), courseController.AdminAddModule)
	courseGroup.Put("/:id/modules/:moduleId", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.UpdateModule(), courseController.AdminUpdateModule)
	courseGroup.Delete("/:id/modules/:moduleId", middleware.JWTMiddleware, middleware.AdminOnly, courseController.AdminDeleteModule)
	courseGroup.Post("/:id/modules/:moduleId/quiz", middleware.JWTMiddleware, middleware.AdminOnly, courseValidator.AddQuizQuestion(), courseController.AdminAddQuizQuestion)
}
