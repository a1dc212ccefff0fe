package courseController

import (
	"github.com/sadang101/MalkarsMarketing/database"
	"github.com/sadang101/MalkarsMarketing/middleware"
	"github.com/sadang101/MalkarsMarketing/models"
	courseValidator "github.com/sadang101/MalkarsMarketing/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Course titles are unique
	if err := db.Where("title = ? AND is_deleted = ?", reqData.Title, false).First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
	}

	course := models.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		Price:            *reqData.Price,
		Duration:         reqData.Duration,
		Credits:          reqData.Credits,
		ImageURL:         reqData.ImageURL,
		Category:         reqData.Category,
		Prerequisites:    reqData.Prerequisites,
		LearningOutcomes: reqData.LearningOutcomes,
		TargetAudience:   reqData.TargetAudience,
		IsActive:         true,
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse applies a partial update to an existing course. Only
// fields present in the request body are touched, so an explicit zero (for
// example price 0) is applied while absent fields keep their values.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil && *reqData.Title != course.Title {
		// Course titles are unique
		if err := database.Database.Db.Where("title = ? AND id != ? AND is_deleted = ?", *reqData.Title, course.ID, false).First(&models.Course{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A course with this title already exists!", nil)
		}
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.Credits != nil {
		course.Credits = *reqData.Credits
	}
	if reqData.ImageURL != nil {
		course.ImageURL = *reqData.ImageURL
	}
	if reqData.Instructor != nil {
		course.Instructor = *reqData.Instructor
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Prerequisites != nil {
		course.Prerequisites = *reqData.Prerequisites
	}
	if reqData.LearningOutcomes != nil {
		course.LearningOutcomes = *reqData.LearningOutcomes
	}
	if reqData.TargetAudience != nil {
		course.TargetAudience = *reqData.TargetAudience
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
