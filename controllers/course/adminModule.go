package courseController

import (
	"github.com/sadang101/MalkarsMarketing/database"
	"github.com/sadang101/MalkarsMarketing/middleware"
	"github.com/sadang101/MalkarsMarketing/models"
	courseValidator "github.com/sadang101/MalkarsMarketing/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminAddModule adds a module to a course. The order index is assigned as
// the current live module count plus one; deleting a module later leaves a
// gap in the ordering rather than renumbering.
func AdminAddModule(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var moduleCount int64
	database.Database.Db.Model(&models.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&moduleCount)

	module := models.Module{
		CourseID:    uint(courseID),
		Title:       reqData.Title,
		Description: reqData.Description,
		Content:     reqData.Content,
		VideoURL:    reqData.VideoURL,
		Duration:    reqData.Duration,
		OrderIndex:  int(moduleCount) + 1,
	}
	if reqData.PassingScore != nil {
		module.PassingScore = *reqData.PassingScore
	} else {
		module.PassingScore = 70
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule applies a partial update to a module
func AdminUpdateModule(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	moduleID, err := c.ParamsInt("moduleId")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module models.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*courseValidator.UpdateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		module.Title = *reqData.Title
	}
	if reqData.Description != nil {
		module.Description = *reqData.Description
	}
	if reqData.Content != nil {
		module.Content = *reqData.Content
	}
	if reqData.VideoURL != nil {
		module.VideoURL = *reqData.VideoURL
	}
	if reqData.Duration != nil {
		module.Duration = *reqData.Duration
	}
	if reqData.PassingScore != nil {
		module.PassingScore = *reqData.PassingScore
	}
	if reqData.IsPublished != nil {
		module.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule soft deletes a module. Remaining modules keep their
// order indexes, leaving a gap.
func AdminDeleteModule(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	moduleID, err := c.ParamsInt("moduleId")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module models.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsDeleted = true
	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminAddQuizQuestion adds a quiz question to a module
func AdminAddQuizQuestion(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}
	moduleID, err := c.ParamsInt("moduleId")
	if err != nil || moduleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
	}

	var module models.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizQuestion").(*courseValidator.QuizQuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question := models.QuizQuestion{
		ModuleID:      module.ID,
		Question:      reqData.Question,
		Options:       reqData.Options,
		CorrectAnswer: *reqData.CorrectAnswer,
		Marks:         reqData.Marks,
	}
	if question.Marks < 1 {
		question.Marks = 1
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz question added successfully!", question)
}
