package courseController

import (
	"strings"

	"github.com/sadang101/MalkarsMarketing/database"
	"github.com/sadang101/MalkarsMarketing/middleware"
	"github.com/sadang101/MalkarsMarketing/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists active courses, optionally filtered by a keyword
// matched case-insensitively against title and description
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Course{}).
		Where("is_active = ? AND is_deleted = ?", true, false)

	if keyword := strings.TrimSpace(c.Query("keyword")); keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var courses []models.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails fetches one active course with its modules. Anonymous
// and regular callers only see published modules; a valid admin token also
// gets drafts and the quiz questions.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	query := database.Database.Db
	if middleware.TokenIsAdmin(c) {
		query = query.
			Preload("Modules", func(db *gorm.DB) *gorm.DB {
				return db.Where("is_deleted = ?", false).Order("order_index asc")
			}).
			Preload("Modules.Quiz")
	} else {
		query = query.Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_published = ? AND is_deleted = ?", true, false).Order("order_index asc")
		})
	}

	var course models.Course
	if err := query.
		Where("id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
