package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sadang101/MalkarsMarketing/config"
	"github.com/sadang101/MalkarsMarketing/database"
	"github.com/sadang101/MalkarsMarketing/middleware"
	"github.com/sadang101/MalkarsMarketing/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTest(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"email": user.Email})
	})
	app.Get("/admin", middleware.JWTMiddleware, middleware.AdminOnly, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func responseMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestJWTMiddleware_MissingToken(t *testing.T) {
	setupTest(t)
	app := newGuardedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing Authorization header", responseMessage(t, resp))
}

func TestJWTMiddleware_MalformedToken(t *testing.T) {
	setupTest(t)
	app := newGuardedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", responseMessage(t, resp))
}

func TestJWTMiddleware_NonBearerHeader(t *testing.T) {
	setupTest(t)
	app := newGuardedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid Authorization header format", responseMessage(t, resp))
}

func TestJWTMiddleware_DeletedUser(t *testing.T) {
	setupTest(t)
	app := newGuardedApp()

	user := models.User{
		FullName: "Ghost User",
		Email:    "ghost@example.com",
		Phone:    "9000000001",
		UserType: models.UserTypeStudent,
		Program:  "MBA",
		Password: "irrelevant",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, false)
	require.NoError(t, err)

	// Delete the user after issuing the token
	require.NoError(t, database.Database.Db.Model(&user).Update("is_deleted", true).Error)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found", responseMessage(t, resp))
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	setupTest(t)
	app := newGuardedApp()

	user := models.User{
		FullName: "Real User",
		Email:    "real@example.com",
		Phone:    "9000000002",
		UserType: models.UserTypeProfessional,
		Password: "irrelevant",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	setupTest(t)
	app := newGuardedApp()

	user := models.User{
		FullName: "Plain User",
		Email:    "plain@example.com",
		Phone:    "9000000003",
		UserType: models.UserTypeStudent,
		Program:  "BBA",
		Password: "irrelevant",
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied! Admin only.", responseMessage(t, resp))
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	setupTest(t)
	app := newGuardedApp()

	user := models.User{
		FullName: "Admin User",
		Email:    "admin@example.com",
		Phone:    "9000000004",
		UserType: models.UserTypeProfessional,
		Password: "irrelevant",
		IsAdmin:  true,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
