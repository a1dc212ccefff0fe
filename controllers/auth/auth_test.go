package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sadang101/MalkarsMarketing/config"
	"github.com/sadang101/MalkarsMarketing/database"
	"github.com/sadang101/MalkarsMarketing/models"
	authRoutes "github.com/sadang101/MalkarsMarketing/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTest(t *testing.T) *fiber.App {
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

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func validRegistration() map[string]interface{} {
	return map[string]interface{}{
		"fullName":        "Asha Deshmukh",
		"email":           "asha@example.com",
		"phone":           "9876543210",
		"age":             24,
		"userType":        "student",
		"program":         "MBA",
		"password":        "secret-password",
		"confirmPassword": "secret-password",
	}
}

func TestRegister_Success(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/users/register", validRegistration())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Status)
	assert.NotEmpty(t, body.Data.Token)
	assert.Equal(t, "asha@example.com", body.Data.User.Email)

	// Password is hashed, never stored raw
	var stored models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "asha@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret-password", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/users/register", validRegistration())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	second := validRegistration()
	second["phone"] = "9876500000"
	resp = postJSON(t, app, "/api/users/register", second)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	app := setupTest(t)

	payload := validRegistration()
	payload["confirmPassword"] = "different-password"
	resp := postJSON(t, app, "/api/users/register", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRegister_StudentRequiresProgram(t *testing.T) {
	app := setupTest(t)

	payload := validRegistration()
	payload["program"] = ""
	resp := postJSON(t, app, "/api/users/register", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRegister_ProfessionalRequiresDesignation(t *testing.T) {
	app := setupTest(t)

	payload := validRegistration()
	payload["userType"] = "professional"
	payload["program"] = ""
	resp := postJSON(t, app, "/api/users/register", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	payload["designation"] = "Sales Manager"
	resp = postJSON(t, app, "/api/users/register", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestRegister_InvalidPhone(t *testing.T) {
	app := setupTest(t)

	payload := validRegistration()
	payload["phone"] = "12345"
	resp := postJSON(t, app, "/api/users/register", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogin_Success(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/users/register", validRegistration())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/users/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Data.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	app := setupTest(t)

	resp := postJSON(t, app, "/api/users/register", validRegistration())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/users/login", map[string]interface{}{
		"email":    "asha@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
