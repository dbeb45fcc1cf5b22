package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	"lms/models"
	authRoutes "lms/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func signupBody(email, role string) fiber.Map {
	return fiber.Map{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   "secret123",
		"role":       role,
	}
}

func TestSignupAssignsTraineeCode(t *testing.T) {
	app := setupApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody("trainee@lms.test", models.RoleTrainee))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User registered successfully!", env.Message)

	var payload struct {
		User struct {
			TraineeID      *string `json:"trainee_id"`
			ProfilePicture string  `json:"profile_picture"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotNil(t, payload.User.TraineeID)
	assert.Regexp(t, `^NHIS/T/\d{4}$`, *payload.User.TraineeID)
	assert.Equal(t, models.DefaultAvatar, payload.User.ProfilePicture)
}

func TestSignupNonTraineeHasNoCode(t *testing.T) {
	app := setupApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody("inst@lms.test", models.RoleInstructor))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var payload struct {
		User struct {
			TraineeID *string `json:"trainee_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Nil(t, payload.User.TraineeID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody("dup@lms.test", models.RoleTrainee))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody("dup@lms.test", models.RoleTrainee))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email is already registered!", env.Message)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	app := setupApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/auth/signup", signupBody("weird@lms.test", "superuser"))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Validation failed!", env.Message)
}

func TestLoginHappyPath(t *testing.T) {
	app := setupApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		FirstName: "Login", LastName: "User",
		Email: "login@lms.test", Password: string(hash),
		Role: models.RoleAdmin, ProfilePicture: models.DefaultAvatar,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	resp, env := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "login@lms.test",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful!", env.Message)

	var payload struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "login@lms.test", payload.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		FirstName: "Login", LastName: "User",
		Email: "login@lms.test", Password: string(hash),
		Role: models.RoleAdmin, ProfilePicture: models.DefaultAvatar,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	resp, env := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "login@lms.test",
		"password": "wrongpass",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password.", env.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "nobody@lms.test",
		"password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password.", env.Message)
}
