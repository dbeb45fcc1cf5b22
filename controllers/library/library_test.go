package libraryController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	userRoutes "lms/routers/userRoutes"

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
	userRoutes.SetupUserRoutes(app)
	return app
}

func createAdmin(t *testing.T) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{
		FirstName: "Admin", LastName: "User",
		Email: "admin@lms.test", Password: string(hash),
		Role: models.RoleAdmin, ProfilePicture: models.DefaultAvatar,
	}
	require.NoError(t, database.Database.Db.Create(&admin).Error)
	return admin
}

func bearer(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.Email)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func doMultipart(t *testing.T, app *fiber.App, method, path, auth string, fields map[string]string, fileField, fileName string) (*http.Response, apiEnvelope) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestAddContentWithImage(t *testing.T) {
	app := setupApp(t)
	admin := createAdmin(t)

	resp, env := doMultipart(t, app, http.MethodPost, "/api/users/admin_contents", bearer(t, admin), map[string]string{
		"title":       "Scope Handling",
		"description": "Intro to scope handling",
		"video_url":   "/uploads/content_uploads/scope.mp4",
	}, "image", "cover.png")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Content added successfully!", env.Message)

	var created courseModels.AdminContent
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Scope Handling", created.Title)
	require.True(t, strings.HasPrefix(created.Image, "/uploads/content_uploads/"))
	assert.Equal(t, ".png", filepath.Ext(created.Image))

	// The file really landed under the upload dir
	rel := strings.TrimPrefix(created.Image, "/uploads/")
	_, err := os.Stat(filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(rel)))
	assert.NoError(t, err)
}

func TestAddContentRequiresTitle(t *testing.T) {
	app := setupApp(t)
	admin := createAdmin(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/users/admin_contents", bearer(t, admin), fiber.Map{
		"description": "No title here",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Title is required", env.Message)
}

func TestGetAllContentsNewestFirst(t *testing.T) {
	app := setupApp(t)
	admin := createAdmin(t)

	db := database.Database.Db
	for _, title := range []string{"First", "Second", "Third"} {
		require.NoError(t, db.Create(&courseModels.AdminContent{Title: title}).Error)
	}

	resp, env := doJSON(t, app, http.MethodGet, "/api/users/admin_contents", bearer(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var contents []courseModels.AdminContent
	require.NoError(t, json.Unmarshal(env.Data, &contents))
	require.Len(t, contents, 3)
	assert.Equal(t, "Third", contents[0].Title)
	assert.Equal(t, "First", contents[2].Title)
}

func TestUpdateContentKeepsVideoWhenOmitted(t *testing.T) {
	app := setupApp(t)
	admin := createAdmin(t)

	db := database.Database.Db
	item := courseModels.AdminContent{Title: "Scope Handling", Description: "v1", VideoURL: "/uploads/content_uploads/scope.mp4"}
	require.NoError(t, db.Create(&item).Error)

	path := fmt.Sprintf("/api/users/admin_contents/%d", item.ID)
	resp, _ := doJSON(t, app, http.MethodPut, path, bearer(t, admin), fiber.Map{
		"title":       "Scope Handling v2",
		"description": "v2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated courseModels.AdminContent
	require.NoError(t, db.First(&updated, item.ID).Error)
	assert.Equal(t, "Scope Handling v2", updated.Title)
	assert.Equal(t, "/uploads/content_uploads/scope.mp4", updated.VideoURL)
}

func TestUpdateContentUnknownID(t *testing.T) {
	app := setupApp(t)
	admin := createAdmin(t)

	resp, env := doJSON(t, app, http.MethodPut, "/api/users/admin_contents/999", bearer(t, admin), fiber.Map{
		"title":       "Ghost",
		"description": "Missing",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Content not found", env.Message)
}

func TestDeleteContentReleasesImage(t *testing.T) {
	app := setupApp(t)
	admin := createAdmin(t)

	dir := filepath.Join(config.AppConfig.UploadDir, "content_uploads")
	require.NoError(t, os.MkdirAll(dir, 0755))
	imagePath := filepath.Join(dir, "cover.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png"), 0644))

	db := database.Database.Db
	item := courseModels.AdminContent{Title: "Scope Handling", Image: "/uploads/content_uploads/cover.png"}
	require.NoError(t, db.Create(&item).Error)

	path := fmt.Sprintf("/api/users/admin_contents/%d", item.ID)
	resp, _ := doJSON(t, app, http.MethodDelete, path, bearer(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&courseModels.AdminContent{}).Count(&count)
	assert.EqualValues(t, 0, count)

	_, err := os.Stat(imagePath)
	assert.True(t, os.IsNotExist(err))
}
