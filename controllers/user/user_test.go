package userController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstAdminUndeletable(t *testing.T) {
	app := setupApp(t)

	firstAdmin := createUser(t, models.RoleAdmin, "first@lms.test")
	secondAdmin := createUser(t, models.RoleAdmin, "second@lms.test")

	path := fmt.Sprintf("/api/users/%d", firstAdmin.ID)
	resp, env := doJSON(t, app, http.MethodDelete, path, bearer(t, secondAdmin), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Cannot delete the first admin", env.Message)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestDeleteOtherUser(t *testing.T) {
	app := setupApp(t)

	admin := createUser(t, models.RoleAdmin, "admin@lms.test")
	trainee := createUser(t, models.RoleTrainee, "trainee@lms.test")

	path := fmt.Sprintf("/api/users/%d", trainee.ID)
	resp, env := doJSON(t, app, http.MethodDelete, path, bearer(t, admin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User deleted successfully", env.Message)

	var count int64
	database.Database.Db.Model(&models.User{}).Where("id = ?", trainee.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAddUserDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	admin := createUser(t, models.RoleAdmin, "admin@lms.test")
	existing := createUser(t, models.RoleTrainee, "trainee@lms.test")

	resp, env := doJSON(t, app, http.MethodPost, "/api/users/", bearer(t, admin), fiber.Map{
		"first_name": "Dup",
		"last_name":  "User",
		"email":      existing.Email,
		"password":   "secret123",
		"role":       models.RoleTrainee,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already registered.", env.Message)
}

func TestAddUserAssignsTraineeCode(t *testing.T) {
	app := setupApp(t)

	admin := createUser(t, models.RoleAdmin, "admin@lms.test")

	resp, env := doJSON(t, app, http.MethodPost, "/api/users/", bearer(t, admin), fiber.Map{
		"first_name": "New",
		"last_name":  "Trainee",
		"email":      "new.trainee@lms.test",
		"password":   "secret123",
		"role":       models.RoleTrainee,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

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

func TestAddUserRequiresAdminRole(t *testing.T) {
	app := setupApp(t)

	createUser(t, models.RoleAdmin, "admin@lms.test")
	instructor := createUser(t, models.RoleInstructor, "inst@lms.test")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/users/", bearer(t, instructor), fiber.Map{
		"first_name": "New",
		"last_name":  "User",
		"email":      "someone@lms.test",
		"password":   "secret123",
		"role":       models.RoleTrainee,
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUploadProfilePictureReplacesAvatar(t *testing.T) {
	app := setupApp(t)

	trainee := createUser(t, models.RoleTrainee, "trainee@lms.test")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("profile_picture", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	path := fmt.Sprintf("/api/users/%d/upload-profile", trainee.ID)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", bearer(t, trainee))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.User
	require.NoError(t, database.Database.Db.First(&updated, trainee.ID).Error)
	assert.True(t, strings.HasPrefix(updated.ProfilePicture, "/uploads/profilePic_uploads/"))
	assert.NotEqual(t, models.DefaultAvatar, updated.ProfilePicture)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	app := setupApp(t)

	admin := createUser(t, models.RoleAdmin, "admin@lms.test")

	resp, env := doJSON(t, app, http.MethodPost, "/api/users/reset-password", bearer(t, admin), fiber.Map{
		"email":        "missing@lms.test",
		"new_password": "freshpass1",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found.", env.Message)
}
