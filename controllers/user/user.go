package userController

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetAllUsers lists every account for the admin panel.
func GetAllUsers(c *fiber.Ctx) error {
	type userRow struct {
		ID        uint      `json:"id"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Title     string    `json:"title"`
		TraineeID *string   `json:"trainee_id"`
		CreatedAt time.Time `json:"created_at"`
	}

	var users []userRow
	if err := database.Database.Db.Model(&models.User{}).
		Select("id, first_name, last_name, email, role, title, trainee_id, created_at").
		Order("id ASC").
		Scan(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// AddUser creates an account from the admin panel and mails the credentials.
func AddUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAddUser").(*struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		Title     string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	var traineeID *string
	if reqData.Role == models.RoleTrainee {
		code := utils.GenerateTraineeID()
		traineeID = &code
	}

	newUser := models.User{
		FirstName:      reqData.FirstName,
		LastName:       reqData.LastName,
		Email:          reqData.Email,
		Password:       string(hashedPassword),
		Role:           reqData.Role,
		Title:          reqData.Title,
		TraineeID:      traineeID,
		ProfilePicture: models.DefaultAvatar,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	emailErr := utils.SendAccountCreatedEmail(newUser, reqData.Password)
	if emailErr != nil {
		log.Printf("Account e-mail failed for %s: %v", newUser.Email, emailErr)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", fiber.Map{
		"user":       newUser,
		"email_sent": emailErr == nil,
	})
}

// DeleteUser removes an account. The first admin account is protected so the
// platform can never lock itself out.
func DeleteUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	db := database.Database.Db

	var firstAdmin models.User
	if err := db.Where("role = ?", models.RoleAdmin).Order("id ASC").First(&firstAdmin).Error; err == nil {
		if firstAdmin.ID == uint(targetID) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Cannot delete the first admin", nil)
		}
	}

	if err := db.Delete(&models.User{}, targetID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully", nil)
}

// ResetPassword sets a new password for the account with the given e-mail and
// notifies the user. The notification result is surfaced but never fatal.
func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*struct {
		Email       string `json:"email"`
		NewPassword string `json:"new_password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	emailErr := utils.SendPasswordResetEmail(user, reqData.NewPassword)
	if emailErr != nil {
		log.Printf("Password reset e-mail failed for %s: %v", user.Email, emailErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully!", fiber.Map{
		"email_sent": emailErr == nil,
	})
}

// UploadProfilePicture replaces a user's profile picture. The previous asset
// is released only after the row points at the new one.
func UploadProfilePicture(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", targetID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	file, err := c.FormFile("profile_picture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Profile picture file is required!", nil)
	}

	newPath, err := utils.SaveUploadedFile(file, "profilePic_uploads")
	if err != nil {
		log.Printf("Error saving profile picture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error uploading profile picture", nil)
	}

	oldPath := user.ProfilePicture
	if err := db.Model(&user).Update("profile_picture", newPath).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error uploading profile picture", nil)
	}

	utils.DeleteUploadedFile(oldPath)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", fiber.Map{
		"user": user,
	})
}
