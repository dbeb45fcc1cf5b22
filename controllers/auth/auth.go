package authController

import (
	"log"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new user and mails them their credentials.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
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

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
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
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	// Mail credentials; delivery failure never rolls back the account
	emailErr := utils.SendAccountCreatedEmail(newUser, reqData.Password)
	if emailErr != nil {
		log.Printf("Account e-mail failed for %s: %v", newUser.Email, emailErr)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", fiber.Map{
		"user":       newUser,
		"email_sent": emailErr == nil,
	})
}

// Login authenticates a user and issues a JWT.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password.", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}
