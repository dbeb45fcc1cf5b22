package userValidator

import (
	"regexp"
	"strconv"
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserID validates the :id path parameter and stashes it as targetUserID.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// ProfileUserID validates the :userId path parameter for profile uploads.
func ProfileUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("userId"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// AddUser validates an admin account-creation request
func AddUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Email     string `json:"email"`
			Password  string `json:"password"`
			Role      string `json:"role"`
			Title     string `json:"title"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.FirstName = strings.TrimSpace(reqData.FirstName)
		reqData.LastName = strings.TrimSpace(reqData.LastName)
		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.Role = strings.TrimSpace(reqData.Role)
		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.FirstName == "" {
			errors["first_name"] = "First name is required!"
		}
		if reqData.LastName == "" {
			errors["last_name"] = "Last name is required!"
		}

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email format!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		validRoles := map[string]bool{
			models.RoleAdmin:      true,
			models.RoleInstructor: true,
			models.RoleTrainee:    true,
		}
		if reqData.Role == "" {
			errors["role"] = "Role is required!"
		} else if !validRoles[reqData.Role] {
			errors["role"] = "Role must be admin, instructor, or trainee!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddUser", reqData)
		return c.Next()
	}
}

// ResetPassword validates a password-reset request
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email       string `json:"email"`
			NewPassword string `json:"new_password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(reqData.Email)

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.NewPassword == "" {
			errors["new_password"] = "New password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
