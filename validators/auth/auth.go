package authValidator

import (
	"regexp"
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Signup validates a signup request
func Signup() fiber.Handler {
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
		} else if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
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

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validates a login request
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(reqData.Email)

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
