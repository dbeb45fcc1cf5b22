package enrollmentValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollTrainees validates a batch enrollment request
func EnrollTrainees() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ContentID  uint   `json:"content_id"`
			TraineeIDs []uint `json:"trainee_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ContentID == 0 || len(reqData.TraineeIDs) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content and trainee(s) are required", nil)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// InstructorQuery validates the instructor_id query parameter
func InstructorQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Query("instructor_id"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor ID required", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Instructor ID!", nil)
		}

		c.Locals("instructorID", id)
		return c.Next()
	}
}

// TraineeID validates the :traineeId path parameter
func TraineeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("traineeId"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Trainee ID!", nil)
		}

		c.Locals("traineeID", id)
		return c.Next()
	}
}
