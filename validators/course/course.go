package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func parsePositiveParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// InstructorQuery validates the instructor_id query parameter used by the
// module listing endpoints.
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

// CreateModule validates a module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			InstructorID uint   `json:"instructor_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.InstructorID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor ID required", nil)
		}
		if reqData.Title == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module title required", nil)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// DeleteModule validates a module deletion request: module id from the path,
// acting instructor from the body.
func DeleteModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parsePositiveParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			InstructorID uint `json:"instructor_id"`
		})
		if err := c.BodyParser(reqData); err != nil || reqData.InstructorID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Instructor ID required", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("instructorID", int(reqData.InstructorID))
		return c.Next()
	}
}

// ModuleID validates the :moduleId path parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parsePositiveParam(c, "moduleId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// AttachContent validates the module/library ids of an attach request
func AttachContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID, ok := parsePositiveParam(c, "moduleId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID and Content ID are required", nil)
		}

		contentID, ok := parsePositiveParam(c, "contentId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID and Content ID are required", nil)
		}

		c.Locals("moduleID", moduleID)
		c.Locals("adminContentID", contentID)
		return c.Next()
	}
}

// ContentID validates the :contentId path parameter
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, ok := parsePositiveParam(c, "contentId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("contentID", contentID)
		return c.Next()
	}
}

// EditContent validates a module content edit: title and description required.
func EditContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, ok := parsePositiveParam(c, "contentId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title" form:"title"`
			Description string `json:"description" form:"description"`
			VideoPath   string `json:"videopath" form:"videopath"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" || reqData.Description == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title and description are required", nil)
		}

		c.Locals("contentID", contentID)
		c.Locals("validatedContentEdit", reqData)
		return c.Next()
	}
}
