package libraryValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// ContentID validates the :id path parameter
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("contentID", id)
		return c.Next()
	}
}

// AddContent validates a new library item. Only the title is mandatory; the
// image arrives as a multipart file and is handled by the controller.
func AddContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" form:"title"`
			Description string `json:"description" form:"description"`
			VideoURL    string `json:"video_url" form:"video_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title is required", nil)
		}

		c.Locals("validatedLibraryContent", reqData)
		return c.Next()
	}
}

// UpdateContent validates a library item edit: title and description required.
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" form:"title"`
			Description string `json:"description" form:"description"`
			VideoURL    string `json:"video_url" form:"video_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title == "" || reqData.Description == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title and description are required", nil)
		}

		c.Locals("validatedLibraryContent", reqData)
		return c.Next()
	}
}
