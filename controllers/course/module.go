package courseController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// ModuleWithContents is a module plus its content items, newest first.
type ModuleWithContents struct {
	courseModels.Module
	Contents []courseModels.InstructorContent `json:"contents"`
}

// GetModules returns an instructor's modules (newest first), each with its
// contents (newest first).
func GetModules(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(int)

	db := database.Database.Db

	var modules []courseModels.Module
	if err := db.Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching modules", nil)
	}

	result := make([]ModuleWithContents, len(modules))
	for i, module := range modules {
		var contents []courseModels.InstructorContent
		if err := db.Where("module_id = ?", module.ID).
			Order("created_at DESC").
			Find(&contents).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching modules", nil)
		}
		result[i] = ModuleWithContents{Module: module, Contents: contents}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", result)
}

// AddModule creates a new module for an instructor.
func AddModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*struct {
		Title        string `json:"title"`
		InstructorID uint   `json:"instructor_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var instructor models.User
	if err := db.Where("id = ? AND role = ?", reqData.InstructorID, models.RoleInstructor).
		First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	module := courseModels.Module{
		Title:        reqData.Title,
		InstructorID: reqData.InstructorID,
	}

	if err := db.Create(&module).Error; err != nil {
		log.Printf("Error adding module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error adding module", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// DeleteModule removes a module its owner no longer wants. Children go first
// inside one transaction: enrollments of the module's contents, the contents,
// then the module row itself.
func DeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	instructorID := c.Locals("instructorID").(int)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ? AND instructor_id = ?", moduleID, instructorID).
		First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found or unauthorized", nil)
	}

	tx := db.Begin()

	contentIDs := tx.Model(&courseModels.InstructorContent{}).
		Select("id").
		Where("module_id = ?", module.ID)

	if err := tx.Where("content_id IN (?)", contentIDs).
		Delete(&courseModels.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting module", nil)
	}

	if err := tx.Where("module_id = ?", module.ID).
		Delete(&courseModels.InstructorContent{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting module", nil)
	}

	if err := tx.Delete(&module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting module", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully", nil)
}
