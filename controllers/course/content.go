package courseController

import (
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// AttachContent copies a library item into a module as a new, independently
// editable InstructorContent row. Each (module, library item) pair can only
// be attached once.
func AttachContent(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)
	adminContentID := c.Locals("adminContentID").(int)

	db := database.Database.Db

	var module courseModels.Module
	if err := db.Where("id = ?", moduleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found", nil)
	}

	var existing courseModels.InstructorContent
	if err := db.Where("module_id = ? AND admin_content_id = ?", moduleID, adminContentID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Content has already been added to this module", nil)
	}

	var libraryContent courseModels.AdminContent
	if err := db.Where("id = ?", adminContentID).First(&libraryContent).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found in library", nil)
	}

	content := courseModels.InstructorContent{
		ModuleID:       module.ID,
		Title:          libraryContent.Title,
		Description:    libraryContent.Description,
		Image:          libraryContent.Image,
		Video:          libraryContent.VideoURL,
		AdminContentID: &libraryContent.ID,
	}

	if err := db.Create(&content).Error; err != nil {
		// The unique index on (module_id, admin_content_id) is authoritative
		// under concurrent identical requests
		log.Printf("Error attaching library content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Content has already been added to this module", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content attached successfully!", content)
}

// GetModuleContents lists a module's contents, newest first.
func GetModuleContents(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(int)

	var contents []courseModels.InstructorContent
	if err := database.Database.Db.Where("module_id = ?", moduleID).
		Order("created_at DESC").
		Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching contents", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contents fetched successfully!", contents)
}

// EditContent updates a module content item. Image replacement follows the
// same update-then-release ordering as the library.
func EditContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	reqData, ok := c.Locals("validatedContentEdit").(*struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		VideoPath   string `json:"videopath" form:"videopath"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing courseModels.InstructorContent
	if err := db.Where("id = ?", contentID).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found", nil)
	}

	oldImage := existing.Image

	updates := map[string]interface{}{
		"title":       reqData.Title,
		"description": reqData.Description,
		"video":       reqData.VideoPath,
	}

	newImage := ""
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveUploadedFile(file, "module_uploads")
		if err != nil {
			log.Printf("Error saving content image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating content", nil)
		}
		newImage = saved
		updates["image"] = saved
	}

	if err := db.Model(&existing).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating content", nil)
	}

	if newImage != "" && oldImage != newImage {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", existing)
}

// DeleteContent removes a module content item together with its enrollments.
func DeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	db := database.Database.Db

	var existing courseModels.InstructorContent
	if err := db.Where("id = ?", contentID).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found", nil)
	}

	tx := db.Begin()

	if err := tx.Where("content_id = ?", existing.ID).
		Delete(&courseModels.Enrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting content", nil)
	}

	if err := tx.Delete(&existing).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting content", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully", nil)
}
