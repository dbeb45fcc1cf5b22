package libraryController

import (
	"log"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllContents lists the whole content library, newest first.
func GetAllContents(c *fiber.Ctx) error {
	var contents []courseModels.AdminContent
	if err := database.Database.Db.Order("id DESC").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error fetching contents", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contents fetched successfully!", contents)
}

// AddContent creates a library item, storing the optional cover image first.
func AddContent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLibraryContent").(*struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		VideoURL    string `json:"video_url" form:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveUploadedFile(file, "content_uploads")
		if err != nil {
			log.Printf("Error saving content image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add content", nil)
		}
		imagePath = saved
	}

	content := courseModels.AdminContent{
		Title:       reqData.Title,
		Description: reqData.Description,
		Image:       imagePath,
		VideoURL:    reqData.VideoURL,
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		log.Printf("Error adding content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add content", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content added successfully!", content)
}

// UpdateContent edits a library item. A replacement image is written to disk
// and the row updated before the previous asset is released, so a failed
// update never orphans the row's image.
func UpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	reqData, ok := c.Locals("validatedLibraryContent").(*struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		VideoURL    string `json:"video_url" form:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing courseModels.AdminContent
	if err := db.Where("id = ?", contentID).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found", nil)
	}

	oldImage := existing.Image

	updates := map[string]interface{}{
		"title":       reqData.Title,
		"description": reqData.Description,
	}
	if reqData.VideoURL != "" {
		updates["video_url"] = reqData.VideoURL
	}

	newImage := ""
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveUploadedFile(file, "content_uploads")
		if err != nil {
			log.Printf("Error saving content image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content", nil)
		}
		newImage = saved
		updates["image"] = saved
	}

	if err := db.Model(&existing).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content", nil)
	}

	// Old asset is released only now that the row points elsewhere
	if newImage != "" && oldImage != newImage {
		utils.DeleteUploadedFile(oldImage)
	}

	var updated courseModels.AdminContent
	if err := db.Where("id = ?", contentID).First(&updated).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", updated)
}

// DeleteContent removes a library item and its image. Instructor copies made
// from it are independent and stay untouched.
func DeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	db := database.Database.Db

	var existing courseModels.AdminContent
	if err := db.Where("id = ?", contentID).First(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found", nil)
	}

	if err := db.Delete(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content", nil)
	}

	utils.DeleteUploadedFile(existing.Image)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully", nil)
}
