package enrollmentController

import (
	"fmt"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollTrainees enrolls a batch of trainees into a content item, in the
// order given. Processing stops at the first failure; earlier enrollments
// persist. The error names the offending trainee so the caller can decide
// whether to retry the rest.
func EnrollTrainees(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnroll").(*struct {
		ContentID  uint   `json:"content_id"`
		TraineeIDs []uint `json:"trainee_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var content courseModels.InstructorContent
	if err := db.Where("id = ?", reqData.ContentID).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found", nil)
	}

	for _, traineeID := range reqData.TraineeIDs {
		var trainee models.User
		if err := db.Where("id = ? AND role = ?", traineeID, models.RoleTrainee).
			First(&trainee).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false,
				fmt.Sprintf("Trainee with ID %d not found", traineeID), nil)
		}

		traineeCode := ""
		if trainee.TraineeID != nil {
			traineeCode = *trainee.TraineeID
		}

		var existing courseModels.Enrollment
		if err := db.Where("content_id = ? AND trainee_id = ?", reqData.ContentID, traineeID).
			First(&existing).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false,
				fmt.Sprintf("Trainee %s has already been added", traineeCode), nil)
		}

		enrollment := courseModels.Enrollment{
			ContentID: reqData.ContentID,
			TraineeID: traineeID,
		}
		if err := db.Create(&enrollment).Error; err != nil {
			// Unique index on (content_id, trainee_id) catches the race two
			// identical requests can win against the check above
			log.Printf("Error enrolling trainee %d: %v", traineeID, err)
			return middleware.JsonResponse(c, fiber.StatusConflict, false,
				fmt.Sprintf("Trainee %s has already been added", traineeCode), nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainees enrolled successfully", nil)
}

// GetTrainees lists all trainee accounts, minimal projection.
func GetTrainees(c *fiber.Ctx) error {
	type traineeRow struct {
		ID        uint   `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
	}

	var trainees []traineeRow
	if err := database.Database.Db.Model(&models.User{}).
		Select("id, first_name, last_name, email").
		Where("role = ?", models.RoleTrainee).
		Scan(&trainees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching trainees", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainees fetched successfully!", trainees)
}

// EnrolledTrainee is the roster entry for one enrolled trainee.
type EnrolledTrainee struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	TraineeID *string `json:"trainee_id"`
}

// ContentWithTrainees is a content item plus everyone enrolled in it.
type ContentWithTrainees struct {
	ID               uint              `json:"id"`
	Title            string            `json:"title"`
	EnrolledTrainees []EnrolledTrainee `json:"enrolledTrainees"`
}

// ModuleWithEnrollments is a module with its contents and their rosters.
type ModuleWithEnrollments struct {
	ID       uint                  `json:"id"`
	Title    string                `json:"title"`
	Contents []ContentWithTrainees `json:"contents"`
}

// GetModulesWithEnrollments returns an instructor's modules (newest first),
// their contents (newest first), and each content's enrolled trainees.
func GetModulesWithEnrollments(c *fiber.Ctx) error {
	instructorID := c.Locals("instructorID").(int)

	db := database.Database.Db

	var modules []courseModels.Module
	if err := db.Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments", nil)
	}

	result := make([]ModuleWithEnrollments, len(modules))
	for i, module := range modules {
		var contents []courseModels.InstructorContent
		if err := db.Where("module_id = ?", module.ID).
			Order("created_at DESC").
			Find(&contents).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments", nil)
		}

		contentViews := make([]ContentWithTrainees, len(contents))
		for j, content := range contents {
			var trainees []EnrolledTrainee
			if err := db.Table("enrollments AS e").
				Select("u.first_name, u.last_name, u.trainee_id").
				Joins("JOIN users u ON e.trainee_id = u.id").
				Where("e.content_id = ?", content.ID).
				Scan(&trainees).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments", nil)
			}
			if trainees == nil {
				trainees = []EnrolledTrainee{}
			}
			contentViews[j] = ContentWithTrainees{
				ID:               content.ID,
				Title:            content.Title,
				EnrolledTrainees: trainees,
			}
		}

		result[i] = ModuleWithEnrollments{
			ID:       module.ID,
			Title:    module.Title,
			Contents: contentViews,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// TraineeContent is one enrolled content item as the trainee sees it.
type TraineeContent struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Video       string `json:"video"`
}

// TraineeModule groups a trainee's enrolled contents under their module.
type TraineeModule struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Contents []TraineeContent `json:"contents"`
}

// GetTraineeModules returns everything a trainee is enrolled in, one joined
// query grouped in-memory by module. Grouping keeps the first-seen module
// order from the already-sorted rows.
func GetTraineeModules(c *fiber.Ctx) error {
	traineeID := c.Locals("traineeID").(int)

	type enrolledRow struct {
		ModuleID           uint
		ModuleTitle        string
		ContentID          uint
		ContentTitle       string
		ContentDescription string
		ContentImage       string
		ContentVideo       string
	}

	var rows []enrolledRow
	if err := database.Database.Db.Table("enrollments AS e").
		Select(`m.id AS module_id,
			m.title AS module_title,
			ic.id AS content_id,
			ic.title AS content_title,
			ic.description AS content_description,
			ic.image AS content_image,
			ic.video AS content_video`).
		Joins("JOIN instructor_contents ic ON e.content_id = ic.id").
		Joins("JOIN modules m ON ic.module_id = m.id").
		Where("e.trainee_id = ?", traineeID).
		Order("m.created_at DESC, ic.created_at DESC").
		Scan(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainee modules", nil)
	}

	moduleIndex := make(map[uint]int)
	modules := make([]TraineeModule, 0, len(rows))
	for _, r := range rows {
		idx, seen := moduleIndex[r.ModuleID]
		if !seen {
			idx = len(modules)
			moduleIndex[r.ModuleID] = idx
			modules = append(modules, TraineeModule{
				ID:       r.ModuleID,
				Title:    r.ModuleTitle,
				Contents: []TraineeContent{},
			})
		}
		modules[idx].Contents = append(modules[idx].Contents, TraineeContent{
			ID:          r.ContentID,
			Title:       r.ContentTitle,
			Description: r.ContentDescription,
			Image:       r.ContentImage,
			Video:       r.ContentVideo,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainee modules fetched successfully!", modules)
}
