package userController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// Role-conditional dashboard view-models. The response always has the shape
// {user, stats}; the stats type depends on the user's role.

type RoleBucket struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type AdminStats struct {
	TotalUsers       int64        `json:"total_users"`
	TotalAdmins      int64        `json:"total_admins"`
	TotalInstructors int64        `json:"total_instructors"`
	TotalTrainees    int64        `json:"total_trainees"`
	RoleDistribution []RoleBucket `json:"role_distribution"`
}

type ContentStat struct {
	ContentID    uint   `json:"content_id"`
	ContentTitle string `json:"content_title"`
	TraineeCount int    `json:"trainee_count"`
}

type ModuleStat struct {
	ModuleID    uint          `json:"module_id"`
	ModuleTitle string        `json:"module_title"`
	Contents    []ContentStat `json:"contents"`
}

type InstructorStats struct {
	TotalModules  int64        `json:"total_modules"`
	TotalContents int64        `json:"total_contents"`
	TotalTrainees int64        `json:"total_trainees"`
	Modules       []ModuleStat `json:"modules"`
}

type ModuleRef struct {
	ModuleTitle string `json:"module_title"`
}

type ContentGroup struct {
	ContentTitle string      `json:"content_title"`
	Modules      []ModuleRef `json:"modules"`
}

type TraineeStats struct {
	TraineeID             *string        `json:"trainee_id"`
	TotalModulesEnrolled  int            `json:"total_modules_enrolled"`
	TotalContentsEnrolled int            `json:"total_contents_enrolled"`
	Contents              []ContentGroup `json:"contents"`
}

// GetDashboard returns the dashboard view for a user, dispatching on role.
func GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("targetUserID").(int)

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	switch user.Role {
	case models.RoleAdmin:
		stats, err := adminStats()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"user":  user,
			"stats": stats,
		})

	case models.RoleInstructor:
		stats, err := instructorStats(user.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"user":  user,
			"stats": stats,
		})

	case models.RoleTrainee:
		stats, err := traineeStats(user)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"user":  user,
			"stats": stats,
		})

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user role", nil)
	}
}

func adminStats() (*AdminStats, error) {
	db := database.Database.Db

	var totalUsers, totalAdmins, totalInstructors, totalTrainees int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&totalAdmins).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleInstructor).Count(&totalInstructors).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleTrainee).Count(&totalTrainees).Error; err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalUsers:       totalUsers,
		TotalAdmins:      totalAdmins,
		TotalInstructors: totalInstructors,
		TotalTrainees:    totalTrainees,
		RoleDistribution: []RoleBucket{
			{Name: "Admins", Value: totalAdmins},
			{Name: "Instructors", Value: totalInstructors},
			{Name: "Trainees", Value: totalTrainees},
		},
	}, nil
}

func instructorStats(instructorID uint) (*InstructorStats, error) {
	db := database.Database.Db

	var totalModules int64
	if err := db.Model(&courseModels.Module{}).
		Where("instructor_id = ?", instructorID).
		Count(&totalModules).Error; err != nil {
		return nil, err
	}

	moduleIDs := db.Model(&courseModels.Module{}).
		Select("id").
		Where("instructor_id = ?", instructorID)

	var totalContents int64
	if err := db.Model(&courseModels.InstructorContent{}).
		Where("module_id IN (?)", moduleIDs).
		Count(&totalContents).Error; err != nil {
		return nil, err
	}

	var totalTrainees int64
	if err := db.Model(&courseModels.Enrollment{}).
		Joins("JOIN instructor_contents ic ON ic.id = enrollments.content_id").
		Joins("JOIN modules m ON m.id = ic.module_id").
		Where("m.instructor_id = ?", instructorID).
		Distinct("enrollments.trainee_id").
		Count(&totalTrainees).Error; err != nil {
		return nil, err
	}

	// One row per content with its trainee count; zero-enrollment content
	// still appears (left join), and the grouped output keeps the query's
	// module order.
	type contentRow struct {
		ContentID    uint
		ContentTitle string
		ModuleID     uint
		ModuleTitle  string
		TraineeCount int
	}
	var rows []contentRow
	if err := db.Table("instructor_contents AS ic").
		Select("ic.id AS content_id, ic.title AS content_title, ic.module_id, m.title AS module_title, COUNT(e.trainee_id) AS trainee_count").
		Joins("LEFT JOIN modules m ON ic.module_id = m.id").
		Joins("LEFT JOIN enrollments e ON e.content_id = ic.id").
		Where("m.instructor_id = ?", instructorID).
		Group("ic.id, ic.title, ic.module_id, m.title, m.created_at").
		Order("m.created_at DESC, ic.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	moduleIndex := make(map[uint]int)
	modules := make([]ModuleStat, 0, len(rows))
	for _, r := range rows {
		idx, seen := moduleIndex[r.ModuleID]
		if !seen {
			idx = len(modules)
			moduleIndex[r.ModuleID] = idx
			modules = append(modules, ModuleStat{
				ModuleID:    r.ModuleID,
				ModuleTitle: r.ModuleTitle,
				Contents:    []ContentStat{},
			})
		}
		modules[idx].Contents = append(modules[idx].Contents, ContentStat{
			ContentID:    r.ContentID,
			ContentTitle: r.ContentTitle,
			TraineeCount: r.TraineeCount,
		})
	}

	return &InstructorStats{
		TotalModules:  totalModules,
		TotalContents: totalContents,
		TotalTrainees: totalTrainees,
		Modules:       modules,
	}, nil
}

func traineeStats(user models.User) (*TraineeStats, error) {
	db := database.Database.Db

	type enrollmentRow struct {
		ContentID    uint
		ContentTitle string
		ModuleID     uint
		ModuleTitle  string
	}
	var rows []enrollmentRow
	if err := db.Table("enrollments AS e").
		Select("e.content_id, ic.title AS content_title, ic.module_id, m.title AS module_title").
		Joins("JOIN instructor_contents ic ON ic.id = e.content_id").
		Joins("JOIN modules m ON m.id = ic.module_id").
		Where("e.trainee_id = ?", user.ID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	moduleSet := make(map[uint]struct{})
	contentSet := make(map[uint]struct{})
	for _, r := range rows {
		moduleSet[r.ModuleID] = struct{}{}
		contentSet[r.ContentID] = struct{}{}
	}

	// Grouping key is the content title: distinct contents sharing a title
	// collapse into one bucket. First-seen order is kept.
	groupIndex := make(map[string]int)
	groups := make([]ContentGroup, 0, len(rows))
	for _, r := range rows {
		idx, seen := groupIndex[r.ContentTitle]
		if !seen {
			idx = len(groups)
			groupIndex[r.ContentTitle] = idx
			groups = append(groups, ContentGroup{
				ContentTitle: r.ContentTitle,
				Modules:      []ModuleRef{},
			})
		}
		groups[idx].Modules = append(groups[idx].Modules, ModuleRef{ModuleTitle: r.ModuleTitle})
	}

	return &TraineeStats{
		TraineeID:             user.TraineeID,
		TotalModulesEnrolled:  len(moduleSet),
		TotalContentsEnrolled: len(contentSet),
		Contents:              groups,
	}, nil
}
