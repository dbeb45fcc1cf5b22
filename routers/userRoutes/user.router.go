package userRoutes

import (
	courseControllers "lms/controllers/course"
	enrollmentControllers "lms/controllers/enrollment"
	libraryControllers "lms/controllers/library"
	userControllers "lms/controllers/user"
	"lms/middleware"
	"lms/models"
	courseValidators "lms/validators/course"
	enrollmentValidators "lms/validators/enrollment"
	libraryValidators "lms/validators/library"
	userValidators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users", middleware.JWTMiddleware)

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	instructorOnly := middleware.RequireRole(models.RoleInstructor)

	// Dashboard
	userGroup.Get("/dashboard/:id", userValidators.UserID(), userControllers.GetDashboard)

	// Content library (admin)
	userGroup.Get("/admin_contents", libraryControllers.GetAllContents)
	userGroup.Post("/admin_contents", adminOnly, libraryValidators.AddContent(), libraryControllers.AddContent)
	userGroup.Put("/admin_contents/:id", adminOnly, libraryValidators.ContentID(), libraryValidators.UpdateContent(), libraryControllers.UpdateContent)
	userGroup.Delete("/admin_contents/:id", adminOnly, libraryValidators.ContentID(), libraryControllers.DeleteContent)

	// Modules (instructor)
	userGroup.Get("/modules", courseValidators.InstructorQuery(), courseControllers.GetModules)
	userGroup.Post("/modules", instructorOnly, courseValidators.CreateModule(), courseControllers.AddModule)
	userGroup.Delete("/modules/:id", instructorOnly, courseValidators.DeleteModule(), courseControllers.DeleteModule)
	userGroup.Get("/modules/enrollments", enrollmentValidators.InstructorQuery(), enrollmentControllers.GetModulesWithEnrollments)
	userGroup.Post("/modules/:moduleId/attach_content/:contentId", instructorOnly, courseValidators.AttachContent(), courseControllers.AttachContent)
	userGroup.Get("/modules/:moduleId/contents", courseValidators.ModuleID(), courseControllers.GetModuleContents)

	// Module content copies
	userGroup.Put("/contents/:contentId", instructorOnly, courseValidators.EditContent(), courseControllers.EditContent)
	userGroup.Delete("/contents/:contentId", instructorOnly, courseValidators.ContentID(), courseControllers.DeleteContent)

	// Enrollment
	userGroup.Post("/contents/enroll", instructorOnly, enrollmentValidators.EnrollTrainees(), enrollmentControllers.EnrollTrainees)
	userGroup.Get("/trainees", enrollmentControllers.GetTrainees)
	userGroup.Get("/my-courses/:traineeId", enrollmentValidators.TraineeID(), enrollmentControllers.GetTraineeModules)

	// User management (admin)
	userGroup.Get("/", adminOnly, userControllers.GetAllUsers)
	userGroup.Post("/", adminOnly, userValidators.AddUser(), userControllers.AddUser)
	userGroup.Post("/reset-password", adminOnly, userValidators.ResetPassword(), userControllers.ResetPassword)
	userGroup.Post("/:userId/upload-profile", userValidators.ProfileUserID(), userControllers.UploadProfilePicture)
	userGroup.Delete("/:id", adminOnly, userValidators.UserID(), userControllers.DeleteUser)
}
