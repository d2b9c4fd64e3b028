// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/students/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// StudentUserRoutes: read untuk teacher & admin (data siswa bukan konsumsi umum).
func StudentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db, validator.New())

	students := api.Group("/students",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("melihat data siswa"),
			constants.TeacherAndAbove,
		),
	)
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
}

func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db, validator.New())

	students := api.Group("/students",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola siswa"),
			constants.AdminOnly,
		),
	)
	students.Post("/", ctl.Create)
	students.Patch("/:id", ctl.Patch)
	students.Delete("/:id", ctl.Delete)
}
