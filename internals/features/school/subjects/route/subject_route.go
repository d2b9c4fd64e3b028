// file: internals/features/school/subjects/route/subject_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/subjects/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// SubjectUserRoutes: read-only untuk semua user login.
func SubjectUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db, validator.New())

	subjects := api.Group("/subjects")
	subjects.Get("/", ctl.List)
	subjects.Get("/:id", ctl.GetByID)
}

// SubjectAdminRoutes: tulis hanya untuk teacher & admin.
func SubjectAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db, validator.New())

	subjects := api.Group("/subjects",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("mengelola subjects"),
			constants.TeacherAndAbove,
		),
	)
	subjects.Post("/", ctl.Create)
	subjects.Patch("/:id", ctl.Patch)
	subjects.Delete("/:id", ctl.Delete)
}
