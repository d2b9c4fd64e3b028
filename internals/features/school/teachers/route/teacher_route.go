// file: internals/features/school/teachers/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/teachers/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func TeacherUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db, validator.New())

	teachers := api.Group("/teachers")
	teachers.Get("/", ctl.List)
	teachers.Get("/:id", ctl.GetByID)
}

func TeacherAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db, validator.New())

	teachers := api.Group("/teachers",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola teachers"),
			constants.AdminOnly,
		),
	)
	teachers.Post("/", ctl.Create)
	teachers.Patch("/:id", ctl.Patch)
	teachers.Delete("/:id", ctl.Delete)
}
