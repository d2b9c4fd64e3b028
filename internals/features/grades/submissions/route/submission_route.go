// file: internals/features/grades/submissions/route/submission_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/grades/submissions/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func SubmissionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubmissionController(db, validator.New())

	subs := api.Group("/submissions")
	subs.Post("/",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStudent("mengumpulkan tugas"),
			constants.RoleStudent,
		),
		ctl.Submit,
	)
	subs.Get("/me",
		authMiddleware.OnlyRoles(
			constants.RoleErrorStudent("melihat submission"),
			constants.RoleStudent,
		),
		ctl.GetMine,
	)
}

func SubmissionTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubmissionController(db, validator.New())

	subs := api.Group("/submissions",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("mengelola submissions"),
			constants.TeacherAndAbove,
		),
	)
	subs.Get("/", ctl.List)
	subs.Post("/:id/autograde", ctl.Autograde)
}
