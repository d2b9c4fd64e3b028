// file: internals/features/grades/assignments/route/assignment_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/grades/assignments/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AssignmentUserRoutes: listing & detail untuk semua user login.
func AssignmentUserRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := controller.NewAssignmentController(db, v)
	qctl := controller.NewQuestionController(db, v)

	assignments := api.Group("/assignments")
	assignments.Get("/", ctl.List)
	assignments.Get("/:id", ctl.GetByID)
	assignments.Get("/:id/questions", qctl.List)
}

// AssignmentTeacherRoutes: tulis untuk teacher & admin; kepemilikan
// dicek per assignment di controller.
func AssignmentTeacherRoutes(api fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := controller.NewAssignmentController(db, v)
	qctl := controller.NewQuestionController(db, v)

	assignments := api.Group("/assignments",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("mengelola assignments"),
			constants.TeacherAndAbove,
		),
	)
	assignments.Post("/", ctl.Create)
	assignments.Patch("/:id", ctl.Patch)
	assignments.Delete("/:id", ctl.Delete)

	assignments.Post("/:id/questions", qctl.Create)
	assignments.Put("/:id/questions/:question_id", qctl.Update)
	assignments.Delete("/:id/questions/:question_id", qctl.Delete)
}
