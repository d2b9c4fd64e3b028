// file: internals/features/grades/scores/route/score_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/grades/scores/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func ScoreUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewScoreController(db, validator.New())

	// Daftar nilai mentah hanya untuk guru/admin; siswa & ortu memakai rapor.
	scores := api.Group("/scores",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("melihat daftar nilai"),
			constants.TeacherAndAbove,
		),
	)
	scores.Get("/", ctl.List)
}

func ScoreTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewScoreController(db, validator.New())

	scores := api.Group("/scores",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("mengelola nilai"),
			constants.TeacherAndAbove,
		),
	)
	scores.Post("/", ctl.Upsert)
	scores.Post("/batch", ctl.Batch)
	scores.Delete("/:id", ctl.Delete)
}
