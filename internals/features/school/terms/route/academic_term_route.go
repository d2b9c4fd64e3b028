// file: internals/features/school/terms/route/academic_term_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/terms/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AcademicTermUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicTermController(db, validator.New())

	terms := api.Group("/academic-terms")
	terms.Get("/", ctl.List)
	terms.Get("/current", ctl.GetCurrent)
	terms.Get("/:id", ctl.GetByID)
}

func AcademicTermAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicTermController(db, validator.New())

	terms := api.Group("/academic-terms",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola academic terms"),
			constants.AdminOnly,
		),
	)
	terms.Post("/", ctl.Create)
	terms.Patch("/:id", ctl.Patch)
	terms.Post("/:id/set-current", ctl.SetCurrent)
	terms.Post("/:id/refresh-stats", ctl.RefreshStats)
	terms.Delete("/:id", ctl.Delete)
}
