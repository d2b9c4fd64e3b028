// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/classes/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func ClassUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db, validator.New())

	classes := api.Group("/classes")
	classes.Get("/", ctl.List)
	classes.Get("/:id", ctl.GetByID)
}

func ClassAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db, validator.New())

	classes := api.Group("/classes",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola kelas"),
			constants.AdminOnly,
		),
	)
	classes.Post("/", ctl.Create)
	classes.Patch("/:id", ctl.Patch)
	classes.Delete("/:id", ctl.Delete)
}
