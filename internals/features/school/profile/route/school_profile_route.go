// file: internals/features/school/profile/route/school_profile_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/profile/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func SchoolProfileUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolProfileController(db, validator.New())
	api.Get("/school-profile", ctl.Get)
}

func SchoolProfileAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolProfileController(db, validator.New())
	api.Put("/school-profile",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola profil sekolah"),
			constants.AdminOnly,
		),
		ctl.Upsert,
	)
}
