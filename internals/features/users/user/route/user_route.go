// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userCtl "schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// Admin-only user management
// Base: /api/a/users
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)

	base := api.Group("/users",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola users"),
			constants.AdminOnly,
		),
	)

	base.Post("/", ctl.Create)
	base.Get("/", ctl.List)
	base.Get("/:id", ctl.GetByID)
	base.Patch("/:id", ctl.Patch)
	base.Delete("/:id", ctl.Delete)
}

// Routes untuk user login (semua role)
// Base: /api/u/users
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)

	base := api.Group("/users")
	base.Get("/me", ctl.GetMe)
}
