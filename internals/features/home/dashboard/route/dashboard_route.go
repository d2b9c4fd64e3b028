// file: internals/features/home/dashboard/route/dashboard_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/home/dashboard/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db, validator.New())

	dashboard := api.Group("/dashboard")
	dashboard.Get("/staff",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("melihat dashboard staff"),
			constants.TeacherAndAbove,
		),
		ctl.Staff,
	)
	dashboard.Get("/parent",
		authMiddleware.OnlyRoles(
			constants.RoleErrorParent("melihat dashboard parent"),
			constants.RoleParent,
		),
		ctl.Parent,
	)
}
