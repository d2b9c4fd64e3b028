package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "schoolku_backend/internals/features/home/dashboard/route"
)

func HomeRoutes(api fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardRoutes(api, db)
}
