// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "schoolku_backend/internals/route/details"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE (semua user login) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	routeDetails.UserSelfRoutes(user, db)
	routeDetails.SchoolUserRoutes(user, db)
	routeDetails.SchoolTeacherRoutes(user, db)
	routeDetails.GradesUserRoutes(user, db)
	routeDetails.GradesTeacherRoutes(user, db)
	routeDetails.AttendanceAllRoutes(user, db)
	routeDetails.HomeRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.SchoolAdminRoutes(admin, db)
}
