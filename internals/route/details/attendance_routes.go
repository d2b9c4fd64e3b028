// internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "schoolku_backend/internals/features/attendance/attendance/route"
)

func AttendanceAllRoutes(api fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceUserRoutes(api, db)
	attendanceRoute.AttendanceTeacherRoutes(api, db)
}
