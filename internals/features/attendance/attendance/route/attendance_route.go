// file: internals/features/attendance/attendance/route/attendance_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/attendance/attendance/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db, validator.New())

	// Daftar absensi mentah hanya untuk guru/admin; siswa & ortu memakai rapor.
	attendance := api.Group("/attendance",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("melihat daftar absensi"),
			constants.TeacherAndAbove,
		),
	)
	attendance.Get("/", ctl.List)
}

func AttendanceTeacherRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db, validator.New())

	attendance := api.Group("/attendance",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorTeacher("mengelola absensi"),
			constants.TeacherAndAbove,
		),
	)
	attendance.Post("/batch", ctl.Batch)
}
