// internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "schoolku_backend/internals/features/school/classes/route"
	profileRoute "schoolku_backend/internals/features/school/profile/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	subjectRoute "schoolku_backend/internals/features/school/subjects/route"
	teacherRoute "schoolku_backend/internals/features/school/teachers/route"
	termRoute "schoolku_backend/internals/features/school/terms/route"
)

// SchoolUserRoutes: endpoint baca untuk user login.
func SchoolUserRoutes(api fiber.Router, db *gorm.DB) {
	profileRoute.SchoolProfileUserRoutes(api, db)
	subjectRoute.SubjectUserRoutes(api, db)
	classRoute.ClassUserRoutes(api, db)
	teacherRoute.TeacherUserRoutes(api, db)
	studentRoute.StudentUserRoutes(api, db)
	termRoute.AcademicTermUserRoutes(api, db)
}

// SchoolTeacherRoutes: tulis yang boleh dilakukan teacher (role dicek per group).
func SchoolTeacherRoutes(api fiber.Router, db *gorm.DB) {
	subjectRoute.SubjectAdminRoutes(api, db)
}

// SchoolAdminRoutes: pengelolaan master data oleh admin.
func SchoolAdminRoutes(api fiber.Router, db *gorm.DB) {
	profileRoute.SchoolProfileAdminRoutes(api, db)
	classRoute.ClassAdminRoutes(api, db)
	teacherRoute.TeacherAdminRoutes(api, db)
	studentRoute.StudentAdminRoutes(api, db)
	termRoute.AcademicTermAdminRoutes(api, db)
}
