// internals/route/details/grades_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "schoolku_backend/internals/features/grades/assignments/route"
	reportRoute "schoolku_backend/internals/features/grades/reports/route"
	scoreRoute "schoolku_backend/internals/features/grades/scores/route"
	submissionRoute "schoolku_backend/internals/features/grades/submissions/route"
)

// GradesUserRoutes: baca assignment/nilai, kirim submission, lihat rapor.
func GradesUserRoutes(api fiber.Router, db *gorm.DB) {
	assignmentRoute.AssignmentUserRoutes(api, db)
	scoreRoute.ScoreUserRoutes(api, db)
	submissionRoute.SubmissionUserRoutes(api, db)
	reportRoute.ReportCardRoutes(api, db)
}

// GradesTeacherRoutes: pengelolaan assignment, soal, nilai, autograde.
func GradesTeacherRoutes(api fiber.Router, db *gorm.DB) {
	assignmentRoute.AssignmentTeacherRoutes(api, db)
	scoreRoute.ScoreTeacherRoutes(api, db)
	submissionRoute.SubmissionTeacherRoutes(api, db)
}
