// file: internals/features/grades/reports/route/report_card_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/grades/reports/controller"
)

// ReportCardRoutes: semua role login boleh mencoba; otorisasi per siswa
// (parent hanya anaknya, student hanya dirinya) dicek di controller.
func ReportCardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportCardController(db, validator.New())

	reports := api.Group("/report-cards")
	reports.Get("/:student_id", ctl.GetJSON)
	reports.Get("/:student_id/pdf", ctl.GetPDF)
}
