// file: internals/features/grades/reports/controller/report_card_controller.go
package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/grades/service"
	classModel "schoolku_backend/internals/features/school/classes/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	termModel "schoolku_backend/internals/features/school/terms/model"
	helper "schoolku_backend/internals/helpers"
)

type ReportCardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewReportCardController(db *gorm.DB, v *validator.Validate) *ReportCardController {
	if v == nil {
		v = validator.New()
	}
	return &ReportCardController{DB: db, Validator: v}
}

// Parent hanya boleh melihat anaknya sendiri; student hanya dirinya.
func (ctl *ReportCardController) assertCanView(c *fiber.Ctx, st *studentModel.StudentModel) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Role tidak ditemukan")
	}
	switch role {
	case constants.RoleAdmin, constants.RoleTeacher:
		return nil
	case constants.RoleParent:
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		if st.StudentParentID == nil || *st.StudentParentID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Bukan anak Anda")
		}
		return nil
	case constants.RoleStudent:
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		if st.StudentUserID == nil || *st.StudentUserID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Bukan rapor Anda")
		}
		return nil
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak dikenal")
	}
}

func (ctl *ReportCardController) buildReportCard(c *fiber.Ctx) (*service.ReportCard, error) {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var st studentModel.StudentModel
	if err := ctl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if err := ctl.assertCanView(c, &st); err != nil {
		return nil, err
	}

	// term dari query, default term aktif
	var term termModel.AcademicTermModel
	if raw := strings.TrimSpace(c.Query("term_id")); raw != "" {
		termID, err := uuid.Parse(raw)
		if err != nil {
			return nil, helper.JsonError(c, fiber.StatusBadRequest, "term_id tidak valid")
		}
		err = ctl.DB.First(&term, "academic_term_id = ?", termID).Error
		if err != nil {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Term tidak ditemukan")
		}
	} else {
		if err := ctl.DB.First(&term, "academic_term_is_current = ?", true).Error; err != nil {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Belum ada term aktif")
		}
	}

	type scoreRow struct {
		SubjectName string
		ScoreValue  float64
		MaxScore    float64
	}
	var rows []scoreRow
	if err := ctl.DB.Table("scores").
		Joins("JOIN assignments ON assignments.assignment_id = scores.score_assignment_id").
		Joins("JOIN subjects ON subjects.subject_id = assignments.assignment_subject_id").
		Where("scores.score_student_id = ? AND assignments.assignment_term_id = ? AND scores.score_deleted_at IS NULL",
			st.StudentID, term.AcademicTermID).
		Select("subjects.subject_name AS subject_name, scores.score_value AS score_value, assignments.assignment_max_score AS max_score").
		Order("subjects.subject_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pairs := make([]service.ScorePair, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, service.ScorePair{
			SubjectName: r.SubjectName,
			Achieved:    r.ScoreValue,
			MaxScore:    r.MaxScore,
		})
	}

	className := ""
	if st.StudentCurrentClassID != nil {
		var cl classModel.ClassModel
		if err := ctl.DB.Select("class_name").
			First(&cl, "class_id = ?", *st.StudentCurrentClassID).Error; err == nil {
			className = cl.ClassName
		}
	}

	card := service.BuildReportCard(st.FullName(), className, term.AcademicTermName, pairs)
	return &card, nil
}

/* =======================================================
   JSON
   GET /report-cards/:student_id?term_id=
======================================================= */

func (ctl *ReportCardController) GetJSON(c *fiber.Ctx) error {
	card, err := ctl.buildReportCard(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Berhasil mengambil rapor", card)
}

/* =======================================================
   PDF
   GET /report-cards/:student_id/pdf?term_id=
======================================================= */

func (ctl *ReportCardController) GetPDF(c *fiber.Ctx) error {
	card, err := ctl.buildReportCard(c)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Report Card", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Report Card", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Student : %s", card.StudentName), "", 1, "L", false, 0, "")
	if card.ClassName != "" {
		pdf.CellFormat(0, 7, fmt.Sprintf("Class   : %s", card.ClassName), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Term    : %s", card.TermName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// header tabel
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, "Subject", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Achieved", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Max", "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 8, "Percent", "1", 0, "R", true, 0, "")
	pdf.CellFormat(0, 8, "Remark", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, s := range card.Subjects {
		pdf.CellFormat(70, 8, s.SubjectName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", s.Achieved), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", s.MaxTotal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%.1f%%", s.Percent), "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 8, s.Remark, "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Overall: %.1f%%  -  %s", card.OverallPercent, card.OverallRemark),
		"", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=report-card-%s.pdf", strings.TrimSpace(c.Params("student_id"))))
	return c.Send(buf.Bytes())
}
