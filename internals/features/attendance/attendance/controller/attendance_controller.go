// file: internals/features/attendance/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/attendance/attendance/dto"
	"schoolku_backend/internals/features/attendance/attendance/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherService "schoolku_backend/internals/features/school/teachers/service"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{DB: db, Validator: v}
}

// markOne menulis satu catatan absensi:
//   - belum ada  -> insert
//   - ada, status sama -> tidak ada penulisan sama sekali
//   - ada, status beda -> update status + recorded_by
func markOne(tx *gorm.DB, studentID, classID uuid.UUID, date time.Time, status string, recordedBy uuid.UUID) (bool, error) {
	var existing model.AttendanceModel
	err := tx.First(&existing,
		"attendance_student_id = ? AND attendance_date = ? AND attendance_class_id = ?",
		studentID, date, classID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := &model.AttendanceModel{
			AttendanceStudentID:    studentID,
			AttendanceClassID:      classID,
			AttendanceDate:         date,
			AttendanceStatus:       status,
			AttendanceRecordedByID: recordedBy,
		}
		if err := tx.Create(row).Error; err != nil {
			return false, err
		}
		return true, nil
	case err != nil:
		return false, err
	}

	if existing.AttendanceStatus == status {
		return false, nil
	}
	if err := tx.Model(&existing).Updates(map[string]any{
		"attendance_status":         status,
		"attendance_recorded_by_id": recordedBy,
	}).Error; err != nil {
		return false, err
	}
	return true, nil
}

/* =======================================================
   BATCH MARK (teacher, all-or-nothing)
   POST /attendance/batch
======================================================= */

func (ctl *AttendanceController) Batch(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := teacherService.ResolveTeacherIDByUser(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "User tidak punya profil teacher")
	}

	var p dto.AttendanceBatchDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	date, err := time.Parse("2006-01-02", p.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tanggal tidak valid")
	}

	seen := make(map[uuid.UUID]bool, len(p.Entries))
	for _, e := range p.Entries {
		if seen[e.AttendanceStudentID] {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Siswa %s muncul lebih dari sekali", e.AttendanceStudentID))
		}
		seen[e.AttendanceStudentID] = true
	}

	var writes int
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, e := range p.Entries {
			var st studentModel.StudentModel
			if err := tx.Select("student_id", "student_current_class_id").
				First(&st, "student_id = ?", e.AttendanceStudentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("siswa %s tidak ditemukan", e.AttendanceStudentID)
				}
				return err
			}
			if st.StudentCurrentClassID == nil || *st.StudentCurrentClassID != p.AttendanceClassID {
				return fmt.Errorf("siswa %s bukan anggota kelas ini", e.AttendanceStudentID)
			}

			wrote, err := markOne(tx, e.AttendanceStudentID, p.AttendanceClassID, date,
				e.AttendanceStatus, teacherID)
			if err != nil {
				return err
			}
			if wrote {
				writes++
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Batch absensi ditolak seluruhnya: "+err.Error())
	}

	return helper.JsonOK(c, "Absensi tersimpan", fiber.Map{
		"attendance_class_id": p.AttendanceClassID,
		"attendance_date":     p.AttendanceDate,
		"entries":             len(p.Entries),
		"writes":              writes,
	})
}

/* =======================================================
   HISTORY
   GET /attendance?class_id=&student_id=&status=&date_from=&date_to=
======================================================= */

func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&model.AttendanceModel{})
	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("attendance_class_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("attendance_student_id = ?", id)
	}
	if raw := strings.ToUpper(strings.TrimSpace(c.Query("status"))); raw != "" {
		if !model.ValidStatus(raw) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak valid")
		}
		tx = tx.Where("attendance_status = ?", raw)
	}
	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			tx = tx.Where("attendance_date >= ?", t)
		}
	}
	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			tx = tx.Where("attendance_date <= ?", t)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.AttendanceModel
	if err := tx.Order("attendance_date DESC, attendance_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
