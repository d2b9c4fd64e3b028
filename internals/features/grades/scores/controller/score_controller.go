// file: internals/features/grades/scores/controller/score_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "schoolku_backend/internals/features/grades/assignments/model"
	"schoolku_backend/internals/features/grades/scores/dto"
	"schoolku_backend/internals/features/grades/scores/model"
	scoreService "schoolku_backend/internals/features/grades/scores/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherService "schoolku_backend/internals/features/school/teachers/service"
	helper "schoolku_backend/internals/helpers"
)

type ScoreController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScoreController(db *gorm.DB, v *validator.Validate) *ScoreController {
	if v == nil {
		v = validator.New()
	}
	return &ScoreController{DB: db, Validator: v}
}

func (ctl *ScoreController) resolveTeacher(c *fiber.Ctx) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	teacherID, err := teacherService.ResolveTeacherIDByUser(ctl.DB, userID)
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusForbidden, "User tidak punya profil teacher")
	}
	return teacherID, nil
}

/* =======================================================
   UPSERT SATU NILAI
   POST /scores
======================================================= */

func (ctl *ScoreController) Upsert(c *fiber.Ctx) error {
	teacherID, err := ctl.resolveTeacher(c)
	if err != nil {
		return err
	}

	var p dto.ScoreUpsertDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var asg assignmentModel.AssignmentModel
	if err := ctl.DB.First(&asg, "assignment_id = ?", p.ScoreAssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var row *model.ScoreModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		row, _, txErr = scoreService.UpsertScore(tx,
			p.ScoreStudentID, asg.AssignmentID, p.ScoreValue, asg.AssignmentMaxScore, teacherID)
		return txErr
	})
	if err != nil {
		var oor *scoreService.ScoreOutOfRangeError
		if errors.As(err, &oor) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Nilai ditolak: %s", oor.Error()))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonUpdated(c, "Nilai tersimpan", dto.FromModel(*row))
}

/* =======================================================
   BATCH SATU KELAS (all-or-nothing)
   POST /scores/batch
======================================================= */

func (ctl *ScoreController) Batch(c *fiber.Ctx) error {
	teacherID, err := ctl.resolveTeacher(c)
	if err != nil {
		return err
	}

	var p dto.ScoreBatchDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var asg assignmentModel.AssignmentModel
	if err := ctl.DB.First(&asg, "assignment_id = ?", p.ScoreAssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// deteksi duplikat siswa dalam payload sebelum menyentuh DB
	seen := make(map[uuid.UUID]bool, len(p.Entries))
	for _, e := range p.Entries {
		if seen[e.ScoreStudentID] {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Siswa %s muncul lebih dari sekali", e.ScoreStudentID))
		}
		seen[e.ScoreStudentID] = true
	}

	written := make([]model.ScoreModel, 0, len(p.Entries))
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		for _, e := range p.Entries {
			// entry hanya sah untuk siswa kelas assignment ini
			var st studentModel.StudentModel
			if err := tx.Select("student_id", "student_current_class_id").
				First(&st, "student_id = ?", e.ScoreStudentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("siswa %s tidak ditemukan", e.ScoreStudentID)
				}
				return err
			}
			if st.StudentCurrentClassID == nil || *st.StudentCurrentClassID != asg.AssignmentClassID {
				return fmt.Errorf("siswa %s bukan anggota kelas assignment ini", e.ScoreStudentID)
			}

			row, _, err := scoreService.UpsertScore(tx,
				e.ScoreStudentID, asg.AssignmentID, e.ScoreValue, asg.AssignmentMaxScore, teacherID)
			if err != nil {
				var oor *scoreService.ScoreOutOfRangeError
				if errors.As(err, &oor) {
					return fmt.Errorf("siswa %s: %s", e.ScoreStudentID, oor.Error())
				}
				return err
			}
			written = append(written, *row)
		}
		return nil
	})
	if err != nil {
		// transaksi sudah rollback, tidak ada satu baris pun yang tersimpan
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Batch nilai ditolak seluruhnya: "+err.Error())
	}

	return helper.JsonOK(c, "Batch nilai tersimpan", dto.FromModels(written))
}

/* =======================================================
   LIST
   GET /scores?assignment_id=&student_id=
======================================================= */

func (ctl *ScoreController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.Model(&model.ScoreModel{})
	if raw := strings.TrimSpace(c.Query("assignment_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "assignment_id tidak valid")
		}
		tx = tx.Where("score_assignment_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		tx = tx.Where("score_student_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.ScoreModel
	if err := tx.Order("score_updated_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DELETE (soft)
   DELETE /scores/:id
======================================================= */

func (ctl *ScoreController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Where("score_id = ?", id).Delete(&model.ScoreModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus nilai", fiber.Map{"score_id": id})
}
