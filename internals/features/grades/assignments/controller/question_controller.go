// file: internals/features/grades/assignments/controller/question_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/grades/assignments/dto"
	"schoolku_backend/internals/features/grades/assignments/model"
	helper "schoolku_backend/internals/helpers"
)

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB, v *validator.Validate) *QuestionController {
	if v == nil {
		v = validator.New()
	}
	return &QuestionController{DB: db, Validator: v}
}

// RecomputeMaxScore menjumlah ulang poin semua soal lalu menyimpan hasilnya
// sebagai max_score assignment. Dipanggil dalam transaksi yang sama dengan
// perubahan soal supaya tidak pernah ada max_score basi.
func RecomputeMaxScore(tx *gorm.DB, assignmentID uuid.UUID) error {
	var total float64
	if err := tx.Model(&model.QuestionModel{}).
		Where("question_assignment_id = ?", assignmentID).
		Select("COALESCE(SUM(question_points), 0)").
		Scan(&total).Error; err != nil {
		return err
	}
	if total <= 0 {
		// tanpa soal, max_score manual dibiarkan apa adanya
		return nil
	}
	return tx.Model(&model.AssignmentModel{}).
		Where("assignment_id = ?", assignmentID).
		Update("assignment_max_score", total).Error
}

func (ctl *QuestionController) loadAssignment(c *fiber.Ctx) (*model.AssignmentModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.AssignmentModel
	if err := ctl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return &m, nil
}

/* =======================================================
   LIST QUESTIONS
   GET /assignments/:id/questions
======================================================= */

func (ctl *QuestionController) List(c *fiber.Ctx) error {
	asg, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}

	var rows []model.QuestionModel
	if err := ctl.DB.Preload("QuestionChoices").
		Where("question_assignment_id = ?", asg.AssignmentID).
		Order("question_order ASC, question_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// siswa & parent tidak boleh melihat kunci jawaban
	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleStudent || role == constants.RoleParent {
		for qi := range rows {
			for ci := range rows[qi].QuestionChoices {
				rows[qi].QuestionChoices[ci].ChoiceIsCorrect = false
			}
		}
	}
	return helper.JsonOK(c, "Berhasil mengambil data", rows)
}

/* =======================================================
   ADD QUESTION (owner only)
   POST /assignments/:id/questions
======================================================= */

func (ctl *QuestionController) Create(c *fiber.Ctx) error {
	asg, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}
	actl := AssignmentController{DB: ctl.DB, Validator: ctl.Validator}
	if err := actl.assertOwner(c, asg); err != nil {
		return err
	}

	var p dto.QuestionInputDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if p.CorrectCount() != 1 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Harus ada tepat satu choice yang benar")
	}

	q := p.ToModel(asg.AssignmentID)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		return RecomputeMaxScore(tx, asg.AssignmentID)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal")
	}
	return helper.JsonCreated(c, "Berhasil membuat soal", q)
}

/* =======================================================
   UPDATE QUESTION (owner only, replace seluruh soal)
   PUT /assignments/:id/questions/:question_id
======================================================= */

func (ctl *QuestionController) Update(c *fiber.Ctx) error {
	asg, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}
	actl := AssignmentController{DB: ctl.DB, Validator: ctl.Validator}
	if err := actl.assertOwner(c, asg); err != nil {
		return err
	}

	questionID, err := uuid.Parse(strings.TrimSpace(c.Params("question_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var q model.QuestionModel
	if err := ctl.DB.First(&q,
		"question_id = ? AND question_assignment_id = ?", questionID, asg.AssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var p dto.QuestionInputDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if p.CorrectCount() != 1 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Harus ada tepat satu choice yang benar")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// choices diganti utuh, lebih sederhana daripada diff per baris
		if err := tx.Where("choice_question_id = ?", q.QuestionID).
			Delete(&model.ChoiceModel{}).Error; err != nil {
			return err
		}

		q.QuestionText = strings.TrimSpace(p.QuestionText)
		q.QuestionPoints = p.QuestionPoints
		if p.QuestionOrder >= 1 {
			q.QuestionOrder = p.QuestionOrder
		}
		if err := tx.Save(&q).Error; err != nil {
			return err
		}

		for _, ch := range p.QuestionChoices {
			if err := tx.Create(&model.ChoiceModel{
				ChoiceQuestionID: q.QuestionID,
				ChoiceText:       strings.TrimSpace(ch.ChoiceText),
				ChoiceIsCorrect:  ch.ChoiceIsCorrect,
			}).Error; err != nil {
				return err
			}
		}
		return RecomputeMaxScore(tx, asg.AssignmentID)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui soal")
	}

	var out model.QuestionModel
	if err := ctl.DB.Preload("QuestionChoices").
		First(&out, "question_id = ?", q.QuestionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui soal", out)
}

/* =======================================================
   DELETE QUESTION (owner only)
   DELETE /assignments/:id/questions/:question_id
======================================================= */

func (ctl *QuestionController) Delete(c *fiber.Ctx) error {
	asg, err := ctl.loadAssignment(c)
	if err != nil {
		return err
	}
	actl := AssignmentController{DB: ctl.DB, Validator: ctl.Validator}
	if err := actl.assertOwner(c, asg); err != nil {
		return err
	}

	questionID, err := uuid.Parse(strings.TrimSpace(c.Params("question_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("question_id = ? AND question_assignment_id = ?",
			questionID, asg.AssignmentID).
			Delete(&model.QuestionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("choice_question_id = ?", questionID).
			Delete(&model.ChoiceModel{}).Error; err != nil {
			return err
		}
		// Saat soal terakhir dihapus, total terakhir tetap tersimpan sebagai
		// max_score manual dan bisa diedit lagi lewat PATCH assignment.
		return RecomputeMaxScore(tx, asg.AssignmentID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Soal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus soal", fiber.Map{"question_id": questionID})
}
