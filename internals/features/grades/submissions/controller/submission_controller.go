// file: internals/features/grades/submissions/controller/submission_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	assignmentModel "schoolku_backend/internals/features/grades/assignments/model"
	scoreService "schoolku_backend/internals/features/grades/scores/service"
	"schoolku_backend/internals/features/grades/submissions/dto"
	"schoolku_backend/internals/features/grades/submissions/model"
	studentService "schoolku_backend/internals/features/school/students/service"
	teacherService "schoolku_backend/internals/features/school/teachers/service"
	helper "schoolku_backend/internals/helpers"
)

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB, v *validator.Validate) *SubmissionController {
	if v == nil {
		v = validator.New()
	}
	return &SubmissionController{DB: db, Validator: v}
}

/* =======================================================
   SUBMIT (student)
   POST /submissions
======================================================= */

func (ctl *SubmissionController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := studentService.ResolveStudentIDByUser(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun tidak terhubung ke data siswa")
	}

	var p dto.SubmissionCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var asg assignmentModel.AssignmentModel
	if err := ctl.DB.First(&asg, "assignment_id = ?", p.SubmissionAssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var answersJSON datatypes.JSON
	if len(p.SubmissionAnswers) > 0 {
		raw, err := json.Marshal(p.SubmissionAnswers)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jawaban tidak valid")
		}
		answersJSON = datatypes.JSON(raw)
	}

	var existing model.SubmissionModel
	err = ctl.DB.First(&existing,
		"submission_assignment_id = ? AND submission_student_id = ?",
		asg.AssignmentID, studentID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		m := &model.SubmissionModel{
			SubmissionAssignmentID: asg.AssignmentID,
			SubmissionStudentID:    studentID,
			SubmissionText:         p.SubmissionText,
			SubmissionFileURL:      p.SubmissionFileURL,
			SubmissionAnswers:      answersJSON,
		}
		if err := ctl.DB.Create(m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
		}
		return helper.JsonCreated(c, "Submission terkirim", dto.FromModel(*m))
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// submission yang sudah dinilai dikunci untuk siswa
	if existing.SubmissionIsGraded {
		return helper.JsonError(c, fiber.StatusConflict, "Submission sudah dinilai dan tidak bisa diubah")
	}

	existing.SubmissionText = p.SubmissionText
	existing.SubmissionFileURL = p.SubmissionFileURL
	if answersJSON != nil {
		existing.SubmissionAnswers = answersJSON
	}
	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Submission diperbarui", dto.FromModel(existing))
}

/* =======================================================
   LIST (teacher)
   GET /submissions?assignment_id=&graded=
======================================================= */

func (ctl *SubmissionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.SubmissionModel{})
	if raw := strings.TrimSpace(c.Query("assignment_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "assignment_id tidak valid")
		}
		tx = tx.Where("submission_assignment_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("graded")); raw != "" {
		tx = tx.Where("submission_is_graded = ?", raw == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.SubmissionModel
	if err := tx.Order("submission_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   MY SUBMISSIONS (student)
   GET /submissions/me
======================================================= */

func (ctl *SubmissionController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := studentService.ResolveStudentIDByUser(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun tidak terhubung ke data siswa")
	}

	var rows []model.SubmissionModel
	if err := ctl.DB.Where("submission_student_id = ?", studentID).
		Order("submission_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", dto.FromModels(rows))
}

/* =======================================================
   AUTO-GRADE MCQ (teacher)
   POST /submissions/:id/autograde

   Jawaban benar dapat poin penuh soal itu, selain itu 0.
   Total ditulis sebagai Score siswa; idempoten, jalan ulang
   tidak menggandakan nilai.
======================================================= */

func (ctl *SubmissionController) Autograde(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := teacherService.ResolveTeacherIDByUser(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "User tidak punya profil teacher")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var sub model.SubmissionModel
	if err := ctl.DB.First(&sub, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var asg assignmentModel.AssignmentModel
	if err := ctl.DB.First(&asg, "assignment_id = ?", sub.SubmissionAssignmentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var questions []assignmentModel.QuestionModel
	if err := ctl.DB.Preload("QuestionChoices").
		Where("question_assignment_id = ?", asg.AssignmentID).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Assignment ini tidak punya soal MCQ")
	}

	answers := map[uuid.UUID]uuid.UUID{}
	if len(sub.SubmissionAnswers) > 0 {
		if err := json.Unmarshal(sub.SubmissionAnswers, &answers); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Jawaban submission tidak bisa dibaca")
		}
	}

	var total float64
	for _, q := range questions {
		chosen, ok := answers[q.QuestionID]
		if !ok {
			continue
		}
		for _, ch := range q.QuestionChoices {
			if ch.ChoiceID == chosen && ch.ChoiceIsCorrect {
				total += q.QuestionPoints
				break
			}
		}
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, _, err := scoreService.UpsertScore(tx,
			sub.SubmissionStudentID, asg.AssignmentID, total, asg.AssignmentMaxScore, teacherID); err != nil {
			return err
		}
		now := time.Now().UTC()
		return tx.Model(&sub).Updates(map[string]any{
			"submission_is_graded": true,
			"submission_graded_at": now,
		}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menilai submission")
	}

	return helper.JsonOK(c, "Submission dinilai otomatis", fiber.Map{
		"submission_id": sub.SubmissionID,
		"score_value":   total,
		"max_score":     asg.AssignmentMaxScore,
	})
}
