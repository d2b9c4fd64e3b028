// file: internals/features/grades/assignments/controller/assignment_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/grades/assignments/dto"
	"schoolku_backend/internals/features/grades/assignments/model"
	teacherService "schoolku_backend/internals/features/school/teachers/service"
	helper "schoolku_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB, v *validator.Validate) *AssignmentController {
	if v == nil {
		v = validator.New()
	}
	return &AssignmentController{DB: db, Validator: v}
}

// Teacher hanya boleh mengubah assignment miliknya; admin bebas.
func (ctl *AssignmentController) assertOwner(c *fiber.Ctx, m *model.AssignmentModel) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Role tidak ditemukan")
	}
	if role == constants.RoleAdmin {
		return nil
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := teacherService.ResolveTeacherIDByUser(ctl.DB, userID)
	if err != nil || teacherID != m.AssignmentTeacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik assignment ini")
	}
	return nil
}

/* =======================================================
   CREATE
   POST /assignments
======================================================= */

func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := teacherService.ResolveTeacherIDByUser(ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "User tidak punya profil teacher")
	}

	var p dto.AssignmentCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var cnt int64
	if err := ctl.DB.Model(&model.AssignmentModel{}).
		Where("LOWER(assignment_title) = ? AND assignment_subject_id = ? AND assignment_class_id = ? AND assignment_term_id = ?",
			strings.ToLower(p.AssignmentTitle), p.AssignmentSubjectID, p.AssignmentClassID, p.AssignmentTermID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Assignment dengan judul sama sudah ada di scope ini")
	}

	m := p.ToModel(teacherID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat assignment", dto.FromModel(*m))
}

/* =======================================================
   LIST
   GET /assignments?class_id=&subject_id=&term_id=&teacher_id=
======================================================= */

func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.AssignmentModel{})
	for param, column := range map[string]string{
		"class_id":   "assignment_class_id",
		"subject_id": "assignment_subject_id",
		"term_id":    "assignment_term_id",
		"teacher_id": "assignment_teacher_id",
	} {
		if raw := strings.TrimSpace(c.Query(param)); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, param+" tidak valid")
			}
			tx = tx.Where(column+" = ?", id)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.AssignmentModel
	if err := tx.Order("assignment_date_given DESC, assignment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DETAIL
   GET /assignments/:id
======================================================= */

func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := ctl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", dto.FromModel(m))
}

/* =======================================================
   UPDATE (owner only)
   PATCH /assignments/:id
======================================================= */

func (ctl *AssignmentController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := ctl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if err := ctl.assertOwner(c, &m); err != nil {
		return err
	}

	var p dto.AssignmentUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// assignment ber-MCQ: max_score dikunci, mengikuti total poin soal
	var questionCount int64
	if err := ctl.DB.Model(&model.QuestionModel{}).
		Where("question_assignment_id = ?", m.AssignmentID).
		Count(&questionCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if p.AssignmentMaxScore != nil {
		if questionCount > 0 {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"Max score assignment MCQ dihitung dari total poin soal")
		}
		m.AssignmentMaxScore = *p.AssignmentMaxScore
	}

	if p.AssignmentTitle != nil {
		title := strings.TrimSpace(*p.AssignmentTitle)
		if !strings.EqualFold(title, m.AssignmentTitle) {
			var cnt int64
			if err := ctl.DB.Model(&model.AssignmentModel{}).
				Where("LOWER(assignment_title) = ? AND assignment_subject_id = ? AND assignment_class_id = ? AND assignment_term_id = ? AND assignment_id <> ?",
					strings.ToLower(title), m.AssignmentSubjectID, m.AssignmentClassID, m.AssignmentTermID, m.AssignmentID).
				Count(&cnt).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
			}
			if cnt > 0 {
				return helper.JsonError(c, fiber.StatusConflict, "Assignment dengan judul sama sudah ada di scope ini")
			}
		}
		m.AssignmentTitle = title
	}
	if p.AssignmentDueDate != nil {
		if t, err := time.Parse("2006-01-02", *p.AssignmentDueDate); err == nil {
			m.AssignmentDueDate = &t
		}
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui assignment", dto.FromModel(m))
}

/* =======================================================
   DELETE (owner only, soft)
   DELETE /assignments/:id
======================================================= */

func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AssignmentModel
	if err := ctl.DB.First(&m, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if err := ctl.assertOwner(c, &m); err != nil {
		return err
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus assignment", fiber.Map{"assignment_id": id})
}
