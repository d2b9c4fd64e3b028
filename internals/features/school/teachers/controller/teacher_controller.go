// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	"schoolku_backend/internals/features/school/teachers/dto"
	"schoolku_backend/internals/features/school/teachers/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = validator.New()
	}
	return &TeacherController{DB: db, Validator: v}
}

func (ctl *TeacherController) loadSubjects(ids []uuid.UUID) ([]subjectModel.SubjectModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var subjects []subjectModel.SubjectModel
	if err := ctl.DB.Where("subject_id IN ?", ids).Find(&subjects).Error; err != nil {
		return nil, err
	}
	if len(subjects) != len(ids) {
		return nil, gorm.ErrRecordNotFound
	}
	return subjects, nil
}

func (ctl *TeacherController) nameOf(userID uuid.UUID) string {
	var u userModel.UserModel
	if err := ctl.DB.Select("first_name", "last_name", "user_name").
		First(&u, "id = ?", userID).Error; err != nil {
		return ""
	}
	if full := u.FullName(); full != "" {
		return full
	}
	return u.UserName
}

/* =======================================================
   CREATE
   POST /teachers
======================================================= */

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var p dto.TeacherCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// user harus ada dan berrole teacher
	var u userModel.UserModel
	if err := ctl.DB.First(&u, "id = ?", p.TeacherUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if !u.IsTeacher() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "User bukan teacher")
	}

	var cnt int64
	if err := ctl.DB.Model(&model.TeacherModel{}).
		Where("teacher_user_id = ? OR teacher_staff_id = ?",
			p.TeacherUserID, strings.ToUpper(strings.TrimSpace(p.TeacherStaffID))).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Profil teacher atau staff ID sudah terdaftar")
	}

	subjects, err := ctl.loadSubjects(p.TeacherSubjectIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Ada subject yang tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	m := &model.TeacherModel{
		TeacherUserID:       p.TeacherUserID,
		TeacherStaffID:      p.TeacherStaffID,
		TeacherDateEmployed: dto.ParseDate(p.TeacherDateEmployed),
		TeacherSubjects:     subjects,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat teacher", dto.FromModel(*m, ctl.nameOf(m.TeacherUserID)))
}

/* =======================================================
   LIST
   GET /teachers?subject_id=&page=&per_page=
======================================================= */

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.TeacherModel{})
	if sid := strings.TrimSpace(c.Query("subject_id")); sid != "" {
		subjectID, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		tx = tx.Where("teacher_id IN (?)",
			ctl.DB.Table("teacher_subjects").Select("teacher_id").Where("subject_id = ?", subjectID))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.TeacherModel
	if err := tx.Preload("TeacherSubjects").
		Order("teacher_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := make([]dto.TeacherResponseDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.FromModel(m, ctl.nameOf(m.TeacherUserID)))
	}
	return helper.JsonList(c, "Berhasil mengambil data", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DETAIL
   GET /teachers/:id
======================================================= */

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TeacherModel
	if err := ctl.DB.Preload("TeacherSubjects").
		First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", dto.FromModel(m, ctl.nameOf(m.TeacherUserID)))
}

/* =======================================================
   UPDATE (partial)
   PATCH /teachers/:id
======================================================= */

func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.TeacherUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.TeacherModel
	if err := ctl.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if p.TeacherStaffID != nil {
		staffID := strings.ToUpper(strings.TrimSpace(*p.TeacherStaffID))
		var cnt int64
		if err := ctl.DB.Model(&model.TeacherModel{}).
			Where("teacher_staff_id = ? AND teacher_id <> ?", staffID, m.TeacherID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Staff ID sudah digunakan")
		}
		m.TeacherStaffID = staffID
	}
	if p.TeacherDateEmployed != nil {
		m.TeacherDateEmployed = dto.ParseDate(p.TeacherDateEmployed)
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}

	// ganti daftar mapel hanya saat field-nya dikirim
	if p.TeacherSubjectIDs != nil {
		subjects, err := ctl.loadSubjects(*p.TeacherSubjectIDs)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Ada subject yang tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		if err := ctl.DB.Model(&m).Association("TeacherSubjects").Replace(subjects); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui mapel")
		}
		m.TeacherSubjects = subjects
	}

	return helper.JsonUpdated(c, "Berhasil memperbarui teacher", dto.FromModel(m, ctl.nameOf(m.TeacherUserID)))
}

/* =======================================================
   DELETE (soft)
   DELETE /teachers/:id
======================================================= */

func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Where("teacher_id = ?", id).Delete(&model.TeacherModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus teacher", fiber.Map{"teacher_id": id})
}
