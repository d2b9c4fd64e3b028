// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/classes/dto"
	"schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	if v == nil {
		v = validator.New()
	}
	return &ClassController{DB: db, Validator: v}
}

// wali kelas harus bebas sebelum dipasang ke kelas lain
func (ctl *ClassController) teacherAlreadyAssigned(teacherID uuid.UUID, excludeClass *uuid.UUID) (bool, error) {
	tx := ctl.DB.Model(&model.ClassModel{}).Where("class_teacher_id = ?", teacherID)
	if excludeClass != nil {
		tx = tx.Where("class_id <> ?", *excludeClass)
	}
	var cnt int64
	if err := tx.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

/* =======================================================
   CREATE
   POST /classes
======================================================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var p dto.ClassCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var cnt int64
	if err := ctl.DB.Model(&model.ClassModel{}).
		Where("LOWER(class_name) = ?", strings.ToLower(p.ClassName)).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah digunakan")
	}

	if p.ClassTeacherID != nil {
		taken, err := ctl.teacherAlreadyAssigned(*p.ClassTeacherID, nil)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, "Teacher sudah menjadi wali kelas lain")
		}
	}

	m := p.ToModel()
	slug, err := helper.EnsureUniqueSlug(c.Context(), ctl.DB, "classes", "class_slug",
		helper.Slugify(p.ClassName, 160), nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.ClassSlug = slug

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat kelas", dto.FromModel(*m))
}

/* =======================================================
   LIST
   GET /classes?q=&page=&per_page=
======================================================= */

func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.ClassModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(class_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.ClassModel
	if err := tx.Order("class_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DETAIL (by id atau slug)
   GET /classes/:id
======================================================= */

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))

	var m model.ClassModel
	var err error
	if id, parseErr := uuid.Parse(raw); parseErr == nil {
		err = ctl.DB.First(&m, "class_id = ?", id).Error
	} else {
		err = ctl.DB.First(&m, "class_slug = ?", raw).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	resp := dto.FromModel(m)
	var studentCount int64
	if err := ctl.DB.Table("students").
		Where("student_current_class_id = ? AND student_deleted_at IS NULL", m.ClassID).
		Count(&studentCount).Error; err == nil {
		resp.StudentCount = &studentCount
	}
	return helper.JsonOK(c, "Berhasil mengambil data", resp)
}

/* =======================================================
   UPDATE (partial)
   PATCH /classes/:id
======================================================= */

func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.ClassUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.ClassModel
	if err := ctl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	renamed := p.ClassName != nil && strings.TrimSpace(*p.ClassName) != m.ClassName
	if renamed {
		var cnt int64
		if err := ctl.DB.Model(&model.ClassModel{}).
			Where("LOWER(class_name) = ? AND class_id <> ?",
				strings.ToLower(strings.TrimSpace(*p.ClassName)), m.ClassID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kelas sudah digunakan")
		}
	}

	if p.ClassTeacherID != nil && !p.ClearTeacher {
		taken, err := ctl.teacherAlreadyAssigned(*p.ClassTeacherID, &m.ClassID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, "Teacher sudah menjadi wali kelas lain")
		}
	}

	p.ApplyUpdates(&m)

	if renamed {
		slug, err := helper.EnsureUniqueSlug(c.Context(), ctl.DB, "classes", "class_slug",
			helper.Slugify(m.ClassName, 160), func(q *gorm.DB) *gorm.DB {
				return q.Where("class_id <> ?", m.ClassID)
			})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.ClassSlug = slug
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui kelas", dto.FromModel(m))
}

/* =======================================================
   DELETE (soft)
   DELETE /classes/:id
======================================================= */

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Where("class_id = ?", id).Delete(&model.ClassModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus kelas", fiber.Map{"class_id": id})
}
