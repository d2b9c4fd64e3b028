// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/subjects/dto"
	"schoolku_backend/internals/features/school/subjects/model"
	helper "schoolku_backend/internals/helpers"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	if v == nil {
		v = validator.New()
	}
	return &SubjectController{DB: db, Validator: v}
}

/* =======================================================
   CREATE
   POST /subjects
======================================================= */

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var p dto.SubjectCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// nama subject harus unik (case-insensitive)
	var cnt int64
	if err := ctl.DB.Model(&model.SubjectModel{}).
		Where("LOWER(subject_name) = ?", strings.ToLower(p.SubjectName)).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama subject sudah digunakan")
	}

	m := p.ToModel()
	slug, err := helper.EnsureUniqueSlug(c.Context(), ctl.DB, "subjects", "subject_slug",
		helper.Slugify(p.SubjectName, 160), nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	m.SubjectSlug = slug

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat subject", dto.FromModel(*m))
}

/* =======================================================
   LIST
   GET /subjects?q=&active=&page=&per_page=
======================================================= */

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.SubjectModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("LOWER(subject_name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		tx = tx.Where("subject_is_active = ?", active == "true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.SubjectModel
	if err := tx.Order("subject_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DETAIL (by id atau slug)
   GET /subjects/:id
======================================================= */

func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))

	var m model.SubjectModel
	var err error
	if id, parseErr := uuid.Parse(raw); parseErr == nil {
		err = ctl.DB.First(&m, "subject_id = ?", id).Error
	} else {
		err = ctl.DB.First(&m, "subject_slug = ?", raw).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", dto.FromModel(m))
}

/* =======================================================
   UPDATE (partial)
   PATCH /subjects/:id
======================================================= */

func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.SubjectUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.SubjectModel
	if err := ctl.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	renamed := p.SubjectName != nil && strings.TrimSpace(*p.SubjectName) != m.SubjectName
	if renamed {
		var cnt int64
		if err := ctl.DB.Model(&model.SubjectModel{}).
			Where("LOWER(subject_name) = ? AND subject_id <> ?",
				strings.ToLower(strings.TrimSpace(*p.SubjectName)), m.SubjectID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nama subject sudah digunakan")
		}
	}

	p.ApplyUpdates(&m)

	// slug ikut nama baru saat rename
	if renamed {
		slug, err := helper.EnsureUniqueSlug(c.Context(), ctl.DB, "subjects", "subject_slug",
			helper.Slugify(m.SubjectName, 160), func(q *gorm.DB) *gorm.DB {
				return q.Where("subject_id <> ?", m.SubjectID)
			})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		m.SubjectSlug = slug
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui subject", dto.FromModel(m))
}

/* =======================================================
   DELETE (soft)
   DELETE /subjects/:id
======================================================= */

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Where("subject_id = ?", id).Delete(&model.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus subject", fiber.Map{"subject_id": id})
}
