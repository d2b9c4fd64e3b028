// file: internals/features/school/terms/controller/academic_term_controller.go
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

	"schoolku_backend/internals/features/school/terms/dto"
	"schoolku_backend/internals/features/school/terms/model"
	helper "schoolku_backend/internals/helpers"
)

type AcademicTermController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicTermController(db *gorm.DB, v *validator.Validate) *AcademicTermController {
	if v == nil {
		v = validator.New()
	}
	return &AcademicTermController{DB: db, Validator: v}
}

/* =======================================================
   CREATE
   POST /academic-terms
======================================================= */

func (ctl *AcademicTermController) Create(c *fiber.Ctx) error {
	var p dto.AcademicTermCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	start, _ := time.Parse("2006-01-02", p.AcademicTermStartDate)
	end, _ := time.Parse("2006-01-02", p.AcademicTermEndDate)
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tanggal akhir harus >= tanggal mulai")
	}

	var cnt int64
	if err := ctl.DB.Model(&model.AcademicTermModel{}).
		Where("LOWER(academic_term_name) = ?", strings.ToLower(p.AcademicTermName)).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama term sudah digunakan")
	}

	m := &model.AcademicTermModel{
		AcademicTermName:      p.AcademicTermName,
		AcademicTermStartDate: start,
		AcademicTermEndDate:   end,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat term", dto.FromModel(*m))
}

/* =======================================================
   LIST & DETAIL
======================================================= */

func (ctl *AcademicTermController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.AcademicTermModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.AcademicTermModel
	if err := ctl.DB.Order("academic_term_start_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /academic-terms/current
func (ctl *AcademicTermController) GetCurrent(c *fiber.Ctx) error {
	var m model.AcademicTermModel
	if err := ctl.DB.First(&m, "academic_term_is_current = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada term aktif")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", dto.FromModel(m))
}

func (ctl *AcademicTermController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AcademicTermModel
	if err := ctl.DB.First(&m, "academic_term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", dto.FromModel(m))
}

/* =======================================================
   UPDATE (partial)
   PATCH /academic-terms/:id
======================================================= */

func (ctl *AcademicTermController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.AcademicTermUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.AcademicTermModel
	if err := ctl.DB.First(&m, "academic_term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if p.AcademicTermName != nil {
		name := strings.TrimSpace(*p.AcademicTermName)
		var cnt int64
		if err := ctl.DB.Model(&model.AcademicTermModel{}).
			Where("LOWER(academic_term_name) = ? AND academic_term_id <> ?",
				strings.ToLower(name), m.AcademicTermID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nama term sudah digunakan")
		}
		m.AcademicTermName = name
	}
	if p.AcademicTermStartDate != nil {
		if t, err := time.Parse("2006-01-02", *p.AcademicTermStartDate); err == nil {
			m.AcademicTermStartDate = t
		}
	}
	if p.AcademicTermEndDate != nil {
		if t, err := time.Parse("2006-01-02", *p.AcademicTermEndDate); err == nil {
			m.AcademicTermEndDate = t
		}
	}
	if m.AcademicTermEndDate.Before(m.AcademicTermStartDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tanggal akhir harus >= tanggal mulai")
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui term", dto.FromModel(m))
}

/* =======================================================
   SET CURRENT (exclusive)
   POST /academic-terms/:id/set-current
======================================================= */

func (ctl *AcademicTermController) SetCurrent(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AcademicTermModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "academic_term_id = ?", id).Error; err != nil {
			return err
		}
		// turunkan flag term lain baru naikkan target
		if err := tx.Model(&model.AcademicTermModel{}).
			Where("academic_term_is_current = ? AND academic_term_id <> ?", true, id).
			Update("academic_term_is_current", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&m).
			Update("academic_term_is_current", true).Error; err != nil {
			return err
		}
		m.AcademicTermIsCurrent = true
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah term aktif")
	}
	return helper.JsonUpdated(c, "Term aktif diperbarui", dto.FromModel(m))
}

/* =======================================================
   REFRESH STATS (snapshot JSONB)
   POST /academic-terms/:id/refresh-stats
======================================================= */

type termStats struct {
	TotalAssignments int64     `json:"total_assignments"`
	TotalScores      int64     `json:"total_scores"`
	AveragePercent   float64   `json:"average_percent"`
	RefreshedAt      time.Time `json:"refreshed_at"`
}

func (ctl *AcademicTermController) RefreshStats(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AcademicTermModel
	if err := ctl.DB.First(&m, "academic_term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	stats := termStats{RefreshedAt: time.Now().UTC()}
	if err := ctl.DB.Table("assignments").
		Where("assignment_term_id = ? AND assignment_deleted_at IS NULL", id).
		Count(&stats.TotalAssignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	type sums struct {
		Total    int64
		Achieved float64
		Max      float64
	}
	var s sums
	if err := ctl.DB.Table("scores").
		Joins("JOIN assignments ON assignments.assignment_id = scores.score_assignment_id").
		Where("assignments.assignment_term_id = ? AND scores.score_deleted_at IS NULL", id).
		Select("COUNT(*) AS total, COALESCE(SUM(scores.score_value),0) AS achieved, COALESCE(SUM(assignments.assignment_max_score),0) AS max").
		Scan(&s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	stats.TotalScores = s.Total
	if s.Max > 0 {
		stats.AveragePercent = s.Achieved / s.Max * 100
	}

	raw, _ := json.Marshal(stats)
	if err := ctl.DB.Model(&m).
		Update("academic_term_stats", datatypes.JSON(raw)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan statistik")
	}
	m.AcademicTermStats = datatypes.JSON(raw)
	return helper.JsonUpdated(c, "Statistik term diperbarui", dto.FromModel(m))
}

/* =======================================================
   DELETE (soft)
======================================================= */

func (ctl *AcademicTermController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Where("academic_term_id = ?", id).Delete(&model.AcademicTermModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus term", fiber.Map{"academic_term_id": id})
}
