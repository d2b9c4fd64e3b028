// file: internals/features/school/students/controller/student_controller.go
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
	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	if v == nil {
		v = validator.New()
	}
	return &StudentController{DB: db, Validator: v}
}

// parent yang dipasang ke siswa harus user berrole parent
func (ctl *StudentController) ensureParentRole(parentID uuid.UUID) error {
	var u userModel.UserModel
	if err := ctl.DB.Select("id", "role").First(&u, "id = ?", parentID).Error; err != nil {
		return err
	}
	if u.Role != constants.RoleParent {
		return errors.New("bukan parent")
	}
	return nil
}

func (ctl *StudentController) identityTaken(first, last string, dob time.Time, exclude *uuid.UUID) (bool, error) {
	tx := ctl.DB.Model(&model.StudentModel{}).
		Where("LOWER(student_first_name) = ? AND LOWER(student_last_name) = ? AND student_date_of_birth = ?",
			strings.ToLower(first), strings.ToLower(last), dob)
	if exclude != nil {
		tx = tx.Where("student_id <> ?", *exclude)
	}
	var cnt int64
	if err := tx.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

/* =======================================================
   CREATE
   POST /students
======================================================= */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var p dto.StudentCreateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	dob, err := time.Parse("2006-01-02", p.StudentDateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Tanggal lahir tidak valid")
	}

	taken, err := ctl.identityTaken(p.StudentFirstName, p.StudentLastName, dob, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Siswa dengan nama dan tanggal lahir sama sudah terdaftar")
	}

	if p.StudentParentID != nil {
		if err := ctl.ensureParentRole(*p.StudentParentID); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Parent tidak valid")
		}
	}

	m := p.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
	}
	return helper.JsonCreated(c, "Berhasil membuat siswa", dto.FromModel(*m))
}

/* =======================================================
   LIST
   GET /students?class_id=&parent_id=&q=&page=&per_page=
======================================================= */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.Model(&model.StudentModel{})
	if cid := strings.TrimSpace(c.Query("class_id")); cid != "" {
		classID, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		tx = tx.Where("student_current_class_id = ?", classID)
	}
	if pid := strings.TrimSpace(c.Query("parent_id")); pid != "" {
		parentID, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "parent_id tidak valid")
		}
		tx = tx.Where("student_parent_id = ?", parentID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.StudentModel
	if err := tx.Order("student_first_name ASC, student_last_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "Berhasil mengambil data", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =======================================================
   DETAIL
   GET /students/:id
======================================================= */

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", dto.FromModel(m))
}

/* =======================================================
   UPDATE (partial)
   PATCH /students/:id
======================================================= */

func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p dto.StudentUpdateDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if p.StudentParentID != nil && !p.ClearParent {
		if err := ctl.ensureParentRole(*p.StudentParentID); err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Parent tidak valid")
		}
	}

	p.ApplyUpdates(&m)

	taken, err := ctl.identityTaken(m.StudentFirstName, m.StudentLastName, m.StudentDateOfBirth, &m.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Siswa dengan nama dan tanggal lahir sama sudah terdaftar")
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
	}
	return helper.JsonUpdated(c, "Berhasil memperbarui siswa", dto.FromModel(m))
}

/* =======================================================
   DELETE (soft)
   DELETE /students/:id
======================================================= */

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Where("student_id = ?", id).Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Berhasil menghapus siswa", fiber.Map{"student_id": id})
}
