// file: internals/features/school/profile/controller/school_profile_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/profile/dto"
	"schoolku_backend/internals/features/school/profile/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolProfileController(db *gorm.DB, v *validator.Validate) *SchoolProfileController {
	if v == nil {
		v = validator.New()
	}
	return &SchoolProfileController{DB: db, Validator: v}
}

// GET /school-profile
func (ctl *SchoolProfileController) Get(c *fiber.Ctx) error {
	var m model.SchoolProfileModel
	if err := ctl.DB.Order("school_profile_created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil sekolah belum diisi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "Berhasil mengambil data", m)
}

// PUT /school-profile (admin)
func (ctl *SchoolProfileController) Upsert(c *fiber.Ctx) error {
	var p dto.SchoolProfileUpsertDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var m model.SchoolProfileModel
	err := ctl.DB.Order("school_profile_created_at ASC").First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p.Apply(&m)
		if err := ctl.DB.Create(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data")
		}
		return helper.JsonCreated(c, "Berhasil menyimpan profil sekolah", m)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	default:
		p.Apply(&m)
		if err := ctl.DB.Save(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data")
		}
		return helper.JsonUpdated(c, "Berhasil memperbarui profil sekolah", m)
	}
}
