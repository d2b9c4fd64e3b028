// file: internals/features/school/terms/dto/academic_term_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/terms/model"
)

/* ========== REQUEST ========== */

type AcademicTermCreateDTO struct {
	AcademicTermName      string `json:"academic_term_name" validate:"required,min=2,max=120"`
	AcademicTermStartDate string `json:"academic_term_start_date" validate:"required,datetime=2006-01-02"`
	AcademicTermEndDate   string `json:"academic_term_end_date" validate:"required,datetime=2006-01-02"`
}

type AcademicTermUpdateDTO struct {
	AcademicTermName      *string `json:"academic_term_name" validate:"omitempty,min=2,max=120"`
	AcademicTermStartDate *string `json:"academic_term_start_date" validate:"omitempty,datetime=2006-01-02"`
	AcademicTermEndDate   *string `json:"academic_term_end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (d *AcademicTermCreateDTO) Normalize() {
	d.AcademicTermName = strings.TrimSpace(d.AcademicTermName)
}

/* ========== RESPONSE ========== */

type AcademicTermResponseDTO struct {
	AcademicTermID        uuid.UUID       `json:"academic_term_id"`
	AcademicTermName      string          `json:"academic_term_name"`
	AcademicTermStartDate string          `json:"academic_term_start_date"`
	AcademicTermEndDate   string          `json:"academic_term_end_date"`
	AcademicTermIsCurrent bool            `json:"academic_term_is_current"`
	AcademicTermStats     json.RawMessage `json:"academic_term_stats,omitempty"`
	AcademicTermCreatedAt time.Time       `json:"academic_term_created_at"`
}

func FromModel(m model.AcademicTermModel) AcademicTermResponseDTO {
	return AcademicTermResponseDTO{
		AcademicTermID:        m.AcademicTermID,
		AcademicTermName:      m.AcademicTermName,
		AcademicTermStartDate: m.AcademicTermStartDate.Format("2006-01-02"),
		AcademicTermEndDate:   m.AcademicTermEndDate.Format("2006-01-02"),
		AcademicTermIsCurrent: m.AcademicTermIsCurrent,
		AcademicTermStats:     json.RawMessage(m.AcademicTermStats),
		AcademicTermCreatedAt: m.AcademicTermCreatedAt,
	}
}

func FromModels(ms []model.AcademicTermModel) []AcademicTermResponseDTO {
	out := make([]AcademicTermResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
