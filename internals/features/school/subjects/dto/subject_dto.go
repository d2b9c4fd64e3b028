// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/subjects/model"
)

/* ========== REQUEST ========== */

type SubjectCreateDTO struct {
	SubjectName string  `json:"subject_name" validate:"required,min=2,max=120"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,max=40"`
	SubjectDesc *string `json:"subject_desc" validate:"omitempty"`
}

type SubjectUpdateDTO struct {
	SubjectName     *string `json:"subject_name" validate:"omitempty,min=2,max=120"`
	SubjectCode     *string `json:"subject_code" validate:"omitempty,max=40"`
	SubjectDesc     *string `json:"subject_desc" validate:"omitempty"`
	SubjectIsActive *bool   `json:"subject_is_active" validate:"omitempty"`
}

func (d *SubjectCreateDTO) Normalize() {
	d.SubjectName = strings.TrimSpace(d.SubjectName)
}

func (d *SubjectCreateDTO) ToModel() *model.SubjectModel {
	return &model.SubjectModel{
		SubjectName:     d.SubjectName,
		SubjectCode:     d.SubjectCode,
		SubjectDesc:     d.SubjectDesc,
		SubjectIsActive: true,
	}
}

func (d *SubjectUpdateDTO) ApplyUpdates(m *model.SubjectModel) {
	if d.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*d.SubjectName)
	}
	if d.SubjectCode != nil {
		m.SubjectCode = d.SubjectCode
	}
	if d.SubjectDesc != nil {
		m.SubjectDesc = d.SubjectDesc
	}
	if d.SubjectIsActive != nil {
		m.SubjectIsActive = *d.SubjectIsActive
	}
}

/* ========== RESPONSE ========== */

type SubjectResponseDTO struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectName     string    `json:"subject_name"`
	SubjectCode     *string   `json:"subject_code,omitempty"`
	SubjectSlug     string    `json:"subject_slug"`
	SubjectDesc     *string   `json:"subject_desc,omitempty"`
	SubjectIsActive bool      `json:"subject_is_active"`
	SubjectCreated  time.Time `json:"subject_created_at"`
}

func FromModel(m model.SubjectModel) SubjectResponseDTO {
	return SubjectResponseDTO{
		SubjectID:       m.SubjectID,
		SubjectName:     m.SubjectName,
		SubjectCode:     m.SubjectCode,
		SubjectSlug:     m.SubjectSlug,
		SubjectDesc:     m.SubjectDesc,
		SubjectIsActive: m.SubjectIsActive,
		SubjectCreated:  m.SubjectCreatedAt,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponseDTO {
	out := make([]SubjectResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
