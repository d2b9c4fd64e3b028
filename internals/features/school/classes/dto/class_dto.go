// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/classes/model"
)

/* ========== REQUEST ========== */

type ClassCreateDTO struct {
	ClassName      string     `json:"class_name" validate:"required,min=1,max=120"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id" validate:"omitempty"`
}

type ClassUpdateDTO struct {
	ClassName      *string    `json:"class_name" validate:"omitempty,min=1,max=120"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id" validate:"omitempty"`
	ClearTeacher   bool       `json:"clear_teacher"`
}

func (d *ClassCreateDTO) Normalize() {
	d.ClassName = strings.TrimSpace(d.ClassName)
}

func (d *ClassCreateDTO) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:      d.ClassName,
		ClassTeacherID: d.ClassTeacherID,
	}
}

func (d *ClassUpdateDTO) ApplyUpdates(m *model.ClassModel) {
	if d.ClassName != nil {
		m.ClassName = strings.TrimSpace(*d.ClassName)
	}
	if d.ClearTeacher {
		m.ClassTeacherID = nil
	} else if d.ClassTeacherID != nil {
		m.ClassTeacherID = d.ClassTeacherID
	}
}

/* ========== RESPONSE ========== */

type ClassResponseDTO struct {
	ClassID        uuid.UUID  `json:"class_id"`
	ClassName      string     `json:"class_name"`
	ClassSlug      string     `json:"class_slug"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty"`
	StudentCount   *int64     `json:"student_count,omitempty"`
	ClassCreatedAt time.Time  `json:"class_created_at"`
}

func FromModel(m model.ClassModel) ClassResponseDTO {
	return ClassResponseDTO{
		ClassID:        m.ClassID,
		ClassName:      m.ClassName,
		ClassSlug:      m.ClassSlug,
		ClassTeacherID: m.ClassTeacherID,
		ClassCreatedAt: m.ClassCreatedAt,
	}
}

func FromModels(ms []model.ClassModel) []ClassResponseDTO {
	out := make([]ClassResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
