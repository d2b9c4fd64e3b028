// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

/* ========== REQUEST ========== */

type StudentCreateDTO struct {
	StudentFirstName   string  `json:"student_first_name" validate:"required,min=1,max=80"`
	StudentLastName    string  `json:"student_last_name" validate:"required,min=1,max=80"`
	StudentDateOfBirth string  `json:"student_date_of_birth" validate:"required,datetime=2006-01-02"`
	StudentGender      string  `json:"student_gender" validate:"required,oneof=M F"`
	StudentRegNumber   *string `json:"student_reg_number" validate:"omitempty,max=40"`

	StudentUserID         *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentParentID       *uuid.UUID `json:"student_parent_id" validate:"omitempty"`
	StudentCurrentClassID *uuid.UUID `json:"student_current_class_id" validate:"omitempty"`
	StudentAdmissionDate  *string    `json:"student_admission_date" validate:"omitempty,datetime=2006-01-02"`
}

type StudentUpdateDTO struct {
	StudentFirstName   *string `json:"student_first_name" validate:"omitempty,min=1,max=80"`
	StudentLastName    *string `json:"student_last_name" validate:"omitempty,min=1,max=80"`
	StudentDateOfBirth *string `json:"student_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	StudentGender      *string `json:"student_gender" validate:"omitempty,oneof=M F"`
	StudentRegNumber   *string `json:"student_reg_number" validate:"omitempty,max=40"`

	StudentUserID         *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentParentID       *uuid.UUID `json:"student_parent_id" validate:"omitempty"`
	StudentCurrentClassID *uuid.UUID `json:"student_current_class_id" validate:"omitempty"`
	StudentAdmissionDate  *string    `json:"student_admission_date" validate:"omitempty,datetime=2006-01-02"`
	ClearCurrentClass     bool       `json:"clear_current_class"`
	ClearParent           bool       `json:"clear_parent"`
}

func (d *StudentCreateDTO) Normalize() {
	d.StudentFirstName = strings.TrimSpace(d.StudentFirstName)
	d.StudentLastName = strings.TrimSpace(d.StudentLastName)
	d.StudentGender = strings.ToUpper(strings.TrimSpace(d.StudentGender))
}

func mustDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func (d *StudentCreateDTO) ToModel() *model.StudentModel {
	return &model.StudentModel{
		StudentFirstName:      d.StudentFirstName,
		StudentLastName:       d.StudentLastName,
		StudentDateOfBirth:    mustDate(d.StudentDateOfBirth),
		StudentGender:         d.StudentGender,
		StudentRegNumber:      d.StudentRegNumber,
		StudentUserID:         d.StudentUserID,
		StudentParentID:       d.StudentParentID,
		StudentCurrentClassID: d.StudentCurrentClassID,
		StudentAdmissionDate:  parseDatePtr(d.StudentAdmissionDate),
	}
}

func (d *StudentUpdateDTO) ApplyUpdates(m *model.StudentModel) {
	if d.StudentFirstName != nil {
		m.StudentFirstName = strings.TrimSpace(*d.StudentFirstName)
	}
	if d.StudentLastName != nil {
		m.StudentLastName = strings.TrimSpace(*d.StudentLastName)
	}
	if d.StudentDateOfBirth != nil {
		if t := parseDatePtr(d.StudentDateOfBirth); t != nil {
			m.StudentDateOfBirth = *t
		}
	}
	if d.StudentGender != nil {
		m.StudentGender = strings.ToUpper(strings.TrimSpace(*d.StudentGender))
	}
	if d.StudentRegNumber != nil {
		m.StudentRegNumber = d.StudentRegNumber
	}
	if d.StudentUserID != nil {
		m.StudentUserID = d.StudentUserID
	}
	if d.ClearParent {
		m.StudentParentID = nil
	} else if d.StudentParentID != nil {
		m.StudentParentID = d.StudentParentID
	}
	if d.ClearCurrentClass {
		m.StudentCurrentClassID = nil
	} else if d.StudentCurrentClassID != nil {
		m.StudentCurrentClassID = d.StudentCurrentClassID
	}
	if d.StudentAdmissionDate != nil {
		m.StudentAdmissionDate = parseDatePtr(d.StudentAdmissionDate)
	}
}

/* ========== RESPONSE ========== */

type StudentResponseDTO struct {
	StudentID             uuid.UUID  `json:"student_id"`
	StudentFullName       string     `json:"student_full_name"`
	StudentFirstName      string     `json:"student_first_name"`
	StudentLastName       string     `json:"student_last_name"`
	StudentDateOfBirth    string     `json:"student_date_of_birth"`
	StudentGender         string     `json:"student_gender"`
	StudentRegNumber      *string    `json:"student_reg_number,omitempty"`
	StudentUserID         *uuid.UUID `json:"student_user_id,omitempty"`
	StudentParentID       *uuid.UUID `json:"student_parent_id,omitempty"`
	StudentCurrentClassID *uuid.UUID `json:"student_current_class_id,omitempty"`
	StudentAdmissionDate  *string    `json:"student_admission_date,omitempty"`
	StudentCreatedAt      time.Time  `json:"student_created_at"`
}

func FromModel(m model.StudentModel) StudentResponseDTO {
	var admission *string
	if m.StudentAdmissionDate != nil {
		s := m.StudentAdmissionDate.Format("2006-01-02")
		admission = &s
	}
	return StudentResponseDTO{
		StudentID:             m.StudentID,
		StudentFullName:       m.FullName(),
		StudentFirstName:      m.StudentFirstName,
		StudentLastName:       m.StudentLastName,
		StudentDateOfBirth:    m.StudentDateOfBirth.Format("2006-01-02"),
		StudentGender:         m.StudentGender,
		StudentRegNumber:      m.StudentRegNumber,
		StudentUserID:         m.StudentUserID,
		StudentParentID:       m.StudentParentID,
		StudentCurrentClassID: m.StudentCurrentClassID,
		StudentAdmissionDate:  admission,
		StudentCreatedAt:      m.StudentCreatedAt,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponseDTO {
	out := make([]StudentResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
