// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	subjectDTO "schoolku_backend/internals/features/school/subjects/dto"
	"schoolku_backend/internals/features/school/teachers/model"
)

/* ========== REQUEST ========== */

type TeacherCreateDTO struct {
	TeacherUserID       uuid.UUID   `json:"teacher_user_id" validate:"required"`
	TeacherStaffID      string      `json:"teacher_staff_id" validate:"required,min=2,max=40"`
	TeacherDateEmployed *string     `json:"teacher_date_employed" validate:"omitempty,datetime=2006-01-02"`
	TeacherSubjectIDs   []uuid.UUID `json:"teacher_subject_ids" validate:"omitempty,dive,required"`
}

type TeacherUpdateDTO struct {
	TeacherStaffID      *string      `json:"teacher_staff_id" validate:"omitempty,min=2,max=40"`
	TeacherDateEmployed *string      `json:"teacher_date_employed" validate:"omitempty,datetime=2006-01-02"`
	TeacherSubjectIDs   *[]uuid.UUID `json:"teacher_subject_ids" validate:"omitempty,dive,required"`
}

func ParseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

/* ========== RESPONSE ========== */

type TeacherResponseDTO struct {
	TeacherID           uuid.UUID                       `json:"teacher_id"`
	TeacherUserID       uuid.UUID                       `json:"teacher_user_id"`
	TeacherName         string                          `json:"teacher_name,omitempty"`
	TeacherStaffID      string                          `json:"teacher_staff_id"`
	TeacherDateEmployed *time.Time                      `json:"teacher_date_employed,omitempty"`
	TeacherSubjects     []subjectDTO.SubjectResponseDTO `json:"teacher_subjects"`
	TeacherCreatedAt    time.Time                       `json:"teacher_created_at"`
}

func FromModel(m model.TeacherModel, teacherName string) TeacherResponseDTO {
	return TeacherResponseDTO{
		TeacherID:           m.TeacherID,
		TeacherUserID:       m.TeacherUserID,
		TeacherName:         teacherName,
		TeacherStaffID:      m.TeacherStaffID,
		TeacherDateEmployed: m.TeacherDateEmployed,
		TeacherSubjects:     subjectDTO.FromModels(m.TeacherSubjects),
		TeacherCreatedAt:    m.TeacherCreatedAt,
	}
}
