// file: internals/features/grades/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/grades/assignments/model"
)

/* ========== REQUEST ========== */

type AssignmentCreateDTO struct {
	AssignmentTitle     string    `json:"assignment_title" validate:"required,min=2,max=200"`
	AssignmentSubjectID uuid.UUID `json:"assignment_subject_id" validate:"required"`
	AssignmentClassID   uuid.UUID `json:"assignment_class_id" validate:"required"`
	AssignmentTermID    uuid.UUID `json:"assignment_term_id" validate:"required"`
	AssignmentMaxScore  float64   `json:"assignment_max_score" validate:"required,gt=0"`
	AssignmentDateGiven *string   `json:"assignment_date_given" validate:"omitempty,datetime=2006-01-02"`
	AssignmentDueDate   *string   `json:"assignment_due_date" validate:"omitempty,datetime=2006-01-02"`
}

type AssignmentUpdateDTO struct {
	AssignmentTitle    *string  `json:"assignment_title" validate:"omitempty,min=2,max=200"`
	AssignmentMaxScore *float64 `json:"assignment_max_score" validate:"omitempty,gt=0"`
	AssignmentDueDate  *string  `json:"assignment_due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (d *AssignmentCreateDTO) Normalize() {
	d.AssignmentTitle = strings.TrimSpace(d.AssignmentTitle)
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

func (d *AssignmentCreateDTO) ToModel(teacherID uuid.UUID) *model.AssignmentModel {
	m := &model.AssignmentModel{
		AssignmentTitle:     d.AssignmentTitle,
		AssignmentSubjectID: d.AssignmentSubjectID,
		AssignmentClassID:   d.AssignmentClassID,
		AssignmentTermID:    d.AssignmentTermID,
		AssignmentMaxScore:  d.AssignmentMaxScore,
		AssignmentTeacherID: teacherID,
		AssignmentDueDate:   parseDatePtr(d.AssignmentDueDate),
	}
	if t := parseDatePtr(d.AssignmentDateGiven); t != nil {
		m.AssignmentDateGiven = *t
	}
	return m
}

/* ========== QUESTION REQUEST ========== */

type ChoiceInputDTO struct {
	ChoiceText      string `json:"choice_text" validate:"required,min=1"`
	ChoiceIsCorrect bool   `json:"choice_is_correct"`
}

type QuestionInputDTO struct {
	QuestionOrder   int              `json:"question_order" validate:"omitempty,min=1"`
	QuestionText    string           `json:"question_text" validate:"required,min=1"`
	QuestionPoints  float64          `json:"question_points" validate:"required,gt=0"`
	QuestionChoices []ChoiceInputDTO `json:"question_choices" validate:"required,min=2,dive"`
}

// CorrectCount menghitung jumlah choice yang ditandai benar.
func (d *QuestionInputDTO) CorrectCount() int {
	n := 0
	for _, ch := range d.QuestionChoices {
		if ch.ChoiceIsCorrect {
			n++
		}
	}
	return n
}

func (d *QuestionInputDTO) ToModel(assignmentID uuid.UUID) *model.QuestionModel {
	order := d.QuestionOrder
	if order < 1 {
		order = 1
	}
	q := &model.QuestionModel{
		QuestionAssignmentID: assignmentID,
		QuestionOrder:        order,
		QuestionText:         strings.TrimSpace(d.QuestionText),
		QuestionPoints:       d.QuestionPoints,
	}
	for _, ch := range d.QuestionChoices {
		q.QuestionChoices = append(q.QuestionChoices, model.ChoiceModel{
			ChoiceText:      strings.TrimSpace(ch.ChoiceText),
			ChoiceIsCorrect: ch.ChoiceIsCorrect,
		})
	}
	return q
}

/* ========== RESPONSE ========== */

type AssignmentResponseDTO struct {
	AssignmentID        uuid.UUID  `json:"assignment_id"`
	AssignmentTitle     string     `json:"assignment_title"`
	AssignmentSubjectID uuid.UUID  `json:"assignment_subject_id"`
	AssignmentClassID   uuid.UUID  `json:"assignment_class_id"`
	AssignmentTermID    uuid.UUID  `json:"assignment_term_id"`
	AssignmentMaxScore  float64    `json:"assignment_max_score"`
	AssignmentDateGiven string     `json:"assignment_date_given"`
	AssignmentDueDate   *string    `json:"assignment_due_date,omitempty"`
	AssignmentTeacherID uuid.UUID  `json:"assignment_teacher_id"`
	AssignmentCreatedAt time.Time  `json:"assignment_created_at"`
}

func FromModel(m model.AssignmentModel) AssignmentResponseDTO {
	var due *string
	if m.AssignmentDueDate != nil {
		s := m.AssignmentDueDate.Format("2006-01-02")
		due = &s
	}
	return AssignmentResponseDTO{
		AssignmentID:        m.AssignmentID,
		AssignmentTitle:     m.AssignmentTitle,
		AssignmentSubjectID: m.AssignmentSubjectID,
		AssignmentClassID:   m.AssignmentClassID,
		AssignmentTermID:    m.AssignmentTermID,
		AssignmentMaxScore:  m.AssignmentMaxScore,
		AssignmentDateGiven: m.AssignmentDateGiven.Format("2006-01-02"),
		AssignmentDueDate:   due,
		AssignmentTeacherID: m.AssignmentTeacherID,
		AssignmentCreatedAt: m.AssignmentCreatedAt,
	}
}

func FromModels(ms []model.AssignmentModel) []AssignmentResponseDTO {
	out := make([]AssignmentResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
