// file: internals/features/grades/submissions/dto/submission_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/grades/submissions/model"
)

/* ========== REQUEST ========== */

type SubmissionCreateDTO struct {
	SubmissionAssignmentID uuid.UUID `json:"submission_assignment_id" validate:"required"`
	SubmissionText         *string   `json:"submission_text" validate:"omitempty"`
	SubmissionFileURL      *string   `json:"submission_file_url" validate:"omitempty,url"`

	// jawaban MCQ: question_id -> choice_id
	SubmissionAnswers map[uuid.UUID]uuid.UUID `json:"submission_answers" validate:"omitempty"`
}

/* ========== RESPONSE ========== */

type SubmissionResponseDTO struct {
	SubmissionID           uuid.UUID       `json:"submission_id"`
	SubmissionAssignmentID uuid.UUID       `json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID       `json:"submission_student_id"`
	SubmissionText         *string         `json:"submission_text,omitempty"`
	SubmissionFileURL      *string         `json:"submission_file_url,omitempty"`
	SubmissionAnswers      json.RawMessage `json:"submission_answers,omitempty"`
	SubmissionIsGraded     bool            `json:"submission_is_graded"`
	SubmissionGradedAt     *time.Time      `json:"submission_graded_at,omitempty"`
	SubmissionCreatedAt    time.Time       `json:"submission_created_at"`
}

func FromModel(m model.SubmissionModel) SubmissionResponseDTO {
	return SubmissionResponseDTO{
		SubmissionID:           m.SubmissionID,
		SubmissionAssignmentID: m.SubmissionAssignmentID,
		SubmissionStudentID:    m.SubmissionStudentID,
		SubmissionText:         m.SubmissionText,
		SubmissionFileURL:      m.SubmissionFileURL,
		SubmissionAnswers:      json.RawMessage(m.SubmissionAnswers),
		SubmissionIsGraded:     m.SubmissionIsGraded,
		SubmissionGradedAt:     m.SubmissionGradedAt,
		SubmissionCreatedAt:    m.SubmissionCreatedAt,
	}
}

func FromModels(ms []model.SubmissionModel) []SubmissionResponseDTO {
	out := make([]SubmissionResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
