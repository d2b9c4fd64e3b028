// file: internals/features/grades/scores/dto/score_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/grades/scores/model"
)

/* ========== REQUEST ========== */

type ScoreUpsertDTO struct {
	ScoreStudentID    uuid.UUID `json:"score_student_id" validate:"required"`
	ScoreAssignmentID uuid.UUID `json:"score_assignment_id" validate:"required"`
	ScoreValue        float64   `json:"score_value" validate:"min=0"`
}

// ScoreBatchEntryDTO adalah satu baris pada entry nilai massal.
type ScoreBatchEntryDTO struct {
	ScoreStudentID uuid.UUID `json:"score_student_id" validate:"required"`
	ScoreValue     float64   `json:"score_value" validate:"min=0"`
}

// ScoreBatchDTO: seluruh kelas untuk satu assignment sekali kirim.
type ScoreBatchDTO struct {
	ScoreAssignmentID uuid.UUID            `json:"score_assignment_id" validate:"required"`
	Entries           []ScoreBatchEntryDTO `json:"entries" validate:"required,min=1,dive"`
}

/* ========== RESPONSE ========== */

type ScoreResponseDTO struct {
	ScoreID           uuid.UUID `json:"score_id"`
	ScoreStudentID    uuid.UUID `json:"score_student_id"`
	ScoreAssignmentID uuid.UUID `json:"score_assignment_id"`
	ScoreValue        float64   `json:"score_value"`
	ScoreRecordedByID uuid.UUID `json:"score_recorded_by_id"`
	ScoreUpdatedAt    time.Time `json:"score_updated_at"`
}

func FromModel(m model.ScoreModel) ScoreResponseDTO {
	return ScoreResponseDTO{
		ScoreID:           m.ScoreID,
		ScoreStudentID:    m.ScoreStudentID,
		ScoreAssignmentID: m.ScoreAssignmentID,
		ScoreValue:        m.ScoreValue,
		ScoreRecordedByID: m.ScoreRecordedByID,
		ScoreUpdatedAt:    m.ScoreUpdatedAt,
	}
}

func FromModels(ms []model.ScoreModel) []ScoreResponseDTO {
	out := make([]ScoreResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
