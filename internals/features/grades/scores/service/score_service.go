// file: internals/features/grades/scores/service/score_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/grades/scores/model"
)

// ScoreOutOfRangeError membawa pesan penolakan yang menjelaskan batasnya.
type ScoreOutOfRangeError struct {
	Value    float64
	MaxScore float64
}

func (e *ScoreOutOfRangeError) Error() string {
	return fmt.Sprintf("nilai %.2f di luar rentang 0..%.2f", e.Value, e.MaxScore)
}

// UpsertScore menulis nilai satu siswa untuk satu assignment:
//   - nilai di luar [0, maxScore] ditolak tanpa ada yang tertulis
//   - baris yang sudah ada hanya di-update kalau nilainya benar berubah
//
// Mengembalikan baris akhir dan flag apakah terjadi penulisan.
func UpsertScore(tx *gorm.DB, studentID, assignmentID uuid.UUID, value, maxScore float64, recordedBy uuid.UUID) (*model.ScoreModel, bool, error) {
	if value < 0 || value > maxScore {
		return nil, false, &ScoreOutOfRangeError{Value: value, MaxScore: maxScore}
	}

	var existing model.ScoreModel
	err := tx.First(&existing,
		"score_student_id = ? AND score_assignment_id = ?", studentID, assignmentID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := &model.ScoreModel{
			ScoreStudentID:    studentID,
			ScoreAssignmentID: assignmentID,
			ScoreValue:        value,
			ScoreRecordedByID: recordedBy,
		}
		if err := tx.Create(row).Error; err != nil {
			return nil, false, err
		}
		return row, true, nil
	case err != nil:
		return nil, false, err
	}

	if existing.ScoreValue == value {
		// tidak ada perubahan, jangan sentuh recorded_by/updated_at
		return &existing, false, nil
	}

	if err := tx.Model(&existing).Updates(map[string]any{
		"score_value":          value,
		"score_recorded_by_id": recordedBy,
	}).Error; err != nil {
		return nil, false, err
	}
	existing.ScoreValue = value
	existing.ScoreRecordedByID = recordedBy
	return &existing, true, nil
}
