// file: internals/features/grades/scores/model/score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreModel: satu nilai per (student, assignment).
type ScoreModel struct {
	ScoreID uuid.UUID `gorm:"type:uuid;primaryKey;column:score_id" json:"score_id"`

	ScoreStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_scores_student_assignment;column:score_student_id"    json:"score_student_id"`
	ScoreAssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_scores_student_assignment;column:score_assignment_id" json:"score_assignment_id"`

	// 0 <= value <= assignment.max_score, dicek sebelum tulis
	ScoreValue float64 `gorm:"not null;column:score_value" json:"score_value"`

	ScoreRecordedByID uuid.UUID `gorm:"type:uuid;not null;column:score_recorded_by_id" json:"score_recorded_by_id"`

	ScoreCreatedAt time.Time      `gorm:"autoCreateTime;column:score_created_at" json:"score_created_at"`
	ScoreUpdatedAt time.Time      `gorm:"autoUpdateTime;column:score_updated_at" json:"score_updated_at"`
	ScoreDeletedAt gorm.DeletedAt `gorm:"column:score_deleted_at;index"          json:"score_deleted_at,omitempty"`
}

func (ScoreModel) TableName() string { return "scores" }

func (m *ScoreModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScoreID == uuid.Nil {
		m.ScoreID = uuid.New()
	}
	return nil
}
