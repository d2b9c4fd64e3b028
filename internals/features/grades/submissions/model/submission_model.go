// file: internals/features/grades/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionModel: satu pengumpulan per (assignment, student).
type SubmissionModel struct {
	SubmissionID uuid.UUID `gorm:"type:uuid;primaryKey;column:submission_id" json:"submission_id"`

	SubmissionAssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student;column:submission_assignment_id" json:"submission_assignment_id"`
	SubmissionStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_assignment_student;column:submission_student_id"    json:"submission_student_id"`

	SubmissionText    *string `gorm:"type:text;column:submission_text"     json:"submission_text,omitempty"`
	SubmissionFileURL *string `gorm:"type:text;column:submission_file_url" json:"submission_file_url,omitempty"`

	// Jawaban MCQ: map question_id -> choice_id
	SubmissionAnswers datatypes.JSON `gorm:"column:submission_answers" json:"submission_answers,omitempty"`

	// Setelah dinilai, siswa tidak boleh mengubah submission
	SubmissionIsGraded bool       `gorm:"not null;default:false;column:submission_is_graded" json:"submission_is_graded"`
	SubmissionGradedAt *time.Time `gorm:"column:submission_graded_at"                        json:"submission_graded_at,omitempty"`

	SubmissionCreatedAt time.Time      `gorm:"autoCreateTime;column:submission_created_at" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time      `gorm:"autoUpdateTime;column:submission_updated_at" json:"submission_updated_at"`
	SubmissionDeletedAt gorm.DeletedAt `gorm:"column:submission_deleted_at;index"          json:"submission_deleted_at,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (m *SubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubmissionID == uuid.Nil {
		m.SubmissionID = uuid.New()
	}
	return nil
}
