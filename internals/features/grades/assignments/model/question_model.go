// file: internals/features/grades/assignments/model/question_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionModel adalah soal pilihan ganda milik satu assignment.
// Tepat satu choice harus benar; validasi dilakukan di controller
// sebelum tulis.
type QuestionModel struct {
	QuestionID           uuid.UUID `gorm:"type:uuid;primaryKey;column:question_id" json:"question_id"`
	QuestionAssignmentID uuid.UUID `gorm:"type:uuid;not null;index;column:question_assignment_id" json:"question_assignment_id"`

	QuestionOrder  int     `gorm:"not null;default:1;column:question_order"  json:"question_order"`
	QuestionText   string  `gorm:"type:text;not null;column:question_text"   json:"question_text"`
	QuestionPoints float64 `gorm:"not null;column:question_points"           json:"question_points"`

	QuestionChoices []ChoiceModel `gorm:"foreignKey:ChoiceQuestionID;references:QuestionID" json:"question_choices,omitempty"`

	QuestionCreatedAt time.Time      `gorm:"autoCreateTime;column:question_created_at" json:"question_created_at"`
	QuestionUpdatedAt time.Time      `gorm:"autoUpdateTime;column:question_updated_at" json:"question_updated_at"`
	QuestionDeletedAt gorm.DeletedAt `gorm:"column:question_deleted_at;index"          json:"question_deleted_at,omitempty"`
}

func (QuestionModel) TableName() string { return "assignment_questions" }

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionID == uuid.Nil {
		m.QuestionID = uuid.New()
	}
	return nil
}

func (m *QuestionModel) BeforeSave(tx *gorm.DB) error {
	m.QuestionText = strings.TrimSpace(m.QuestionText)
	return nil
}

type ChoiceModel struct {
	ChoiceID         uuid.UUID `gorm:"type:uuid;primaryKey;column:choice_id" json:"choice_id"`
	ChoiceQuestionID uuid.UUID `gorm:"type:uuid;not null;index;column:choice_question_id" json:"choice_question_id"`

	ChoiceText      string `gorm:"type:text;not null;column:choice_text"            json:"choice_text"`
	ChoiceIsCorrect bool   `gorm:"not null;default:false;column:choice_is_correct"  json:"choice_is_correct"`

	ChoiceCreatedAt time.Time `gorm:"autoCreateTime;column:choice_created_at" json:"choice_created_at"`
}

func (ChoiceModel) TableName() string { return "assignment_question_choices" }

func (m *ChoiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChoiceID == uuid.Nil {
		m.ChoiceID = uuid.New()
	}
	return nil
}
