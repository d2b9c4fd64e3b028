// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `gorm:"type:uuid;primaryKey;column:subject_id" json:"subject_id"`

	// Identitas
	SubjectName string  `gorm:"type:varchar(120);not null;uniqueIndex:uq_subjects_name;column:subject_name" json:"subject_name"`
	SubjectCode *string `gorm:"type:varchar(40);uniqueIndex:uq_subjects_code;column:subject_code"           json:"subject_code,omitempty"`
	SubjectSlug string  `gorm:"type:varchar(160);not null;uniqueIndex:uq_subjects_slug;column:subject_slug" json:"subject_slug"`
	SubjectDesc *string `gorm:"type:text;column:subject_desc"                                               json:"subject_desc,omitempty"`

	// Status & audit
	SubjectIsActive  bool           `gorm:"not null;default:true;column:subject_is_active" json:"subject_is_active"`
	SubjectCreatedAt time.Time      `gorm:"autoCreateTime;column:subject_created_at"       json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"autoUpdateTime;column:subject_updated_at"       json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index"                json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.SubjectName = strings.TrimSpace(m.SubjectName)
	if m.SubjectCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*m.SubjectCode))
		if code == "" {
			m.SubjectCode = nil
		} else {
			m.SubjectCode = &code
		}
	}
	return nil
}
