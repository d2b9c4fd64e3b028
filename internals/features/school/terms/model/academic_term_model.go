// file: internals/features/school/terms/model/academic_term_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AcademicTermModel struct {
	// PK
	AcademicTermID uuid.UUID `gorm:"type:uuid;primaryKey;column:academic_term_id" json:"academic_term_id"`

	AcademicTermName      string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_academic_terms_name;column:academic_term_name" json:"academic_term_name"`
	AcademicTermStartDate time.Time `gorm:"type:date;not null;column:academic_term_start_date"                                      json:"academic_term_start_date"`
	AcademicTermEndDate   time.Time `gorm:"type:date;not null;column:academic_term_end_date"                                        json:"academic_term_end_date"`

	// Hanya satu term yang boleh current; SetCurrent menegakkannya.
	AcademicTermIsCurrent bool `gorm:"not null;default:false;index;column:academic_term_is_current" json:"academic_term_is_current"`

	// Snapshot agregat untuk dashboard (diisi on demand)
	AcademicTermStats datatypes.JSON `gorm:"column:academic_term_stats" json:"academic_term_stats,omitempty"`

	// Audit
	AcademicTermCreatedAt time.Time      `gorm:"autoCreateTime;column:academic_term_created_at" json:"academic_term_created_at"`
	AcademicTermUpdatedAt time.Time      `gorm:"autoUpdateTime;column:academic_term_updated_at" json:"academic_term_updated_at"`
	AcademicTermDeletedAt gorm.DeletedAt `gorm:"column:academic_term_deleted_at;index"          json:"academic_term_deleted_at,omitempty"`
}

func (AcademicTermModel) TableName() string { return "academic_terms" }

func (m *AcademicTermModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademicTermID == uuid.Nil {
		m.AcademicTermID = uuid.New()
	}
	return nil
}

func (m *AcademicTermModel) BeforeSave(tx *gorm.DB) error {
	m.AcademicTermName = strings.TrimSpace(m.AcademicTermName)
	return nil
}
