// file: internals/features/school/classes/model/class_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_id" json:"class_id"`

	// Identitas
	ClassName string `gorm:"type:varchar(120);not null;uniqueIndex:uq_classes_name;column:class_name" json:"class_name"`
	ClassSlug string `gorm:"type:varchar(160);not null;uniqueIndex:uq_classes_slug;column:class_slug" json:"class_slug"`

	// Wali kelas (opsional, satu teacher maksimal satu kelas)
	ClassTeacherID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_classes_teacher;column:class_teacher_id" json:"class_teacher_id,omitempty"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index"          json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}

func (m *ClassModel) BeforeSave(tx *gorm.DB) error {
	m.ClassName = strings.TrimSpace(m.ClassName)
	return nil
}
