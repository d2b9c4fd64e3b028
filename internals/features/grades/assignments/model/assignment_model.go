// file: internals/features/grades/assignments/model/assignment_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentModel struct {
	// PK
	AssignmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:assignment_id" json:"assignment_id"`

	// Judul unik per (subject, class, term)
	AssignmentTitle     string    `gorm:"type:varchar(200);not null;uniqueIndex:uq_assignments_scope;column:assignment_title" json:"assignment_title"`
	AssignmentSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_scope;column:assignment_subject_id"    json:"assignment_subject_id"`
	AssignmentClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_scope;column:assignment_class_id"      json:"assignment_class_id"`
	AssignmentTermID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignments_scope;column:assignment_term_id"       json:"assignment_term_id"`

	// Nilai maksimum. Untuk assignment MCQ, kolom ini dihitung ulang dari
	// total poin pertanyaan setiap kali pertanyaan berubah.
	AssignmentMaxScore float64 `gorm:"not null;column:assignment_max_score" json:"assignment_max_score"`

	AssignmentDateGiven time.Time  `gorm:"type:date;not null;column:assignment_date_given" json:"assignment_date_given"`
	AssignmentDueDate   *time.Time `gorm:"type:date;column:assignment_due_date"            json:"assignment_due_date,omitempty"`

	// Teacher pemilik. CRUD assignment dibatasi ke pemiliknya.
	AssignmentTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:assignment_teacher_id" json:"assignment_teacher_id"`

	// Audit
	AssignmentCreatedAt time.Time      `gorm:"autoCreateTime;column:assignment_created_at" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:assignment_updated_at" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index"          json:"assignment_deleted_at,omitempty"`
}

func (AssignmentModel) TableName() string { return "assignments" }

func (m *AssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	if m.AssignmentDateGiven.IsZero() {
		m.AssignmentDateGiven = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return nil
}

func (m *AssignmentModel) BeforeSave(tx *gorm.DB) error {
	m.AssignmentTitle = strings.TrimSpace(m.AssignmentTitle)
	return nil
}
