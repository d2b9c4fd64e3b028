// file: internals/features/school/students/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	// Akun login siswa & akun orang tua (dua-duanya opsional)
	StudentUserID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_students_user;column:student_user_id" json:"student_user_id,omitempty"`
	StudentParentID *uuid.UUID `gorm:"type:uuid;index;column:student_parent_id"                      json:"student_parent_id,omitempty"`

	// Identitas: kombinasi nama + tanggal lahir harus unik
	StudentFirstName   string    `gorm:"type:varchar(80);not null;uniqueIndex:uq_students_identity;column:student_first_name" json:"student_first_name"`
	StudentLastName    string    `gorm:"type:varchar(80);not null;uniqueIndex:uq_students_identity;column:student_last_name"  json:"student_last_name"`
	StudentDateOfBirth time.Time `gorm:"type:date;not null;uniqueIndex:uq_students_identity;column:student_date_of_birth"     json:"student_date_of_birth"`

	StudentRegNumber *string `gorm:"type:varchar(40);uniqueIndex:uq_students_reg;column:student_reg_number" json:"student_reg_number,omitempty"`
	StudentGender    string  `gorm:"type:varchar(1);not null;column:student_gender"                         json:"student_gender"`

	StudentCurrentClassID *uuid.UUID `gorm:"type:uuid;index;column:student_current_class_id" json:"student_current_class_id,omitempty"`

	StudentAdmissionDate *time.Time `gorm:"type:date;column:student_admission_date" json:"student_admission_date,omitempty"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index"          json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentFirstName = strings.TrimSpace(m.StudentFirstName)
	m.StudentLastName = strings.TrimSpace(m.StudentLastName)
	m.StudentGender = strings.ToUpper(strings.TrimSpace(m.StudentGender))
	return nil
}

func (m *StudentModel) FullName() string {
	return strings.TrimSpace(m.StudentFirstName + " " + m.StudentLastName)
}
