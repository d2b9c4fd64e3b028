// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "schoolku_backend/internals/features/school/subjects/model"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_id" json:"teacher_id"`

	// Satu user hanya boleh punya satu profil teacher
	TeacherUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teachers_user;column:teacher_user_id" json:"teacher_user_id"`

	TeacherStaffID      string     `gorm:"type:varchar(40);not null;uniqueIndex:uq_teachers_staff;column:teacher_staff_id" json:"teacher_staff_id"`
	TeacherDateEmployed *time.Time `gorm:"type:date;column:teacher_date_employed"                                          json:"teacher_date_employed,omitempty"`

	// Mapel yang diampu
	TeacherSubjects []subjectModel.SubjectModel `gorm:"many2many:teacher_subjects;foreignKey:TeacherID;joinForeignKey:TeacherID;References:SubjectID;joinReferences:SubjectID" json:"teacher_subjects,omitempty"`

	// Audit
	TeacherCreatedAt time.Time      `gorm:"autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index"          json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}

func (m *TeacherModel) BeforeSave(tx *gorm.DB) error {
	m.TeacherStaffID = strings.ToUpper(strings.TrimSpace(m.TeacherStaffID))
	return nil
}
