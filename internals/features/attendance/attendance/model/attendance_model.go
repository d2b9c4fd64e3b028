// file: internals/features/attendance/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "P"
	StatusAbsent  = "A"
	StatusLate    = "L"
	StatusExcused = "E"
)

// ValidStatus memeriksa kode kehadiran yang dikenal.
func ValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// AttendanceModel: satu catatan per (student, date, class).
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date_class;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date_class;column:attendance_date"       json:"attendance_date"`
	AttendanceClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date_class;column:attendance_class_id"   json:"attendance_class_id"`

	AttendanceStatus string `gorm:"type:varchar(1);not null;column:attendance_status" json:"attendance_status"`

	AttendanceRecordedByID uuid.UUID `gorm:"type:uuid;not null;column:attendance_recorded_by_id" json:"attendance_recorded_by_id"`

	AttendanceCreatedAt time.Time      `gorm:"autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"autoUpdateTime;column:attendance_updated_at" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index"          json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
