// file: internals/features/attendance/attendance/controller/attendance_controller_test.go
package controller

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/attendance/attendance/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.AttendanceModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMarkOneCreates(t *testing.T) {
	db := setupDB(t)
	studentID, classID, teacherID := uuid.New(), uuid.New(), uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	wrote, err := markOne(db, studentID, classID, date, model.StatusPresent, teacherID)
	if err != nil {
		t.Fatalf("markOne: %v", err)
	}
	if !wrote {
		t.Fatalf("insert pertama harus menulis")
	}

	var count int64
	db.Model(&model.AttendanceModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("jumlah baris harus 1, dapat %d", count)
	}
}

func TestMarkOneNoOpWhenStatusUnchanged(t *testing.T) {
	db := setupDB(t)
	studentID, classID := uuid.New(), uuid.New()
	teacherA, teacherB := uuid.New(), uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	if _, err := markOne(db, studentID, classID, date, model.StatusLate, teacherA); err != nil {
		t.Fatalf("markOne awal: %v", err)
	}

	var before model.AttendanceModel
	if err := db.First(&before, "attendance_student_id = ?", studentID).Error; err != nil {
		t.Fatalf("baca baris: %v", err)
	}

	// status sama, tidak boleh ada tulis ulang
	wrote, err := markOne(db, studentID, classID, date, model.StatusLate, teacherB)
	if err != nil {
		t.Fatalf("markOne ulang: %v", err)
	}
	if wrote {
		t.Fatalf("status sama tidak boleh dianggap menulis")
	}

	var after model.AttendanceModel
	if err := db.First(&after, "attendance_student_id = ?", studentID).Error; err != nil {
		t.Fatalf("baca ulang: %v", err)
	}
	if after.AttendanceRecordedByID != teacherA {
		t.Fatalf("recorded_by tidak boleh berubah saat no-op")
	}
	if !after.AttendanceUpdatedAt.Equal(before.AttendanceUpdatedAt) {
		t.Fatalf("updated_at tidak boleh berubah saat no-op")
	}
}

func TestMarkOneUpdatesWhenStatusChanged(t *testing.T) {
	db := setupDB(t)
	studentID, classID := uuid.New(), uuid.New()
	teacherA, teacherB := uuid.New(), uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	if _, err := markOne(db, studentID, classID, date, model.StatusAbsent, teacherA); err != nil {
		t.Fatalf("markOne awal: %v", err)
	}

	wrote, err := markOne(db, studentID, classID, date, model.StatusExcused, teacherB)
	if err != nil {
		t.Fatalf("markOne update: %v", err)
	}
	if !wrote {
		t.Fatalf("perubahan status harus menulis")
	}

	var row model.AttendanceModel
	if err := db.First(&row, "attendance_student_id = ?", studentID).Error; err != nil {
		t.Fatalf("baca baris: %v", err)
	}
	if row.AttendanceStatus != model.StatusExcused {
		t.Fatalf("status harus %s, dapat %s", model.StatusExcused, row.AttendanceStatus)
	}
	if row.AttendanceRecordedByID != teacherB {
		t.Fatalf("recorded_by harus pencatat terakhir")
	}

	var count int64
	db.Model(&model.AttendanceModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("update tidak boleh menambah baris, dapat %d", count)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{model.StatusPresent, model.StatusAbsent, model.StatusLate, model.StatusExcused} {
		if !model.ValidStatus(s) {
			t.Fatalf("status %q harus valid", s)
		}
	}
	for _, s := range []string{"", "X", "present", "PA"} {
		if model.ValidStatus(s) {
			t.Fatalf("status %q harus ditolak", s)
		}
	}
}
