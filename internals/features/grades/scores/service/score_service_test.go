// file: internals/features/grades/scores/service/score_service_test.go
package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/grades/scores/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.ScoreModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUpsertScoreRejectsOutOfRange(t *testing.T) {
	db := setupDB(t)
	studentID, assignmentID, teacherID := uuid.New(), uuid.New(), uuid.New()

	for _, value := range []float64{-1, 100.5} {
		_, _, err := UpsertScore(db, studentID, assignmentID, value, 100, teacherID)
		var oor *ScoreOutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("nilai %v harus ditolak dengan ScoreOutOfRangeError, dapat %v", value, err)
		}
	}

	var cnt int64
	db.Model(&model.ScoreModel{}).Count(&cnt)
	if cnt != 0 {
		t.Fatalf("penolakan tidak boleh menulis apa pun, ada %d baris", cnt)
	}
}

func TestUpsertScoreCreateThenNoOp(t *testing.T) {
	db := setupDB(t)
	studentID, assignmentID := uuid.New(), uuid.New()
	teacherA, teacherB := uuid.New(), uuid.New()

	row, wrote, err := UpsertScore(db, studentID, assignmentID, 80, 100, teacherA)
	if err != nil || !wrote {
		t.Fatalf("insert pertama harus menulis: wrote=%v err=%v", wrote, err)
	}
	firstUpdated := row.ScoreUpdatedAt

	// nilai sama: tidak boleh ada penulisan, recorded_by tetap teacherA
	row2, wrote, err := UpsertScore(db, studentID, assignmentID, 80, 100, teacherB)
	if err != nil {
		t.Fatalf("upsert kedua error: %v", err)
	}
	if wrote {
		t.Fatal("nilai tidak berubah tapi terjadi penulisan")
	}
	if row2.ScoreRecordedByID != teacherA {
		t.Fatalf("recorded_by berubah padahal nilai sama: %v", row2.ScoreRecordedByID)
	}

	var stored model.ScoreModel
	if err := db.First(&stored, "score_student_id = ?", studentID).Error; err != nil {
		t.Fatalf("baca ulang: %v", err)
	}
	if !stored.ScoreUpdatedAt.Equal(firstUpdated) {
		t.Fatalf("updated_at tersentuh padahal nilai sama: %v vs %v", stored.ScoreUpdatedAt, firstUpdated)
	}
}

func TestUpsertScoreUpdatesWhenChanged(t *testing.T) {
	db := setupDB(t)
	studentID, assignmentID := uuid.New(), uuid.New()
	teacherA, teacherB := uuid.New(), uuid.New()

	if _, _, err := UpsertScore(db, studentID, assignmentID, 60, 100, teacherA); err != nil {
		t.Fatalf("insert: %v", err)
	}

	row, wrote, err := UpsertScore(db, studentID, assignmentID, 75, 100, teacherB)
	if err != nil || !wrote {
		t.Fatalf("perubahan nilai harus menulis: wrote=%v err=%v", wrote, err)
	}
	if row.ScoreValue != 75 || row.ScoreRecordedByID != teacherB {
		t.Fatalf("update tidak diterapkan: %+v", row)
	}

	var cnt int64
	db.Model(&model.ScoreModel{}).Count(&cnt)
	if cnt != 1 {
		t.Fatalf("harus tetap 1 baris per (student, assignment), ada %d", cnt)
	}
}

func TestBatchAllOrNothing(t *testing.T) {
	db := setupDB(t)
	assignmentID, teacherID := uuid.New(), uuid.New()

	entries := []struct {
		student uuid.UUID
		value   float64
	}{
		{uuid.New(), 90},
		{uuid.New(), 85},
		{uuid.New(), 150}, // di luar rentang, seluruh batch harus batal
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			if _, _, err := UpsertScore(tx, e.student, assignmentID, e.value, 100, teacherID); err != nil {
				return fmt.Errorf("siswa %s: %w", e.student, err)
			}
		}
		return nil
	})
	if err == nil {
		t.Fatal("batch dengan nilai invalid harus gagal")
	}

	var cnt int64
	db.Model(&model.ScoreModel{}).Count(&cnt)
	if cnt != 0 {
		t.Fatalf("rollback tidak bersih, masih ada %d baris", cnt)
	}
}
