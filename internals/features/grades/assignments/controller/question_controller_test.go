// file: internals/features/grades/assignments/controller/question_controller_test.go
package controller

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/grades/assignments/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.AssignmentModel{},
		&model.QuestionModel{},
		&model.ChoiceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAssignment(t *testing.T, db *gorm.DB, maxScore float64) *model.AssignmentModel {
	t.Helper()
	m := &model.AssignmentModel{
		AssignmentTitle:     "Quiz Bab 1",
		AssignmentSubjectID: uuid.New(),
		AssignmentClassID:   uuid.New(),
		AssignmentTermID:    uuid.New(),
		AssignmentMaxScore:  maxScore,
		AssignmentDateGiven: time.Now().UTC().Truncate(24 * time.Hour),
		AssignmentTeacherID: uuid.New(),
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	return m
}

func addQuestion(t *testing.T, db *gorm.DB, assignmentID uuid.UUID, points float64) *model.QuestionModel {
	t.Helper()
	q := &model.QuestionModel{
		QuestionAssignmentID: assignmentID,
		QuestionOrder:        1,
		QuestionText:         "Pilih jawaban yang benar",
		QuestionPoints:       points,
		QuestionChoices: []model.ChoiceModel{
			{ChoiceText: "Benar", ChoiceIsCorrect: true},
			{ChoiceText: "Salah"},
		},
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q
}

func maxScoreOf(t *testing.T, db *gorm.DB, assignmentID uuid.UUID) float64 {
	t.Helper()
	var m model.AssignmentModel
	if err := db.First(&m, "assignment_id = ?", assignmentID).Error; err != nil {
		t.Fatalf("baca assignment: %v", err)
	}
	return m.AssignmentMaxScore
}

func TestRecomputeMaxScoreSumsQuestionPoints(t *testing.T) {
	db := setupDB(t)
	asg := seedAssignment(t, db, 100)

	addQuestion(t, db, asg.AssignmentID, 4)
	addQuestion(t, db, asg.AssignmentID, 6)

	if err := RecomputeMaxScore(db, asg.AssignmentID); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got := maxScoreOf(t, db, asg.AssignmentID); got != 10 {
		t.Fatalf("max_score harus 10, dapat %v", got)
	}
}

func TestRecomputeMaxScoreAfterQuestionEdit(t *testing.T) {
	db := setupDB(t)
	asg := seedAssignment(t, db, 100)

	q := addQuestion(t, db, asg.AssignmentID, 5)
	addQuestion(t, db, asg.AssignmentID, 5)
	if err := RecomputeMaxScore(db, asg.AssignmentID); err != nil {
		t.Fatalf("recompute awal: %v", err)
	}

	// poin soal berubah, max_score harus mengikuti
	if err := db.Model(q).Update("question_points", 12.0).Error; err != nil {
		t.Fatalf("update soal: %v", err)
	}
	if err := RecomputeMaxScore(db, asg.AssignmentID); err != nil {
		t.Fatalf("recompute setelah edit: %v", err)
	}
	if got := maxScoreOf(t, db, asg.AssignmentID); got != 17 {
		t.Fatalf("max_score harus 17, dapat %v", got)
	}
}

func TestRecomputeMaxScoreKeepsTotalAfterLastQuestionDeleted(t *testing.T) {
	db := setupDB(t)
	asg := seedAssignment(t, db, 100)

	q := addQuestion(t, db, asg.AssignmentID, 8)
	if err := RecomputeMaxScore(db, asg.AssignmentID); err != nil {
		t.Fatalf("recompute awal: %v", err)
	}

	if err := db.Where("choice_question_id = ?", q.QuestionID).
		Delete(&model.ChoiceModel{}).Error; err != nil {
		t.Fatalf("hapus choices: %v", err)
	}
	if err := db.Delete(q).Error; err != nil {
		t.Fatalf("hapus soal: %v", err)
	}

	// soal terakhir hilang, total terakhir bertahan sebagai nilai manual
	if err := RecomputeMaxScore(db, asg.AssignmentID); err != nil {
		t.Fatalf("recompute setelah hapus: %v", err)
	}
	if got := maxScoreOf(t, db, asg.AssignmentID); got != 8 {
		t.Fatalf("max_score harus tetap 8, dapat %v", got)
	}
}

func TestRecomputeMaxScoreKeepsManualValueWithoutQuestions(t *testing.T) {
	db := setupDB(t)
	asg := seedAssignment(t, db, 40)

	if err := RecomputeMaxScore(db, asg.AssignmentID); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if got := maxScoreOf(t, db, asg.AssignmentID); got != 40 {
		t.Fatalf("assignment tanpa soal tidak boleh berubah, dapat %v", got)
	}
}
