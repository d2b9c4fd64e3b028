// file: internals/features/school/terms/controller/academic_term_controller_test.go
package controller

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/school/terms/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.AcademicTermModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTerm(t *testing.T, db *gorm.DB, name string, current bool) *model.AcademicTermModel {
	t.Helper()
	m := &model.AcademicTermModel{
		AcademicTermName:      name,
		AcademicTermStartDate: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		AcademicTermEndDate:   time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		AcademicTermIsCurrent: current,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed term %s: %v", name, err)
	}
	return m
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewAcademicTermController(db, validator.New())
	app.Post("/academic-terms/:id/set-current", ctl.SetCurrent)
	return app
}

func TestSetCurrentExclusive(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db)

	old := seedTerm(t, db, "Semester Ganjil 2025/2026", true)
	next := seedTerm(t, db, "Semester Genap 2025/2026", false)

	req := httptest.NewRequest("POST",
		fmt.Sprintf("/academic-terms/%s/set-current", next.AcademicTermID), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status harus 200, dapat %d", resp.StatusCode)
	}

	var count int64
	db.Model(&model.AcademicTermModel{}).
		Where("academic_term_is_current = ?", true).Count(&count)
	if count != 1 {
		t.Fatalf("hanya satu term yang boleh current, dapat %d", count)
	}

	var oldRow, nextRow model.AcademicTermModel
	db.First(&oldRow, "academic_term_id = ?", old.AcademicTermID)
	db.First(&nextRow, "academic_term_id = ?", next.AcademicTermID)
	if oldRow.AcademicTermIsCurrent {
		t.Fatalf("term lama harus turun flag")
	}
	if !nextRow.AcademicTermIsCurrent {
		t.Fatalf("term target harus jadi current")
	}
}

func TestSetCurrentIdempotent(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db)

	term := seedTerm(t, db, "Semester Ganjil 2026/2027", true)

	req := httptest.NewRequest("POST",
		fmt.Sprintf("/academic-terms/%s/set-current", term.AcademicTermID), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status harus 200, dapat %d", resp.StatusCode)
	}

	var count int64
	db.Model(&model.AcademicTermModel{}).
		Where("academic_term_is_current = ?", true).Count(&count)
	if count != 1 {
		t.Fatalf("set-current pada term aktif harus tetap satu current, dapat %d", count)
	}
}

func TestSetCurrentUnknownID(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db)
	seedTerm(t, db, "Semester Ganjil 2025/2026", true)

	req := httptest.NewRequest("POST",
		fmt.Sprintf("/academic-terms/%s/set-current", uuid.New()), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("term tidak dikenal harus 404, dapat %d", resp.StatusCode)
	}
}
