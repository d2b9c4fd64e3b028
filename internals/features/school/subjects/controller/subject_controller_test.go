// file: internals/features/school/subjects/controller/subject_controller_test.go
package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/features/school/subjects/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.SubjectModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	ctl := NewSubjectController(db, validator.New())
	app := fiber.New()
	app.Patch("/subjects/:id", ctl.Patch)
	return app
}

func seedSubject(t *testing.T, db *gorm.DB, name, slug string) *model.SubjectModel {
	t.Helper()
	m := &model.SubjectModel{
		SubjectName:     name,
		SubjectSlug:     slug,
		SubjectIsActive: true,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	return m
}

func patchName(t *testing.T, app *fiber.App, id, name string) int {
	t.Helper()
	req := httptest.NewRequest("PATCH", "/subjects/"+id,
		strings.NewReader(`{"subject_name":"`+name+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func slugOf(t *testing.T, db *gorm.DB, id string) string {
	t.Helper()
	var m model.SubjectModel
	if err := db.First(&m, "subject_id = ?", id).Error; err != nil {
		t.Fatalf("baca subject: %v", err)
	}
	return m.SubjectSlug
}

func TestPatchCaseOnlyRenameKeepsSlug(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db)
	m := seedSubject(t, db, "mathematics", "mathematics")

	if code := patchName(t, app, m.SubjectID.String(), "Mathematics"); code != fiber.StatusOK {
		t.Fatalf("patch harus 200, dapat %d", code)
	}
	// slug milik sendiri bukan tabrakan, jangan sampai dapat suffix -2
	if got := slugOf(t, db, m.SubjectID.String()); got != "mathematics" {
		t.Fatalf("slug harus tetap mathematics, dapat %q", got)
	}
}

func TestPatchRenameCollidingWithOtherRowGetsSuffix(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db)
	seedSubject(t, db, "Sains Umum", "sains-umum")
	m := seedSubject(t, db, "Budaya", "budaya")

	// nama beda (spasi ganda) tapi slug hasilnya sama dengan milik subject lain
	if code := patchName(t, app, m.SubjectID.String(), "Sains  Umum"); code != fiber.StatusOK {
		t.Fatalf("patch harus 200, dapat %d", code)
	}
	if got := slugOf(t, db, m.SubjectID.String()); got != "sains-umum-2" {
		t.Fatalf("slug harus sains-umum-2, dapat %q", got)
	}
}
