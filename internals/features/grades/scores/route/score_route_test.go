// file: internals/features/grades/scores/route/score_route_test.go
package route

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/constants"
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

func newAppWithRole(t *testing.T, db *gorm.DB, role string) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})
	ScoreUserRoutes(app, db)
	return app
}

func TestListScoresForbiddenForStudentAndParent(t *testing.T) {
	db := setupDB(t)

	for _, role := range []string{constants.RoleStudent, constants.RoleParent} {
		app := newAppWithRole(t, db, role)
		resp, err := app.Test(httptest.NewRequest("GET", "/scores/", nil))
		if err != nil {
			t.Fatalf("request sebagai %s: %v", role, err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Fatalf("role %s harus 403, dapat %d", role, resp.StatusCode)
		}
	}
}

func TestListScoresAllowedForTeacherAndAdmin(t *testing.T) {
	db := setupDB(t)

	for _, role := range []string{constants.RoleTeacher, constants.RoleAdmin} {
		app := newAppWithRole(t, db, role)
		resp, err := app.Test(httptest.NewRequest("GET", "/scores/", nil))
		if err != nil {
			t.Fatalf("request sebagai %s: %v", role, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("role %s harus 200, dapat %d", role, resp.StatusCode)
		}
	}
}
