// file: internals/features/home/dashboard/controller/dashboard_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/constants"
	attendanceModel "schoolku_backend/internals/features/attendance/attendance/model"
	assignmentModel "schoolku_backend/internals/features/grades/assignments/model"
	scoreModel "schoolku_backend/internals/features/grades/scores/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	"schoolku_backend/internals/features/home/dashboard/dto"
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
		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&assignmentModel.AssignmentModel{},
		&scoreModel.ScoreModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newStaffApp(db *gorm.DB, role string) *fiber.App {
	ctl := NewDashboardController(db, validator.New())
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})
	app.Get("/dashboard/staff", ctl.Staff)
	return app
}

func TestStaffDashboardCountsAndAverages(t *testing.T) {
	db := setupDB(t)

	cls := &classModel.ClassModel{ClassName: "Kelas 1A", ClassSlug: "kelas-1a"}
	if err := db.Create(cls).Error; err != nil {
		t.Fatalf("seed kelas: %v", err)
	}
	sbj := &subjectModel.SubjectModel{SubjectName: "Matematika", SubjectSlug: "matematika", SubjectIsActive: true}
	if err := db.Create(sbj).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	for i, name := range []string{"Ani", "Budi"} {
		s := &studentModel.StudentModel{
			StudentFirstName:      name,
			StudentLastName:       "Santoso",
			StudentDateOfBirth:    time.Date(2015, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			StudentGender:         "F",
			StudentCurrentClassID: &cls.ClassID,
		}
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("seed siswa: %v", err)
		}
	}

	asg := &assignmentModel.AssignmentModel{
		AssignmentTitle:     "Latihan 1",
		AssignmentSubjectID: sbj.SubjectID,
		AssignmentClassID:   cls.ClassID,
		AssignmentTermID:    uuid.New(),
		AssignmentMaxScore:  10,
		AssignmentDateGiven: time.Now().UTC().Truncate(24 * time.Hour),
		AssignmentTeacherID: uuid.New(),
	}
	if err := db.Create(asg).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	if err := db.Create(&scoreModel.ScoreModel{
		ScoreStudentID:    uuid.New(),
		ScoreAssignmentID: asg.AssignmentID,
		ScoreValue:        8,
		ScoreRecordedByID: uuid.New(),
	}).Error; err != nil {
		t.Fatalf("seed nilai: %v", err)
	}

	app := newStaffApp(db, constants.RoleAdmin)
	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/staff", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("harus 200, dapat %d", resp.StatusCode)
	}

	var envelope struct {
		Data dto.StaffDashboardDTO `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	out := envelope.Data
	if out.TotalStudents != 2 {
		t.Fatalf("total_students harus 2, dapat %d", out.TotalStudents)
	}
	if out.TotalClasses != 1 || out.TotalSubjects != 1 {
		t.Fatalf("total kelas/subject harus 1/1, dapat %d/%d", out.TotalClasses, out.TotalSubjects)
	}
	if len(out.ClassCounts) != 1 || out.ClassCounts[0].StudentCount != 2 {
		t.Fatalf("class_counts harus satu kelas berisi 2 siswa, dapat %+v", out.ClassCounts)
	}
	if len(out.SubjectAverages) != 1 || out.SubjectAverages[0].AveragePercent != 80 {
		t.Fatalf("rata-rata Matematika harus 80, dapat %+v", out.SubjectAverages)
	}
}
