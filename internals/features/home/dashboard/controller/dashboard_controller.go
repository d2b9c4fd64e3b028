// file: internals/features/home/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceModel "schoolku_backend/internals/features/attendance/attendance/model"
	gradeService "schoolku_backend/internals/features/grades/service"
	classModel "schoolku_backend/internals/features/school/classes/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	teacherService "schoolku_backend/internals/features/school/teachers/service"
	termModel "schoolku_backend/internals/features/school/terms/model"
	"schoolku_backend/internals/features/home/dashboard/dto"
	helper "schoolku_backend/internals/helpers"
)

type DashboardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDashboardController(db *gorm.DB, v *validator.Validate) *DashboardController {
	if v == nil {
		v = validator.New()
	}
	return &DashboardController{DB: db, Validator: v}
}

/* =======================================================
   STAFF DASHBOARD (teacher & admin)
   GET /dashboard/staff
======================================================= */

func (ctl *DashboardController) Staff(c *fiber.Ctx) error {
	out := dto.StaffDashboardDTO{
		ClassCounts:     []dto.ClassStudentCountDTO{},
		SubjectAverages: []dto.SubjectAverageDTO{},
		AttendanceToday: []dto.AttendanceTodayDTO{},
	}

	if err := ctl.DB.Model(&studentModel.StudentModel{}).Count(&out.TotalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if err := ctl.DB.Model(&teacherModel.TeacherModel{}).Count(&out.TotalTeachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if err := ctl.DB.Model(&classModel.ClassModel{}).Count(&out.TotalClasses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).Count(&out.TotalSubjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// jumlah siswa per kelas
	if err := ctl.DB.Table("classes").
		Joins("LEFT JOIN students ON students.student_current_class_id = classes.class_id AND students.student_deleted_at IS NULL").
		Where("classes.class_deleted_at IS NULL").
		Group("classes.class_id, classes.class_name").
		Order("classes.class_name ASC").
		Select("classes.class_id AS class_id, classes.class_name AS class_name, COUNT(students.student_id) AS student_count").
		Scan(&out.ClassCounts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// rata-rata nilai per mapel; teacher hanya melihat assignment miliknya
	avgQuery := ctl.DB.Table("scores").
		Joins("JOIN assignments ON assignments.assignment_id = scores.score_assignment_id").
		Joins("JOIN subjects ON subjects.subject_id = assignments.assignment_subject_id").
		Where("scores.score_deleted_at IS NULL AND assignments.assignment_deleted_at IS NULL")

	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleTeacher {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		teacherID, err := teacherService.ResolveTeacherIDByUser(ctl.DB, userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "User tidak punya profil teacher")
		}
		avgQuery = avgQuery.Where("assignments.assignment_teacher_id = ?", teacherID)
	}

	type avgRow struct {
		SubjectID   string
		SubjectName string
		Achieved    float64
		Max         float64
		Total       int64
	}
	var avgRows []avgRow
	if err := avgQuery.
		Group("subjects.subject_id, subjects.subject_name").
		Order("subjects.subject_name ASC").
		Select("subjects.subject_id AS subject_id, subjects.subject_name AS subject_name, " +
			"COALESCE(SUM(scores.score_value),0) AS achieved, " +
			"COALESCE(SUM(assignments.assignment_max_score),0) AS max, COUNT(*) AS total").
		Scan(&avgRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	for _, r := range avgRows {
		row := dto.SubjectAverageDTO{
			SubjectName:    r.SubjectName,
			AveragePercent: gradeService.Percentage(r.Achieved, r.Max),
			ScoreCount:     r.Total,
		}
		if id, err := uuid.Parse(r.SubjectID); err == nil {
			row.SubjectID = id
		}
		out.SubjectAverages = append(out.SubjectAverages, row)
	}

	// ringkasan absensi hari ini per kelas
	today := time.Now().UTC().Truncate(24 * time.Hour)
	type attRow struct {
		ClassID   string
		ClassName string
		Status    string
		Total     int64
	}
	var attRows []attRow
	if err := ctl.DB.Table("attendance_records").
		Joins("JOIN classes ON classes.class_id = attendance_records.attendance_class_id").
		Where("attendance_records.attendance_date = ? AND attendance_records.attendance_deleted_at IS NULL", today).
		Group("classes.class_id, classes.class_name, attendance_records.attendance_status").
		Select("classes.class_id AS class_id, classes.class_name AS class_name, " +
			"attendance_records.attendance_status AS status, COUNT(*) AS total").
		Scan(&attRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	byClass := map[string]*dto.AttendanceTodayDTO{}
	order := []string{}
	for _, r := range attRows {
		entry, ok := byClass[r.ClassID]
		if !ok {
			entry = &dto.AttendanceTodayDTO{ClassName: r.ClassName}
			if id, err := uuid.Parse(r.ClassID); err == nil {
				entry.ClassID = id
			}
			byClass[r.ClassID] = entry
			order = append(order, r.ClassID)
		}
		switch r.Status {
		case attendanceModel.StatusPresent:
			entry.Present = r.Total
		case attendanceModel.StatusAbsent:
			entry.Absent = r.Total
		case attendanceModel.StatusLate:
			entry.Late = r.Total
		case attendanceModel.StatusExcused:
			entry.Excused = r.Total
		}
	}
	for _, key := range order {
		out.AttendanceToday = append(out.AttendanceToday, *byClass[key])
	}

	return helper.JsonOK(c, "Berhasil mengambil dashboard", out)
}

/* =======================================================
   PARENT DASHBOARD
   GET /dashboard/parent
======================================================= */

func (ctl *DashboardController) Parent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var children []studentModel.StudentModel
	if err := ctl.DB.Where("student_parent_id = ?", userID).
		Order("student_first_name ASC").
		Find(&children).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	out := dto.ParentDashboardDTO{Children: []dto.ChildSummaryDTO{}}

	var term termModel.AcademicTermModel
	hasTerm := true
	if err := ctl.DB.First(&term, "academic_term_is_current = ?", true).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		hasTerm = false
	}
	if hasTerm {
		out.TermName = term.AcademicTermName
	}

	for _, child := range children {
		summary := dto.ChildSummaryDTO{
			StudentID:        child.StudentID,
			StudentName:      child.FullName(),
			RecentScores:     []dto.RecentScoreDTO{},
			RecentAttendance: []dto.RecentAttendanceDTO{},
		}

		if child.StudentCurrentClassID != nil {
			var cl classModel.ClassModel
			if err := ctl.DB.Select("class_name").
				First(&cl, "class_id = ?", *child.StudentCurrentClassID).Error; err == nil {
				summary.ClassName = cl.ClassName
			}
		}

		// nilai terakhir
		type scoreRow struct {
			AssignmentTitle string
			SubjectName     string
			ScoreValue      float64
			MaxScore        float64
		}
		var scoreRows []scoreRow
		if err := ctl.DB.Table("scores").
			Joins("JOIN assignments ON assignments.assignment_id = scores.score_assignment_id").
			Joins("JOIN subjects ON subjects.subject_id = assignments.assignment_subject_id").
			Where("scores.score_student_id = ? AND scores.score_deleted_at IS NULL", child.StudentID).
			Order("scores.score_updated_at DESC").
			Limit(5).
			Select("assignments.assignment_title AS assignment_title, subjects.subject_name AS subject_name, " +
				"scores.score_value AS score_value, assignments.assignment_max_score AS max_score").
			Scan(&scoreRows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		for _, r := range scoreRows {
			summary.RecentScores = append(summary.RecentScores, dto.RecentScoreDTO{
				AssignmentTitle: r.AssignmentTitle,
				SubjectName:     r.SubjectName,
				ScoreValue:      r.ScoreValue,
				MaxScore:        r.MaxScore,
			})
		}

		// absensi terakhir
		var attRows []attendanceModel.AttendanceModel
		if err := ctl.DB.Where("attendance_student_id = ?", child.StudentID).
			Order("attendance_date DESC").
			Limit(5).
			Find(&attRows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		for _, r := range attRows {
			summary.RecentAttendance = append(summary.RecentAttendance, dto.RecentAttendanceDTO{
				Date:   r.AttendanceDate.Format("2006-01-02"),
				Status: r.AttendanceStatus,
			})
		}

		// rata-rata term berjalan
		if hasTerm {
			type sums struct {
				Achieved float64
				Max      float64
			}
			var s sums
			if err := ctl.DB.Table("scores").
				Joins("JOIN assignments ON assignments.assignment_id = scores.score_assignment_id").
				Where("scores.score_student_id = ? AND assignments.assignment_term_id = ? AND scores.score_deleted_at IS NULL",
					child.StudentID, term.AcademicTermID).
				Select("COALESCE(SUM(scores.score_value),0) AS achieved, COALESCE(SUM(assignments.assignment_max_score),0) AS max").
				Scan(&s).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
			}
			summary.TermAveragePercent = gradeService.Percentage(s.Achieved, s.Max)
			summary.TermRemark = gradeService.Remark(summary.TermAveragePercent)
		}

		out.Children = append(out.Children, summary)
	}

	return helper.JsonOK(c, "Berhasil mengambil dashboard", out)
}
