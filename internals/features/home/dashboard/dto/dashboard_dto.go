// file: internals/features/home/dashboard/dto/dashboard_dto.go
package dto

import "github.com/google/uuid"

/* ========== STAFF (teacher/admin) ========== */

type ClassStudentCountDTO struct {
	ClassID      uuid.UUID `json:"class_id"`
	ClassName    string    `json:"class_name"`
	StudentCount int64     `json:"student_count"`
}

type SubjectAverageDTO struct {
	SubjectID      uuid.UUID `json:"subject_id"`
	SubjectName    string    `json:"subject_name"`
	AveragePercent float64   `json:"average_percent"`
	ScoreCount     int64     `json:"score_count"`
}

type AttendanceTodayDTO struct {
	ClassID   uuid.UUID `json:"class_id"`
	ClassName string    `json:"class_name"`
	Present   int64     `json:"present"`
	Absent    int64     `json:"absent"`
	Late      int64     `json:"late"`
	Excused   int64     `json:"excused"`
}

type StaffDashboardDTO struct {
	TotalStudents   int64                  `json:"total_students"`
	TotalTeachers   int64                  `json:"total_teachers"`
	TotalClasses    int64                  `json:"total_classes"`
	TotalSubjects   int64                  `json:"total_subjects"`
	ClassCounts     []ClassStudentCountDTO `json:"class_counts"`
	SubjectAverages []SubjectAverageDTO    `json:"subject_averages"`
	AttendanceToday []AttendanceTodayDTO   `json:"attendance_today"`
}

/* ========== PARENT ========== */

type RecentScoreDTO struct {
	AssignmentTitle string  `json:"assignment_title"`
	SubjectName     string  `json:"subject_name"`
	ScoreValue      float64 `json:"score_value"`
	MaxScore        float64 `json:"max_score"`
}

type RecentAttendanceDTO struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type ChildSummaryDTO struct {
	StudentID          uuid.UUID             `json:"student_id"`
	StudentName        string                `json:"student_name"`
	ClassName          string                `json:"class_name,omitempty"`
	TermAveragePercent float64               `json:"term_average_percent"`
	TermRemark         string                `json:"term_remark"`
	RecentScores       []RecentScoreDTO      `json:"recent_scores"`
	RecentAttendance   []RecentAttendanceDTO `json:"recent_attendance"`
}

type ParentDashboardDTO struct {
	TermName string            `json:"term_name,omitempty"`
	Children []ChildSummaryDTO `json:"children"`
}
