// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "schoolku_backend/internals/features/attendance/attendance/model"
	assignmentModel "schoolku_backend/internals/features/grades/assignments/model"
	scoreModel "schoolku_backend/internals/features/grades/scores/model"
	submissionModel "schoolku_backend/internals/features/grades/submissions/model"
	classModel "schoolku_backend/internals/features/school/classes/model"
	profileModel "schoolku_backend/internals/features/school/profile/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	termModel "schoolku_backend/internals/features/school/terms/model"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

// AllModels dipakai AutoMigrate dan test setup.
func AllModels() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshTokenModel{},
		&profileModel.SchoolProfileModel{},
		&subjectModel.SubjectModel{},
		&classModel.ClassModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&termModel.AcademicTermModel{},
		&assignmentModel.AssignmentModel{},
		&assignmentModel.QuestionModel{},
		&assignmentModel.ChoiceModel{},
		&scoreModel.ScoreModel{},
		&submissionModel.SubmissionModel{},
		&attendanceModel.AttendanceModel{},
	}
}

// RunAutoMigrations menjalankan AutoMigrate seluruh model domain.
func RunAutoMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		log.Printf("❌ AutoMigrate gagal: %v", err)
		return err
	}
	log.Println("✅ AutoMigrate selesai")
	return nil
}
