// file: internals/features/school/students/service/student_lookup.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/model"
)

// ResolveStudentIDByUser mencari data siswa milik satu akun login.
func ResolveStudentIDByUser(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var s model.StudentModel
	if err := db.Select("student_id").
		First(&s, "student_user_id = ?", userID).Error; err != nil {
		return uuid.Nil, err
	}
	return s.StudentID, nil
}

// ListChildIDsByParent mengembalikan semua siswa yang orang tuanya userID.
func ListChildIDsByParent(db *gorm.DB, parentUserID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := db.Model(&model.StudentModel{}).
		Where("student_parent_id = ?", parentUserID).
		Pluck("student_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
