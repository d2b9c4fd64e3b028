// file: internals/features/school/teachers/service/teacher_lookup.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/teachers/model"
)

// ResolveTeacherIDByUser mencari profil teacher milik satu user login.
// Mengembalikan gorm.ErrRecordNotFound kalau user tidak punya profil teacher.
func ResolveTeacherIDByUser(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var t model.TeacherModel
	if err := db.Select("teacher_id").
		First(&t, "teacher_user_id = ?", userID).Error; err != nil {
		return uuid.Nil, err
	}
	return t.TeacherID, nil
}
