package seeds

import (
	terms "schoolku_backend/internals/seeds/school/terms"
	users "schoolku_backend/internals/seeds/users/auth"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal untuk instalasi baru. Idempotent:
// baris yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/auth/data_users.json")
	terms.SeedDefaultTerm(db)
}
