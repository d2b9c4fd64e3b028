package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "schoolku_backend/internals/features/users/user/route"
)

// UserSelfRoutes: endpoint profil milik user login sendiri.
func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(api, db)
}

// UserAdminRoutes: pengelolaan akun oleh admin.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
}
