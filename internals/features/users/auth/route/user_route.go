// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/users/auth/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes mendaftarkan endpoint auth publik (login, refresh).
func AuthRoutes(api fiber.Router, db *gorm.DB, loginLimiter fiber.Handler) {
	ctl := controller.NewAuthController(db, validator.New())

	auth := api.Group("/auth")
	auth.Post("/login", loginLimiter, ctl.Login)
	auth.Post("/refresh-token", ctl.RefreshToken)
}

// AuthProtectedRoutes mendaftarkan endpoint auth yang butuh token aktif.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db, validator.New())

	auth := api.Group("/auth", authMiddleware.AuthMiddleware(db))
	auth.Post("/logout", ctl.Logout)
	auth.Post("/change-password", ctl.ChangePassword)
}
