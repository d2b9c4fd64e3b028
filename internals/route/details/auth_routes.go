package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "schoolku_backend/internals/features/users/auth/route"
	rateLimiter "schoolku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db, rateLimiter.LoginRateLimiter())
	authRoute.AuthProtectedRoutes(api, db)
}
