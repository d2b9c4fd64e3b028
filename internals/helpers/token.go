// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocRawToken adalah key Locals tempat middleware auth menaruh raw JWT
// supaya handler lain (mis. logout) tidak perlu parse header lagi.
const LocRawToken = "raw_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Locals("raw_token") yang diset middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(strings.Trim(auth[len(p):], "\"'"))
	}
	return ""
}

// GetRefreshTokenFromCookie dipakai sebagai fallback saat body refresh kosong.
func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

// SetRawAccessToken diset middleware auth setelah verifikasi header/cookie.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	c.Locals(LocRawToken, strings.TrimSpace(raw))
}
