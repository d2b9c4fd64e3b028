// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

const refreshTTL = 7 * 24 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validator: v}
}

func accessTTL() time.Duration {
	minutes := 120
	if v := configs.GetEnv("JWT_ACCESS_TTL_MINUTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			minutes = parsed
		}
	}
	return time.Duration(minutes) * time.Minute
}

// hash refresh token sebelum disimpan (jangan simpan raw token di DB)
func computeRefreshHash(token, secret string) string {
	sum := sha256.Sum256([]byte(token + "." + secret))
	return hex.EncodeToString(sum[:])
}

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
}

/* ============================================
   LOGIN
   POST /auth/login
============================================ */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var p authDTO.LoginDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	ident := strings.ToLower(strings.TrimSpace(p.Identifier))
	var u userModel.UserModel
	if err := ctl.DB.
		Where("LOWER(user_name) = ? OR LOWER(email) = ?", ident, ident).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if !u.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(p.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "JWT secret belum diset")
	}

	now := time.Now().UTC()
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	refreshClaims := jwt.MapClaims{
		"sub": u.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	if err := ctl.DB.Create(&authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     computeRefreshHash(refreshToken, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTL),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTTL().Seconds()),
		User:         userDTO.FromModel(u),
	})
}

/* ============================================
   REFRESH TOKEN (rotating)
   POST /auth/refresh-token
============================================ */

func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.BodyParser(&body)
	raw := strings.TrimSpace(body.RefreshToken)
	if raw == "" {
		raw = helper.GetRefreshTokenFromCookie(c)
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh masih terdaftar & belum expired
	hash := computeRefreshHash(raw, configs.JWTRefreshSecret)
	var stored authModel.RefreshTokenModel
	if err := ctl.DB.
		Where("token = ? AND expires_at > ?", hash, time.Now().UTC()).
		First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa refresh token")
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !u.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// ROTATE: hapus token lama, terbitkan pasangan baru
	now := time.Now().UTC()
	newAccess, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access baru")
	}
	newRefresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh baru")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&stored).Error; err != nil {
			return err
		}
		return tx.Create(&authModel.RefreshTokenModel{
			UserID:    u.ID,
			Token:     computeRefreshHash(newRefresh, configs.JWTRefreshSecret),
			ExpiresAt: now.Add(refreshTTL),
			UserAgent: strptr(c.Get("User-Agent")),
			IP:        strptr(c.IP()),
		}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh baru")
	}

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token":  newAccess,
		"refresh_token": newRefresh,
	})
}

/* ============================================
   LOGOUT
   POST /auth/logout  (butuh auth middleware)
============================================ */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	// exp token dipakai sebagai expired_at blacklist
	expiredAt := time.Now().Add(accessTTL())
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expF, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expF), 0)
		}
	}

	if err := ctl.DB.Create(&authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	// hapus semua refresh token user ini
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		_ = ctl.DB.Where("user_id = ?", userID).
			Delete(&authModel.RefreshTokenModel{}).Error
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ============================================
   CHANGE PASSWORD
   POST /auth/change-password  (butuh auth middleware)
============================================ */

func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var p authDTO.ChangePasswordDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var u userModel.UserModel
	if err := ctl.DB.First(&u, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(p.OldPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	if err := ctl.DB.Model(&u).Update("password", string(hash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
	}
	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

func strptr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
