package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users: akun login untuk admin,
// teacher, parent, dan student.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"size:50;unique;not null" json:"user_name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`

	// Satu user satu role: admin | teacher | parent | student
	Role string `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	PhoneNumber       *string `gorm:"size:20" json:"phone_number,omitempty"`
	ProfilePictureURL *string `gorm:"type:text" json:"profile_picture_url,omitempty"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate: set ID jika kosong
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	return nil
}

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.UserName = strings.TrimSpace(u.UserName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	return nil
}

func (u *UserModel) IsAdmin() bool   { return u.Role == constants.RoleAdmin }
func (u *UserModel) IsTeacher() bool { return u.Role == constants.RoleTeacher }
func (u *UserModel) IsParent() bool  { return u.Role == constants.RoleParent }
func (u *UserModel) IsStudent() bool { return u.Role == constants.RoleStudent }

func (u *UserModel) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.UserName
	}
	return full
}
