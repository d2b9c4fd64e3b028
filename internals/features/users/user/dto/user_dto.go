package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/user/model"
)

// =======================
// Request DTO
// =======================

type UserCreateDTO struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Role      string `json:"role" validate:"required,oneof=admin teacher parent student"`

	PhoneNumber       *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
}

type UserUpdateDTO struct {
	UserName  *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin teacher parent student"`

	PhoneNumber       *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty" validate:"omitempty,url"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type UserResponseDTO struct {
	ID                uuid.UUID `json:"id"`
	UserName          string    `json:"user_name"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	FullName          string    `json:"full_name"`
	Role              string    `json:"role"`
	PhoneNumber       *string   `json:"phone_number,omitempty"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// =======================
// Helpers
// =======================

func (p *UserCreateDTO) Normalize() {
	p.UserName = strings.TrimSpace(p.UserName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
}

func (p *UserCreateDTO) ToModel(passwordHash string) model.UserModel {
	return model.UserModel{
		UserName:          p.UserName,
		Email:             p.Email,
		Password:          passwordHash,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Role:              p.Role,
		PhoneNumber:       p.PhoneNumber,
		ProfilePictureURL: p.ProfilePictureURL,
		IsActive:          true,
	}
}

func (u *UserUpdateDTO) ApplyUpdates(ent *model.UserModel) {
	if u.UserName != nil {
		ent.UserName = strings.TrimSpace(*u.UserName)
	}
	if u.Email != nil {
		ent.Email = strings.ToLower(strings.TrimSpace(*u.Email))
	}
	if u.FirstName != nil {
		ent.FirstName = strings.TrimSpace(*u.FirstName)
	}
	if u.LastName != nil {
		ent.LastName = strings.TrimSpace(*u.LastName)
	}
	if u.Role != nil {
		ent.Role = *u.Role
	}
	if u.PhoneNumber != nil {
		ent.PhoneNumber = u.PhoneNumber
	}
	if u.ProfilePictureURL != nil {
		ent.ProfilePictureURL = u.ProfilePictureURL
	}
	if u.IsActive != nil {
		ent.IsActive = *u.IsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.UserModel) UserResponseDTO {
	return UserResponseDTO{
		ID:                ent.ID,
		UserName:          ent.UserName,
		Email:             ent.Email,
		FirstName:         ent.FirstName,
		LastName:          ent.LastName,
		FullName:          ent.FullName(),
		Role:              ent.Role,
		PhoneNumber:       ent.PhoneNumber,
		ProfilePictureURL: ent.ProfilePictureURL,
		IsActive:          ent.IsActive,
		CreatedAt:         ent.CreatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponseDTO {
	out := make([]UserResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
