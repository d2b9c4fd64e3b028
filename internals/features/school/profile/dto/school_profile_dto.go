// file: internals/features/school/profile/dto/school_profile_dto.go
package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/profile/model"
)

type SchoolProfileUpsertDTO struct {
	SchoolProfileName    string  `json:"school_profile_name" validate:"required,min=2,max=160"`
	SchoolProfileAddress *string `json:"school_profile_address" validate:"omitempty"`
	SchoolProfilePhone   *string `json:"school_profile_phone" validate:"omitempty,max=30"`
	SchoolProfileEmail   *string `json:"school_profile_email" validate:"omitempty,email,max=120"`
	SchoolProfileMotto   *string `json:"school_profile_motto" validate:"omitempty"`
	SchoolProfileLogoURL *string `json:"school_profile_logo_url" validate:"omitempty,url"`
}

func (d *SchoolProfileUpsertDTO) Normalize() {
	d.SchoolProfileName = strings.TrimSpace(d.SchoolProfileName)
}

func (d *SchoolProfileUpsertDTO) Apply(m *model.SchoolProfileModel) {
	m.SchoolProfileName = d.SchoolProfileName
	m.SchoolProfileAddress = d.SchoolProfileAddress
	m.SchoolProfilePhone = d.SchoolProfilePhone
	m.SchoolProfileEmail = d.SchoolProfileEmail
	m.SchoolProfileMotto = d.SchoolProfileMotto
	m.SchoolProfileLogoURL = d.SchoolProfileLogoURL
}
