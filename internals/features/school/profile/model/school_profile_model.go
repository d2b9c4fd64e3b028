// file: internals/features/school/profile/model/school_profile_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolProfileModel menyimpan identitas sekolah. Praktisnya hanya
// ada satu baris; Upsert selalu menimpa baris pertama.
type SchoolProfileModel struct {
	SchoolProfileID uuid.UUID `gorm:"type:uuid;primaryKey;column:school_profile_id" json:"school_profile_id"`

	SchoolProfileName    string  `gorm:"type:varchar(160);not null;column:school_profile_name" json:"school_profile_name"`
	SchoolProfileAddress *string `gorm:"type:text;column:school_profile_address"               json:"school_profile_address,omitempty"`
	SchoolProfilePhone   *string `gorm:"type:varchar(30);column:school_profile_phone"          json:"school_profile_phone,omitempty"`
	SchoolProfileEmail   *string `gorm:"type:varchar(120);column:school_profile_email"         json:"school_profile_email,omitempty"`
	SchoolProfileMotto   *string `gorm:"type:text;column:school_profile_motto"                 json:"school_profile_motto,omitempty"`
	SchoolProfileLogoURL *string `gorm:"type:text;column:school_profile_logo_url"              json:"school_profile_logo_url,omitempty"`

	SchoolProfileCreatedAt time.Time `gorm:"autoCreateTime;column:school_profile_created_at" json:"school_profile_created_at"`
	SchoolProfileUpdatedAt time.Time `gorm:"autoUpdateTime;column:school_profile_updated_at" json:"school_profile_updated_at"`
}

func (SchoolProfileModel) TableName() string { return "school_profiles" }

func (m *SchoolProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolProfileID == uuid.Nil {
		m.SchoolProfileID = uuid.New()
	}
	return nil
}

func (m *SchoolProfileModel) BeforeSave(tx *gorm.DB) error {
	m.SchoolProfileName = strings.TrimSpace(m.SchoolProfileName)
	if m.SchoolProfileEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*m.SchoolProfileEmail))
		m.SchoolProfileEmail = &email
	}
	return nil
}
