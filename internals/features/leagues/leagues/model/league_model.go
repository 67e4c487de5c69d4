package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeagueModel: tenant utama aplikasi. Semua data lain di-scope ke liga.
type LeagueModel struct {
	LeagueID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:leagues_id" json:"leagues_id"`

	LeagueName        string  `gorm:"size:100;not null;column:leagues_name" json:"leagues_name"`
	LeagueSlug        string  `gorm:"size:120;not null;uniqueIndex;column:leagues_slug" json:"leagues_slug"`
	LeagueDescription *string `gorm:"column:leagues_description" json:"leagues_description,omitempty"`

	// Branding fleksibel (logo, warna, sponsor) — JSONB.
	LeagueBranding datatypes.JSON `gorm:"type:jsonb;column:leagues_branding" json:"leagues_branding,omitempty"`

	LeagueOwnerUserID uuid.UUID `gorm:"type:uuid;not null;column:leagues_owner_user_id" json:"leagues_owner_user_id"`

	LeagueIsActive bool `gorm:"not null;default:true;column:leagues_is_active" json:"leagues_is_active"`

	LeagueCreatedAt time.Time      `gorm:"column:leagues_created_at;autoCreateTime" json:"leagues_created_at"`
	LeagueUpdatedAt *time.Time     `gorm:"column:leagues_updated_at;autoUpdateTime" json:"leagues_updated_at,omitempty"`
	LeagueDeletedAt gorm.DeletedAt `gorm:"column:leagues_deleted_at;index" json:"leagues_deleted_at,omitempty"`
}

func (LeagueModel) TableName() string { return "leagues" }
