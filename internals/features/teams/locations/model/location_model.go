package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationModel: tempat latihan/pertandingan milik liga.
type LocationModel struct {
	LocationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:locations_id" json:"locations_id"`

	LocationLeagueID uuid.UUID `gorm:"type:uuid;not null;column:locations_league_id;index" json:"locations_league_id"`

	LocationName    string  `gorm:"size:100;not null;column:locations_name" json:"locations_name"`
	LocationAddress *string `gorm:"column:locations_address" json:"locations_address,omitempty"`

	LocationLatitude  *float64 `gorm:"column:locations_latitude" json:"locations_latitude,omitempty"`
	LocationLongitude *float64 `gorm:"column:locations_longitude" json:"locations_longitude,omitempty"`

	LocationCreatedAt time.Time      `gorm:"column:locations_created_at;autoCreateTime" json:"locations_created_at"`
	LocationUpdatedAt *time.Time     `gorm:"column:locations_updated_at;autoUpdateTime" json:"locations_updated_at,omitempty"`
	LocationDeletedAt gorm.DeletedAt `gorm:"column:locations_deleted_at;index" json:"locations_deleted_at,omitempty"`
}

func (LocationModel) TableName() string { return "locations" }
