package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeasonModel: periode kompetisi; agregat kehadiran di-scope per musim.
type SeasonModel struct {
	SeasonID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:seasons_id" json:"seasons_id"`

	SeasonLeagueID uuid.UUID `gorm:"type:uuid;not null;column:seasons_league_id;index" json:"seasons_league_id"`

	SeasonName string `gorm:"size:100;not null;column:seasons_name" json:"seasons_name"`

	SeasonStartsOn datatypes.Date `gorm:"not null;column:seasons_starts_on" json:"seasons_starts_on"`
	SeasonEndsOn   datatypes.Date `gorm:"not null;column:seasons_ends_on" json:"seasons_ends_on"`

	// Paling banyak satu musim aktif per liga; dijaga di controller.
	SeasonIsActive bool `gorm:"not null;default:false;column:seasons_is_active" json:"seasons_is_active"`

	SeasonCreatedAt time.Time      `gorm:"column:seasons_created_at;autoCreateTime" json:"seasons_created_at"`
	SeasonUpdatedAt *time.Time     `gorm:"column:seasons_updated_at;autoUpdateTime" json:"seasons_updated_at,omitempty"`
	SeasonDeletedAt gorm.DeletedAt `gorm:"column:seasons_deleted_at;index" json:"seasons_deleted_at,omitempty"`
}

func (SeasonModel) TableName() string { return "seasons" }
