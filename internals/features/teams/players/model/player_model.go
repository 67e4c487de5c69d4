package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerModel: anggota roster sebuah tim. players_user_id opsional —
// pemain tanpa akun tetap bisa didata oleh pengurus.
type PlayerModel struct {
	PlayerID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:players_id" json:"players_id"`

	PlayerLeagueID uuid.UUID  `gorm:"type:uuid;not null;column:players_league_id" json:"players_league_id"`
	PlayerTeamID   uuid.UUID  `gorm:"type:uuid;not null;column:players_team_id;index" json:"players_team_id"`
	PlayerUserID   *uuid.UUID `gorm:"type:uuid;column:players_user_id" json:"players_user_id,omitempty"`

	PlayerName         string  `gorm:"size:100;not null;column:players_name" json:"players_name"`
	PlayerJerseyNumber *int    `gorm:"column:players_jersey_number" json:"players_jersey_number,omitempty"`
	PlayerPosition     *string `gorm:"size:50;column:players_position" json:"players_position,omitempty"`

	PlayerIsActive bool `gorm:"not null;default:true;column:players_is_active" json:"players_is_active"`

	PlayerCreatedAt time.Time      `gorm:"column:players_created_at;autoCreateTime" json:"players_created_at"`
	PlayerUpdatedAt *time.Time     `gorm:"column:players_updated_at;autoUpdateTime" json:"players_updated_at,omitempty"`
	PlayerDeletedAt gorm.DeletedAt `gorm:"column:players_deleted_at;index" json:"players_deleted_at,omitempty"`
}

func (PlayerModel) TableName() string { return "players" }
