package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamModel struct {
	TeamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teams_id" json:"teams_id"`

	TeamLeagueID uuid.UUID `gorm:"type:uuid;not null;column:teams_league_id;uniqueIndex:uq_teams_league_slug" json:"teams_league_id"`

	TeamName string `gorm:"size:100;not null;column:teams_name" json:"teams_name"`
	TeamSlug string `gorm:"size:120;not null;column:teams_slug;uniqueIndex:uq_teams_league_slug" json:"teams_slug"`

	TeamCoachUserID *uuid.UUID `gorm:"type:uuid;column:teams_coach_user_id" json:"teams_coach_user_id,omitempty"`

	TeamIsActive bool `gorm:"not null;default:true;column:teams_is_active" json:"teams_is_active"`

	TeamCreatedAt time.Time      `gorm:"column:teams_created_at;autoCreateTime" json:"teams_created_at"`
	TeamUpdatedAt *time.Time     `gorm:"column:teams_updated_at;autoUpdateTime" json:"teams_updated_at,omitempty"`
	TeamDeletedAt gorm.DeletedAt `gorm:"column:teams_deleted_at;index" json:"teams_deleted_at,omitempty"`
}

func (TeamModel) TableName() string { return "teams" }
