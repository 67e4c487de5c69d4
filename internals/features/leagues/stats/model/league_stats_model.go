package model

import (
	"time"

	"github.com/google/uuid"
)

// LeagueStats: counter agregat ringan per liga untuk dashboard.
type LeagueStats struct {
	LeagueStatsLeagueID uuid.UUID `gorm:"type:uuid;primaryKey;column:league_stats_league_id" json:"league_stats_league_id"`

	LeagueStatsActiveTeams   int `gorm:"not null;default:0;column:league_stats_active_teams" json:"league_stats_active_teams"`
	LeagueStatsActivePlayers int `gorm:"not null;default:0;column:league_stats_active_players" json:"league_stats_active_players"`
	LeagueStatsActiveStaff   int `gorm:"not null;default:0;column:league_stats_active_staff" json:"league_stats_active_staff"`

	LeagueStatsCreatedAt time.Time  `gorm:"column:league_stats_created_at;autoCreateTime" json:"league_stats_created_at"`
	LeagueStatsUpdatedAt *time.Time `gorm:"column:league_stats_updated_at" json:"league_stats_updated_at,omitempty"`
}

func (LeagueStats) TableName() string { return "league_stats" }
