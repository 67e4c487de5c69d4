package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceAggregateModel: counter kumulatif per (pemain, tim, musim).
// Baris ini bertahan setelah raw check-in dihapus saat sesi ditutup.
// Counter hanya bertambah (monotonic) — koreksi administratif di luar scope.
type AttendanceAggregateModel struct {
	AttendanceAggregateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_aggregates_id" json:"attendance_aggregates_id"`

	AttendanceAggregateLeagueID uuid.UUID `gorm:"type:uuid;not null;column:attendance_aggregates_league_id" json:"attendance_aggregates_league_id"`
	AttendanceAggregatePlayerID uuid.UUID `gorm:"type:uuid;not null;column:attendance_aggregates_player_id;uniqueIndex:uq_attendance_aggregates_scope" json:"attendance_aggregates_player_id"`
	AttendanceAggregateTeamID   uuid.UUID `gorm:"type:uuid;not null;column:attendance_aggregates_team_id;uniqueIndex:uq_attendance_aggregates_scope" json:"attendance_aggregates_team_id"`
	AttendanceAggregateSeasonID uuid.UUID `gorm:"type:uuid;not null;column:attendance_aggregates_season_id;uniqueIndex:uq_attendance_aggregates_scope" json:"attendance_aggregates_season_id"`

	AttendanceAggregateTotalOnTime int `gorm:"not null;default:0;column:attendance_aggregates_total_on_time" json:"attendance_aggregates_total_on_time"`
	AttendanceAggregateTotalLate   int `gorm:"not null;default:0;column:attendance_aggregates_total_late" json:"attendance_aggregates_total_late"`
	AttendanceAggregateTotalAbsent int `gorm:"not null;default:0;column:attendance_aggregates_total_absent" json:"attendance_aggregates_total_absent"`

	AttendanceAggregateCreatedAt time.Time  `gorm:"column:attendance_aggregates_created_at;autoCreateTime" json:"attendance_aggregates_created_at"`
	AttendanceAggregateUpdatedAt *time.Time `gorm:"column:attendance_aggregates_updated_at;autoUpdateTime" json:"attendance_aggregates_updated_at,omitempty"`
}

func (AttendanceAggregateModel) TableName() string { return "attendance_aggregates" }
