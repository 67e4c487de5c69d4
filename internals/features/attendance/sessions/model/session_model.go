package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status lifecycle sesi: scheduled → open → closed (terminal).
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusOpen      = "open"
	SessionStatusClosed    = "closed"
)

type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_sessions_id" json:"attendance_sessions_id"`

	AttendanceSessionLeagueID   uuid.UUID  `gorm:"type:uuid;not null;column:attendance_sessions_league_id" json:"attendance_sessions_league_id"`
	AttendanceSessionTeamID     uuid.UUID  `gorm:"type:uuid;not null;column:attendance_sessions_team_id" json:"attendance_sessions_team_id"`
	AttendanceSessionSeasonID   uuid.UUID  `gorm:"type:uuid;not null;column:attendance_sessions_season_id" json:"attendance_sessions_season_id"`
	AttendanceSessionLocationID *uuid.UUID `gorm:"type:uuid;column:attendance_sessions_location_id" json:"attendance_sessions_location_id,omitempty"`

	AttendanceSessionTitle *string `gorm:"column:attendance_sessions_title" json:"attendance_sessions_title,omitempty"`

	AttendanceSessionScheduledStart   time.Time `gorm:"not null;column:attendance_sessions_scheduled_start" json:"attendance_sessions_scheduled_start"`
	AttendanceSessionLateThresholdMin int       `gorm:"not null;default:0;column:attendance_sessions_late_threshold_min" json:"attendance_sessions_late_threshold_min"`

	AttendanceSessionStatus   string     `gorm:"type:varchar(20);not null;default:'scheduled';column:attendance_sessions_status" json:"attendance_sessions_status"`
	AttendanceSessionOpenedAt *time.Time `gorm:"column:attendance_sessions_opened_at" json:"attendance_sessions_opened_at,omitempty"`
	AttendanceSessionClosedAt *time.Time `gorm:"column:attendance_sessions_closed_at" json:"attendance_sessions_closed_at,omitempty"`

	AttendanceSessionCreatedAt time.Time      `gorm:"column:attendance_sessions_created_at;autoCreateTime" json:"attendance_sessions_created_at"`
	AttendanceSessionUpdatedAt *time.Time     `gorm:"column:attendance_sessions_updated_at;autoUpdateTime" json:"attendance_sessions_updated_at,omitempty"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_sessions_deleted_at;index" json:"attendance_sessions_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }
