package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSettingsModel: default per liga untuk pembuatan sesi.
type AttendanceSettingsModel struct {
	AttendanceSettingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_settings_id" json:"attendance_settings_id"`

	AttendanceSettingLeagueID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:attendance_settings_league_id" json:"attendance_settings_league_id"`

	AttendanceSettingDefaultLateThresholdMin int `gorm:"not null;default:10;column:attendance_settings_default_late_threshold_min" json:"attendance_settings_default_late_threshold_min"`

	AttendanceSettingCreatedAt time.Time  `gorm:"column:attendance_settings_created_at;autoCreateTime" json:"attendance_settings_created_at"`
	AttendanceSettingUpdatedAt *time.Time `gorm:"column:attendance_settings_updated_at;autoUpdateTime" json:"attendance_settings_updated_at,omitempty"`
}

func (AttendanceSettingsModel) TableName() string { return "attendance_settings" }
