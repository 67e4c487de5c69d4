// file: internals/features/attendance/sessions/service/settings_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ligaku_backend/internals/features/attendance/sessions/model"
)

const fallbackLateThresholdMin = 10

// EnsureSettings: pastikan baris attendance_settings liga ada (idempotent).
func EnsureSettings(db *gorm.DB, leagueID uuid.UUID) error {
	row := model.AttendanceSettingsModel{
		AttendanceSettingLeagueID:                leagueID,
		AttendanceSettingDefaultLateThresholdMin: fallbackLateThresholdMin,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_settings_league_id"}},
		DoNothing: true,
	}).Create(&row).Error
}

// DefaultLateThreshold: default threshold liga, fallback 10 menit bila
// liga belum pernah menyimpan setting.
func DefaultLateThreshold(db *gorm.DB, leagueID uuid.UUID) (int, error) {
	var row model.AttendanceSettingsModel
	err := db.
		Where("attendance_settings_league_id = ?", leagueID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallbackLateThresholdMin, nil
		}
		return 0, err
	}
	return row.AttendanceSettingDefaultLateThresholdMin, nil
}

// UpdateDefaultLateThreshold: upsert setting liga.
func UpdateDefaultLateThreshold(db *gorm.DB, leagueID uuid.UUID, minutes int) (model.AttendanceSettingsModel, error) {
	row := model.AttendanceSettingsModel{
		AttendanceSettingLeagueID:                leagueID,
		AttendanceSettingDefaultLateThresholdMin: minutes,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_settings_league_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_settings_default_late_threshold_min"}),
	}).Create(&row).Error; err != nil {
		return model.AttendanceSettingsModel{}, err
	}

	var out model.AttendanceSettingsModel
	if err := db.
		Where("attendance_settings_league_id = ?", leagueID).
		Take(&out).Error; err != nil {
		return model.AttendanceSettingsModel{}, err
	}
	return out, nil
}
