package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceCheckInModel: raw check-in selama sesi open.
// Umurnya terikat umur sesi — dihapus permanen saat sesi ditutup.
type AttendanceCheckInModel struct {
	AttendanceCheckInID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_check_ins_id" json:"attendance_check_ins_id"`

	AttendanceCheckInLeagueID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_check_ins_league_id" json:"attendance_check_ins_league_id"`
	AttendanceCheckInSessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_check_ins_session_id;uniqueIndex:uq_attendance_check_ins_session_player" json:"attendance_check_ins_session_id"`
	AttendanceCheckInPlayerID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_check_ins_player_id;uniqueIndex:uq_attendance_check_ins_session_player" json:"attendance_check_ins_player_id"`

	AttendanceCheckInCheckedInAt time.Time `gorm:"not null;column:attendance_check_ins_checked_in_at" json:"attendance_check_ins_checked_in_at"`

	AttendanceCheckInCreatedAt time.Time `gorm:"column:attendance_check_ins_created_at;autoCreateTime" json:"attendance_check_ins_created_at"`
}

func (AttendanceCheckInModel) TableName() string { return "attendance_check_ins" }
