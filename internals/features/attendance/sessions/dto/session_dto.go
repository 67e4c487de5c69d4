// file: internals/features/attendance/sessions/dto/session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ligaku_backend/internals/features/attendance/sessions/model"
)

type CreateSessionRequest struct {
	AttendanceSessionTeamID     uuid.UUID  `json:"attendance_sessions_team_id" validate:"required"`
	AttendanceSessionSeasonID   uuid.UUID  `json:"attendance_sessions_season_id" validate:"required"`
	AttendanceSessionLocationID *uuid.UUID `json:"attendance_sessions_location_id"`

	AttendanceSessionTitle *string `json:"attendance_sessions_title" validate:"omitempty,max=120"`

	AttendanceSessionScheduledStart time.Time `json:"attendance_sessions_scheduled_start" validate:"required"`

	// nil = pakai default liga dari attendance_settings.
	AttendanceSessionLateThresholdMin *int `json:"attendance_sessions_late_threshold_min" validate:"omitempty,min=0,max=720"`
}

type UpdateSessionRequest struct {
	AttendanceSessionLocationID       *uuid.UUID `json:"attendance_sessions_location_id"`
	AttendanceSessionTitle            *string    `json:"attendance_sessions_title" validate:"omitempty,max=120"`
	AttendanceSessionScheduledStart   *time.Time `json:"attendance_sessions_scheduled_start"`
	AttendanceSessionLateThresholdMin *int       `json:"attendance_sessions_late_threshold_min" validate:"omitempty,min=0,max=720"`
}

type CheckInRequest struct {
	AttendanceCheckInPlayerID uuid.UUID `json:"attendance_check_ins_player_id" validate:"required"`

	// nil = server time.
	AttendanceCheckInCheckedInAt *time.Time `json:"attendance_check_ins_checked_in_at"`
}

type SessionResponse struct {
	AttendanceSessionID uuid.UUID `json:"attendance_sessions_id"`

	AttendanceSessionLeagueID   uuid.UUID  `json:"attendance_sessions_league_id"`
	AttendanceSessionTeamID     uuid.UUID  `json:"attendance_sessions_team_id"`
	AttendanceSessionSeasonID   uuid.UUID  `json:"attendance_sessions_season_id"`
	AttendanceSessionLocationID *uuid.UUID `json:"attendance_sessions_location_id,omitempty"`

	AttendanceSessionTitle *string `json:"attendance_sessions_title,omitempty"`

	AttendanceSessionScheduledStart   time.Time `json:"attendance_sessions_scheduled_start"`
	AttendanceSessionLateThresholdMin int       `json:"attendance_sessions_late_threshold_min"`

	AttendanceSessionStatus   string     `json:"attendance_sessions_status"`
	AttendanceSessionOpenedAt *time.Time `json:"attendance_sessions_opened_at,omitempty"`
	AttendanceSessionClosedAt *time.Time `json:"attendance_sessions_closed_at,omitempty"`

	AttendanceSessionCreatedAt time.Time `json:"attendance_sessions_created_at"`
}

func ToSessionResponse(m model.AttendanceSessionModel) SessionResponse {
	return SessionResponse{
		AttendanceSessionID:         m.AttendanceSessionID,
		AttendanceSessionLeagueID:   m.AttendanceSessionLeagueID,
		AttendanceSessionTeamID:     m.AttendanceSessionTeamID,
		AttendanceSessionSeasonID:   m.AttendanceSessionSeasonID,
		AttendanceSessionLocationID: m.AttendanceSessionLocationID,

		AttendanceSessionTitle: m.AttendanceSessionTitle,

		AttendanceSessionScheduledStart:   m.AttendanceSessionScheduledStart,
		AttendanceSessionLateThresholdMin: m.AttendanceSessionLateThresholdMin,

		AttendanceSessionStatus:   m.AttendanceSessionStatus,
		AttendanceSessionOpenedAt: m.AttendanceSessionOpenedAt,
		AttendanceSessionClosedAt: m.AttendanceSessionClosedAt,

		AttendanceSessionCreatedAt: m.AttendanceSessionCreatedAt,
	}
}

func ToSessionResponses(rows []model.AttendanceSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToSessionResponse(r))
	}
	return out
}

type CheckInResponse struct {
	AttendanceCheckInID          uuid.UUID `json:"attendance_check_ins_id"`
	AttendanceCheckInSessionID   uuid.UUID `json:"attendance_check_ins_session_id"`
	AttendanceCheckInPlayerID    uuid.UUID `json:"attendance_check_ins_player_id"`
	AttendanceCheckInCheckedInAt time.Time `json:"attendance_check_ins_checked_in_at"`
}

func ToCheckInResponse(m model.AttendanceCheckInModel) CheckInResponse {
	return CheckInResponse{
		AttendanceCheckInID:          m.AttendanceCheckInID,
		AttendanceCheckInSessionID:   m.AttendanceCheckInSessionID,
		AttendanceCheckInPlayerID:    m.AttendanceCheckInPlayerID,
		AttendanceCheckInCheckedInAt: m.AttendanceCheckInCheckedInAt,
	}
}

type UpdateAttendanceSettingsRequest struct {
	AttendanceSettingDefaultLateThresholdMin int `json:"attendance_settings_default_late_threshold_min" validate:"min=0,max=720"`
}
