// file: internals/features/attendance/aggregate/dto/aggregate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ligaku_backend/internals/features/attendance/aggregate/model"
	"ligaku_backend/internals/features/attendance/aggregate/service"
)

// AttendanceAggregateResponse: counter kumulatif plus rate turunan.
// Rate dihitung saat dibaca, tidak pernah disimpan.
type AttendanceAggregateResponse struct {
	AttendanceAggregateID uuid.UUID `json:"attendance_aggregates_id"`

	AttendanceAggregateLeagueID uuid.UUID `json:"attendance_aggregates_league_id"`
	AttendanceAggregatePlayerID uuid.UUID `json:"attendance_aggregates_player_id"`
	AttendanceAggregateTeamID   uuid.UUID `json:"attendance_aggregates_team_id"`
	AttendanceAggregateSeasonID uuid.UUID `json:"attendance_aggregates_season_id"`

	AttendanceAggregateTotalOnTime int `json:"attendance_aggregates_total_on_time"`
	AttendanceAggregateTotalLate   int `json:"attendance_aggregates_total_late"`
	AttendanceAggregateTotalAbsent int `json:"attendance_aggregates_total_absent"`

	AttendanceAggregateTotalSessions int `json:"attendance_aggregates_total_sessions"`

	AttendanceRate   int `json:"attendance_rate"`
	AccuracyRate     int `json:"accuracy_rate"`
	PerformanceScore int `json:"performance_score"`

	AttendanceAggregateCreatedAt time.Time  `json:"attendance_aggregates_created_at"`
	AttendanceAggregateUpdatedAt *time.Time `json:"attendance_aggregates_updated_at,omitempty"`
}

func ToAttendanceAggregateResponse(m model.AttendanceAggregateModel) AttendanceAggregateResponse {
	onTime := m.AttendanceAggregateTotalOnTime
	late := m.AttendanceAggregateTotalLate
	absent := m.AttendanceAggregateTotalAbsent

	return AttendanceAggregateResponse{
		AttendanceAggregateID:       m.AttendanceAggregateID,
		AttendanceAggregateLeagueID: m.AttendanceAggregateLeagueID,
		AttendanceAggregatePlayerID: m.AttendanceAggregatePlayerID,
		AttendanceAggregateTeamID:   m.AttendanceAggregateTeamID,
		AttendanceAggregateSeasonID: m.AttendanceAggregateSeasonID,

		AttendanceAggregateTotalOnTime: onTime,
		AttendanceAggregateTotalLate:   late,
		AttendanceAggregateTotalAbsent: absent,

		AttendanceAggregateTotalSessions: onTime + late + absent,

		AttendanceRate:   service.AttendanceRate(onTime, late, absent),
		AccuracyRate:     service.AccuracyRate(onTime, late),
		PerformanceScore: service.PerformanceScore(onTime, late, absent),

		AttendanceAggregateCreatedAt: m.AttendanceAggregateCreatedAt,
		AttendanceAggregateUpdatedAt: m.AttendanceAggregateUpdatedAt,
	}
}

func ToAttendanceAggregateResponses(rows []model.AttendanceAggregateModel) []AttendanceAggregateResponse {
	out := make([]AttendanceAggregateResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAttendanceAggregateResponse(r))
	}
	return out
}
