// file: internals/features/teams/teams/dto/team_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ligaku_backend/internals/features/teams/teams/model"
)

type CreateTeamRequest struct {
	TeamName        string     `json:"teams_name" validate:"required,min=2,max=100"`
	TeamCoachUserID *uuid.UUID `json:"teams_coach_user_id"`
}

type UpdateTeamRequest struct {
	TeamName        *string    `json:"teams_name" validate:"omitempty,min=2,max=100"`
	TeamCoachUserID *uuid.UUID `json:"teams_coach_user_id"`
	TeamIsActive    *bool      `json:"teams_is_active"`
}

type TeamResponse struct {
	TeamID          uuid.UUID  `json:"teams_id"`
	TeamLeagueID    uuid.UUID  `json:"teams_league_id"`
	TeamName        string     `json:"teams_name"`
	TeamSlug        string     `json:"teams_slug"`
	TeamCoachUserID *uuid.UUID `json:"teams_coach_user_id,omitempty"`
	TeamIsActive    bool       `json:"teams_is_active"`
	TeamCreatedAt   time.Time  `json:"teams_created_at"`
}

func ToTeamResponse(m model.TeamModel) TeamResponse {
	return TeamResponse{
		TeamID:          m.TeamID,
		TeamLeagueID:    m.TeamLeagueID,
		TeamName:        m.TeamName,
		TeamSlug:        m.TeamSlug,
		TeamCoachUserID: m.TeamCoachUserID,
		TeamIsActive:    m.TeamIsActive,
		TeamCreatedAt:   m.TeamCreatedAt,
	}
}

func ToTeamResponses(rows []model.TeamModel) []TeamResponse {
	out := make([]TeamResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToTeamResponse(r))
	}
	return out
}
