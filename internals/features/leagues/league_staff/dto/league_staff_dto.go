// file: internals/features/leagues/league_staff/dto/league_staff_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ligaku_backend/internals/features/leagues/league_staff/model"
)

type GrantStaffRequest struct {
	LeagueStaffUserID uuid.UUID `json:"league_staff_user_id" validate:"required"`
	LeagueStaffRoles  []string  `json:"league_staff_roles" validate:"required,min=1,dive,oneof=staff coach admin"`
}

type UpdateStaffRolesRequest struct {
	LeagueStaffRoles []string `json:"league_staff_roles" validate:"required,min=1,dive,oneof=staff coach admin"`
}

type LeagueStaffResponse struct {
	LeagueStaffID       uuid.UUID `json:"league_staff_id"`
	LeagueStaffLeagueID uuid.UUID `json:"league_staff_league_id"`
	LeagueStaffUserID   uuid.UUID `json:"league_staff_user_id"`
	LeagueStaffRoles    []string  `json:"league_staff_roles"`
	LeagueStaffIsActive bool      `json:"league_staff_is_active"`
	LeagueStaffCreated  time.Time `json:"league_staff_created_at"`
}

func ToLeagueStaffResponse(m model.LeagueStaffModel) LeagueStaffResponse {
	return LeagueStaffResponse{
		LeagueStaffID:       m.LeagueStaffID,
		LeagueStaffLeagueID: m.LeagueStaffLeagueID,
		LeagueStaffUserID:   m.LeagueStaffUserID,
		LeagueStaffRoles:    m.LeagueStaffRoles,
		LeagueStaffIsActive: m.LeagueStaffIsActive,
		LeagueStaffCreated:  m.LeagueStaffCreatedAt,
	}
}

func ToLeagueStaffResponses(rows []model.LeagueStaffModel) []LeagueStaffResponse {
	out := make([]LeagueStaffResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToLeagueStaffResponse(r))
	}
	return out
}
