// file: internals/features/leagues/leagues/dto/league_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ligaku_backend/internals/features/leagues/leagues/model"
)

type CreateLeagueRequest struct {
	LeagueName        string         `json:"leagues_name" validate:"required,min=3,max=100"`
	LeagueDescription *string        `json:"leagues_description" validate:"omitempty,max=500"`
	LeagueBranding    datatypes.JSON `json:"leagues_branding"`
}

type UpdateLeagueRequest struct {
	LeagueName        *string        `json:"leagues_name" validate:"omitempty,min=3,max=100"`
	LeagueDescription *string        `json:"leagues_description" validate:"omitempty,max=500"`
	LeagueBranding    datatypes.JSON `json:"leagues_branding"`
	LeagueIsActive    *bool          `json:"leagues_is_active"`
}

type LeagueResponse struct {
	LeagueID          uuid.UUID      `json:"leagues_id"`
	LeagueName        string         `json:"leagues_name"`
	LeagueSlug        string         `json:"leagues_slug"`
	LeagueDescription *string        `json:"leagues_description,omitempty"`
	LeagueBranding    datatypes.JSON `json:"leagues_branding,omitempty"`
	LeagueOwnerUserID uuid.UUID      `json:"leagues_owner_user_id"`
	LeagueIsActive    bool           `json:"leagues_is_active"`
	LeagueCreatedAt   time.Time      `json:"leagues_created_at"`
}

func ToLeagueResponse(m model.LeagueModel) LeagueResponse {
	return LeagueResponse{
		LeagueID:          m.LeagueID,
		LeagueName:        m.LeagueName,
		LeagueSlug:        m.LeagueSlug,
		LeagueDescription: m.LeagueDescription,
		LeagueBranding:    m.LeagueBranding,
		LeagueOwnerUserID: m.LeagueOwnerUserID,
		LeagueIsActive:    m.LeagueIsActive,
		LeagueCreatedAt:   m.LeagueCreatedAt,
	}
}

func ToLeagueResponses(rows []model.LeagueModel) []LeagueResponse {
	out := make([]LeagueResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToLeagueResponse(r))
	}
	return out
}
