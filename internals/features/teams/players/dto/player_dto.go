// file: internals/features/teams/players/dto/player_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ligaku_backend/internals/features/teams/players/model"
)

type CreatePlayerRequest struct {
	PlayerTeamID       uuid.UUID  `json:"players_team_id" validate:"required"`
	PlayerUserID       *uuid.UUID `json:"players_user_id"`
	PlayerName         string     `json:"players_name" validate:"required,min=2,max=100"`
	PlayerJerseyNumber *int       `json:"players_jersey_number" validate:"omitempty,min=0,max=999"`
	PlayerPosition     *string    `json:"players_position" validate:"omitempty,max=50"`
}

type UpdatePlayerRequest struct {
	PlayerName         *string `json:"players_name" validate:"omitempty,min=2,max=100"`
	PlayerJerseyNumber *int    `json:"players_jersey_number" validate:"omitempty,min=0,max=999"`
	PlayerPosition     *string `json:"players_position" validate:"omitempty,max=50"`
	PlayerIsActive     *bool   `json:"players_is_active"`
}

type PlayerResponse struct {
	PlayerID           uuid.UUID  `json:"players_id"`
	PlayerLeagueID     uuid.UUID  `json:"players_league_id"`
	PlayerTeamID       uuid.UUID  `json:"players_team_id"`
	PlayerUserID       *uuid.UUID `json:"players_user_id,omitempty"`
	PlayerName         string     `json:"players_name"`
	PlayerJerseyNumber *int       `json:"players_jersey_number,omitempty"`
	PlayerPosition     *string    `json:"players_position,omitempty"`
	PlayerIsActive     bool       `json:"players_is_active"`
	PlayerCreatedAt    time.Time  `json:"players_created_at"`
}

func ToPlayerResponse(m model.PlayerModel) PlayerResponse {
	return PlayerResponse{
		PlayerID:           m.PlayerID,
		PlayerLeagueID:     m.PlayerLeagueID,
		PlayerTeamID:       m.PlayerTeamID,
		PlayerUserID:       m.PlayerUserID,
		PlayerName:         m.PlayerName,
		PlayerJerseyNumber: m.PlayerJerseyNumber,
		PlayerPosition:     m.PlayerPosition,
		PlayerIsActive:     m.PlayerIsActive,
		PlayerCreatedAt:    m.PlayerCreatedAt,
	}
}

func ToPlayerResponses(rows []model.PlayerModel) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToPlayerResponse(r))
	}
	return out
}
