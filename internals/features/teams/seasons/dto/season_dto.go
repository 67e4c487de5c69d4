// file: internals/features/teams/seasons/dto/season_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ligaku_backend/internals/features/teams/seasons/model"
)

type CreateSeasonRequest struct {
	SeasonName     string         `json:"seasons_name" validate:"required,min=2,max=100"`
	SeasonStartsOn datatypes.Date `json:"seasons_starts_on" validate:"required"`
	SeasonEndsOn   datatypes.Date `json:"seasons_ends_on" validate:"required"`
}

type UpdateSeasonRequest struct {
	SeasonName     *string         `json:"seasons_name" validate:"omitempty,min=2,max=100"`
	SeasonStartsOn *datatypes.Date `json:"seasons_starts_on"`
	SeasonEndsOn   *datatypes.Date `json:"seasons_ends_on"`
}

type SeasonResponse struct {
	SeasonID       uuid.UUID      `json:"seasons_id"`
	SeasonLeagueID uuid.UUID      `json:"seasons_league_id"`
	SeasonName     string         `json:"seasons_name"`
	SeasonStartsOn datatypes.Date `json:"seasons_starts_on"`
	SeasonEndsOn   datatypes.Date `json:"seasons_ends_on"`
	SeasonIsActive bool           `json:"seasons_is_active"`
	SeasonCreated  time.Time      `json:"seasons_created_at"`
}

func ToSeasonResponse(m model.SeasonModel) SeasonResponse {
	return SeasonResponse{
		SeasonID:       m.SeasonID,
		SeasonLeagueID: m.SeasonLeagueID,
		SeasonName:     m.SeasonName,
		SeasonStartsOn: m.SeasonStartsOn,
		SeasonEndsOn:   m.SeasonEndsOn,
		SeasonIsActive: m.SeasonIsActive,
		SeasonCreated:  m.SeasonCreatedAt,
	}
}

func ToSeasonResponses(rows []model.SeasonModel) []SeasonResponse {
	out := make([]SeasonResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToSeasonResponse(r))
	}
	return out
}
