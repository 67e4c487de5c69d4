// file: internals/features/teams/locations/dto/location_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ligaku_backend/internals/features/teams/locations/model"
)

type CreateLocationRequest struct {
	LocationName      string   `json:"locations_name" validate:"required,min=2,max=100"`
	LocationAddress   *string  `json:"locations_address" validate:"omitempty,max=255"`
	LocationLatitude  *float64 `json:"locations_latitude" validate:"omitempty,min=-90,max=90"`
	LocationLongitude *float64 `json:"locations_longitude" validate:"omitempty,min=-180,max=180"`
}

type UpdateLocationRequest struct {
	LocationName      *string  `json:"locations_name" validate:"omitempty,min=2,max=100"`
	LocationAddress   *string  `json:"locations_address" validate:"omitempty,max=255"`
	LocationLatitude  *float64 `json:"locations_latitude" validate:"omitempty,min=-90,max=90"`
	LocationLongitude *float64 `json:"locations_longitude" validate:"omitempty,min=-180,max=180"`
}

type LocationResponse struct {
	LocationID        uuid.UUID `json:"locations_id"`
	LocationLeagueID  uuid.UUID `json:"locations_league_id"`
	LocationName      string    `json:"locations_name"`
	LocationAddress   *string   `json:"locations_address,omitempty"`
	LocationLatitude  *float64  `json:"locations_latitude,omitempty"`
	LocationLongitude *float64  `json:"locations_longitude,omitempty"`
	LocationCreatedAt time.Time `json:"locations_created_at"`
}

func ToLocationResponse(m model.LocationModel) LocationResponse {
	return LocationResponse{
		LocationID:        m.LocationID,
		LocationLeagueID:  m.LocationLeagueID,
		LocationName:      m.LocationName,
		LocationAddress:   m.LocationAddress,
		LocationLatitude:  m.LocationLatitude,
		LocationLongitude: m.LocationLongitude,
		LocationCreatedAt: m.LocationCreatedAt,
	}
}

func ToLocationResponses(rows []model.LocationModel) []LocationResponse {
	out := make([]LocationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToLocationResponse(r))
	}
	return out
}
