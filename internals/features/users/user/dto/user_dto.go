// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"ligaku_backend/internals/features/users/user/model"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	RolesGlobal []string  `json:"roles_global"`
	IsOwner     bool      `json:"is_owner"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUserResponse(u model.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		UserName:    u.UserName,
		Email:       u.Email,
		RolesGlobal: u.RolesGlobal,
		IsOwner:     u.IsOwner,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserResponses(rows []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToUserResponse(r))
	}
	return out
}

type UpdateUserNameRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
}
