package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// LeagueStaffModel: keanggotaan pengurus per liga.
// Satu user bisa memegang beberapa role sekaligus (mis. coach + staff).
type LeagueStaffModel struct {
	LeagueStaffID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:league_staff_id" json:"league_staff_id"`

	LeagueStaffLeagueID uuid.UUID `gorm:"type:uuid;not null;column:league_staff_league_id;uniqueIndex:uq_league_staff_league_user" json:"league_staff_league_id"`
	LeagueStaffUserID   uuid.UUID `gorm:"type:uuid;not null;column:league_staff_user_id;uniqueIndex:uq_league_staff_league_user" json:"league_staff_user_id"`

	LeagueStaffRoles pq.StringArray `gorm:"type:text[];not null;default:'{}';column:league_staff_roles" json:"league_staff_roles"`

	LeagueStaffIsActive bool `gorm:"not null;default:true;column:league_staff_is_active" json:"league_staff_is_active"`

	LeagueStaffCreatedAt time.Time  `gorm:"column:league_staff_created_at;autoCreateTime" json:"league_staff_created_at"`
	LeagueStaffUpdatedAt *time.Time `gorm:"column:league_staff_updated_at;autoUpdateTime" json:"league_staff_updated_at,omitempty"`
}

func (LeagueStaffModel) TableName() string { return "league_staff" }
