package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users.
// Role per liga disimpan di league_staff / players; roles_global hanya
// untuk role lintas liga (mis. "user", "owner").
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`

	RolesGlobal pq.StringArray `gorm:"type:text[];not null;default:'{user}'" json:"roles_global"`
	IsOwner     bool           `gorm:"not null;default:false" json:"is_owner"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan role minimal "user".
func (u *UserModel) SetDefaultValues() {
	if len(u.RolesGlobal) == 0 {
		u.RolesGlobal = pq.StringArray{"user"}
	}
}
