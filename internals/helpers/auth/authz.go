// file: internals/helpers/auth/authz.go
package helper

import (
	"strings"

	"github.com/google/uuid"

	"ligaku_backend/internals/constants"
)

// Capability: satu predicate kebijakan untuk semua pengecekan izin,
// menggantikan cek keanggotaan role yang tersebar di tiap controller.
type Capability string

const (
	CapManageLeague   Capability = "manage_league"   // ubah profil liga, staff, settings
	CapManageTeams    Capability = "manage_teams"    // CRUD tim, pemain, musim, lokasi
	CapManageSessions Capability = "manage_sessions" // buka/tutup sesi, check-in
	CapViewReports    Capability = "view_reports"    // baca agregat & metrik
)

// capabilityRoles: role liga mana saja yang memegang capability tsb.
var capabilityRoles = map[Capability][]string{
	CapManageLeague:   {constants.RoleAdmin},
	CapManageTeams:    {constants.RoleAdmin, constants.RoleCoach},
	CapManageSessions: {constants.RoleAdmin, constants.RoleCoach, constants.RoleStaff},
	CapViewReports:    {constants.RoleAdmin, constants.RoleCoach, constants.RoleStaff},
}

// HasCapability mengevaluasi apakah claim memegang capability untuk liga tertentu.
// Owner global selalu lolos.
func HasCapability(rc RolesClaim, leagueID uuid.UUID, cap Capability) bool {
	for _, r := range rc.RolesGlobal {
		if strings.EqualFold(r, constants.RoleOwner) {
			return true
		}
	}

	allowed, ok := capabilityRoles[cap]
	if !ok {
		return false
	}

	for _, entry := range rc.LeagueRoles {
		if entry.LeagueID != leagueID {
			continue
		}
		for _, have := range entry.Roles {
			for _, want := range allowed {
				if strings.EqualFold(have, want) {
					return true
				}
			}
		}
	}
	return false
}
