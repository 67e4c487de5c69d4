package constants

import "fmt"

// Role dasar aplikasi
const (
	RoleUser   = "user"
	RolePlayer = "player"
	RoleStaff  = "staff"
	RoleCoach  = "coach"
	RoleAdmin  = "admin"
	RoleOwner  = "owner"
)

// Template pesan error role
const (
	ErrOnlyCoachesCanAccess = "❌ Hanya coach, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess  = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorCoach(feature string) string {
	return fmt.Sprintf(ErrOnlyCoachesCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RolePlayer,
		RoleStaff,
		RoleCoach,
		RoleAdmin,
		RoleOwner,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleCoach,
		RoleAdmin,
		RoleOwner,
	}

	CoachAndAbove = []string{
		RoleCoach,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
