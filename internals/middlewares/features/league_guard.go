package middleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "ligaku_backend/internals/helpers/auth"
)

// UseLeagueScope memastikan request admin membawa scope liga (dari token atau ?league_id=).
func UseLeagueScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.GetLeagueIDFromToken(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// requireCapability: guard berbasis capability tunggal (lihat helpers/auth/authz.go).
func requireCapability(cap helperAuth.Capability, msg string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		leagueID, err := helperAuth.GetLeagueIDFromToken(c)
		if err != nil {
			return err
		}
		rc := helperAuth.GetRolesClaim(c)
		if !helperAuth.HasCapability(rc, leagueID, cap) {
			return fiber.NewError(fiber.StatusForbidden, msg)
		}
		return c.Next()
	}
}

// IsLeagueAdmin: hanya admin liga (atau owner global).
func IsLeagueAdmin() fiber.Handler {
	return requireCapability(helperAuth.CapManageLeague, "❌ Hanya admin liga yang boleh mengakses fitur ini.")
}

// IsLeagueCoachOrAdmin: coach ke atas.
func IsLeagueCoachOrAdmin() fiber.Handler {
	return requireCapability(helperAuth.CapManageTeams, "❌ Hanya coach atau admin liga yang boleh mengakses fitur ini.")
}

// CanManageSessions: staff ke atas (buka/tutup sesi & check-in).
func CanManageSessions() fiber.Handler {
	return requireCapability(helperAuth.CapManageSessions, "❌ Hanya staff, coach, atau admin liga yang boleh mengelola sesi.")
}

// CanViewReports: laporan kehadiran & statistik liga.
func CanViewReports() fiber.Handler {
	return requireCapability(helperAuth.CapViewReports, "❌ Anda tidak punya akses ke laporan liga ini.")
}

// IsOwnerGlobal: khusus grup /api/o.
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsOwnerGlobal(c) {
			return fiber.NewError(fiber.StatusForbidden, "❌ Hanya owner yang boleh mengakses fitur ini.")
		}
		return c.Next()
	}
}
