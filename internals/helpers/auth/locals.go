// file: internals/helpers/auth/locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocUserName = "user_name" // string

	LocRolesGlobal    = "roles_global"     // []string
	LocLeagueRoles    = "league_roles"     // []LeagueRolesEntry | []map[string]any
	LocIsOwner        = "is_owner"         // bool
	LocActiveLeagueID = "active_league_id" // string UUID
)

type LeagueRolesEntry struct {
	LeagueID uuid.UUID `json:"league_id"`
	Roles    []string  `json:"roles"`
}

type RolesClaim struct {
	RolesGlobal []string           `json:"roles_global"`
	LeagueRoles []LeagueRolesEntry `json:"league_roles"`
}

/* ============================================
   Extractors
   ============================================ */

// GetUserIDFromToken mengambil user_id (UUID) dari Locals hasil middleware AuthJWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid")
	}
	return id, nil
}

// GetLeagueIDFromToken mengambil active_league_id dari Locals.
// Fallback ke query ?league_id= jika klaim tidak ada (mis. owner lintas liga).
func GetLeagueIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if v := c.Locals(LocActiveLeagueID); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			id, err := uuid.Parse(strings.TrimSpace(s))
			if err == nil {
				return id, nil
			}
		}
	}
	if q := strings.TrimSpace(c.Query("league_id")); q != "" {
		id, err := uuid.Parse(q)
		if err == nil {
			return id, nil
		}
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "league_id tidak valid")
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "League ID tidak ditemukan di token")
}

// GetRolesClaim membangun RolesClaim dari Locals (robust untuk tipe hasil decode JWT).
func GetRolesClaim(c *fiber.Ctx) RolesClaim {
	rc := RolesClaim{
		RolesGlobal: readStringSlice(c.Locals(LocRolesGlobal)),
		LeagueRoles: make([]LeagueRolesEntry, 0),
	}

	switch t := c.Locals(LocLeagueRoles).(type) {
	case []LeagueRolesEntry:
		rc.LeagueRoles = t
	case []any:
		for _, it := range t {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			var lid uuid.UUID
			if s, ok := m["league_id"].(string); ok {
				if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
					lid = id
				}
			}
			rc.LeagueRoles = append(rc.LeagueRoles, LeagueRolesEntry{
				LeagueID: lid,
				Roles:    readStringSlice(m["roles"]),
			})
		}
	}
	return rc
}

// IsOwnerGlobal: cek klaim is_owner / roles_global.
func IsOwnerGlobal(c *fiber.Ctx) bool {
	if v, ok := c.Locals(LocIsOwner).(bool); ok && v {
		return true
	}
	for _, r := range readStringSlice(c.Locals(LocRolesGlobal)) {
		if strings.EqualFold(r, "owner") {
			return true
		}
	}
	return false
}

// util: ubah nilai interface{} → []string (robust untuk []string atau []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
