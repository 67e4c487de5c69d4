// file: internals/route/details/league_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffRoute "ligaku_backend/internals/features/leagues/league_staff/route"
	leagueRoute "ligaku_backend/internals/features/leagues/leagues/route"
	statsRoute "ligaku_backend/internals/features/leagues/stats/route"
)

func LeagueRoutes(public, private, admin, owner fiber.Router, db *gorm.DB) {
	leagueRoute.LeaguePublicRoutes(public, db)
	leagueRoute.LeagueUserRoutes(private, db)
	leagueRoute.LeagueAdminRoutes(admin, db)
	leagueRoute.LeagueOwnerRoutes(owner, db)

	staffRoute.LeagueStaffAdminRoutes(admin, db)
	statsRoute.LeagueStatsAdminRoutes(admin, db)
}
