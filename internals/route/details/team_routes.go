// file: internals/route/details/team_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	locationRoute "ligaku_backend/internals/features/teams/locations/route"
	playerRoute "ligaku_backend/internals/features/teams/players/route"
	seasonRoute "ligaku_backend/internals/features/teams/seasons/route"
	teamRoute "ligaku_backend/internals/features/teams/teams/route"
)

func TeamRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	teamRoute.TeamPublicRoutes(public, db)
	teamRoute.TeamAdminRoutes(admin, db)
	playerRoute.PlayerAdminRoutes(admin, db)
	seasonRoute.SeasonAdminRoutes(admin, db)
	locationRoute.LocationAdminRoutes(admin, db)
}
