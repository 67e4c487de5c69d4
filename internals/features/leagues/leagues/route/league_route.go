// file: internals/features/leagues/leagues/route/league_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/leagues/leagues/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// LeaguePublicRoutes: profil liga untuk pengunjung.
func LeaguePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeagueController(db)

	leagues := api.Group("/leagues")
	leagues.Get("/", ctl.ListPublic)
	leagues.Get("/:slug", ctl.GetBySlug)
}

// LeagueUserRoutes: user login boleh mendirikan liga.
func LeagueUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeagueController(db)

	leagues := api.Group("/leagues")
	leagues.Post("/", ctl.CreateLeague)
}

// LeagueAdminRoutes: pengelolaan liga aktif.
func LeagueAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeagueController(db)

	leagues := api.Group("/leagues", middleware.IsLeagueAdmin())
	leagues.Put("/", ctl.UpdateLeague)
}

// LeagueOwnerRoutes: operasi destruktif lintas liga.
func LeagueOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeagueController(db)

	leagues := api.Group("/leagues")
	leagues.Delete("/:id", ctl.DeleteLeague)
}
