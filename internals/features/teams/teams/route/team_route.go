// file: internals/features/teams/teams/route/team_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/teams/teams/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// TeamPublicRoutes: daftar tim aktif per liga untuk pengunjung.
func TeamPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeamController(db)

	api.Get("/leagues/:slug/teams", ctl.ListPublicByLeagueSlug)
}

// TeamAdminRoutes: CRUD tim, coach ke atas.
func TeamAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeamController(db)

	teams := api.Group("/teams", middleware.IsLeagueCoachOrAdmin())
	teams.Post("/", ctl.CreateTeam)
	teams.Get("/", ctl.ListTeams)
	teams.Get("/:id", ctl.GetTeam)
	teams.Put("/:id", ctl.UpdateTeam)
	teams.Delete("/:id", ctl.DeleteTeam)
}
