// file: internals/features/teams/seasons/route/season_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/teams/seasons/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// SeasonAdminRoutes: kalender musim, hanya admin liga.
func SeasonAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSeasonController(db)

	seasons := api.Group("/seasons", middleware.IsLeagueAdmin())
	seasons.Post("/", ctl.CreateSeason)
	seasons.Get("/", ctl.ListSeasons)
	seasons.Put("/:id", ctl.UpdateSeason)
	seasons.Post("/:id/activate", ctl.ActivateSeason)
	seasons.Delete("/:id", ctl.DeleteSeason)
}
