// file: internals/features/teams/players/route/player_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/teams/players/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// PlayerAdminRoutes: roster pemain, coach ke atas.
func PlayerAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPlayerController(db)

	players := api.Group("/players", middleware.IsLeagueCoachOrAdmin())
	players.Post("/", ctl.CreatePlayer)
	players.Get("/", ctl.ListPlayers)
	players.Get("/:id", ctl.GetPlayer)
	players.Put("/:id", ctl.UpdatePlayer)
	players.Delete("/:id", ctl.DeletePlayer)
}
