// file: internals/features/leagues/stats/route/league_stats_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/leagues/stats/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// LeagueStatsAdminRoutes: dashboard statistik liga.
func LeagueStatsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeagueStatsController(db)

	stats := api.Group("/league-stats", middleware.CanViewReports())
	stats.Get("/", ctl.GetStats)
	stats.Post("/recompute", middleware.IsLeagueAdmin(), ctl.Recompute)
}
