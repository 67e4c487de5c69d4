// file: internals/features/leagues/league_staff/route/league_staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/leagues/league_staff/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// LeagueStaffAdminRoutes: kelola pengurus, hanya admin liga.
func LeagueStaffAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeagueStaffController(db)

	staff := api.Group("/league-staff", middleware.IsLeagueAdmin())
	staff.Post("/", ctl.GrantStaff)
	staff.Get("/", ctl.ListStaff)
	staff.Delete("/:user_id", ctl.RevokeStaff)
}
