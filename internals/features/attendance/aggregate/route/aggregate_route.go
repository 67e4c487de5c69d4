// file: internals/features/attendance/aggregate/route/aggregate_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/attendance/aggregate/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// AttendanceAggregateAdminRoutes: laporan kehadiran, hanya untuk pengurus liga.
func AttendanceAggregateAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceAggregateController(db)

	aggregates := api.Group("/attendance-aggregates", middleware.CanViewReports())
	aggregates.Get("/team/:team_id", ctl.GetByTeam)
	aggregates.Get("/player/:player_id", ctl.GetByPlayer)
	aggregates.Get("/:id", ctl.GetByID)
}
