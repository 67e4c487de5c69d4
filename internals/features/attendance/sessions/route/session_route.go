// file: internals/features/attendance/sessions/route/session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/attendance/sessions/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// AttendanceSessionAdminRoutes: lifecycle sesi + check-in (staff ke atas),
// pengaturan default kehadiran (admin liga).
func AttendanceSessionAdminRoutes(api fiber.Router, db *gorm.DB) {
	sessCtl := controller.NewAttendanceSessionController(db)
	settingsCtl := controller.NewAttendanceSettingsController(db)

	sessions := api.Group("/attendance-sessions", middleware.CanManageSessions())
	sessions.Post("/", sessCtl.CreateSession)
	sessions.Get("/", sessCtl.ListSessions)
	sessions.Get("/:id", sessCtl.GetSession)
	sessions.Put("/:id", sessCtl.UpdateSession)
	sessions.Delete("/:id", sessCtl.DeleteSession)

	sessions.Post("/:id/open", sessCtl.OpenSession)
	sessions.Post("/:id/close", sessCtl.CloseSession)
	sessions.Post("/:id/check-ins", sessCtl.CheckIn)
	sessions.Get("/:id/check-ins", sessCtl.ListCheckIns)

	settings := api.Group("/attendance-settings", middleware.IsLeagueAdmin())
	settings.Get("/", settingsCtl.GetSettings)
	settings.Put("/", settingsCtl.UpdateSettings)
}
