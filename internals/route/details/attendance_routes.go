// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aggregateRoute "ligaku_backend/internals/features/attendance/aggregate/route"
	sessionRoute "ligaku_backend/internals/features/attendance/sessions/route"
)

func AttendanceRoutes(admin fiber.Router, db *gorm.DB) {
	sessionRoute.AttendanceSessionAdminRoutes(admin, db)
	aggregateRoute.AttendanceAggregateAdminRoutes(admin, db)
}
