// file: internals/features/teams/locations/route/location_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/teams/locations/controller"
	middleware "ligaku_backend/internals/middlewares/features"
)

// LocationAdminRoutes: venue liga, staff ke atas.
func LocationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLocationController(db)

	locations := api.Group("/locations", middleware.CanManageSessions())
	locations.Post("/", ctl.CreateLocation)
	locations.Get("/", ctl.ListLocations)
	locations.Put("/:id", ctl.UpdateLocation)
	locations.Delete("/:id", ctl.DeleteLocation)
}
