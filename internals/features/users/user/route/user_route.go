// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/users/user/controller"
)

// UserUserRoutes: profil milik user login (grup /api/u).
func UserUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Get("/me", ctl.Me)
	users.Put("/me/username", ctl.UpdateUserName)
}

// UserOwnerRoutes: manajemen akun lintas liga (grup /api/o).
func UserOwnerRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", ctl.GetAllUsers)
	users.Get("/:id", ctl.GetUserByID)
	users.Put("/:id/active", ctl.SetActive)
}
