// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "ligaku_backend/internals/features/users/user/route"
)

func UserRoutes(private fiber.Router, owner fiber.Router, db *gorm.DB) {
	userRoute.UserUserRoutes(private, db)
	userRoute.UserOwnerRoutes(owner, db)
}
