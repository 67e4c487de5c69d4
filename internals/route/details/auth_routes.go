// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "ligaku_backend/internals/features/users/auth/route"
)

func AuthRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(public, db)
	authRoute.AuthUserRoutes(private, db)
}
