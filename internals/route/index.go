// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "ligaku_backend/internals/features/users/auth/repository"
	ligakuMiddleware "ligaku_backend/internals/middlewares/auth_league"
	featuresMiddleware "ligaku_backend/internals/middlewares/features"
	routeDetails "ligaku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	authOpts := ligakuMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
		BlacklistChecker: func(raw string) (bool, error) {
			return authRepo.IsTokenBlacklisted(db, raw)
		},
	}

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (user login)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		ligakuMiddleware.AuthJWT(authOpts),
	)

	// ADMIN (per liga)
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope + RoleCheck)...")
	admin := app.Group("/api/a",
		ligakuMiddleware.AuthJWT(authOpts),
		featuresMiddleware.UseLeagueScope(),
	)

	// OWNER (global)
	log.Println("[INFO] Setting up OWNER group (Auth + owner global)...")
	owner := app.Group("/api/o",
		ligakuMiddleware.AuthJWT(authOpts),
		featuresMiddleware.IsOwnerGlobal(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Auth & User routes...")
	routeDetails.AuthRoutes(public, private, db)
	routeDetails.UserRoutes(private, owner, db)

	log.Println("[INFO] Mounting League routes...")
	routeDetails.LeagueRoutes(public, private, admin, owner, db)

	log.Println("[INFO] Mounting Team routes...")
	routeDetails.TeamRoutes(public, admin, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(admin, db)
}
