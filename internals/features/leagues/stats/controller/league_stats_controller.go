// file: internals/features/leagues/stats/controller/league_stats_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/leagues/stats/model"
	"ligaku_backend/internals/features/leagues/stats/service"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type LeagueStatsController struct {
	DB    *gorm.DB
	Stats *service.LeagueStatsService
}

func NewLeagueStatsController(db *gorm.DB) *LeagueStatsController {
	return &LeagueStatsController{DB: db, Stats: service.NewLeagueStatsService()}
}

// GET /api/a/league-stats
func (ctl *LeagueStatsController) GetStats(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var row model.LeagueStats
	if err := ctl.DB.
		Where("league_stats_league_id = ?", leagueID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Liga lama tanpa baris stats: buat dulu lalu kembalikan nol.
			if err := ctl.Stats.EnsureForLeague(ctl.DB, leagueID); err != nil {
				log.Printf("[ERROR] ensure stats liga %s: %v", leagueID, err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
			}
			row.LeagueStatsLeagueID = leagueID
			return helper.JsonOK(c, "Statistik liga berhasil diambil", row)
		}
		log.Printf("[ERROR] ambil stats liga %s: %v", leagueID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	return helper.JsonOK(c, "Statistik liga berhasil diambil", row)
}

// POST /api/a/league-stats/recompute
func (ctl *LeagueStatsController) Recompute(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	if err := ctl.Stats.Recompute(tx, leagueID); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] recompute stats liga %s: %v", leagueID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ulang statistik")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ulang statistik")
	}

	var row model.LeagueStats
	if err := ctl.DB.Where("league_stats_league_id = ?", leagueID).Take(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}
	return helper.JsonOK(c, "Statistik liga dihitung ulang", row)
}
