// file: internals/features/attendance/aggregate/controller/aggregate_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/attendance/aggregate/dto"
	"ligaku_backend/internals/features/attendance/aggregate/model"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type AttendanceAggregateController struct {
	DB *gorm.DB
}

func NewAttendanceAggregateController(db *gorm.DB) *AttendanceAggregateController {
	return &AttendanceAggregateController{DB: db}
}

// GET /api/a/attendance-aggregates/team/:team_id
// Laporan kehadiran kumulatif satu tim. Filter opsional ?season_id=.
func (ctl *AttendanceAggregateController) GetByTeam(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	teamID, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "team_id tidak valid")
	}

	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.AttendanceAggregateModel{}).
		Where("attendance_aggregates_league_id = ?", leagueID).
		Where("attendance_aggregates_team_id = ?", teamID)

	if rawSeason := c.Query("season_id"); rawSeason != "" {
		seasonID, err := uuid.Parse(rawSeason)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "season_id tidak valid")
		}
		q = q.Where("attendance_aggregates_season_id = ?", seasonID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung agregat tim %s: %v", teamID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan kehadiran")
	}

	var rows []model.AttendanceAggregateModel
	if err := q.
		Order("attendance_aggregates_total_on_time DESC, attendance_aggregates_player_id ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil agregat tim %s: %v", teamID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan kehadiran")
	}

	items := dto.ToAttendanceAggregateResponses(rows)
	return helper.JsonList(c, "Laporan kehadiran tim berhasil diambil", items,
		helper.BuildPagination(total, len(items), p))
}

// GET /api/a/attendance-aggregates/player/:player_id
// Semua scope agregat milik satu pemain (lintas tim & musim dalam liga aktif).
func (ctl *AttendanceAggregateController) GetByPlayer(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	playerID, err := uuid.Parse(c.Params("player_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "player_id tidak valid")
	}

	var rows []model.AttendanceAggregateModel
	if err := ctl.DB.
		Where("attendance_aggregates_league_id = ?", leagueID).
		Where("attendance_aggregates_player_id = ?", playerID).
		Order("attendance_aggregates_season_id ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil agregat pemain %s: %v", playerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat kehadiran pemain")
	}

	return helper.JsonOK(c, "Riwayat kehadiran pemain berhasil diambil",
		dto.ToAttendanceAggregateResponses(rows))
}

// GET /api/a/attendance-aggregates/:id
func (ctl *AttendanceAggregateController) GetByID(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID agregat tidak valid")
	}

	var row model.AttendanceAggregateModel
	if err := ctl.DB.
		Where("attendance_aggregates_id = ? AND attendance_aggregates_league_id = ?", id, leagueID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Agregat tidak ditemukan")
		}
		log.Printf("[ERROR] ambil agregat %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agregat")
	}

	return helper.JsonOK(c, "Agregat berhasil diambil", dto.ToAttendanceAggregateResponse(row))
}
