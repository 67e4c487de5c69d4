// file: internals/features/teams/players/controller/player_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	statsService "ligaku_backend/internals/features/leagues/stats/service"
	"ligaku_backend/internals/features/teams/players/dto"
	"ligaku_backend/internals/features/teams/players/model"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type PlayerController struct {
	DB    *gorm.DB
	Stats *statsService.LeagueStatsService
}

func NewPlayerController(db *gorm.DB) *PlayerController {
	return &PlayerController{DB: db, Stats: statsService.NewLeagueStatsService()}
}

var validate = validator.New()

// POST /api/a/players
func (ctl *PlayerController) CreatePlayer(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Tim harus milik liga aktif.
	var teamCount int64
	if err := ctl.DB.Table("teams").
		Where("teams_id = ? AND teams_league_id = ? AND teams_deleted_at IS NULL", req.PlayerTeamID, leagueID).
		Count(&teamCount).Error; err != nil {
		log.Printf("[ERROR] cek tim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa tim")
	}
	if teamCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tim tidak ditemukan di liga ini")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	player := model.PlayerModel{
		PlayerLeagueID:     leagueID,
		PlayerTeamID:       req.PlayerTeamID,
		PlayerUserID:       req.PlayerUserID,
		PlayerName:         req.PlayerName,
		PlayerJerseyNumber: req.PlayerJerseyNumber,
		PlayerPosition:     req.PlayerPosition,
	}
	if err := tx.Create(&player).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] buat pemain: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan pemain")
	}

	if err := ctl.Stats.IncActivePlayers(tx, leagueID, 1); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] bump stats pemain: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan pemain")
	}

	return helper.JsonCreated(c, "Pemain berhasil didaftarkan", dto.ToPlayerResponse(player))
}

// GET /api/a/players?team_id=
func (ctl *PlayerController) ListPlayers(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.PlayerModel{}).Where("players_league_id = ?", leagueID)
	if raw := c.Query("team_id"); raw != "" {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "team_id tidak valid")
		}
		q = q.Where("players_team_id = ?", teamID)
	}
	if c.Query("include_inactive") != "true" {
		q = q.Where("players_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung pemain: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pemain")
	}

	var rows []model.PlayerModel
	if err := q.Order("players_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil pemain: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pemain")
	}

	items := dto.ToPlayerResponses(rows)
	return helper.JsonList(c, "Daftar pemain berhasil diambil", items,
		helper.BuildPagination(total, len(items), p))
}

// GET /api/a/players/:id
func (ctl *PlayerController) GetPlayer(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pemain tidak valid")
	}

	var player model.PlayerModel
	if err := ctl.DB.
		Where("players_id = ? AND players_league_id = ?", id, leagueID).
		Take(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemain tidak ditemukan")
		}
		log.Printf("[ERROR] ambil pemain %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemain")
	}

	return helper.JsonOK(c, "Pemain berhasil diambil", dto.ToPlayerResponse(player))
}

// PUT /api/a/players/:id
func (ctl *PlayerController) UpdatePlayer(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pemain tidak valid")
	}

	var req dto.UpdatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var player model.PlayerModel
	if err := ctl.DB.
		Where("players_id = ? AND players_league_id = ?", id, leagueID).
		Take(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemain tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemain")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}

	updates := map[string]any{}
	if req.PlayerName != nil {
		updates["players_name"] = *req.PlayerName
	}
	if req.PlayerJerseyNumber != nil {
		updates["players_jersey_number"] = *req.PlayerJerseyNumber
	}
	if req.PlayerPosition != nil {
		updates["players_position"] = *req.PlayerPosition
	}
	if req.PlayerIsActive != nil {
		updates["players_is_active"] = *req.PlayerIsActive
	}
	if len(updates) == 0 {
		tx.Rollback()
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToPlayerResponse(player))
	}

	if err := tx.Model(&player).Updates(updates).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] update pemain %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah pemain")
	}

	if req.PlayerIsActive != nil && *req.PlayerIsActive != player.PlayerIsActive {
		delta := 1
		if !*req.PlayerIsActive {
			delta = -1
		}
		if err := ctl.Stats.IncActivePlayers(tx, leagueID, delta); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] geser stats pemain: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah pemain")
	}

	var fresh model.PlayerModel
	if err := ctl.DB.Where("players_id = ?", id).Take(&fresh).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemain")
	}
	return helper.JsonUpdated(c, "Pemain berhasil diubah", dto.ToPlayerResponse(fresh))
}

// DELETE /api/a/players/:id — soft delete; riwayat agregat pemain tetap ada.
func (ctl *PlayerController) DeletePlayer(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pemain tidak valid")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}

	res := tx.
		Where("players_id = ? AND players_league_id = ?", id, leagueID).
		Delete(&model.PlayerModel{})
	if res.Error != nil {
		tx.Rollback()
		log.Printf("[ERROR] hapus pemain %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pemain")
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusNotFound, "Pemain tidak ditemukan")
	}

	if err := ctl.Stats.IncActivePlayers(tx, leagueID, -1); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] turunkan stats pemain: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pemain")
	}

	return helper.JsonDeleted(c, "Pemain berhasil dihapus", fiber.Map{"players_id": id})
}
