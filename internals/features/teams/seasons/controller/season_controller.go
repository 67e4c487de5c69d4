// file: internals/features/teams/seasons/controller/season_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/teams/seasons/dto"
	"ligaku_backend/internals/features/teams/seasons/model"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type SeasonController struct {
	DB *gorm.DB
}

func NewSeasonController(db *gorm.DB) *SeasonController {
	return &SeasonController{DB: db}
}

var validate = validator.New()

// POST /api/a/seasons
func (ctl *SeasonController) CreateSeason(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateSeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if time.Time(req.SeasonEndsOn).Before(time.Time(req.SeasonStartsOn)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	season := model.SeasonModel{
		SeasonLeagueID: leagueID,
		SeasonName:     req.SeasonName,
		SeasonStartsOn: req.SeasonStartsOn,
		SeasonEndsOn:   req.SeasonEndsOn,
	}
	if err := ctl.DB.Create(&season).Error; err != nil {
		log.Printf("[ERROR] buat musim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat musim")
	}

	return helper.JsonCreated(c, "Musim berhasil dibuat", dto.ToSeasonResponse(season))
}

// GET /api/a/seasons
func (ctl *SeasonController) ListSeasons(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []model.SeasonModel
	if err := ctl.DB.
		Where("seasons_league_id = ?", leagueID).
		Order("seasons_starts_on DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil musim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar musim")
	}

	return helper.JsonOK(c, "Daftar musim berhasil diambil", dto.ToSeasonResponses(rows))
}

// PUT /api/a/seasons/:id
func (ctl *SeasonController) UpdateSeason(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID musim tidak valid")
	}

	var req dto.UpdateSeasonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.SeasonName != nil {
		updates["seasons_name"] = *req.SeasonName
	}
	if req.SeasonStartsOn != nil {
		updates["seasons_starts_on"] = *req.SeasonStartsOn
	}
	if req.SeasonEndsOn != nil {
		updates["seasons_ends_on"] = *req.SeasonEndsOn
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctl.DB.Model(&model.SeasonModel{}).
		Where("seasons_id = ? AND seasons_league_id = ?", id, leagueID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update musim %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah musim")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Musim tidak ditemukan")
	}

	var fresh model.SeasonModel
	if err := ctl.DB.Where("seasons_id = ?", id).Take(&fresh).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil musim")
	}
	return helper.JsonUpdated(c, "Musim berhasil diubah", dto.ToSeasonResponse(fresh))
}

// POST /api/a/seasons/:id/activate
// Satu musim aktif per liga: nonaktifkan yang lain dalam satu transaksi.
func (ctl *SeasonController) ActivateSeason(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID musim tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SeasonModel{}).
			Where("seasons_league_id = ? AND seasons_is_active = TRUE", leagueID).
			Update("seasons_is_active", false).Error; err != nil {
			return err
		}

		res := tx.Model(&model.SeasonModel{}).
			Where("seasons_id = ? AND seasons_league_id = ?", id, leagueID).
			Update("seasons_is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Musim tidak ditemukan")
		}
		log.Printf("[ERROR] aktifkan musim %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengaktifkan musim")
	}

	var fresh model.SeasonModel
	if err := ctl.DB.Where("seasons_id = ?", id).Take(&fresh).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil musim")
	}
	return helper.JsonUpdated(c, "Musim diaktifkan", dto.ToSeasonResponse(fresh))
}

// DELETE /api/a/seasons/:id — soft delete; musim aktif tidak bisa dihapus.
func (ctl *SeasonController) DeleteSeason(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID musim tidak valid")
	}

	res := ctl.DB.
		Where("seasons_id = ? AND seasons_league_id = ? AND seasons_is_active = FALSE", id, leagueID).
		Delete(&model.SeasonModel{})
	if res.Error != nil {
		log.Printf("[ERROR] hapus musim %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus musim")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Musim tidak ditemukan atau sedang aktif")
	}

	return helper.JsonDeleted(c, "Musim berhasil dihapus", fiber.Map{"seasons_id": id})
}
