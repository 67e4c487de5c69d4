// file: internals/features/teams/locations/controller/location_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/teams/locations/dto"
	"ligaku_backend/internals/features/teams/locations/model"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

var validate = validator.New()

// POST /api/a/locations
func (ctl *LocationController) CreateLocation(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	loc := model.LocationModel{
		LocationLeagueID:  leagueID,
		LocationName:      req.LocationName,
		LocationAddress:   req.LocationAddress,
		LocationLatitude:  req.LocationLatitude,
		LocationLongitude: req.LocationLongitude,
	}
	if err := ctl.DB.Create(&loc).Error; err != nil {
		log.Printf("[ERROR] buat lokasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lokasi")
	}

	return helper.JsonCreated(c, "Lokasi berhasil dibuat", dto.ToLocationResponse(loc))
}

// GET /api/a/locations
func (ctl *LocationController) ListLocations(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []model.LocationModel
	if err := ctl.DB.
		Where("locations_league_id = ?", leagueID).
		Order("locations_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil lokasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar lokasi")
	}

	return helper.JsonOK(c, "Daftar lokasi berhasil diambil", dto.ToLocationResponses(rows))
}

// PUT /api/a/locations/:id
func (ctl *LocationController) UpdateLocation(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.LocationName != nil {
		updates["locations_name"] = *req.LocationName
	}
	if req.LocationAddress != nil {
		updates["locations_address"] = *req.LocationAddress
	}
	if req.LocationLatitude != nil {
		updates["locations_latitude"] = *req.LocationLatitude
	}
	if req.LocationLongitude != nil {
		updates["locations_longitude"] = *req.LocationLongitude
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctl.DB.Model(&model.LocationModel{}).
		Where("locations_id = ? AND locations_league_id = ?", id, leagueID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update lokasi %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah lokasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}

	var fresh model.LocationModel
	if err := ctl.DB.Where("locations_id = ?", id).Take(&fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lokasi")
	}
	return helper.JsonUpdated(c, "Lokasi berhasil diubah", dto.ToLocationResponse(fresh))
}

// DELETE /api/a/locations/:id — soft delete.
func (ctl *LocationController) DeleteLocation(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lokasi tidak valid")
	}

	res := ctl.DB.
		Where("locations_id = ? AND locations_league_id = ?", id, leagueID).
		Delete(&model.LocationModel{})
	if res.Error != nil {
		log.Printf("[ERROR] hapus lokasi %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus lokasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lokasi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Lokasi berhasil dihapus", fiber.Map{"locations_id": id})
}
