// file: internals/features/attendance/sessions/controller/settings_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/attendance/sessions/dto"
	"ligaku_backend/internals/features/attendance/sessions/model"
	sessService "ligaku_backend/internals/features/attendance/sessions/service"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type AttendanceSettingsController struct {
	DB *gorm.DB
}

func NewAttendanceSettingsController(db *gorm.DB) *AttendanceSettingsController {
	return &AttendanceSettingsController{DB: db}
}

// GET /api/a/attendance-settings
func (ctl *AttendanceSettingsController) GetSettings(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	if err := sessService.EnsureSettings(ctl.DB, leagueID); err != nil {
		log.Printf("[ERROR] ensure attendance settings liga %s: %v", leagueID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca pengaturan kehadiran")
	}

	var row model.AttendanceSettingsModel
	if err := ctl.DB.
		Where("attendance_settings_league_id = ?", leagueID).
		Take(&row).Error; err != nil {
		log.Printf("[ERROR] ambil attendance settings liga %s: %v", leagueID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca pengaturan kehadiran")
	}

	return helper.JsonOK(c, "Pengaturan kehadiran berhasil diambil", row)
}

// PUT /api/a/attendance-settings
func (ctl *AttendanceSettingsController) UpdateSettings(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateAttendanceSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row, err := sessService.UpdateDefaultLateThreshold(ctl.DB, leagueID, req.AttendanceSettingDefaultLateThresholdMin)
	if err != nil {
		log.Printf("[ERROR] update attendance settings liga %s: %v", leagueID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan kehadiran")
	}

	return helper.JsonUpdated(c, "Pengaturan kehadiran berhasil disimpan", row)
}

// isDuplicateKey: deteksi pelanggaran unique constraint lintas driver.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
