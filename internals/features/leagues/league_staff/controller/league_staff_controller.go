// file: internals/features/leagues/league_staff/controller/league_staff_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ligaku_backend/internals/features/leagues/league_staff/dto"
	"ligaku_backend/internals/features/leagues/league_staff/model"
	statsService "ligaku_backend/internals/features/leagues/stats/service"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type LeagueStaffController struct {
	DB    *gorm.DB
	Stats *statsService.LeagueStatsService
}

func NewLeagueStaffController(db *gorm.DB) *LeagueStaffController {
	return &LeagueStaffController{DB: db, Stats: statsService.NewLeagueStatsService()}
}

var validate = validator.New()

// POST /api/a/league-staff — angkat atau perbarui pengurus liga (upsert).
func (ctl *LeagueStaffController) GrantStaff(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.GrantStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
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

	var existing model.LeagueStaffModel
	findErr := tx.
		Where("league_staff_league_id = ? AND league_staff_user_id = ?", leagueID, req.LeagueStaffUserID).
		Take(&existing).Error
	isNew := errors.Is(findErr, gorm.ErrRecordNotFound)
	if findErr != nil && !isNew {
		tx.Rollback()
		log.Printf("[ERROR] cari staff: %v", findErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pengurus")
	}

	row := model.LeagueStaffModel{
		LeagueStaffLeagueID: leagueID,
		LeagueStaffUserID:   req.LeagueStaffUserID,
		LeagueStaffRoles:    pq.StringArray(normalizeRoles(req.LeagueStaffRoles)),
		LeagueStaffIsActive: true,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "league_staff_league_id"},
			{Name: "league_staff_user_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"league_staff_roles", "league_staff_is_active"}),
	}).Create(&row).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] simpan staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengurus")
	}

	// Staff baru (atau reaktivasi) menambah counter staff aktif.
	if isNew || !existing.LeagueStaffIsActive {
		if err := ctl.Stats.IncActiveStaff(tx, leagueID, 1); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] bump stats staff: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengurus")
	}

	var saved model.LeagueStaffModel
	if err := ctl.DB.
		Where("league_staff_league_id = ? AND league_staff_user_id = ?", leagueID, req.LeagueStaffUserID).
		Take(&saved).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengurus")
	}
	return helper.JsonCreated(c, "Pengurus liga berhasil disimpan", dto.ToLeagueStaffResponse(saved))
}

// GET /api/a/league-staff
func (ctl *LeagueStaffController) ListStaff(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []model.LeagueStaffModel
	if err := ctl.DB.
		Where("league_staff_league_id = ? AND league_staff_is_active = TRUE", leagueID).
		Order("league_staff_created_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil staff liga %s: %v", leagueID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pengurus")
	}

	return helper.JsonOK(c, "Daftar pengurus berhasil diambil", dto.ToLeagueStaffResponses(rows))
}

// DELETE /api/a/league-staff/:user_id — cabut keanggotaan pengurus.
func (ctl *LeagueStaffController) RevokeStaff(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	targetUserID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if actorID == targetUserID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa mencabut keanggotaan sendiri")
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

	res := tx.Model(&model.LeagueStaffModel{}).
		Where("league_staff_league_id = ? AND league_staff_user_id = ? AND league_staff_is_active = TRUE",
			leagueID, targetUserID).
		Update("league_staff_is_active", false)
	if res.Error != nil {
		tx.Rollback()
		log.Printf("[ERROR] cabut staff: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut pengurus")
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusNotFound, "Pengurus tidak ditemukan")
	}

	if err := ctl.Stats.IncActiveStaff(tx, leagueID, -1); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] turunkan stats staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut pengurus")
	}

	return helper.JsonDeleted(c, "Pengurus berhasil dicabut", fiber.Map{
		"league_staff_league_id": leagueID,
		"league_staff_user_id":   targetUserID,
	})
}

func normalizeRoles(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, r := range in {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
