// file: internals/features/teams/teams/controller/team_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	statsService "ligaku_backend/internals/features/leagues/stats/service"
	"ligaku_backend/internals/features/teams/teams/dto"
	"ligaku_backend/internals/features/teams/teams/model"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type TeamController struct {
	DB    *gorm.DB
	Stats *statsService.LeagueStatsService
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db, Stats: statsService.NewLeagueStatsService()}
}

var validate = validator.New()

// POST /api/a/teams
func (ctl *TeamController) CreateTeam(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateTeamRequest
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

	slug, err := helper.GenerateUniqueSlug(tx, helper.SlugOptions{
		Table:            "teams",
		SlugColumn:       "teams_slug",
		SoftDeleteColumn: "teams_deleted_at",
		Filters:          map[string]any{"teams_league_id": leagueID},
		DefaultBase:      "tim",
	}, req.TeamName)
	if err != nil {
		tx.Rollback()
		log.Printf("[ERROR] generate slug tim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug tim")
	}

	team := model.TeamModel{
		TeamLeagueID:    leagueID,
		TeamName:        req.TeamName,
		TeamSlug:        slug,
		TeamCoachUserID: req.TeamCoachUserID,
	}
	if err := tx.Create(&team).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] buat tim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tim")
	}

	if err := ctl.Stats.IncActiveTeams(tx, leagueID, 1); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] bump stats tim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tim")
	}

	return helper.JsonCreated(c, "Tim berhasil dibuat", dto.ToTeamResponse(team))
}

// GET /api/a/teams
func (ctl *TeamController) ListTeams(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TeamModel{}).Where("teams_league_id = ?", leagueID)
	if c.Query("include_inactive") != "true" {
		q = q.Where("teams_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung tim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}

	var rows []model.TeamModel
	if err := q.Order("teams_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil tim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}

	items := dto.ToTeamResponses(rows)
	return helper.JsonList(c, "Daftar tim berhasil diambil", items,
		helper.BuildPagination(total, len(items), p))
}

// GET /api/public/leagues/:slug/teams — daftar tim aktif untuk pengunjung.
func (ctl *TeamController) ListPublicByLeagueSlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var leagueIDs []uuid.UUID
	if err := ctl.DB.Table("leagues").
		Where("leagues_slug = ? AND leagues_is_active = TRUE AND leagues_deleted_at IS NULL", slug).
		Limit(1).
		Pluck("leagues_id", &leagueIDs).Error; err != nil {
		log.Printf("[ERROR] cari liga %s: %v", slug, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}
	if len(leagueIDs) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Liga tidak ditemukan")
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.TeamModel{}).
		Where("teams_league_id = ? AND teams_is_active = TRUE", leagueIDs[0])

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung tim publik: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}

	var rows []model.TeamModel
	if err := q.Order("teams_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil tim publik: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tim")
	}

	items := dto.ToTeamResponses(rows)
	return helper.JsonList(c, "Daftar tim berhasil diambil", items,
		helper.BuildPagination(total, len(items), p))
}

// GET /api/a/teams/:id
func (ctl *TeamController) GetTeam(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tim tidak valid")
	}

	var team model.TeamModel
	if err := ctl.DB.
		Where("teams_id = ? AND teams_league_id = ?", id, leagueID).
		Take(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		log.Printf("[ERROR] ambil tim %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tim")
	}

	return helper.JsonOK(c, "Tim berhasil diambil", dto.ToTeamResponse(team))
}

// PUT /api/a/teams/:id
func (ctl *TeamController) UpdateTeam(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tim tidak valid")
	}

	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var team model.TeamModel
	if err := ctl.DB.
		Where("teams_id = ? AND teams_league_id = ?", id, leagueID).
		Take(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tim tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tim")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}

	updates := map[string]any{}
	if req.TeamName != nil {
		updates["teams_name"] = *req.TeamName
	}
	if req.TeamCoachUserID != nil {
		updates["teams_coach_user_id"] = *req.TeamCoachUserID
	}
	if req.TeamIsActive != nil {
		updates["teams_is_active"] = *req.TeamIsActive
	}
	if len(updates) == 0 {
		tx.Rollback()
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToTeamResponse(team))
	}

	if err := tx.Model(&team).Updates(updates).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] update tim %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah tim")
	}

	// Toggle aktif menggeser counter dashboard.
	if req.TeamIsActive != nil && *req.TeamIsActive != team.TeamIsActive {
		delta := 1
		if !*req.TeamIsActive {
			delta = -1
		}
		if err := ctl.Stats.IncActiveTeams(tx, leagueID, delta); err != nil {
			tx.Rollback()
			log.Printf("[ERROR] geser stats tim: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah tim")
	}

	var fresh model.TeamModel
	if err := ctl.DB.Where("teams_id = ?", id).Take(&fresh).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tim")
	}
	return helper.JsonUpdated(c, "Tim berhasil diubah", dto.ToTeamResponse(fresh))
}

// DELETE /api/a/teams/:id — soft delete.
func (ctl *TeamController) DeleteTeam(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tim tidak valid")
	}

	tx := ctl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}

	res := tx.
		Where("teams_id = ? AND teams_league_id = ?", id, leagueID).
		Delete(&model.TeamModel{})
	if res.Error != nil {
		tx.Rollback()
		log.Printf("[ERROR] hapus tim %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tim")
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusNotFound, "Tim tidak ditemukan")
	}

	if err := ctl.Stats.IncActiveTeams(tx, leagueID, -1); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] turunkan stats tim: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui statistik liga")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tim")
	}

	return helper.JsonDeleted(c, "Tim berhasil dihapus", fiber.Map{"teams_id": id})
}
