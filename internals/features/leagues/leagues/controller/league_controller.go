// file: internals/features/leagues/leagues/controller/league_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ligaku_backend/internals/constants"
	"ligaku_backend/internals/features/leagues/leagues/dto"
	"ligaku_backend/internals/features/leagues/leagues/model"
	staffModel "ligaku_backend/internals/features/leagues/league_staff/model"
	statsService "ligaku_backend/internals/features/leagues/stats/service"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type LeagueController struct {
	DB    *gorm.DB
	Stats *statsService.LeagueStatsService
}

func NewLeagueController(db *gorm.DB) *LeagueController {
	return &LeagueController{DB: db, Stats: statsService.NewLeagueStatsService()}
}

var validate = validator.New()

// POST /api/u/leagues — user manapun boleh mendirikan liga;
// pembuatnya otomatis jadi admin liga tersebut.
func (ctl *LeagueController) CreateLeague(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateLeagueRequest
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
		Table:            "leagues",
		SlugColumn:       "leagues_slug",
		SoftDeleteColumn: "leagues_deleted_at",
		DefaultBase:      "liga",
	}, req.LeagueName)
	if err != nil {
		tx.Rollback()
		log.Printf("[ERROR] generate slug liga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug liga")
	}

	league := model.LeagueModel{
		LeagueName:        req.LeagueName,
		LeagueSlug:        slug,
		LeagueDescription: req.LeagueDescription,
		LeagueBranding:    req.LeagueBranding,
		LeagueOwnerUserID: userID,
	}
	if err := tx.Create(&league).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] buat liga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat liga")
	}

	// Pendiri langsung jadi admin liga.
	staff := staffModel.LeagueStaffModel{
		LeagueStaffLeagueID: league.LeagueID,
		LeagueStaffUserID:   userID,
		LeagueStaffRoles:    pq.StringArray{constants.RoleAdmin},
	}
	if err := tx.Create(&staff).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] buat staff pendiri: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat liga")
	}

	if err := ctl.Stats.EnsureForLeague(tx, league.LeagueID); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] init stats liga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat liga")
	}
	if err := ctl.Stats.IncActiveStaff(tx, league.LeagueID, 1); err != nil {
		tx.Rollback()
		log.Printf("[ERROR] bump stats staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat liga")
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[ERROR] commit buat liga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat liga")
	}

	log.Printf("[SUCCESS] liga %s (%s) dibuat oleh %s", league.LeagueID, slug, userID)
	return helper.JsonCreated(c, "Liga berhasil dibuat", dto.ToLeagueResponse(league))
}

// GET /api/public/leagues/:slug
func (ctl *LeagueController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var league model.LeagueModel
	if err := ctl.DB.
		Where("leagues_slug = ? AND leagues_is_active = TRUE", slug).
		Take(&league).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Liga tidak ditemukan")
		}
		log.Printf("[ERROR] ambil liga %s: %v", slug, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil liga")
	}

	return helper.JsonOK(c, "Liga berhasil diambil", dto.ToLeagueResponse(league))
}

// GET /api/public/leagues
func (ctl *LeagueController) ListPublic(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.LeagueModel{}).Where("leagues_is_active = TRUE")
	if search := c.Query("q"); search != "" {
		q = q.Where("leagues_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung liga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar liga")
	}

	var rows []model.LeagueModel
	if err := q.Order("leagues_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil liga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar liga")
	}

	items := dto.ToLeagueResponses(rows)
	return helper.JsonList(c, "Daftar liga berhasil diambil", items,
		helper.BuildPagination(total, len(items), p))
}

// PUT /api/a/leagues — admin mengubah liga aktifnya.
func (ctl *LeagueController) UpdateLeague(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateLeagueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.LeagueName != nil {
		updates["leagues_name"] = *req.LeagueName
	}
	if req.LeagueDescription != nil {
		updates["leagues_description"] = *req.LeagueDescription
	}
	if len(req.LeagueBranding) > 0 {
		updates["leagues_branding"] = req.LeagueBranding
	}
	if req.LeagueIsActive != nil {
		updates["leagues_is_active"] = *req.LeagueIsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctl.DB.Model(&model.LeagueModel{}).
		Where("leagues_id = ?", leagueID).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update liga %s: %v", leagueID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah liga")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Liga tidak ditemukan")
	}

	var league model.LeagueModel
	if err := ctl.DB.Where("leagues_id = ?", leagueID).Take(&league).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil liga")
	}
	return helper.JsonUpdated(c, "Liga berhasil diubah", dto.ToLeagueResponse(league))
}

// DELETE /api/o/leagues/:id — soft delete, khusus owner.
func (ctl *LeagueController) DeleteLeague(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID liga tidak valid")
	}

	res := ctl.DB.Where("leagues_id = ?", id).Delete(&model.LeagueModel{})
	if res.Error != nil {
		log.Printf("[ERROR] hapus liga %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus liga")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Liga tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Liga berhasil dihapus", fiber.Map{"leagues_id": id})
}
