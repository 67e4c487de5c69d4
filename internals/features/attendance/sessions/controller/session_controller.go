// file: internals/features/attendance/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aggService "ligaku_backend/internals/features/attendance/aggregate/service"
	"ligaku_backend/internals/features/attendance/sessions/dto"
	"ligaku_backend/internals/features/attendance/sessions/model"
	sessService "ligaku_backend/internals/features/attendance/sessions/service"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type AttendanceSessionController struct {
	DB *gorm.DB
}

func NewAttendanceSessionController(db *gorm.DB) *AttendanceSessionController {
	return &AttendanceSessionController{DB: db}
}

var validate = validator.New()

// POST /api/a/attendance-sessions
func (ctl *AttendanceSessionController) CreateSession(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	threshold := 0
	if req.AttendanceSessionLateThresholdMin != nil {
		threshold = *req.AttendanceSessionLateThresholdMin
	} else {
		threshold, err = sessService.DefaultLateThreshold(ctl.DB, leagueID)
		if err != nil {
			log.Printf("[ERROR] ambil default threshold liga %s: %v", leagueID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca pengaturan kehadiran")
		}
	}

	cfg := aggService.SessionConfig{
		ScheduledStart:   req.AttendanceSessionScheduledStart,
		LateThresholdMin: threshold,
	}
	if err := cfg.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	session := model.AttendanceSessionModel{
		AttendanceSessionLeagueID:         leagueID,
		AttendanceSessionTeamID:           req.AttendanceSessionTeamID,
		AttendanceSessionSeasonID:         req.AttendanceSessionSeasonID,
		AttendanceSessionLocationID:       req.AttendanceSessionLocationID,
		AttendanceSessionTitle:            req.AttendanceSessionTitle,
		AttendanceSessionScheduledStart:   req.AttendanceSessionScheduledStart,
		AttendanceSessionLateThresholdMin: threshold,
		AttendanceSessionStatus:           model.SessionStatusScheduled,
	}
	if err := ctl.DB.Create(&session).Error; err != nil {
		log.Printf("[ERROR] buat sesi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	return helper.JsonCreated(c, "Sesi berhasil dibuat", dto.ToSessionResponse(session))
}

// PUT /api/a/attendance-sessions/:id — hanya selama masih scheduled.
func (ctl *AttendanceSessionController) UpdateSession(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	session, err := ctl.findSession(leagueID, sessionID)
	if err != nil {
		return ctl.sessionLookupError(c, sessionID, err)
	}
	if session.AttendanceSessionStatus != model.SessionStatusScheduled {
		return helper.JsonError(c, fiber.StatusConflict, "Sesi yang sudah dibuka tidak bisa diubah")
	}

	updates := map[string]any{}
	if req.AttendanceSessionLocationID != nil {
		updates["attendance_sessions_location_id"] = *req.AttendanceSessionLocationID
	}
	if req.AttendanceSessionTitle != nil {
		updates["attendance_sessions_title"] = *req.AttendanceSessionTitle
	}
	if req.AttendanceSessionScheduledStart != nil {
		updates["attendance_sessions_scheduled_start"] = *req.AttendanceSessionScheduledStart
	}
	if req.AttendanceSessionLateThresholdMin != nil {
		updates["attendance_sessions_late_threshold_min"] = *req.AttendanceSessionLateThresholdMin
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToSessionResponse(*session))
	}

	if err := ctl.DB.Model(session).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update sesi %s: %v", sessionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah sesi")
	}

	fresh, err := ctl.findSession(leagueID, sessionID)
	if err != nil {
		return ctl.sessionLookupError(c, sessionID, err)
	}
	return helper.JsonUpdated(c, "Sesi berhasil diubah", dto.ToSessionResponse(*fresh))
}

// POST /api/a/attendance-sessions/:id/open — CAS scheduled→open.
func (ctl *AttendanceSessionController) OpenSession(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	res := ctl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_sessions_id = ?", sessionID).
		Where("attendance_sessions_league_id = ?", leagueID).
		Where("attendance_sessions_status = ?", model.SessionStatusScheduled).
		Updates(map[string]any{
			"attendance_sessions_status":    model.SessionStatusOpen,
			"attendance_sessions_opened_at": time.Now(),
		})
	if res.Error != nil {
		log.Printf("[ERROR] buka sesi %s: %v", sessionID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuka sesi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Sesi tidak dalam status scheduled")
	}

	session, err := ctl.findSession(leagueID, sessionID)
	if err != nil {
		return ctl.sessionLookupError(c, sessionID, err)
	}
	return helper.JsonOK(c, "Sesi dibuka, check-in dimulai", dto.ToSessionResponse(*session))
}

// POST /api/a/attendance-sessions/:id/check-ins
// Hanya sesi open yang menerima check-in; satu pemain satu check-in per sesi.
func (ctl *AttendanceSessionController) CheckIn(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	session, err := ctl.findSession(leagueID, sessionID)
	if err != nil {
		return ctl.sessionLookupError(c, sessionID, err)
	}
	if session.AttendanceSessionStatus != model.SessionStatusOpen {
		return helper.JsonError(c, fiber.StatusConflict, "Sesi tidak sedang menerima check-in")
	}

	// Pemain harus anggota aktif tim sesi.
	var memberCount int64
	if err := ctl.DB.Table("players").
		Where("players_id = ?", req.AttendanceCheckInPlayerID).
		Where("players_team_id = ?", session.AttendanceSessionTeamID).
		Where("players_league_id = ?", leagueID).
		Where("players_is_active = TRUE").
		Where("players_deleted_at IS NULL").
		Count(&memberCount).Error; err != nil {
		log.Printf("[ERROR] cek roster pemain %s: %v", req.AttendanceCheckInPlayerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa roster")
	}
	if memberCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pemain bukan anggota aktif tim sesi ini")
	}

	checkedInAt := time.Now()
	if req.AttendanceCheckInCheckedInAt != nil {
		checkedInAt = *req.AttendanceCheckInCheckedInAt
	}

	checkIn := model.AttendanceCheckInModel{
		AttendanceCheckInLeagueID:    leagueID,
		AttendanceCheckInSessionID:   sessionID,
		AttendanceCheckInPlayerID:    req.AttendanceCheckInPlayerID,
		AttendanceCheckInCheckedInAt: checkedInAt,
	}
	if err := ctl.DB.Create(&checkIn).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Pemain sudah check-in di sesi ini")
		}
		log.Printf("[ERROR] simpan check-in sesi %s: %v", sessionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	return helper.JsonCreated(c, "Check-in tercatat", dto.ToCheckInResponse(checkIn))
}

// GET /api/a/attendance-sessions/:id/check-ins — hanya selama sesi masih hidup;
// setelah close raw check-in sudah tidak ada.
func (ctl *AttendanceSessionController) ListCheckIns(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var rows []model.AttendanceCheckInModel
	if err := ctl.DB.
		Where("attendance_check_ins_session_id = ? AND attendance_check_ins_league_id = ?", sessionID, leagueID).
		Order("attendance_check_ins_checked_in_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil check-in sesi %s: %v", sessionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil check-in")
	}

	out := make([]dto.CheckInResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToCheckInResponse(r))
	}
	return helper.JsonOK(c, "Check-in sesi berhasil diambil", out)
}

// POST /api/a/attendance-sessions/:id/close
// Transisi terminal: klasifikasi roster, bump agregat, hapus raw check-in —
// semuanya dalam satu transaksi.
func (ctl *AttendanceSessionController) CloseSession(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
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

	result, err := aggService.CloseSessionTx(tx, leagueID, sessionID)
	if err != nil {
		tx.Rollback()
		switch {
		case errors.Is(err, aggService.ErrSessionAlreadyClosed):
			return helper.JsonError(c, fiber.StatusConflict, "Sesi sudah ditutup atau belum dibuka")
		case errors.Is(err, aggService.ErrInvalidSessionConfig):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, aggService.ErrPartialRosterData):
			log.Printf("[ERROR] tutup sesi %s: %v", sessionID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Data roster sesi tidak lengkap")
		default:
			log.Printf("[ERROR] tutup sesi %s: %v", sessionID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menutup sesi")
		}
	}
	if err := tx.Commit().Error; err != nil {
		log.Printf("[ERROR] commit tutup sesi %s: %v", sessionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menutup sesi")
	}

	log.Printf("[SUCCESS] sesi %s ditutup: %d on-time, %d late, %d absent",
		sessionID, result.OnTime, result.Late, result.Absent)
	return helper.JsonOK(c, "Sesi ditutup dan agregat diperbarui", result)
}

// GET /api/a/attendance-sessions
func (ctl *AttendanceSessionController) ListSessions(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_sessions_league_id = ?", leagueID)

	if raw := c.Query("team_id"); raw != "" {
		teamID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "team_id tidak valid")
		}
		q = q.Where("attendance_sessions_team_id = ?", teamID)
	}
	if raw := c.Query("season_id"); raw != "" {
		seasonID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "season_id tidak valid")
		}
		q = q.Where("attendance_sessions_season_id = ?", seasonID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("attendance_sessions_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung sesi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sesi")
	}

	var rows []model.AttendanceSessionModel
	if err := q.
		Order("attendance_sessions_scheduled_start DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil sesi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sesi")
	}

	items := dto.ToSessionResponses(rows)
	return helper.JsonList(c, "Daftar sesi berhasil diambil", items,
		helper.BuildPagination(total, len(items), p))
}

// GET /api/a/attendance-sessions/:id
func (ctl *AttendanceSessionController) GetSession(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	session, err := ctl.findSession(leagueID, sessionID)
	if err != nil {
		return ctl.sessionLookupError(c, sessionID, err)
	}
	return helper.JsonOK(c, "Detail sesi berhasil diambil", dto.ToSessionResponse(*session))
}

// DELETE /api/a/attendance-sessions/:id — soft delete, hanya sesi scheduled.
func (ctl *AttendanceSessionController) DeleteSession(c *fiber.Ctx) error {
	leagueID, err := helperAuth.GetLeagueIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	res := ctl.DB.
		Where("attendance_sessions_id = ?", sessionID).
		Where("attendance_sessions_league_id = ?", leagueID).
		Where("attendance_sessions_status = ?", model.SessionStatusScheduled).
		Delete(&model.AttendanceSessionModel{})
	if res.Error != nil {
		log.Printf("[ERROR] hapus sesi %s: %v", sessionID, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya sesi scheduled yang bisa dihapus")
	}

	return helper.JsonDeleted(c, "Sesi berhasil dihapus", fiber.Map{"attendance_sessions_id": sessionID})
}

func (ctl *AttendanceSessionController) findSession(leagueID, sessionID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var session model.AttendanceSessionModel
	if err := ctl.DB.
		Where("attendance_sessions_id = ? AND attendance_sessions_league_id = ?", sessionID, leagueID).
		Take(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (ctl *AttendanceSessionController) sessionLookupError(c *fiber.Ctx, sessionID uuid.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	log.Printf("[ERROR] ambil sesi %s: %v", sessionID, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
}
