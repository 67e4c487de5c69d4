// file: internals/features/attendance/aggregate/service/gorm_store.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	aggModel "ligaku_backend/internals/features/attendance/aggregate/model"
	sessModel "ligaku_backend/internals/features/attendance/sessions/model"
)

// GormCloseStore: implementasi ClosePersistence di atas satu transaksi GORM.
// Semua query di-scope ke league (tenant guard).
type GormCloseStore struct {
	tx       *gorm.DB
	leagueID uuid.UUID
}

func NewGormCloseStore(tx *gorm.DB, leagueID uuid.UUID) *GormCloseStore {
	return &GormCloseStore{tx: tx, leagueID: leagueID}
}

// MarkClosed: compare-and-set open→closed. RowsAffected 0 berarti sesi
// tidak sedang open (sudah closed, masih scheduled, atau bukan milik liga ini).
func (s *GormCloseStore) MarkClosed(sessionID uuid.UUID) (bool, error) {
	res := s.tx.Model(&sessModel.AttendanceSessionModel{}).
		Where("attendance_sessions_id = ?", sessionID).
		Where("attendance_sessions_league_id = ?", s.leagueID).
		Where("attendance_sessions_status = ?", sessModel.SessionStatusOpen).
		Updates(map[string]any{
			"attendance_sessions_status":    sessModel.SessionStatusClosed,
			"attendance_sessions_closed_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *GormCloseStore) Snapshot(sessionID uuid.UUID) (SessionSnapshot, error) {
	var sess sessModel.AttendanceSessionModel
	if err := s.tx.
		Where("attendance_sessions_id = ? AND attendance_sessions_league_id = ?", sessionID, s.leagueID).
		Take(&sess).Error; err != nil {
		return SessionSnapshot{}, err
	}

	// Roster = pemain aktif tim pada saat close.
	var roster []uuid.UUID
	if err := s.tx.Table("players").
		Where("players_team_id = ?", sess.AttendanceSessionTeamID).
		Where("players_league_id = ?", s.leagueID).
		Where("players_is_active = TRUE").
		Where("players_deleted_at IS NULL").
		Pluck("players_id", &roster).Error; err != nil {
		return SessionSnapshot{}, err
	}

	return SessionSnapshot{
		Config: SessionConfig{
			ScheduledStart:   sess.AttendanceSessionScheduledStart,
			LateThresholdMin: sess.AttendanceSessionLateThresholdMin,
			Roster:           roster,
		},
		TeamID:   sess.AttendanceSessionTeamID,
		SeasonID: sess.AttendanceSessionSeasonID,
	}, nil
}

func (s *GormCloseStore) CheckIns(sessionID uuid.UUID) (map[uuid.UUID]time.Time, error) {
	var rows []sessModel.AttendanceCheckInModel
	if err := s.tx.
		Where("attendance_check_ins_session_id = ? AND attendance_check_ins_league_id = ?", sessionID, s.leagueID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]time.Time, len(rows))
	for _, r := range rows {
		out[r.AttendanceCheckInPlayerID] = r.AttendanceCheckInCheckedInAt
	}
	return out, nil
}

// BumpAggregate: pastikan baris agregat ada (idempotent), lalu increment.
// Delta selalu >= 0 sehingga counter tidak pernah turun.
func (s *GormCloseStore) BumpAggregate(memberID, teamID, seasonID uuid.UUID, d CounterDelta) error {
	row := aggModel.AttendanceAggregateModel{
		AttendanceAggregateLeagueID: s.leagueID,
		AttendanceAggregatePlayerID: memberID,
		AttendanceAggregateTeamID:   teamID,
		AttendanceAggregateSeasonID: seasonID,
	}
	if err := s.tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_aggregates_player_id"},
			{Name: "attendance_aggregates_team_id"},
			{Name: "attendance_aggregates_season_id"},
		},
		DoNothing: true,
	}).Create(&row).Error; err != nil {
		return err
	}

	return s.tx.Model(&aggModel.AttendanceAggregateModel{}).
		Where("attendance_aggregates_player_id = ?", memberID).
		Where("attendance_aggregates_team_id = ?", teamID).
		Where("attendance_aggregates_season_id = ?", seasonID).
		Updates(map[string]any{
			"attendance_aggregates_total_on_time": gorm.Expr("attendance_aggregates_total_on_time + ?", d.OnTime),
			"attendance_aggregates_total_late":    gorm.Expr("attendance_aggregates_total_late + ?", d.Late),
			"attendance_aggregates_total_absent":  gorm.Expr("attendance_aggregates_total_absent + ?", d.Absent),
			"attendance_aggregates_updated_at":    gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (s *GormCloseStore) DeleteCheckIns(sessionID uuid.UUID) error {
	return s.tx.
		Where("attendance_check_ins_session_id = ? AND attendance_check_ins_league_id = ?", sessionID, s.leagueID).
		Delete(&sessModel.AttendanceCheckInModel{}).Error
}

// CloseSessionTx: jalankan CloseSession dalam transaksi yang diberikan caller.
func CloseSessionTx(tx *gorm.DB, leagueID, sessionID uuid.UUID) (CloseResult, error) {
	return CloseSession(NewGormCloseStore(tx, leagueID), sessionID)
}
