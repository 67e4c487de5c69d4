// file: internals/features/leagues/stats/service/league_stats_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	statsModel "ligaku_backend/internals/features/leagues/stats/model"
)

type LeagueStatsService struct{}

func NewLeagueStatsService() *LeagueStatsService { return &LeagueStatsService{} }

// Pastikan baris league_stats ada untuk liga ini (idempotent & race-safe).
func (s *LeagueStatsService) EnsureForLeague(tx *gorm.DB, leagueID uuid.UUID) error {
	row := statsModel.LeagueStats{
		LeagueStatsLeagueID: leagueID,
	}

	// INSERT ... ON CONFLICT DO NOTHING (PK = league_stats_league_id)
	return tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}

// --- helper privat: pastikan ada + kunci baris (hindari race) ---
func (s *LeagueStatsService) ensureAndLock(tx *gorm.DB, leagueID uuid.UUID) error {
	if err := s.EnsureForLeague(tx, leagueID); err != nil {
		return err
	}
	return tx.Exec(`
		SELECT 1 FROM league_stats
		WHERE league_stats_league_id = ?
		FOR UPDATE
	`, leagueID).Error
}

// Delta untuk semua kolom sekaligus, clamp >= 0.
type Delta struct {
	Teams   int
	Players int
	Staff   int
}

func (s *LeagueStatsService) ApplyDelta(tx *gorm.DB, leagueID uuid.UUID, d Delta) error {
	if err := s.ensureAndLock(tx, leagueID); err != nil {
		return err
	}
	return tx.Exec(`
		UPDATE league_stats
		SET
			league_stats_active_teams   = GREATEST(league_stats_active_teams   + ?, 0),
			league_stats_active_players = GREATEST(league_stats_active_players + ?, 0),
			league_stats_active_staff   = GREATEST(league_stats_active_staff   + ?, 0),
			league_stats_updated_at = NOW()
		WHERE league_stats_league_id = ?
	`, d.Teams, d.Players, d.Staff, leagueID).Error
}

func (s *LeagueStatsService) IncActiveTeams(tx *gorm.DB, leagueID uuid.UUID, delta int) error {
	return s.ApplyDelta(tx, leagueID, Delta{Teams: delta})
}

func (s *LeagueStatsService) IncActivePlayers(tx *gorm.DB, leagueID uuid.UUID, delta int) error {
	return s.ApplyDelta(tx, leagueID, Delta{Players: delta})
}

func (s *LeagueStatsService) IncActiveStaff(tx *gorm.DB, leagueID uuid.UUID, delta int) error {
	return s.ApplyDelta(tx, leagueID, Delta{Staff: delta})
}

// Recompute: hitung ulang dari tabel sumber; dipakai saat counter dicurigai drift.
func (s *LeagueStatsService) Recompute(tx *gorm.DB, leagueID uuid.UUID) error {
	if err := s.ensureAndLock(tx, leagueID); err != nil {
		return err
	}
	return tx.Exec(`
		UPDATE league_stats
		SET
			league_stats_active_teams = (
				SELECT COUNT(*) FROM teams
				WHERE teams_league_id = ? AND teams_is_active = TRUE AND teams_deleted_at IS NULL
			),
			league_stats_active_players = (
				SELECT COUNT(*) FROM players
				WHERE players_league_id = ? AND players_is_active = TRUE AND players_deleted_at IS NULL
			),
			league_stats_active_staff = (
				SELECT COUNT(*) FROM league_staff
				WHERE league_staff_league_id = ? AND league_staff_is_active = TRUE
			),
			league_stats_updated_at = NOW()
		WHERE league_stats_league_id = ?
	`, leagueID, leagueID, leagueID, leagueID).Error
}
