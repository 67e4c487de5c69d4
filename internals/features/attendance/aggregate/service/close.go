// file: internals/features/attendance/aggregate/service/close.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionAlreadyClosed = errors.New("sesi sudah ditutup")
	ErrAggregatePersistence = errors.New("gagal menyimpan agregat kehadiran")
	ErrPartialRosterData    = errors.New("data roster/check-in tidak lengkap")
)

// SessionSnapshot: potret sesi saat mulai ditutup.
type SessionSnapshot struct {
	Config   SessionConfig
	TeamID   uuid.UUID
	SeasonID uuid.UUID
}

// ClosePersistence: jahitan persistensi untuk transisi close.
// Implementasi produksi memakai GORM dalam satu transaksi (gorm_store.go);
// test memakai fake store.
type ClosePersistence interface {
	// MarkClosed flip status open→closed secara compare-and-set.
	// false = sesi tidak dalam status open (sudah closed / tidak ada).
	MarkClosed(sessionID uuid.UUID) (bool, error)
	Snapshot(sessionID uuid.UUID) (SessionSnapshot, error)
	CheckIns(sessionID uuid.UUID) (map[uuid.UUID]time.Time, error)
	BumpAggregate(memberID, teamID, seasonID uuid.UUID, d CounterDelta) error
	DeleteCheckIns(sessionID uuid.UUID) error
}

// CloseResult: ringkasan satu kali penutupan sesi.
type CloseResult struct {
	SessionID  uuid.UUID                      `json:"session_id"`
	RosterSize int                            `json:"roster_size"`
	OnTime     int                            `json:"on_time"`
	Late       int                            `json:"late"`
	Absent     int                            `json:"absent"`
	Statuses   map[uuid.UUID]AttendanceStatus `json:"statuses"`
}

// CloseSession menjalankan transisi open→closed dengan urutan ketat:
//
//  1. CAS status open→closed — guard ini HARUS duluan karena efek samping
//     agregasi tidak idempotent (dobel close = dobel hitung).
//  2. Snapshot roster + check-in.
//  3. Klasifikasi setiap anggota roster.
//  4. Increment agregat durable per anggota.
//  5. Hapus raw check-in — hanya setelah (4) sukses.
//
// Seluruh langkah diasumsikan berjalan dalam satu transaksi milik store;
// error di langkah manapun membuat caller rollback sehingga sesi tetap open
// dan raw check-in tetap utuh.
func CloseSession(store ClosePersistence, sessionID uuid.UUID) (CloseResult, error) {
	ok, err := store.MarkClosed(sessionID)
	if err != nil {
		return CloseResult{}, fmt.Errorf("%w: %v", ErrAggregatePersistence, err)
	}
	if !ok {
		return CloseResult{}, ErrSessionAlreadyClosed
	}

	snap, err := store.Snapshot(sessionID)
	if err != nil {
		return CloseResult{}, fmt.Errorf("%w: %v", ErrPartialRosterData, err)
	}
	checkIns, err := store.CheckIns(sessionID)
	if err != nil {
		return CloseResult{}, fmt.Errorf("%w: %v", ErrPartialRosterData, err)
	}

	statuses, err := ClassifyRoster(snap.Config, checkIns)
	if err != nil {
		return CloseResult{}, err
	}

	for _, memberID := range snap.Config.Roster {
		d := CounterDelta{}
		switch statuses[memberID] {
		case StatusOnTime:
			d.OnTime = 1
		case StatusLate:
			d.Late = 1
		case StatusAbsent:
			d.Absent = 1
		}
		if err := store.BumpAggregate(memberID, snap.TeamID, snap.SeasonID, d); err != nil {
			return CloseResult{}, fmt.Errorf("%w: %v", ErrAggregatePersistence, err)
		}
	}

	// Irreversible: raw check-in dibuang, hanya counter kumulatif yang bertahan.
	if err := store.DeleteCheckIns(sessionID); err != nil {
		return CloseResult{}, fmt.Errorf("%w: %v", ErrAggregatePersistence, err)
	}

	tally := TallyStatuses(statuses)
	return CloseResult{
		SessionID:  sessionID,
		RosterSize: len(snap.Config.Roster),
		OnTime:     tally.OnTime,
		Late:       tally.Late,
		Absent:     tally.Absent,
		Statuses:   statuses,
	}, nil
}
