// file: internals/features/attendance/aggregate/service/classifier.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status kehadiran per pemain per sesi (mutually exclusive).
type AttendanceStatus string

const (
	StatusOnTime AttendanceStatus = "on_time"
	StatusLate   AttendanceStatus = "late"
	StatusAbsent AttendanceStatus = "absent"
)

var ErrInvalidSessionConfig = errors.New("konfigurasi sesi tidak valid")

// SessionConfig: parameter tetap satu sesi terjadwal.
type SessionConfig struct {
	ScheduledStart   time.Time
	LateThresholdMin int
	Roster           []uuid.UUID
}

// Validate menolak konfigurasi rusak sebelum klasifikasi jalan.
// Threshold negatif & jadwal kosong ditolak di sini, bukan saat classify.
func (cfg SessionConfig) Validate() error {
	if cfg.LateThresholdMin < 0 {
		return ErrInvalidSessionConfig
	}
	if cfg.ScheduledStart.IsZero() {
		return ErrInvalidSessionConfig
	}
	return nil
}

// Classify menentukan status satu check-in terhadap jadwal sesi.
// - nil (tidak pernah check-in) → absent
// - delta <= threshold → on_time (non-strict; pas di threshold masih on_time)
// - datang lebih awal selalu on_time, berapapun threshold-nya
func Classify(scheduledStart time.Time, lateThresholdMin int, checkedInAt *time.Time) AttendanceStatus {
	if checkedInAt == nil {
		return StatusAbsent
	}
	delta := checkedInAt.Sub(scheduledStart)
	if delta <= time.Duration(lateThresholdMin)*time.Minute {
		return StatusOnTime
	}
	return StatusLate
}

// ClassifyRoster memberi tepat satu status untuk SETIAP anggota roster.
// Check-in dari pemain di luar roster diabaikan tanpa error: roster adalah
// closed world yang menjadi dasar agregat, dan check-in nyasar tidak boleh
// menggagalkan penutupan sesi.
func ClassifyRoster(cfg SessionConfig, checkIns map[uuid.UUID]time.Time) (map[uuid.UUID]AttendanceStatus, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]AttendanceStatus, len(cfg.Roster))
	for _, memberID := range cfg.Roster {
		if ts, ok := checkIns[memberID]; ok {
			t := ts
			out[memberID] = Classify(cfg.ScheduledStart, cfg.LateThresholdMin, &t)
		} else {
			out[memberID] = StatusAbsent
		}
	}
	return out, nil
}

// CounterDelta: tambahan counter hasil satu sesi untuk satu pemain.
type CounterDelta struct {
	OnTime int
	Late   int
	Absent int
}

// TallyStatuses merangkum hasil klasifikasi jadi total per status.
func TallyStatuses(statuses map[uuid.UUID]AttendanceStatus) CounterDelta {
	var d CounterDelta
	for _, st := range statuses {
		switch st {
		case StatusOnTime:
			d.OnTime++
		case StatusLate:
			d.Late++
		case StatusAbsent:
			d.Absent++
		}
	}
	return d
}
