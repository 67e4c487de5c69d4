package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(h, m int) time.Time {
	return time.Date(2025, time.March, 10, h, m, 0, 0, time.UTC)
}

func tsPtr(h, m int) *time.Time {
	t := ts(h, m)
	return &t
}

func TestClassify(t *testing.T) {
	// Sesi jam 18:00, threshold 5 menit (skenario acuan).
	start := ts(18, 0)

	tests := []struct {
		name      string
		threshold int
		checkedIn *time.Time
		want      AttendanceStatus
	}{
		{"tidak check-in = absent", 5, nil, StatusAbsent},
		{"tepat di threshold masih on_time", 5, tsPtr(18, 5), StatusOnTime},
		{"satu menit lewat threshold = late", 5, tsPtr(18, 6), StatusLate},
		{"check-in pas jadwal", 5, tsPtr(18, 0), StatusOnTime},
		{"datang lebih awal selalu on_time", 0, tsPtr(17, 30), StatusOnTime},
		{"threshold 0: lewat sedikit langsung late", 0, tsPtr(18, 1), StatusLate},
		{"threshold 0: pas jadwal on_time", 0, tsPtr(18, 0), StatusOnTime},
		{"telat jauh", 15, tsPtr(19, 30), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(start, tt.threshold, tt.checkedIn))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	start := ts(18, 0)
	in := tsPtr(18, 7)
	first := Classify(start, 5, in)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(start, 5, in))
	}
}

func TestClassifyRosterPartition(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	cfg := SessionConfig{
		ScheduledStart:   ts(18, 0),
		LateThresholdMin: 5,
		Roster:           []uuid.UUID{a, b, c},
	}
	checkIns := map[uuid.UUID]time.Time{
		a: ts(17, 55), // awal
		b: ts(18, 20), // telat
		// c tidak check-in
	}

	statuses, err := ClassifyRoster(cfg, checkIns)
	require.NoError(t, err)

	// Setiap anggota roster dapat tepat satu status.
	require.Len(t, statuses, len(cfg.Roster))
	assert.Equal(t, StatusOnTime, statuses[a])
	assert.Equal(t, StatusLate, statuses[b])
	assert.Equal(t, StatusAbsent, statuses[c])

	tally := TallyStatuses(statuses)
	assert.Equal(t, len(cfg.Roster), tally.OnTime+tally.Late+tally.Absent)
}

func TestClassifyRosterIgnoresNonRosterCheckIn(t *testing.T) {
	member := uuid.New()
	outsider := uuid.New()
	cfg := SessionConfig{
		ScheduledStart:   ts(18, 0),
		LateThresholdMin: 5,
		Roster:           []uuid.UUID{member},
	}
	checkIns := map[uuid.UUID]time.Time{
		member:   ts(18, 1),
		outsider: ts(18, 1), // di luar roster: diabaikan tanpa error
	}

	statuses, err := ClassifyRoster(cfg, checkIns)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, StatusOnTime, statuses[member])
	assert.NotContains(t, statuses, outsider)
}

func TestSessionConfigValidate(t *testing.T) {
	valid := SessionConfig{ScheduledStart: ts(18, 0), LateThresholdMin: 0}
	assert.NoError(t, valid.Validate())

	negative := SessionConfig{ScheduledStart: ts(18, 0), LateThresholdMin: -1}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidSessionConfig)

	noStart := SessionConfig{LateThresholdMin: 5}
	assert.ErrorIs(t, noStart.Validate(), ErrInvalidSessionConfig)

	_, err := ClassifyRoster(negative, nil)
	assert.ErrorIs(t, err, ErrInvalidSessionConfig)
}
