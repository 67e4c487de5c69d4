package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aggKey struct {
	member uuid.UUID
	team   uuid.UUID
	season uuid.UUID
}

// fakeCloseStore: in-memory ClosePersistence untuk menguji urutan dan guard
// tanpa database.
type fakeCloseStore struct {
	status   string
	snap     SessionSnapshot
	checkIns map[uuid.UUID]time.Time

	aggregates map[aggKey]CounterDelta
	deleted    bool

	bumpErr     error
	failAtBump  int
	bumpCalls   int
	deleteCalls int
}

func newFakeCloseStore(snap SessionSnapshot, checkIns map[uuid.UUID]time.Time) *fakeCloseStore {
	return &fakeCloseStore{
		status:     "open",
		snap:       snap,
		checkIns:   checkIns,
		aggregates: map[aggKey]CounterDelta{},
		failAtBump: -1,
	}
}

func (f *fakeCloseStore) MarkClosed(uuid.UUID) (bool, error) {
	if f.status != "open" {
		return false, nil
	}
	f.status = "closed"
	return true, nil
}

func (f *fakeCloseStore) Snapshot(uuid.UUID) (SessionSnapshot, error) { return f.snap, nil }

func (f *fakeCloseStore) CheckIns(uuid.UUID) (map[uuid.UUID]time.Time, error) {
	return f.checkIns, nil
}

func (f *fakeCloseStore) BumpAggregate(memberID, teamID, seasonID uuid.UUID, d CounterDelta) error {
	if f.failAtBump >= 0 && f.bumpCalls == f.failAtBump {
		return f.bumpErr
	}
	f.bumpCalls++
	k := aggKey{memberID, teamID, seasonID}
	cur := f.aggregates[k]
	cur.OnTime += d.OnTime
	cur.Late += d.Late
	cur.Absent += d.Absent
	f.aggregates[k] = cur
	return nil
}

func (f *fakeCloseStore) DeleteCheckIns(uuid.UUID) error {
	f.deleteCalls++
	f.deleted = true
	f.checkIns = map[uuid.UUID]time.Time{}
	return nil
}

func rosterOf(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func snapFor(roster []uuid.UUID) SessionSnapshot {
	return SessionSnapshot{
		Config: SessionConfig{
			ScheduledStart:   ts(18, 0),
			LateThresholdMin: 5,
			Roster:           roster,
		},
		TeamID:   uuid.New(),
		SeasonID: uuid.New(),
	}
}

// Roster 10 orang: 7 on-time, 2 telat, 1 tidak check-in.
func TestCloseSessionTallies(t *testing.T) {
	roster := rosterOf(10)
	checkIns := map[uuid.UUID]time.Time{}
	for i := 0; i < 7; i++ {
		checkIns[roster[i]] = ts(18, 3)
	}
	checkIns[roster[7]] = ts(18, 12)
	checkIns[roster[8]] = ts(18, 40)

	snap := snapFor(roster)
	store := newFakeCloseStore(snap, checkIns)
	sessionID := uuid.New()

	res, err := CloseSession(store, sessionID)
	require.NoError(t, err)

	assert.Equal(t, sessionID, res.SessionID)
	assert.Equal(t, 10, res.RosterSize)
	assert.Equal(t, 7, res.OnTime)
	assert.Equal(t, 2, res.Late)
	assert.Equal(t, 1, res.Absent)

	// Setiap anggota roster dapat tepat satu increment.
	require.Len(t, store.aggregates, 10)
	for _, memberID := range roster {
		d := store.aggregates[aggKey{memberID, snap.TeamID, snap.SeasonID}]
		assert.Equal(t, 1, d.OnTime+d.Late+d.Absent)
	}

	// Raw check-in dibuang setelah agregat tersimpan.
	assert.True(t, store.deleted)
	assert.Empty(t, store.checkIns)
}

func TestCloseSessionAlreadyClosed(t *testing.T) {
	roster := rosterOf(3)
	store := newFakeCloseStore(snapFor(roster), map[uuid.UUID]time.Time{
		roster[0]: ts(18, 1),
	})
	sessionID := uuid.New()

	_, err := CloseSession(store, sessionID)
	require.NoError(t, err)

	// Close kedua harus ditolak tanpa menyentuh agregat lagi.
	callsAfterFirst := store.bumpCalls
	_, err = CloseSession(store, sessionID)
	assert.ErrorIs(t, err, ErrSessionAlreadyClosed)
	assert.Equal(t, callsAfterFirst, store.bumpCalls)
	assert.Equal(t, 1, store.deleteCalls)
}

// Gagal di tengah bump: check-in tidak boleh terhapus. Dalam produksi
// transaksi di-rollback sehingga status kembali open.
func TestCloseSessionBumpFailureKeepsCheckIns(t *testing.T) {
	roster := rosterOf(4)
	checkIns := map[uuid.UUID]time.Time{
		roster[0]: ts(18, 0),
		roster[1]: ts(18, 2),
	}
	store := newFakeCloseStore(snapFor(roster), checkIns)
	store.failAtBump = 2
	store.bumpErr = errors.New("koneksi putus")

	_, err := CloseSession(store, uuid.New())
	require.ErrorIs(t, err, ErrAggregatePersistence)

	assert.Equal(t, 0, store.deleteCalls)
	assert.Len(t, store.checkIns, 2)
}

// Beberapa close berturut-turut pada sesi berbeda: counter hanya naik.
func TestCloseSessionMonotonicAggregation(t *testing.T) {
	roster := rosterOf(2)
	snap := snapFor(roster)

	var store *fakeCloseStore
	totals := map[aggKey]CounterDelta{}

	for i := 0; i < 5; i++ {
		checkIns := map[uuid.UUID]time.Time{}
		if i%2 == 0 {
			checkIns[roster[0]] = ts(18, 1)
		} else {
			checkIns[roster[0]] = ts(18, 30)
		}
		store = newFakeCloseStore(snap, checkIns)
		store.aggregates = totals

		_, err := CloseSession(store, uuid.New())
		require.NoError(t, err)
	}

	d0 := totals[aggKey{roster[0], snap.TeamID, snap.SeasonID}]
	d1 := totals[aggKey{roster[1], snap.TeamID, snap.SeasonID}]

	assert.Equal(t, CounterDelta{OnTime: 3, Late: 2, Absent: 0}, d0)
	assert.Equal(t, CounterDelta{OnTime: 0, Late: 0, Absent: 5}, d1)

	// Total tersimpan cocok dengan jumlah sesi yang ditutup.
	assert.Equal(t, 5, d0.OnTime+d0.Late+d0.Absent)
	assert.Equal(t, 5, d1.OnTime+d1.Late+d1.Absent)
}

func TestCloseSessionInvalidConfig(t *testing.T) {
	roster := rosterOf(1)
	snap := snapFor(roster)
	snap.Config.LateThresholdMin = -1

	store := newFakeCloseStore(snap, nil)
	_, err := CloseSession(store, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidSessionConfig)
	assert.Equal(t, 0, store.deleteCalls)
}

func TestCloseSessionEmptyRoster(t *testing.T) {
	store := newFakeCloseStore(snapFor(nil), nil)

	res, err := CloseSession(store, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, res.RosterSize)
	assert.Empty(t, store.aggregates)
	assert.True(t, store.deleted)
}
