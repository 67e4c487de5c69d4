package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasCapability(t *testing.T) {
	leagueA := uuid.New()
	leagueB := uuid.New()

	coachA := RolesClaim{
		LeagueRoles: []LeagueRolesEntry{
			{LeagueID: leagueA, Roles: []string{"coach"}},
		},
	}
	staffA := RolesClaim{
		LeagueRoles: []LeagueRolesEntry{
			{LeagueID: leagueA, Roles: []string{"staff"}},
		},
	}
	adminB := RolesClaim{
		LeagueRoles: []LeagueRolesEntry{
			{LeagueID: leagueB, Roles: []string{"admin"}},
		},
	}
	owner := RolesClaim{RolesGlobal: []string{"owner"}}

	tests := []struct {
		name   string
		claim  RolesClaim
		league uuid.UUID
		cap    Capability
		want   bool
	}{
		{"coach boleh kelola tim di liganya", coachA, leagueA, CapManageTeams, true},
		{"coach boleh kelola sesi", coachA, leagueA, CapManageSessions, true},
		{"coach tidak boleh kelola liga", coachA, leagueA, CapManageLeague, false},
		{"staff boleh kelola sesi", staffA, leagueA, CapManageSessions, true},
		{"staff tidak boleh kelola tim", staffA, leagueA, CapManageTeams, false},
		{"role tidak berlaku lintas liga", adminB, leagueA, CapManageTeams, false},
		{"admin penuh di liganya", adminB, leagueB, CapManageLeague, true},
		{"owner global selalu lolos", owner, leagueA, CapManageLeague, true},
		{"claim kosong ditolak", RolesClaim{}, leagueA, CapViewReports, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCapability(tt.claim, tt.league, tt.cap))
		})
	}
}

func TestHasCapabilityUnknownCapability(t *testing.T) {
	league := uuid.New()
	rc := RolesClaim{
		LeagueRoles: []LeagueRolesEntry{{LeagueID: league, Roles: []string{"admin"}}},
	}
	assert.False(t, HasCapability(rc, league, Capability("does_not_exist")))
}
