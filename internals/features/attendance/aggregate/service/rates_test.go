package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name                 string
		onTime, late, absent int
		want                 int
	}{
		{"3 on-time 1 late 1 absent", 3, 1, 1, 80},
		{"setengah hadir", 5, 0, 5, 50},
		{"hanya telat", 0, 3, 7, 30},
		{"semua nol", 0, 0, 0, 0},
		{"hadir semua", 10, 0, 0, 100},
		{"absen semua", 0, 0, 4, 0},
		{"input negatif dianggap nol", -3, 2, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttendanceRate(tt.onTime, tt.late, tt.absent))
		})
	}
}

func TestAccuracyRate(t *testing.T) {
	tests := []struct {
		name         string
		onTime, late int
		want         int
	}{
		{"3 dari 4 tepat waktu", 3, 1, 75},
		{"selalu tepat waktu", 10, 0, 100},
		{"selalu telat", 0, 5, 0},
		{"tidak pernah hadir", 0, 0, 0},
		{"on-time negatif di-clamp", -1, 5, 0},
		{"late negatif di-clamp", 5, -1, 100},
		{"pembulatan setengah ke atas", 1, 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccuracyRate(tt.onTime, tt.late))
		})
	}
}

func TestPerformanceScore(t *testing.T) {
	tests := []struct {
		name                 string
		onTime, late, absent int
		want                 int
	}{
		{"semua nol", 0, 0, 0, 0},
		{"sempurna", 10, 0, 0, 100},
		{"hanya telat", 0, 10, 0, 70},
		{"absen mendominasi: dibatasi nol", 0, 0, 10, 0},
		{"campuran", 7, 2, 1, 82}, // (7*1.0 + 2*0.7 + 1*-0.2) / 10 * 100
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PerformanceScore(tt.onTime, tt.late, tt.absent))
		})
	}
}

// Semua rate harus selalu berada di [0, 100] untuk input non-negatif.
func TestRateBounds(t *testing.T) {
	vals := []int{0, 1, 2, 5, 13, 100}
	for _, on := range vals {
		for _, late := range vals {
			for _, abs := range vals {
				ar := AttendanceRate(on, late, abs)
				assert.GreaterOrEqual(t, ar, 0)
				assert.LessOrEqual(t, ar, 100)

				ac := AccuracyRate(on, late)
				assert.GreaterOrEqual(t, ac, 0)
				assert.LessOrEqual(t, ac, 100)

				ps := PerformanceScore(on, late, abs)
				assert.GreaterOrEqual(t, ps, 0)
				assert.LessOrEqual(t, ps, 100)
			}
		}
	}
}
