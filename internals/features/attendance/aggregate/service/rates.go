// file: internals/features/attendance/aggregate/service/rates.go
//
// Satu-satunya implementasi rumus persentase kehadiran. Jangan duplikasi
// rumus ini di controller/dto lain; derive selalu lewat fungsi di sini.
package service

import "math"

// Bobot skor performa: hadir tepat waktu penuh, telat 0.7, absen minus.
const (
	weightOnTime = 1.0
	weightLate   = 0.7
	weightAbsent = -0.2
)

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// roundHalfUp: pembulatan setengah ke atas, dipakai sekali di akhir tiap rumus.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// AttendanceRate: persentase sesi yang dihadiri (on-time atau telat).
// Input negatif dianggap 0; total 0 → 0 (tanpa pembagian nol).
func AttendanceRate(onTime, late, absent int) int {
	onTime = clampNonNegative(onTime)
	late = clampNonNegative(late)
	absent = clampNonNegative(absent)

	total := onTime + late + absent
	if total == 0 {
		return 0
	}
	return roundHalfUp(float64(onTime+late) / float64(total) * 100)
}

// AccuracyRate (punctuality): persentase kehadiran yang tepat waktu.
func AccuracyRate(onTime, late int) int {
	onTime = clampNonNegative(onTime)
	late = clampNonNegative(late)

	attending := onTime + late
	if attending == 0 {
		return 0
	}
	return roundHalfUp(float64(onTime) / float64(attending) * 100)
}

// PerformanceScore: komposit berbobot, dibatasi bawah di 0 karena rumus
// mentahnya bisa negatif saat absen mendominasi.
func PerformanceScore(onTime, late, absent int) int {
	onTime = clampNonNegative(onTime)
	late = clampNonNegative(late)
	absent = clampNonNegative(absent)

	total := onTime + late + absent
	if total == 0 {
		return 0
	}
	raw := (float64(onTime)*weightOnTime + float64(late)*weightLate + float64(absent)*weightAbsent) / float64(total) * 100
	score := roundHalfUp(raw)
	if score < 0 {
		return 0
	}
	return score
}
