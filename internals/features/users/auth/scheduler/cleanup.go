package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "ligaku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler menghapus token blacklist kadaluarsa tiap 24 jam.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		// Interval dari env dalam jam (default: 24 jam)
		intervalHours := 24
		if val := os.Getenv("BLACKLIST_CLEANUP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			deleted, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", deleted)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
