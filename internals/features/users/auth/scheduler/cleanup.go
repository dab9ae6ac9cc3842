package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	authRepo "formku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler menghapus token_blacklist yang exp-nya sudah lewat.
// schedule pakai format robfig/cron (mis. "@daily", "15 2 * * *").
func StartBlacklistCleanupScheduler(repo authRepo.AuthRepository, schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(schedule, func() { RunBlacklistCleanup(repo, time.Now().UTC()) }); err != nil {
		return nil, err
	}
	log.Printf("[CLEANUP] token_blacklist cleanup scheduled=%q", schedule)
	c.Start()
	return c, nil
}

// RunBlacklistCleanup satu putaran pembersihan; dipisah supaya bisa dipanggil langsung.
func RunBlacklistCleanup(repo authRepo.AuthRepository, now time.Time) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := repo.PurgeExpiredBlacklist(ctx, now)
	if err != nil {
		log.Printf("[CLEANUP ERROR] purge token_blacklist failed: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d expired tokens removed", n)
	}
	return n
}
