package jobs

import (
	"context"
	"time"

	"campusrent-backend/internal/logger"
)

// SendOverdueReminders mails the admin digest of ACTIVE rentals whose due
// date has passed. The sweep only reads the ledger; the late/on-time decision
// itself is made at return time.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		now := time.Now()
		overdue := jr.ledger.ActiveDueBefore(now)
		if len(overdue) == 0 {
			logger.Info("No overdue rentals found")
			return
		}

		logger.Info("Found overdue rentals", "count", len(overdue))
		if err := jr.email.SendOverdueDigest(context.Background(), overdue, now); err != nil {
			logger.Error("Failed to send overdue digest", "error", err)
		}
	})
}
