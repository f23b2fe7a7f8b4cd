package jobs

import (
	"context"
	"fmt"

	"mountainride-backend/internal/logger"
)

// ReportOverdueRentals e-mails the shop a list of active rentals whose
// longest item is past its return date. Nothing is modified.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() error {
		return jr.reportOverdueRentals(context.Background())
	})
}

func (jr *JobRunner) reportOverdueRentals(ctx context.Context) error {
	overdue, err := jr.rentals.ListOverdue(ctx, jr.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to list overdue rentals: %w", err)
	}

	logger.Info("Found overdue rentals", "count", len(overdue))
	for _, r := range overdue {
		logger.Warn("Rental overdue", "rentalID", r.ID, "code", r.Code, "customerID", r.CustomerID)
	}
	if len(overdue) == 0 {
		return nil
	}

	if err := jr.email.SendOverdueReport(ctx, jr.config.ReportEmail, overdue); err != nil {
		logger.Warn("Failed to send overdue report", "error", err)
	}
	return nil
}
