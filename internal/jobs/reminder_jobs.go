package jobs

import (
	"context"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/utils"
)

// SendAlertDigest mails the operator the current derived alert list. Alerts
// are recomputed from live data on every run; nothing is stored or marked.
func (jr *JobRunner) SendAlertDigest() {
	jr.runWithRecovery("SendAlertDigest", func() {
		ctx := context.Background()

		notifications, err := jr.services.Notification.Derive(ctx)
		if err != nil {
			logger.Error("Failed to derive notifications", "error", err)
			return
		}
		if len(notifications) == 0 {
			logger.Info("No alerts to send")
			return
		}
		if err := jr.services.Email.SendAlertDigest(ctx, notifications); err != nil {
			logger.Error("Failed to send alert digest", "error", err)
			return
		}
		logger.Info("Alert digest sent", "alerts", len(notifications))
	})
}

// SendPaymentReminders emails one reminder per rental whose event happens in
// the next 7 days while money is still owed.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()

		rentals, err := jr.services.Rental.ListRentals(ctx)
		if err != nil {
			logger.Error("Failed to list rentals", "error", err)
			return
		}

		now := utils.Today()
		today := utils.FormatDate(now)
		weekAhead := utils.FormatDate(now.AddDate(0, 0, 7))

		count := 0
		for i := range rentals {
			rt := &rentals[i]
			if rt.BalanceDueCents() <= 0 || rt.EventDate <= today || rt.EventDate > weekAhead {
				continue
			}
			if err := jr.services.Email.SendPaymentReminder(ctx, rt.Client.Name, rt.EventDate, rt.BalanceDueCents()); err != nil {
				logger.Error("Failed to send payment reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Payment reminders sent", "count", count)
	})
}

// SendOverdueReminders emails one reminder per rental still out past its
// return date. Statuses are never mutated here: overdue is a derived state,
// not a stored one.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		rentals, err := jr.services.Rental.ListRentals(ctx)
		if err != nil {
			logger.Error("Failed to list rentals", "error", err)
			return
		}

		today := utils.FormatDate(utils.Today())

		count := 0
		for i := range rentals {
			rt := &rentals[i]
			if domain.EffectiveStatus(rt, today) != domain.RentalStatusOverdue {
				continue
			}
			if err := jr.services.Email.SendOverdueReminder(ctx, rt.Client.Name, rt.ReturnDate); err != nil {
				logger.Error("Failed to send overdue reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			count++
		}
		logger.Info("Overdue reminders sent", "count", count)
	})
}
