package cron

import (
	"context"
	"time"

	"salonapi/config"
	partyRepo "salonapi/database/repository/party"
	scheduleRepo "salonapi/database/repository/schedule"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartMirrorReconciler schedules the booking-mirror reconciliation sweep.
// The booking dual-write is not transactional, so a crash between the staff
// write and the customer write leaves the mirror missing or stale; the sweep
// walks the authoritative staff-side bookings and repairs the drift.
func StartMirrorReconciler(bookings scheduleRepo.BookingRepository, parties partyRepo.PartyRepository, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	spec := config.AppConfig.ReconcileSchedule
	if spec == "" {
		spec = "@every 10m"
	}

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		repaired, err := ReconcileMirrors(ctx, bookings, parties, logger)
		if err != nil {
			logger.Error("mirror reconciliation sweep failed", zap.Error(err))
			return
		}
		if repaired > 0 {
			logger.Info("mirror reconciliation sweep repaired bookings", zap.Int("repaired", repaired))
		}
	})
	if err != nil {
		logger.Fatal("invalid reconcile schedule", zap.String("spec", spec), zap.Error(err))
	}

	c.Start()
	logger.Info("mirror reconciler started", zap.String("schedule", spec))
	return c
}

// ReconcileMirrors scans every staff-side booking and repairs its customer
// mirror: a missing mirror is recreated, a mirror with a diverged status is
// updated to the authoritative status. Returns the number of repairs made.
func ReconcileMirrors(ctx context.Context, bookings scheduleRepo.BookingRepository, parties partyRepo.PartyRepository, logger *zap.Logger) (int, error) {
	all, err := bookings.ListAllStaffBookings(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, booking := range all {
		mirror, err := bookings.GetCustomerBooking(ctx, booking.CustomerID, booking.ID)
		if err != nil {
			logger.Warn("sweep: failed to read mirror", zap.String("bookingId", booking.ID), zap.Error(err))
			continue
		}

		if mirror == nil {
			copy := booking
			copy.StaffName = staffDisplayName(ctx, parties, booking.StaffID)
			if err := bookings.CreateCustomerBooking(ctx, &copy); err != nil {
				logger.Warn("sweep: failed to recreate mirror", zap.String("bookingId", booking.ID), zap.Error(err))
				continue
			}
			repaired++
			continue
		}

		if mirror.Status != booking.Status {
			if err := bookings.UpdateCustomerBookingStatus(ctx, booking.CustomerID, booking.ID, booking.Status); err != nil {
				logger.Warn("sweep: failed to repair mirror status", zap.String("bookingId", booking.ID), zap.Error(err))
				continue
			}
			repaired++
		}
	}
	return repaired, nil
}

func staffDisplayName(ctx context.Context, parties partyRepo.PartyRepository, staffID string) string {
	staff, err := parties.GetStaffByID(ctx, staffID)
	if err != nil || staff == nil {
		return ""
	}
	return staff.DisplayName()
}
