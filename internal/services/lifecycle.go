package services

import (
	"time"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
)

// validTransitions is the booking lifecycle graph. COMPLETED and CANCELLED
// are terminal. PENDING is reachable-but-unused: no operation creates a
// PENDING booking, but the edge is kept for records that predate REQUESTED
// becoming the initial state.
var validTransitions = map[models.PickupStatus][]models.PickupStatus{
	models.StatusPending:    {models.StatusRequested},
	models.StatusRequested:  {models.StatusAccepted, models.StatusCancelled},
	models.StatusAccepted:   {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s models.PickupStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether the lifecycle graph allows from -> to.
func CanTransition(from, to models.PickupStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CancelAllowed guards the dedicated cancel operation, which is narrower
// than the transition table: only REQUESTED and ACCEPTED bookings may be
// cancelled through it.
func CancelAllowed(current models.PickupStatus) bool {
	return current == models.StatusRequested || current == models.StatusAccepted
}

// NewStatusUpdate validates the transition and builds the typed update
// command, stamping the timestamps the new status requires. eta is only
// honored when entering IN_PROGRESS. Entering CANCELLED requires a
// non-empty cancelReason.
func NewStatusUpdate(current, requested models.PickupStatus, now time.Time, cancelReason string, eta *time.Time) (*models.BookingStatusUpdate, error) {
	if !ValidStatus(requested) {
		return nil, apperr.Validation("invalid status value")
	}
	if !CanTransition(current, requested) {
		return nil, apperr.Conflict("invalid status transition from %s to %s", current, requested)
	}

	update := &models.BookingStatusUpdate{Status: requested}
	switch requested {
	case models.StatusAccepted:
		update.AcceptedAt = &now
	case models.StatusInProgress:
		update.StartedAt = &now
		update.EstimatedCompletionTime = eta
	case models.StatusCompleted:
		update.CompletedAt = &now
	case models.StatusCancelled:
		if cancelReason == "" {
			return nil, apperr.Validation("cancel reason is required")
		}
		update.CancelledAt = &now
		update.CancelReason = cancelReason
	}
	return update, nil
}
