package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Transition moves ap to target and stamps the matching timestamp.
// The appointment is left untouched when the move is not allowed.
func Transition(ap *models.Appointment, target Status, at time.Time) error {
	if !CanTransition(Status(ap.Status), target) {
		return httperr.ErrState("invalid_state")
	}

	ap.Status = string(target)
	switch target {
	case StatusCancelled:
		ap.CancelledAt = &at
	case StatusCompleted:
		ap.CompletedAt = &at
	}
	return nil
}

func Cancel(ap *models.Appointment, at time.Time) error {
	return Transition(ap, StatusCancelled, at)
}

func Complete(ap *models.Appointment, at time.Time) error {
	return Transition(ap, StatusCompleted, at)
}
