package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"

	// Legacy values still found in older rows. Read-only: never written.
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusNoShow     Status = "no_show"
)

// ActiveStatuses occupy a slot for conflict detection.
var ActiveStatuses = []Status{StatusScheduled, StatusPending}

// ActiveStatusValues is ActiveStatuses as plain strings for SQL arguments.
func ActiveStatusValues() []string {
	out := make([]string, 0, len(ActiveStatuses))
	for _, s := range ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

func (s Status) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// ParseStatus accepts every status a stored row may carry, legacy ones included.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(raw); s {
	case StatusScheduled, StatusCancelled, StatusCompleted,
		StatusPending, StatusInProgress, StatusNoShow:
		return s, nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

// ===============================
// Transitions
// ===============================

// transitions lists the moves staff may make. Only scheduled appointments
// change status; legacy rows are frozen.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
