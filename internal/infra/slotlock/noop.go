package slotlock

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// Noop always grants the lock. Used when redis is not configured; the
// database index still guarantees a single active booking per slot.
type Noop struct{}

func (Noop) Acquire(context.Context, domain.Slot) (func(), bool, error) {
	return func() {}, true, nil
}

var _ domain.SlotLocker = Noop{}
