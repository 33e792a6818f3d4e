package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
)

type memoryStore struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (m *memoryStore) Log(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("db down")
	}
	m.events = append(m.events, ev)
	return nil
}

func TestDispatcher_DeliversOnClose(t *testing.T) {
	store := &memoryStore{}
	d := NewDispatcher(store, logger.Discard().WithComponent("audit"))

	id := uint(3)
	d.Dispatch(Event{Actor: "staff-1", Action: "appointment_created", Entity: "appointment", EntityID: &id})
	d.Dispatch(Event{Actor: "staff-1", Action: "appointment_cancelled", Entity: "appointment", EntityID: &id})
	d.Close()

	assert.Len(t, store.events, 2)
	assert.Equal(t, "appointment_created", store.events[0].Action)
}

func TestDispatcher_StoreErrorDoesNotStopWorker(t *testing.T) {
	store := &memoryStore{fail: true}
	d := NewDispatcher(store, logger.Discard().WithComponent("audit"))

	d.Dispatch(Event{Action: "a"})
	d.Close()

	assert.Empty(t, store.events)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	store := &memoryStore{}
	d := NewDispatcher(store, logger.Discard().WithComponent("audit"))
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "late"})
		d.Close()
	})
	assert.Empty(t, store.events)
}

func TestDispatcher_ConcurrentDispatchAndClose(t *testing.T) {
	store := &memoryStore{}
	d := NewDispatcher(store, logger.Discard().WithComponent("audit"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispatch(Event{Action: "racing"})
		}()
	}

	assert.NotPanics(t, d.Close)
	wg.Wait()
}
