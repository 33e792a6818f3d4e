package audit

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Store persists a single audit event.
type Store interface {
	Log(ev Event) error
}

type Dispatcher struct {
	store Store
	log   *logrus.Entry
	queue chan Event
	done  sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(store Store, log *logrus.Entry) *Dispatcher {
	d := &Dispatcher{
		store: store,
		log:   log,
		queue: make(chan Event, 100),
	}

	d.done.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.done.Done()
	for ev := range d.queue {
		if err := d.store.Log(ev); err != nil {
			d.log.WithError(err).
				WithField("action", ev.Action).
				Error("audit write failed")
		}
	}
}

// Dispatch never blocks the request path: when the queue is full or the
// dispatcher is closed the event is dropped. A nil dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.WithField("action", ev.Action).Warn("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drains pending events and stops the worker. It is safe to call twice.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.done.Wait()
}
