package appointment

import (
	"sync"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var weekdayNames = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayName returns the English day name for an ISO weekday, or "".
func WeekdayName(iso int) string {
	if iso < 1 || iso > 7 {
		return ""
	}
	return weekdayNames[iso]
}

// WeekdayPolicy is the clinic-wide on/off switch per ISO weekday.
// It is loaded from the weekdays table at startup and updated whenever
// staff toggle a day, so booking code never reads the table directly.
type WeekdayPolicy struct {
	mu      sync.RWMutex
	enabled [8]bool
}

// NewWeekdayPolicy starts with every day enabled.
func NewWeekdayPolicy() *WeekdayPolicy {
	p := &WeekdayPolicy{}
	for i := 1; i <= 7; i++ {
		p.enabled[i] = true
	}
	return p
}

// PolicyFromRows builds a policy from stored weekday rows. Days without a row stay enabled.
func PolicyFromRows(rows []models.Weekday) *WeekdayPolicy {
	p := NewWeekdayPolicy()
	p.Load(rows)
	return p
}

func (p *WeekdayPolicy) Load(rows []models.Weekday) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range rows {
		if r.ID >= 1 && r.ID <= 7 {
			p.enabled[r.ID] = r.Status
		}
	}
}

func (p *WeekdayPolicy) IsEnabled(iso int) bool {
	if iso < 1 || iso > 7 {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.enabled[iso]
}

func (p *WeekdayPolicy) Set(iso int, enabled bool) {
	if iso < 1 || iso > 7 {
		return
	}
	p.mu.Lock()
	p.enabled[iso] = enabled
	p.mu.Unlock()
}
