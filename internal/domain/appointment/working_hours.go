package appointment

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// WindowContains reports whether hm falls inside [start, end], bounds inclusive.
// Windows with unparsable bounds never match.
func WindowContains(wh models.WorkingHour, hm string) bool {
	at, ok := ClockMinutes(hm)
	if !ok {
		return false
	}
	start, ok1 := ClockMinutes(wh.StartTime)
	end, ok2 := ClockMinutes(wh.EndTime)
	if !ok1 || !ok2 {
		return false
	}
	return start <= at && at <= end
}

// AnyWindowContains is true when at least one window covers hm.
func AnyWindowContains(windows []models.WorkingHour, hm string) bool {
	for _, wh := range windows {
		if WindowContains(wh, hm) {
			return true
		}
	}
	return false
}

// ValidateWindow normalises a window's bounds and checks start < end.
func ValidateWindow(start, end string) (string, string, error) {
	s, err := ParseClock(start)
	if err != nil {
		return "", "", err
	}
	e, err := ParseClock(end)
	if err != nil {
		return "", "", err
	}
	sm, _ := ClockMinutes(s)
	em, _ := ClockMinutes(e)
	if sm >= em {
		return "", "", httperr.ErrValidation("invalid_time_window")
	}
	return s, e, nil
}
