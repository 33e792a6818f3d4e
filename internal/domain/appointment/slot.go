package appointment

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot is the unit of conflict detection: one doctor at one date and time.
type Slot struct {
	DoctorID uint
	Date     time.Time // midnight of the day, clinic location
	Time     string    // normalised "HH:MM"
	Start    time.Time // Date + Time, clinic location
}

// DateKey is the date formatted for storage queries.
func (s Slot) DateKey() string {
	return s.Date.Format(DateLayout)
}

// ISOWeekday returns Monday=1 ... Sunday=7.
func (s Slot) ISOWeekday() int {
	return ISOWeekday(s.Date.Weekday())
}

func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// ParseDate parses "YYYY-MM-DD" into midnight at loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date")
	}
	return d, nil
}

// ParseClock parses "HH:MM" or "HH:MM:SS" and returns it normalised to "HH:MM".
func ParseClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", httperr.ErrValidation("invalid_time")
}

// ClockMinutes converts a normalised "HH:MM" to minutes since midnight.
func ClockMinutes(hm string) (int, bool) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ParseID accepts a positive integer identifier given as text.
func ParseID(raw string, code string) (uint, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, httperr.ErrValidation(code)
	}
	return uint(n), nil
}

// NewSlot validates and combines the raw inputs of a booking request.
func NewSlot(doctorID uint, rawDate, rawTime string, loc *time.Location) (Slot, error) {
	date, err := ParseDate(rawDate, loc)
	if err != nil {
		return Slot{}, err
	}
	hm, err := ParseClock(rawTime)
	if err != nil {
		return Slot{}, err
	}
	minutes, _ := ClockMinutes(hm)

	return Slot{
		DoctorID: doctorID,
		Date:     date,
		Time:     hm,
		Start: time.Date(
			date.Year(), date.Month(), date.Day(),
			minutes/60, minutes%60, 0, 0,
			loc,
		),
	}, nil
}

// IsPast reports whether the slot starts at or before now.
func (s Slot) IsPast(now time.Time) bool {
	return !s.Start.After(now)
}
