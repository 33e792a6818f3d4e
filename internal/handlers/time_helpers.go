package handlers

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// parseOptionalDate parses "YYYY-MM-DD" in the clinic location; "" clears the value.
func parseOptionalDate(raw string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw, loc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
