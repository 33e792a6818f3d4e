package appointment

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// parseSlot runs the presence and format checks shared by check and booking.
func parseSlot(rawDate, rawTime, rawDoctorID string, loc *time.Location) (domain.Slot, error) {
	if strings.TrimSpace(rawDate) == "" ||
		strings.TrimSpace(rawTime) == "" ||
		strings.TrimSpace(rawDoctorID) == "" {
		return domain.Slot{}, httperr.ErrValidation("missing_fields")
	}

	date, err := domain.ParseDate(rawDate, loc)
	if err != nil {
		return domain.Slot{}, err
	}
	if _, err := domain.ParseClock(rawTime); err != nil {
		return domain.Slot{}, err
	}
	doctorID, err := domain.ParseID(rawDoctorID, "invalid_doctor_id")
	if err != nil {
		return domain.Slot{}, err
	}

	return domain.NewSlot(doctorID, date.Format(domain.DateLayout), rawTime, loc)
}
