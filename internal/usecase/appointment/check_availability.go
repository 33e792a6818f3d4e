package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CheckAvailability struct {
	repo   domain.Repository
	policy *domain.WeekdayPolicy
	clock  timezone.Clock
}

func NewCheckAvailability(
	repo domain.Repository,
	policy *domain.WeekdayPolicy,
	clock timezone.Clock,
) *CheckAvailability {
	return &CheckAvailability{
		repo:   repo,
		policy: policy,
		clock:  clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute answers whether a slot can be booked. An unavailable slot is a
// normal result; only bad input, a missing doctor or storage failures are errors.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (domain.AvailabilityResult, error) {

	res, err := uc.evaluate(ctx, in)
	if err == nil {
		metrics.AvailabilityChecked(res.Reason)
	}
	return res, err
}

func (uc *CheckAvailability) evaluate(
	ctx context.Context,
	in domain.AvailabilityInput,
) (domain.AvailabilityResult, error) {

	// --------------------------------------------------
	// 1️⃣ Presence + format
	// --------------------------------------------------
	slot, err := parseSlot(in.Date, in.Time, in.DoctorID, uc.clock.Loc)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}

	// --------------------------------------------------
	// 2️⃣ Past
	// --------------------------------------------------
	if slot.IsPast(uc.clock.Current()) {
		return domain.Unavailable(domain.ReasonPast, domain.MessagePast), nil
	}

	// --------------------------------------------------
	// 3️⃣ Doctor
	// --------------------------------------------------
	doctor, err := uc.repo.FindDoctor(ctx, slot.DoctorID)
	if err != nil {
		return domain.AvailabilityResult{}, fmt.Errorf("find doctor: %w", err)
	}
	if doctor == nil {
		return domain.AvailabilityResult{}, httperr.ErrNotFound("doctor_not_found")
	}

	// --------------------------------------------------
	// 4️⃣ Conflict
	// --------------------------------------------------
	taken, err := uc.repo.HasSlotConflict(ctx, slot)
	if err != nil {
		return domain.AvailabilityResult{}, fmt.Errorf("slot conflict: %w", err)
	}
	if taken {
		return domain.Unavailable(domain.ReasonSlotTaken, domain.MessageSlotTaken), nil
	}

	// --------------------------------------------------
	// 5️⃣ Weekday + working hours
	// --------------------------------------------------
	reason, err := scheduleReason(ctx, uc.repo, uc.policy, slot)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	switch reason {
	case domain.ReasonDayDisabled:
		return domain.Unavailable(reason, domain.MessageDayDisabled), nil
	case domain.ReasonOutsideHours:
		return domain.Unavailable(reason, domain.MessageOutsideHours), nil
	}

	return domain.Available(), nil
}

// scheduleReason returns "" when the slot's weekday is enabled and some working
// window of the doctor covers its time, else the unavailability reason.
func scheduleReason(
	ctx context.Context,
	repo domain.Repository,
	policy *domain.WeekdayPolicy,
	slot domain.Slot,
) (string, error) {

	weekday := slot.ISOWeekday()
	if !policy.IsEnabled(weekday) {
		return domain.ReasonDayDisabled, nil
	}

	windows, err := repo.ListWorkingHours(ctx, slot.DoctorID, weekday)
	if err != nil {
		return "", fmt.Errorf("list working hours: %w", err)
	}
	if !domain.AnyWindowContains(windows, slot.Time) {
		return domain.ReasonOutsideHours, nil
	}
	return domain.ReasonAvailable, nil
}
